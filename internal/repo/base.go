package repo

import (
	"context"

	"gorm.io/gorm"
)

// Base is the shared gorm plumbing for a repository over model T.
type Base[T any] struct {
	db *gorm.DB
}

// NewBase constructs a Base repository backed by the provided GORM connection.
func NewBase[T any](db *gorm.DB) Base[T] {
	return Base[T]{db: db}
}

// DB returns the GORM connection bound to ctx when one is supplied.
func (b Base[T]) DB(ctx context.Context) *gorm.DB {
	if ctx == nil {
		return b.db
	}
	return b.db.WithContext(ctx)
}

// Insert creates row.
func (b Base[T]) Insert(ctx context.Context, row *T) error {
	return b.DB(ctx).Create(row).Error
}

// FindOne returns the first row matching the condition.
func (b Base[T]) FindOne(ctx context.Context, query string, args ...any) (*T, error) {
	var row T
	if err := b.DB(ctx).Where(query, args...).First(&row).Error; err != nil {
		return nil, err
	}
	return &row, nil
}

// Count returns the number of rows in T's table.
func (b Base[T]) Count(ctx context.Context) (int64, error) {
	var n int64
	err := b.DB(ctx).Model(new(T)).Count(&n).Error
	return n, err
}
