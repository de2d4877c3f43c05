package cart

import (
	"bytes"
	"context"
	"sync"
	"testing"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/angelmondragon/storefront-backend/pkg/logger"
	"github.com/angelmondragon/storefront-backend/pkg/metrics"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
)

type stubResolver struct {
	mu    sync.Mutex
	carts map[uuid.UUID]*Cart
}

func (s *stubResolver) CartFor(id uuid.UUID) *Cart {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.carts == nil {
		s.carts = map[uuid.UUID]*Cart{}
	}
	c, ok := s.carts[id]
	if !ok {
		c = New()
		s.carts[id] = c
	}
	return c
}

type stubProducts map[string]catalog.Product

func (s stubProducts) Get(ctx context.Context, id string) (catalog.Product, error) {
	p, ok := s[id]
	if !ok {
		return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

type countingRecorder struct {
	ops []string
}

func (c *countingRecorder) IncCartMutation(op string) {
	c.ops = append(c.ops, op)
}

func newTestService(t *testing.T) (Service, *countingRecorder) {
	t.Helper()
	rec := &countingRecorder{}
	svc, err := NewService(ServiceParams{
		Carts: &stubResolver{},
		Products: stubProducts{
			"p1": product("p1", "10.00"),
			"p2": product("p2", "5.00"),
		},
		Metrics: rec,
	})
	require.NoError(t, err)
	return svc, rec
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	_, err := NewService(ServiceParams{Products: stubProducts{}})
	require.Error(t, err)
	_, err = NewService(ServiceParams{Carts: &stubResolver{}})
	require.Error(t, err)

	svc, err := NewService(ServiceParams{Carts: &stubResolver{}, Products: stubProducts{"p1": product("p1", "1")}})
	require.NoError(t, err)
	_, err = svc.AddItem(context.Background(), uuid.New(), "p1", 1)
	require.NoError(t, err, "missing metrics recorder must be tolerated")
}

func TestServiceAddItemFlow(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()
	session := uuid.New()

	_, err := svc.AddItem(ctx, session, "p1", 2)
	require.NoError(t, err)
	snap, err := svc.AddItem(ctx, session, "p2", 1)
	require.NoError(t, err)

	require.Equal(t, 3, snap.TotalItems)
	require.Equal(t, "25.00", snap.TotalPrice.StringFixed(2))
	require.Equal(t, 3, svc.Count(ctx, session))
	require.Equal(t, []string{metrics.CartOpAdd, metrics.CartOpAdd}, rec.ops)
}

func TestServiceAddItemValidation(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	session := uuid.New()

	_, err := svc.AddItem(ctx, session, "p1", 0)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = svc.AddItem(ctx, session, " ", 1)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = svc.AddItem(ctx, session, "p1", MaxQuantity+1)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeValidation))

	_, err = svc.AddItem(ctx, session, "missing", 1)
	require.True(t, pkgerrors.IsCode(err, pkgerrors.CodeNotFound))
	require.Zero(t, svc.Count(ctx, session))
}

func TestServiceSessionsAreIsolated(t *testing.T) {
	svc, _ := newTestService(t)
	ctx := context.Background()
	a, b := uuid.New(), uuid.New()

	_, err := svc.AddItem(ctx, a, "p1", 4)
	require.NoError(t, err)
	require.Equal(t, 4, svc.Count(ctx, a))
	require.Zero(t, svc.Count(ctx, b))
}

func TestServiceRemoveAndClear(t *testing.T) {
	svc, rec := newTestService(t)
	ctx := context.Background()
	session := uuid.New()

	_, _ = svc.AddItem(ctx, session, "p1", 1)
	_, _ = svc.AddItem(ctx, session, "p2", 1)

	snap := svc.RemoveItem(ctx, session, "p1")
	require.Equal(t, 1, snap.TotalItems)
	snap = svc.RemoveItem(ctx, session, "p1")
	require.Equal(t, 1, snap.TotalItems)

	snap = svc.Clear(ctx, session)
	require.Zero(t, snap.TotalItems)
	require.Empty(t, svc.Get(ctx, session).Items)
	require.Contains(t, rec.ops, metrics.CartOpClear)
}

func TestServiceLogsMutations(t *testing.T) {
	buf := &bytes.Buffer{}
	logg := logger.New(logger.Options{ServiceName: "test", Level: logger.ParseLevel("debug"), Output: buf})
	svc, err := NewService(ServiceParams{
		Carts:    &stubResolver{},
		Products: stubProducts{"p1": product("p1", "10.00")},
		Logger:   logg,
	})
	require.NoError(t, err)
	ctx := context.Background()
	session := uuid.New()

	_, err = svc.AddItem(ctx, session, "p1", 2)
	require.NoError(t, err)
	svc.RemoveItem(ctx, session, "p1")
	svc.Clear(ctx, session)

	out := buf.String()
	require.Contains(t, out, "cart.item_added")
	require.Contains(t, out, "cart.item_removed")
	require.Contains(t, out, "cart.cleared")
	require.Contains(t, out, `"product_id":"p1"`)
}
