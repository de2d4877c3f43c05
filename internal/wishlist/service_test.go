package wishlist

import (
	"context"
	"testing"

	"github.com/angelmondragon/storefront-backend/internal/catalog"
	pkgerrors "github.com/angelmondragon/storefront-backend/pkg/errors"
	"github.com/google/uuid"
)

type stubResolver map[uuid.UUID]*List

func (s stubResolver) WishlistFor(id uuid.UUID) *List {
	l, ok := s[id]
	if !ok {
		l = New()
		s[id] = l
	}
	return l
}

type stubProducts map[string]catalog.Product

func (s stubProducts) Get(ctx context.Context, id string) (catalog.Product, error) {
	p, ok := s[id]
	if !ok {
		return catalog.Product{}, pkgerrors.New(pkgerrors.CodeNotFound, "product not found")
	}
	return p, nil
}

func TestServiceAddListRemove(t *testing.T) {
	products := stubProducts{
		"p1": {ID: "p1", Name: "One"},
		"p2": {ID: "p2", Name: "Two"},
	}
	lists := stubResolver{}
	svc, err := NewService(ServiceParams{Lists: lists, Products: products})
	if err != nil {
		t.Fatalf("new service: %v", err)
	}
	ctx := context.Background()
	session := uuid.New()

	if err := svc.AddItem(ctx, session, "p1"); err != nil {
		t.Fatalf("add p1: %v", err)
	}
	if err := svc.AddItem(ctx, session, "p2"); err != nil {
		t.Fatalf("add p2: %v", err)
	}
	if err := svc.AddItem(ctx, session, "nope"); !pkgerrors.IsCode(err, pkgerrors.CodeNotFound) {
		t.Fatalf("expected not found, got %v", err)
	}
	if err := svc.AddItem(ctx, session, ""); !pkgerrors.IsCode(err, pkgerrors.CodeValidation) {
		t.Fatalf("expected validation error, got %v", err)
	}

	items := svc.List(ctx, session)
	if len(items) != 2 || items[0].Product.Name != "One" {
		t.Fatalf("unexpected items %+v", items)
	}

	delete(products, "p2")
	if items := svc.List(ctx, session); len(items) != 1 {
		t.Fatalf("vanished products must be skipped, got %d items", len(items))
	}

	svc.RemoveItem(ctx, session, "p1")
	svc.RemoveItem(ctx, session, "p1")
	if lists[session].Contains("p1") {
		t.Fatal("expected p1 removed")
	}
}

func TestNewServiceRequiresDependencies(t *testing.T) {
	if _, err := NewService(ServiceParams{}); err == nil {
		t.Fatal("expected error without dependencies")
	}
}
