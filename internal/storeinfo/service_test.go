package storeinfo

import (
	"testing"

	"github.com/angelmondragon/storefront-backend/pkg/config"
)

func TestInfoUsesConfigAndReturnsCopies(t *testing.T) {
	svc := NewService(config.ContactConfig{Email: "help@shop.test", Phone: "123", Address: "1 Road"})

	info := svc.Info()
	if info.Contact.Email != "help@shop.test" || info.Contact.Phone != "123" {
		t.Fatalf("unexpected contact %+v", info.Contact)
	}
	if len(info.Policies) != 3 {
		t.Fatalf("expected 3 policies, got %d", len(info.Policies))
	}

	info.Policies[0].Features[0] = "mutated"
	if svc.Info().Policies[0].Features[0] == "mutated" {
		t.Fatal("Info must not expose shared slices")
	}
}
