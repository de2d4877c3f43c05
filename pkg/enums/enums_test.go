package enums

import "testing"

func TestParseRoundTripsKnownValues(t *testing.T) {
	for _, v := range validSortOrders {
		got, err := ParseSortOrder(v.String())
		if err != nil || got != v {
			t.Fatalf("ParseSortOrder(%q) = %q, %v", v, got, err)
		}
	}
	for _, v := range validPaymentMethods {
		if !v.IsValid() {
			t.Fatalf("expected %q to be valid", v)
		}
	}
	if _, err := ParseShowcaseFilter("bestsellers"); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, _ := ParseShippingOption("express"); got != ShippingOptionExpress {
		t.Fatalf("expected express, got %q", got)
	}
}

func TestParseRejectsUnknownValues(t *testing.T) {
	if _, err := ParseSortOrder("price-asc"); err == nil {
		t.Fatal("expected error for unknown sort order")
	}
	if _, err := ParsePaymentMethod("crypto"); err == nil {
		t.Fatal("expected error for unknown payment method")
	}
	if PaymentMethod("CreditCard").IsValid() {
		t.Fatal("payment methods are case-sensitive")
	}
	if _, err := ParseShowcaseFilter(""); err == nil {
		t.Fatal("expected error for empty showcase filter")
	}
}
