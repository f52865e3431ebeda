package domain

import (
	"errors"
	"testing"
	"time"
)

var now = time.Date(2026, time.March, 15, 12, 0, 0, 0, time.UTC)

func validCard() CardDetails {
	return CardDetails{
		HolderName: "Ayu Lestari",
		Number:     "4111 1111 1111 1111",
		Expiry:     "12/27",
		CVV:        "123",
	}
}

func TestCardDetails_Validate(t *testing.T) {
	tests := []struct {
		name      string
		mutate    func(c *CardDetails)
		wantField string
	}{
		{"valid", func(c *CardDetails) {}, ""},
		{"missing holder", func(c *CardDetails) { c.HolderName = "  " }, "card_holder_name"},
		{"short number", func(c *CardDetails) { c.Number = "4111" }, "card_number"},
		{"letters in number", func(c *CardDetails) { c.Number = "4111 1111 1111 111a" }, "card_number"},
		{"bad checksum", func(c *CardDetails) { c.Number = "4111 1111 1111 1112" }, "card_number"},
		{"bad expiry format", func(c *CardDetails) { c.Expiry = "1227" }, "expiry_date"},
		{"month out of range", func(c *CardDetails) { c.Expiry = "13/27" }, "expiry_date"},
		{"expired", func(c *CardDetails) { c.Expiry = "02/26" }, "expiry_date"},
		{"expires this month", func(c *CardDetails) { c.Expiry = "03/26" }, ""},
		{"cvv too short", func(c *CardDetails) { c.CVV = "12" }, "cvv"},
		{"four digit cvv", func(c *CardDetails) { c.CVV = "1234" }, ""},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			card := validCard()
			tt.mutate(&card)
			err := card.Validate(now)
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) {
				t.Fatalf("expected ValidationError, got %v", err)
			}
			if vErr.Field != tt.wantField {
				t.Fatalf("expected field %q, got %q", tt.wantField, vErr.Field)
			}
		})
	}
}

func TestCardDetails_Last4(t *testing.T) {
	if got := validCard().Last4(); got != "1111" {
		t.Fatalf("expected 1111, got %q", got)
	}
}

func TestShippingAddress_Validate(t *testing.T) {
	tests := []struct {
		name      string
		addr      ShippingAddress
		wantField string
	}{
		{"valid", ShippingAddress{Street: "123 Main Street", City: "Jakarta", ZipCode: "12345"}, ""},
		{"missing street", ShippingAddress{City: "Jakarta", ZipCode: "12345"}, "address"},
		{"missing city", ShippingAddress{Street: "123 Main Street", ZipCode: "12345"}, "city"},
		{"short zip", ShippingAddress{Street: "123 Main Street", City: "Jakarta", ZipCode: "123"}, "zip_code"},
		{"symbol in zip", ShippingAddress{Street: "123 Main Street", City: "Jakarta", ZipCode: "12-345"}, "zip_code"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.addr.Validate()
			if tt.wantField == "" {
				if err != nil {
					t.Fatalf("expected no error, got %v", err)
				}
				return
			}
			var vErr *ValidationError
			if !errors.As(err, &vErr) || vErr.Field != tt.wantField {
				t.Fatalf("expected ValidationError on %q, got %v", tt.wantField, err)
			}
		})
	}
}

func TestPaymentMethodCode(t *testing.T) {
	for _, m := range PaymentMethods() {
		if !m.Code.IsValid() {
			t.Fatalf("expected %q to be valid", m.Code)
		}
		if !m.Icon.IsValid() {
			t.Fatalf("expected %q to carry a valid icon", m.Code)
		}
	}
	if PaymentMethodCode("cash").IsValid() {
		t.Fatal("expected cash to be invalid")
	}
	if !PaymentMethodCreditCard.RequiresCard() || PaymentMethodBankTransfer.RequiresCard() {
		t.Fatal("only credit card should require card details")
	}
}

func TestPromoCode(t *testing.T) {
	tests := []struct {
		input string
		known bool
	}{
		{"GLOW2024", true},
		{"glow2024", true},
		{" beauty15 ", true},
		{"NEWBIE", true},
		{"FREE100", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			if got := NormalizePromoCode(tt.input).IsKnown(); got != tt.known {
				t.Errorf("NormalizePromoCode(%q).IsKnown() = %v, want %v", tt.input, got, tt.known)
			}
		})
	}
	for _, code := range SuggestedPromoCodes() {
		if !code.IsKnown() {
			t.Fatalf("suggested code %q is not accepted", code)
		}
	}
}

func TestIcon(t *testing.T) {
	if !VectorIcon("Person").IsValid() || !ResourceIcon("ic_gift").IsValid() {
		t.Fatal("expected constructed icons to be valid")
	}
	if (Icon{Kind: "emoji", Name: "x"}).IsValid() || (Icon{Kind: IconKindVector}).IsValid() {
		t.Fatal("expected unknown kind or empty name to be invalid")
	}
}
