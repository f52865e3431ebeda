package domain

import "testing"

var (
	lipKit    = Product{Name: "Lip Kit", Brand: "Kylie Cosmetics", Price: 2900}
	concealer = Product{Name: "Concealer", Brand: "NARS", Price: 3200}
)

func TestCart_AddSameProductIncrementsSingleLine(t *testing.T) {
	cart := NewCart()
	cart.Add(lipKit)
	cart.Add(lipKit)

	lines := cart.Lines()
	if len(lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(lines))
	}
	if lines[0].Quantity != 2 {
		t.Fatalf("expected quantity 2, got %d", lines[0].Quantity)
	}
}

func TestCart_AddMatchesByName(t *testing.T) {
	cart := NewCart()
	cart.Add(lipKit)
	repriced := lipKit
	repriced.Price = 9999
	cart.Add(repriced)

	if len(cart.Lines()) != 1 {
		t.Fatalf("expected products with the same name to share a line, got %d lines", len(cart.Lines()))
	}
	if cart.Total() != 5800 {
		t.Fatalf("expected the first line's unit price to be kept, total = %d", cart.Total())
	}
}

func TestCart_Increase(t *testing.T) {
	t.Run("present", func(t *testing.T) {
		cart := NewCart()
		cart.Add(lipKit)
		if !cart.Increase(lipKit) {
			t.Fatal("expected Increase to report a change")
		}
		if cart.Quantity(lipKit) != 2 {
			t.Fatalf("expected quantity 2, got %d", cart.Quantity(lipKit))
		}
	})

	t.Run("absent is a no-op", func(t *testing.T) {
		cart := NewCart()
		cart.Add(lipKit)
		if cart.Increase(concealer) {
			t.Fatal("expected Increase on absent product to report no change")
		}
		if len(cart.Lines()) != 1 || cart.Quantity(concealer) != 0 {
			t.Fatalf("expected cart unchanged, got %+v", cart.Lines())
		}
	})
}

func TestCart_Decrease(t *testing.T) {
	t.Run("above one decrements", func(t *testing.T) {
		cart := NewCart()
		cart.Add(lipKit)
		cart.Add(lipKit)
		cart.Decrease(lipKit)
		if cart.Quantity(lipKit) != 1 {
			t.Fatalf("expected quantity 1, got %d", cart.Quantity(lipKit))
		}
	})

	t.Run("at one removes the line", func(t *testing.T) {
		cart := NewCart()
		cart.Add(concealer)
		cart.Add(lipKit)
		if !cart.Decrease(concealer) {
			t.Fatal("expected Decrease to report a change")
		}
		lines := cart.Lines()
		if len(lines) != 1 || lines[0].Product.Name != "Lip Kit" {
			t.Fatalf("expected only Lip Kit to remain, got %+v", lines)
		}
	})

	t.Run("absent is a no-op", func(t *testing.T) {
		cart := NewCart()
		if cart.Decrease(lipKit) {
			t.Fatal("expected Decrease on empty cart to report no change")
		}
		if !cart.IsEmpty() {
			t.Fatal("expected cart to stay empty")
		}
	})
}

func TestCart_NeverHoldsNonPositiveQuantity(t *testing.T) {
	cart := NewCart()
	ops := []func(){
		func() { cart.Add(lipKit) },
		func() { cart.Decrease(lipKit) },
		func() { cart.Decrease(lipKit) },
		func() { cart.Add(concealer) },
		func() { cart.Increase(concealer) },
		func() { cart.Decrease(concealer) },
		func() { cart.Decrease(concealer) },
		func() { cart.Decrease(concealer) },
	}
	for i, op := range ops {
		op()
		for _, line := range cart.Lines() {
			if line.Quantity <= 0 {
				t.Fatalf("after op %d: line %q has quantity %d", i, line.Product.Name, line.Quantity)
			}
		}
	}
	if !cart.IsEmpty() {
		t.Fatalf("expected empty cart, got %+v", cart.Lines())
	}
}

func TestCart_TotalAndItemCount(t *testing.T) {
	cart := NewCart()
	cart.Add(lipKit)
	cart.Add(lipKit)
	cart.Add(concealer)

	// (2900*2) + (3200*1) = 9000
	if cart.Total() != 9000 {
		t.Fatalf("expected total 9000, got %d", cart.Total())
	}
	if cart.ItemCount() != 3 {
		t.Fatalf("expected item count 3, got %d", cart.ItemCount())
	}
}

func TestCart_LinesReturnsCopy(t *testing.T) {
	cart := NewCart()
	cart.Add(lipKit)
	lines := cart.Lines()
	lines[0].Quantity = 50
	if cart.Quantity(lipKit) != 1 {
		t.Fatalf("expected cart to be unaffected by caller mutation, got %d", cart.Quantity(lipKit))
	}
}

func TestCalculateCartTotal(t *testing.T) {
	tests := []struct {
		name     string
		lines    []CartLine
		expected Amount
	}{
		{"single line", []CartLine{{Product: lipKit, Quantity: 2}}, 5800},
		{"multiple lines", []CartLine{{Product: lipKit, Quantity: 1}, {Product: concealer, Quantity: 3}}, 12500},
		{"zero price contributes nothing", []CartLine{{Product: Product{Name: "x"}, Quantity: 4}}, 0},
		{"empty", []CartLine{}, 0},
		{"nil", nil, 0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := CalculateCartTotal(tt.lines); got != tt.expected {
				t.Errorf("CalculateCartTotal() = %d, want %d", got, tt.expected)
			}
		})
	}
}

func TestWishlist_Toggle(t *testing.T) {
	a := Product{Name: "A"}
	b := Product{Name: "B"}
	w := NewWishlist()

	if !w.Toggle(a) {
		t.Fatal("expected A to be liked")
	}
	if !w.Toggle(b) {
		t.Fatal("expected B to be liked")
	}
	if got := names(w.Items()); len(got) != 2 || got[0] != "A" || got[1] != "B" {
		t.Fatalf("expected [A B], got %v", got)
	}
	if w.Toggle(a) {
		t.Fatal("expected A to be unliked")
	}
	if got := names(w.Items()); len(got) != 1 || got[0] != "B" {
		t.Fatalf("expected [B], got %v", got)
	}
	if w.Contains(a) || !w.Contains(b) {
		t.Fatal("unexpected membership after toggles")
	}
}

func TestWishlist_ToggleTwiceRestores(t *testing.T) {
	for p := range DefaultCatalog().All() {
		w := NewWishlist()
		w.Toggle(p)
		w.Toggle(p)
		if w.Contains(p) || w.Len() != 0 {
			t.Fatalf("expected %q to be absent after two toggles", p.Name)
		}
	}
}
