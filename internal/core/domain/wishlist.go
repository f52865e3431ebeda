package domain

// Wishlist is a set of products keyed by name, kept in the order they were liked.
type Wishlist struct {
	items []Product
}

func NewWishlist() *Wishlist {
	return &Wishlist{}
}

// Toggle flips membership of p and reports whether it is now liked.
func (w *Wishlist) Toggle(p Product) bool {
	for i, item := range w.items {
		if item.SameAs(p) {
			w.items = append(w.items[:i], w.items[i+1:]...)
			return false
		}
	}
	w.items = append(w.items, p)
	return true
}

func (w *Wishlist) Contains(p Product) bool {
	for _, item := range w.items {
		if item.SameAs(p) {
			return true
		}
	}
	return false
}

func (w *Wishlist) Items() []Product {
	out := make([]Product, len(w.items))
	copy(out, w.items)
	return out
}

func (w *Wishlist) Len() int {
	return len(w.items)
}
