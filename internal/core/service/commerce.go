package service

import (
	"iter"

	"github.com/rafaelleal24/glowin/internal/core/domain"
)

type ChangeKind string

const (
	ChangeWishlist ChangeKind = "wishlist"
	ChangeCart     ChangeKind = "cart"
)

type ChangeAction string

const (
	ActionLiked     ChangeAction = "liked"
	ActionUnliked   ChangeAction = "unliked"
	ActionAdded     ChangeAction = "added"
	ActionIncreased ChangeAction = "increased"
	ActionDecreased ChangeAction = "decreased"
	ActionRemoved   ChangeAction = "removed"
)

// Change is delivered to observers after every effective mutation.
type Change struct {
	Kind    ChangeKind
	Action  ChangeAction
	Product domain.Product
	Version uint64
}

type Observer func(Change)

// Snapshot is an immutable view of the state at one version.
type Snapshot struct {
	Version         uint64
	Lines           []domain.CartLine
	Wishlist        []domain.Product
	ItemCount       int
	Total           domain.Amount
	DiscountRate    domain.DiscountRate
	DiscountedTotal domain.Amount
}

func (s Snapshot) IsWishlisted(name string) bool {
	for _, p := range s.Wishlist {
		if p.Name == name {
			return true
		}
	}
	return false
}

type subscription struct {
	id       int
	observer Observer
}

// CommerceState is the single source of truth for one shopper's wishlist and cart.
// It is not safe for concurrent use; callers serialize access.
type CommerceState struct {
	catalog      *domain.Catalog
	cart         *domain.Cart
	wishlist     *domain.Wishlist
	discountRate domain.DiscountRate
	version      uint64
	observers    []subscription
	nextID       int
}

func NewCommerceState(catalog *domain.Catalog, discountRate domain.DiscountRate) *CommerceState {
	return &CommerceState{
		catalog:      catalog,
		cart:         domain.NewCart(),
		wishlist:     domain.NewWishlist(),
		discountRate: discountRate,
	}
}

// Subscribe registers observer and returns a function that removes it.
func (s *CommerceState) Subscribe(observer Observer) func() {
	id := s.nextID
	s.nextID++
	s.observers = append(s.observers, subscription{id: id, observer: observer})
	return func() {
		for i, sub := range s.observers {
			if sub.id == id {
				s.observers = append(s.observers[:i], s.observers[i+1:]...)
				return
			}
		}
	}
}

func (s *CommerceState) notify(kind ChangeKind, action ChangeAction, p domain.Product) {
	s.version++
	change := Change{Kind: kind, Action: action, Product: p, Version: s.version}
	for _, sub := range append([]subscription(nil), s.observers...) {
		sub.observer(change)
	}
}

// ToggleWishlist flips the wishlist membership of p and reports whether it is now liked.
func (s *CommerceState) ToggleWishlist(p domain.Product) bool {
	liked := s.wishlist.Toggle(p)
	action := ActionUnliked
	if liked {
		action = ActionLiked
	}
	s.notify(ChangeWishlist, action, p)
	return liked
}

func (s *CommerceState) AddToCart(p domain.Product) {
	s.cart.Add(p)
	s.notify(ChangeCart, ActionAdded, p)
}

// IncreaseQuantity is a silent no-op when p is not in the cart.
func (s *CommerceState) IncreaseQuantity(p domain.Product) {
	if s.cart.Increase(p) {
		s.notify(ChangeCart, ActionIncreased, p)
	}
}

// DecreaseQuantity removes the line once its quantity would drop to zero.
// It is a silent no-op when p is not in the cart.
func (s *CommerceState) DecreaseQuantity(p domain.Product) {
	before := s.cart.Quantity(p)
	if !s.cart.Decrease(p) {
		return
	}
	action := ActionDecreased
	if before == 1 {
		action = ActionRemoved
	}
	s.notify(ChangeCart, action, p)
}

func (s *CommerceState) CartTotal() domain.Amount {
	return s.cart.Total()
}

func (s *CommerceState) CartItemCount() int {
	return s.cart.ItemCount()
}

func (s *CommerceState) DiscountedTotal(rate domain.DiscountRate) domain.Amount {
	return s.cart.Total().Discount(rate)
}

func (s *CommerceState) FilterCatalog(query string) iter.Seq[domain.Product] {
	return s.catalog.Filter(query)
}

func (s *CommerceState) Catalog() iter.Seq[domain.Product] {
	return s.catalog.All()
}

func (s *CommerceState) Cart() []domain.CartLine {
	return s.cart.Lines()
}

func (s *CommerceState) Wishlist() []domain.Product {
	return s.wishlist.Items()
}

func (s *CommerceState) IsWishlisted(p domain.Product) bool {
	return s.wishlist.Contains(p)
}

func (s *CommerceState) Version() uint64 {
	return s.version
}

func (s *CommerceState) Snapshot() Snapshot {
	return Snapshot{
		Version:         s.version,
		Lines:           s.cart.Lines(),
		Wishlist:        s.wishlist.Items(),
		ItemCount:       s.cart.ItemCount(),
		Total:           s.cart.Total(),
		DiscountRate:    s.discountRate,
		DiscountedTotal: s.DiscountedTotal(s.discountRate),
	}
}

// restore rebuilds lines and likes without notifying observers.
func (s *CommerceState) restore(version uint64, lines []domain.CartLine, liked []domain.Product) {
	for _, line := range lines {
		if line.Quantity < 1 {
			continue
		}
		s.cart.Add(line.Product)
		for i := 1; i < line.Quantity; i++ {
			s.cart.Increase(line.Product)
		}
	}
	for _, p := range liked {
		if !s.wishlist.Contains(p) {
			s.wishlist.Toggle(p)
		}
	}
	s.version = version
}
