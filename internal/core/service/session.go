package service

import (
	"context"
	"fmt"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rafaelleal24/glowin/internal/core/domain"
	"github.com/rafaelleal24/glowin/internal/core/logger"
	"github.com/rafaelleal24/glowin/internal/core/port"
	"github.com/rafaelleal24/glowin/internal/core/serviceerrors"
)

type SessionRecordLine struct {
	Product  string `json:"product"`
	Quantity int    `json:"quantity"`
}

// SessionRecord is the cached form of a session. Products are stored by name and resolved
// against the catalog on restore.
type SessionRecord struct {
	ID        domain.ID           `json:"id"`
	Version   uint64              `json:"version"`
	Cart      []SessionRecordLine `json:"cart"`
	Wishlist  []string            `json:"wishlist"`
	UpdatedAt time.Time           `json:"updated_at"`
}

type session struct {
	mu       sync.Mutex
	id       domain.ID
	state    *CommerceState
	pending  []Change
	lastUsed time.Time
	// refreshedAt is when the cached record's ttl was last reset. Guarded by mu.
	refreshedAt time.Time
}

type SessionService struct {
	catalog    *domain.Catalog
	membership *MembershipService
	cache      port.CachePort[SessionRecord]
	ttl        time.Duration
	now        func() time.Time

	mu       sync.Mutex
	sessions map[domain.ID]*session
}

func NewSessionService(
	catalog *domain.Catalog,
	membership *MembershipService,
	cache port.CachePort[SessionRecord],
	ttl time.Duration,
) *SessionService {
	return &SessionService{
		catalog:    catalog,
		membership: membership,
		cache:      cache,
		ttl:        ttl,
		now:        time.Now,
		sessions:   make(map[domain.ID]*session),
	}
}

func (s *SessionService) getCacheKey(id domain.ID) string {
	return fmt.Sprintf("session:%s", id)
}

func (s *SessionService) newSession(id domain.ID) *session {
	sess := &session{
		id:       id,
		state:    NewCommerceState(s.catalog, s.membership.DiscountRate()),
		lastUsed: time.Now(),
	}
	sess.state.Subscribe(func(c Change) {
		sess.pending = append(sess.pending, c)
	})
	return sess
}

func (s *SessionService) Create(ctx context.Context) (domain.ID, Snapshot) {
	id := domain.ID(uuid.NewString())
	sess := s.newSession(id)

	s.mu.Lock()
	s.evictIdle(time.Now())
	s.sessions[id] = sess
	s.mu.Unlock()

	s.persist(ctx, sess)

	logger.Info(ctx, "Session created", map[string]any{"session_id": id})
	return id, sess.state.Snapshot()
}

// evictIdle drops sessions unused for longer than the ttl. Callers hold s.mu.
func (s *SessionService) evictIdle(now time.Time) {
	for id, sess := range s.sessions {
		if now.Sub(sess.lastUsed) > s.ttl {
			delete(s.sessions, id)
		}
	}
}

func (s *SessionService) lookup(ctx context.Context, id domain.ID) (*session, error) {
	s.mu.Lock()
	if sess, ok := s.sessions[id]; ok {
		sess.lastUsed = time.Now()
		s.mu.Unlock()
		return sess, nil
	}
	s.mu.Unlock()

	restored, err := s.restore(ctx, id)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if sess, ok := s.sessions[id]; ok {
		sess.lastUsed = time.Now()
		return sess, nil
	}
	s.sessions[id] = restored
	return restored, nil
}

func (s *SessionService) restore(ctx context.Context, id domain.ID) (*session, error) {
	record, err := s.cache.Get(ctx, s.getCacheKey(id))
	if err != nil {
		logger.Error(ctx, "cache: get session failed", err, map[string]any{
			"session_id": id,
		})
	}
	if record == nil {
		return nil, serviceerrors.NewNotFoundError("session not found")
	}

	lines := make([]domain.CartLine, 0, len(record.Cart))
	for _, line := range record.Cart {
		p, ok := s.catalog.Lookup(line.Product)
		if !ok {
			continue
		}
		lines = append(lines, domain.CartLine{Product: p, Quantity: line.Quantity})
	}
	liked := make([]domain.Product, 0, len(record.Wishlist))
	for _, name := range record.Wishlist {
		if p, ok := s.catalog.Lookup(name); ok {
			liked = append(liked, p)
		}
	}

	sess := s.newSession(id)
	sess.state.restore(record.Version, lines, liked)

	logger.Info(ctx, "Session restored from cache", map[string]any{
		"session_id": id,
		"version":    record.Version,
	})
	return sess, nil
}

func (s *SessionService) persist(ctx context.Context, sess *session) {
	record := &SessionRecord{
		ID:        sess.id,
		Version:   sess.state.Version(),
		UpdatedAt: time.Now(),
	}
	for _, line := range sess.state.Cart() {
		record.Cart = append(record.Cart, SessionRecordLine{Product: line.Product.Name, Quantity: line.Quantity})
	}
	for _, p := range sess.state.Wishlist() {
		record.Wishlist = append(record.Wishlist, p.Name)
	}

	if err := s.cache.Set(ctx, s.getCacheKey(sess.id), record, s.ttl); err != nil {
		logger.Error(ctx, "cache: set session failed", err, map[string]any{
			"session_id": sess.id,
		})
		return
	}
	sess.refreshedAt = s.now()
}

// keepAlive extends the cached record's ttl for sessions that are only being read.
// The ttl is reset at most once per half ttl; a record that already expired is rewritten.
// Callers hold sess.mu.
func (s *SessionService) keepAlive(ctx context.Context, sess *session) {
	now := s.now()
	if now.Sub(sess.refreshedAt) < s.ttl/2 {
		return
	}

	ok, err := s.cache.Expire(ctx, s.getCacheKey(sess.id), s.ttl)
	if err != nil {
		logger.Warn(ctx, "cache: refresh session ttl failed", map[string]any{
			"session_id": sess.id,
			"error":      err.Error(),
		})
		return
	}
	if !ok {
		s.persist(ctx, sess)
		return
	}
	sess.refreshedAt = now
}

func (s *SessionService) product(name string) (domain.Product, error) {
	p, ok := s.catalog.Lookup(name)
	if !ok {
		return domain.Product{}, serviceerrors.NewNotFoundError("product not found")
	}
	return p, nil
}

func (s *SessionService) mutate(ctx context.Context, id domain.ID, productName string, fn func(*CommerceState, domain.Product)) (Snapshot, error) {
	p, err := s.product(productName)
	if err != nil {
		return Snapshot{}, err
	}
	sess, err := s.lookup(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}

	sess.mu.Lock()
	defer sess.mu.Unlock()

	fn(sess.state, p)
	changes := sess.pending
	sess.pending = nil

	for _, c := range changes {
		logger.Info(ctx, "Session updated", map[string]any{
			"session_id": id,
			"kind":       c.Kind,
			"action":     c.Action,
			"product":    c.Product.Name,
			"version":    c.Version,
		})
	}
	if len(changes) > 0 {
		s.persist(ctx, sess)
	}
	return sess.state.Snapshot(), nil
}

func (s *SessionService) Snapshot(ctx context.Context, id domain.ID) (Snapshot, error) {
	sess, err := s.lookup(ctx, id)
	if err != nil {
		return Snapshot{}, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.keepAlive(ctx, sess)
	return sess.state.Snapshot(), nil
}

// ToggleWishlist reports whether the product is liked after the toggle.
func (s *SessionService) ToggleWishlist(ctx context.Context, id domain.ID, productName string) (Snapshot, bool, error) {
	var liked bool
	snap, err := s.mutate(ctx, id, productName, func(state *CommerceState, p domain.Product) {
		liked = state.ToggleWishlist(p)
	})
	return snap, liked, err
}

func (s *SessionService) AddToCart(ctx context.Context, id domain.ID, productName string) (Snapshot, error) {
	return s.mutate(ctx, id, productName, (*CommerceState).AddToCart)
}

func (s *SessionService) IncreaseQuantity(ctx context.Context, id domain.ID, productName string) (Snapshot, error) {
	return s.mutate(ctx, id, productName, (*CommerceState).IncreaseQuantity)
}

func (s *SessionService) DecreaseQuantity(ctx context.Context, id domain.ID, productName string) (Snapshot, error) {
	return s.mutate(ctx, id, productName, (*CommerceState).DecreaseQuantity)
}

func (s *SessionService) Search(ctx context.Context, id domain.ID, query string) ([]domain.Product, error) {
	sess, err := s.lookup(ctx, id)
	if err != nil {
		return nil, err
	}
	sess.mu.Lock()
	defer sess.mu.Unlock()
	s.keepAlive(ctx, sess)
	return slices.Collect(sess.state.FilterCatalog(query)), nil
}
