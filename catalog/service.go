package catalog

import (
	"context"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/goliatone/go-product-catalog/cache"
)

const (
	itemNamespace    = "product"
	listingNamespace = "list"
)

const (
	// DefaultItemTTL bounds staleness of single-item cache entries.
	DefaultItemTTL = 5 * time.Minute

	// DefaultListingTTL is shorter than the item TTL: any single write
	// invalidates the whole listing namespace, so a short TTL bounds the
	// cost of a missed invalidation.
	DefaultListingTTL = time.Minute
)

// Service orchestrates cache-aside reads and write-then-invalidate writes over
// the authoritative Store. It holds no state of its own; any number of
// operations may run concurrently against the same Store and Cache.
type Service struct {
	store      Store
	cache      cache.Cache
	logger     *zap.Logger
	itemTTL    time.Duration
	listingTTL time.Duration
	now        func() time.Time
	newID      func() string
}

// Option configures a Service.
type Option func(*Service)

// WithLogger sets the logger that records swallowed cache failures.
func WithLogger(l *zap.Logger) Option {
	return func(s *Service) { s.logger = l }
}

// WithItemTTL overrides the TTL for single-item cache entries.
func WithItemTTL(ttl time.Duration) Option {
	return func(s *Service) { s.itemTTL = ttl }
}

// WithListingTTL overrides the TTL for cached listing pages.
func WithListingTTL(ttl time.Duration) Option {
	return func(s *Service) { s.listingTTL = ttl }
}

// WithClock overrides the time source used for CreatedAt and UpdatedAt.
func WithClock(now func() time.Time) Option {
	return func(s *Service) { s.now = now }
}

// WithIDGenerator overrides the id generator used by Create.
func WithIDGenerator(gen func() string) Option {
	return func(s *Service) { s.newID = gen }
}

// New creates a Service backed by the given store and cache.
func New(store Store, c cache.Cache, opts ...Option) *Service {
	s := &Service{
		store:      store,
		cache:      c,
		logger:     zap.NewNop(),
		itemTTL:    DefaultItemTTL,
		listingTTL: DefaultListingTTL,
		now:        time.Now,
		newID:      func() string { return uuid.New().String() },
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func itemKey(id string) string {
	return cache.Key(itemNamespace, id)
}

func listingKey(signature string) string {
	return cache.Key(itemNamespace, listingNamespace, signature)
}

// listingPrefix covers every cached listing page. The whole namespace is
// cleared on any write because a new or changed row may appear in any
// keyword/sort/page combination.
func listingPrefix() string {
	return cache.Key(itemNamespace, listingNamespace) + cache.KeySeparator
}

// GetByID returns the product with the given id, serving from the cache when
// possible. An absent id returns ErrNotFound. Negative results are not
// cached, so a concurrent create becomes visible immediately.
func (s *Service) GetByID(ctx context.Context, id string) (*Product, error) {
	key := itemKey(id)
	if p, ok := s.cachedItem(ctx, key); ok {
		return p, nil
	}
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	// Concurrent misses may both populate the same key with the same value;
	// the overwrite is idempotent so no single-flight dedup is needed.
	s.cacheSet(ctx, key, p, s.itemTTL)
	return p, nil
}

// Create validates the input, persists a new product, and only after the
// store commit populates the item cache and clears the listing namespace.
// When the store write fails the cache is left untouched, so it stays
// consistent with the prior persisted state.
func (s *Service) Create(ctx context.Context, in ProductInput) (*Product, error) {
	if err := in.Validate(); err != nil {
		return nil, err
	}
	now := s.now()
	p := &Product{
		ID:        s.newID(),
		Name:      in.Name,
		Price:     in.Price,
		CreatedAt: now,
		UpdatedAt: now,
	}
	if err := s.store.Create(ctx, p); err != nil {
		return nil, err
	}
	s.cacheSet(ctx, itemKey(p.ID), p, s.itemTTL)
	s.cacheRemovePrefix(ctx, listingPrefix())
	return p, nil
}

// Update persists new field values for an existing product. The store is the
// single source of truth for existence: an absent id returns ErrNotFound
// before any cache mutation. After the commit the item entry is removed
// rather than refreshed, so a concurrent writer's update can never be
// shadowed by a value cached here.
func (s *Service) Update(ctx context.Context, id string, in ProductInput) (*Product, error) {
	p, err := s.store.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := in.Validate(); err != nil {
		return nil, err
	}
	p.Name = in.Name
	p.Price = in.Price
	p.UpdatedAt = s.now()
	if err := s.store.Update(ctx, p); err != nil {
		return nil, err
	}
	s.cacheRemove(ctx, itemKey(id))
	s.cacheRemovePrefix(ctx, listingPrefix())
	return p, nil
}

// Delete removes the product with the given id, then drops its cache entry
// and clears the listing namespace. Deleting an absent id returns
// ErrNotFound rather than succeeding silently.
func (s *Service) Delete(ctx context.Context, id string) error {
	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}
	s.cacheRemove(ctx, itemKey(id))
	s.cacheRemovePrefix(ctx, listingPrefix())
	return nil
}

// Query returns one page of products matching the listing parameters.
// Parameters are canonicalized first, so equivalent queries share a cache
// entry. Cache misses scan the store and cache the assembled page under the
// listing TTL.
func (s *Service) Query(ctx context.Context, q ListingQuery) (PagedResult[*Product], error) {
	q = q.Canonicalize()
	key, keyed := s.listingCacheKey(q)
	if keyed {
		if res, ok := s.cachedListing(ctx, key); ok {
			return res, nil
		}
	}
	items, total, err := s.store.Query(ctx, q)
	if err != nil {
		return PagedResult[*Product]{}, err
	}
	res := NewPagedResult(items, total, q.Page, q.PageSize)
	if keyed {
		s.cacheSet(ctx, key, res, s.listingTTL)
	}
	return res, nil
}

func (s *Service) listingCacheKey(q ListingQuery) (string, bool) {
	signature, err := cache.Signature(q)
	if err != nil {
		s.logger.Warn("listing signature failed, skipping cache", zap.Error(err))
		return "", false
	}
	return listingKey(signature), true
}

// cachedItem treats cache errors and wrong-type entries as misses so reads
// always fall through to the store.
func (s *Service) cachedItem(ctx context.Context, key string) (*Product, bool) {
	p, ok, err := cache.GetTyped[*Product](ctx, s.cache, key)
	if err != nil {
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return nil, false
	}
	return p, ok
}

func (s *Service) cachedListing(ctx context.Context, key string) (PagedResult[*Product], bool) {
	res, ok, err := cache.GetTyped[PagedResult[*Product]](ctx, s.cache, key)
	if err != nil {
		s.logger.Warn("cache get failed", zap.String("key", key), zap.Error(err))
		return PagedResult[*Product]{}, false
	}
	return res, ok
}

// cacheSet runs after a successful store round-trip. Failures are logged and
// swallowed: the authoritative data path never depends on cache availability.
func (s *Service) cacheSet(ctx context.Context, key string, value any, ttl time.Duration) {
	if err := s.cache.Set(ctx, key, value, ttl); err != nil {
		s.logger.Warn("cache set failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) cacheRemove(ctx context.Context, key string) {
	if err := s.cache.Remove(ctx, key); err != nil {
		s.logger.Warn("cache remove failed", zap.String("key", key), zap.Error(err))
	}
}

func (s *Service) cacheRemovePrefix(ctx context.Context, prefix string) {
	if err := s.cache.RemoveByPrefix(ctx, prefix); err != nil {
		s.logger.Warn("cache prefix removal failed", zap.String("prefix", prefix), zap.Error(err))
	}
}
