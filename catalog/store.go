package catalog

import "context"

// Store is the authoritative persistent record of products. Implementations
// report absence as ErrNotFound; every other error is an infrastructure
// failure and is propagated to callers unmodified.
type Store interface {
	Create(ctx context.Context, p *Product) error
	GetByID(ctx context.Context, id string) (*Product, error)
	Update(ctx context.Context, p *Product) error
	Delete(ctx context.Context, id string) error

	// Query returns one page of products matching q plus the count of all
	// products matching the keyword filter, ignoring pagination. Equal sort
	// values must tie-break on id ascending so repeated queries and
	// consecutive pages see a stable order.
	Query(ctx context.Context, q ListingQuery) ([]*Product, int, error)
}
