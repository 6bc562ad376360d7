// Package catalog implements a cache-aside product catalog service.
//
// # Overview
//
// The package exports three cooperating pieces:
//
//   - Product, ProductInput and the error taxonomy (ErrNotFound, ValidationError)
//   - ListingQuery and PagedResult: canonicalized listing parameters and
//     pagination metadata
//   - Service: the orchestrator that keeps a best-effort cache coherent with
//     an authoritative Store
//
// The Service owns no persistent state. The Store is the authoritative
// record; the cache holds disposable copies keyed by entity id or by a
// signature of the canonical listing parameters, and may be dropped at any
// time without data loss.
//
// # Cache-aside contract
//
// Reads consult the cache first and fall through to the Store on a miss,
// populating the cache afterwards. Writes commit to the Store first and only
// then mutate the cache: the item entry for the touched id is populated (on
// create) or removed (on update/delete), and the whole listing namespace is
// cleared because a changed row may appear in any keyword/sort/page
// combination. Cache failures never surface to callers; they degrade to a
// Store round-trip on reads and to a logged no-op on writes.
//
// # Basic Usage
//
//	store := bunstore.New(db)
//	c, _ := cache.New(cache.DefaultConfig())
//
//	svc := catalog.New(store, c,
//		catalog.WithLogger(logger),
//		catalog.WithListingTTL(30*time.Second),
//	)
//
//	p, err := svc.Create(ctx, catalog.ProductInput{Name: "Widget", Price: 9.99})
//	res, err := svc.Query(ctx, catalog.ListingQuery{Sort: catalog.SortPrice, Direction: catalog.Asc})
//
// Expected outcomes are modeled as error values, not exceptional control
// flow: match absence with catalog.IsNotFound and invalid input with
// catalog.IsValidation; anything else is an infrastructure failure from the
// store, propagated unmodified.
package catalog
