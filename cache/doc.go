// Package cache provides the caching contract and key utilities for the
// product catalog.
//
// # Overview
//
// This package exports the Cache interface consumed by the catalog service
// plus the helpers used to build its keys:
//
//   - Cache: Get/Set/Remove/RemoveByPrefix with a per-entry TTL
//   - GetTyped: a type-safe wrapper that treats wrong-type entries as misses
//   - Key and Signature: stable cache key construction
//
// The default implementation (constructed via New) is an in-memory sturdyc
// adapter; alternative backends only need to satisfy the Cache interface.
//
// # Key construction
//
// Keys are built from segments joined with KeySeparator, so related entries
// share a removable prefix:
//
//	cache.Key("product", id)                  // single item
//	cache.Key("product", "list", signature)   // one listing page
//
// Signature msgpack-encodes a value and hashes it with xxhash64, producing a
// short hex digest that is stable across runs for equal values. The catalog
// derives listing keys from the signature of the canonical query, so
// equivalent listings collapse onto one entry.
//
// # TTL semantics
//
// Set accepts a TTL per entry; a non-positive TTL falls back to the
// configured default. Entries expire on their own even when an explicit
// invalidation is missed, which bounds staleness to the TTL window.
package cache
