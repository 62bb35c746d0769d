// Package snapshot provides a TTL cache for whole-table snapshots.
//
// Sorting and searching work on the full product or supplier list, so handlers
// load the list once and reuse it for the cache TTL instead of querying the
// database on every request.
//
// # Stampede protection
//
// Loads go through singleflight: when an entry is missing or expired, concurrent
// callers wait on a single load instead of each hitting the database.
//
// # Invalidation
//
// Writers call Invalidate after a mutation. A load that was already running
// when the key was invalidated still returns its result to its callers but is
// not stored.
//
// # Usage
//
//	store := snapshot.New(30 * time.Second)
//	products, err := snapshot.GetOrLoad(ctx, store, "products", repo.List)
//	store.Invalidate("products")
package snapshot
