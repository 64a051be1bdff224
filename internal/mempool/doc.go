// Package mempool provides a bump allocator with bulk-free semantics for
// fixed-lifetime entry storage.
//
// A Pool allocates entries in fixed-size chunks and addresses them by
// index rather than pointer. Existing entries never move when the pool
// grows, so index chains built over a pool stay valid, and the whole
// pool is released by a single Free call.
//
// A Pool is not safe for concurrent use. Each histogram build owns its
// own pool and the pool must outlive every operation on the hash table
// built over it.
package mempool
