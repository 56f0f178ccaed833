// Package cache provides a bounded in-memory key/value cache combining
// LRU capacity eviction with per-entry time-to-live expiry.
//
// The two policies are independent layers: capacity is enforced in pure
// recency order on every write, while TTL expiry is checked lazily on read
// (or proactively via Prune). Callers that care about memory held by
// expired entries should schedule Prune periodically.
package cache
