// Package store provides the local key-value space that every repository
// persists into.
package store

// Store is a string key-value space. Missing or unreadable keys read as
// absent, and writes rejected by the medium are dropped: callers never see a
// storage error, they just work from whatever data is still readable.
type Store interface {
	Get(key string) (string, bool)
	Set(key, value string)
	Remove(key string)
}
