package store

// MemoryStore is a map-backed Store for tests and ephemeral sessions.
type MemoryStore struct {
	data map[string]string

	// FailWrites makes Set a no-op, simulating a medium that rejects
	// writes (quota exceeded in the original browser storage).
	FailWrites bool
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{data: make(map[string]string)}
}

func (s *MemoryStore) Get(key string) (string, bool) {
	v, ok := s.data[key]
	return v, ok
}

func (s *MemoryStore) Set(key, value string) {
	if s.FailWrites {
		return
	}
	s.data[key] = value
}

func (s *MemoryStore) Remove(key string) {
	delete(s.data, key)
}
