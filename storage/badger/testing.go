package badger

// NewMemoryCache returns an embedding cache on an in-memory backend.
// Intended for tests and one-shot runs where nothing should touch disk.
func NewMemoryCache() (*EmbeddingCache, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, err
	}

	cache, err := NewEmbeddingCache(backend)
	if err != nil {
		backend.Close()
		return nil, err
	}

	return cache, nil
}
