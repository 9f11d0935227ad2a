package chip

// NewPool returns the full, unshuffled chip universe: CopiesPerKind of each kind
func NewPool() []*Chip {
	pool := make([]*Chip, 0, UniverseSize)
	for _, kind := range Kinds {
		for i := 0; i < CopiesPerKind; i++ {
			pool = append(pool, mustNew(kind))
		}
	}

	return pool
}
