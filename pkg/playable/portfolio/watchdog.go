package portfolio

// Watch calls try until it reports success, at most limit times
// If try never succeeds, a WatchdogError naming the operation is returned
func Watch(limit int, operation string, try func() bool) error {
	for i := 0; i < limit; i++ {
		if try() {
			return nil
		}
	}

	return WatchdogError{
		Operation: operation,
		Limit:     limit,
	}
}
