package circuit

// CacheLen exposes the number of cached lifted operators to tests.
func (r *Runner) CacheLen() int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return len(r.cache)
}
