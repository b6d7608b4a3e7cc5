package organizer

// SetYearResolverForTests overrides year resolution during tests.
func SetYearResolverForTests(fn func(string) (int, error)) func() {
	previous := resolveYear
	resolveYear = fn
	return func() {
		resolveYear = previous
	}
}
