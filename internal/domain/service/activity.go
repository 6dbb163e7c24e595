package service

// ActivityTracker counts outstanding store calls.
type ActivityTracker interface {
	// Begin marks the start of a call against store and returns the function that ends it.
	Begin(store, operation string) func(err error)
}
