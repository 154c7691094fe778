package graft

// stopOnFirstError applies fn to every item in order and returns all
// results, or the first error. Items after a failing one are not visited.
//
// Used for fields and methods, where any failure is fatal.
func stopOnFirstError[T, R any](items []T, fn func(T) (R, error)) ([]R, error) {
	out := make([]R, 0, len(items))

	for _, item := range items {
		r, err := fn(item)
		if err != nil {
			return nil, err
		}

		out = append(out, r)
	}

	return out, nil
}

// collectOrRecover applies fn to every item. When all succeed it returns the
// results; when any fails it returns fallback and every error, leaving the
// caller to carry on.
//
// Used for interfaces only: one conflicting interface drops the whole batch.
func collectOrRecover[T, R any](items []T, fn func(T) (R, error), fallback []R) ([]R, []error) {
	out := make([]R, 0, len(items))

	var errs []error

	for _, item := range items {
		r, err := fn(item)
		if err != nil {
			errs = append(errs, err)
			continue
		}

		out = append(out, r)
	}

	if len(errs) > 0 {
		return fallback, errs
	}

	return out, nil
}
