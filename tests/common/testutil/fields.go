//go:build unit || e2e

package testutil

// a helper function for dynamically modifying map fields in tests
func Field(key string, value any) func(m map[string]any) {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
		} else {
			m[key] = value
		}
	}
}

// ToMap applies mutations to a base map, copying it first.
func ToMap(base map[string]any, mutations ...func(map[string]any)) map[string]any {
	m := make(map[string]any, len(base))
	for k, v := range base {
		m[k] = v
	}
	for _, mutate := range mutations {
		mutate(m)
	}
	return m
}
