package factory

import (
	fab "github.com/Goldziher/fabricator"
)

// NewUserRequest fabricates a request struct, forcing a policy-compliant
// password and a valid role unless the caller overrides them.
func NewUserRequest[T any](customData ...map[string]any) T {
	instance := fab.New(*new(T))

	// fabricator's Build only reads the first overrides map, so the defaults
	// and caller data must be merged into a single map before the call.
	merged := map[string]any{
		"Password": "Str0ng!Pass",
		"Role":     "Employee",
	}

	for _, data := range customData {
		for key, value := range data {
			merged[key] = value
		}
	}

	return instance.Build(merged)
}
