//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// Mutation edits a request body after it has been flattened to JSON keys.
type Mutation func(map[string]any)

// DtoMap flattens a request DTO to its JSON form so tests can break single
// fields without declaring a new struct per case.
func DtoMap(t *testing.T, v any, muts ...Mutation) map[string]any {
	t.Helper()

	b, err := json.Marshal(v)
	require.NoError(t, err)
	var m map[string]any
	require.NoError(t, json.Unmarshal(b, &m))
	for _, mut := range muts {
		mut(m)
	}
	return m
}

// Field overwrites key, or drops it when value is nil.
func Field(key string, value any) Mutation {
	return func(m map[string]any) {
		if value == nil {
			delete(m, key)
			return
		}
		m[key] = value
	}
}
