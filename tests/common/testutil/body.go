//go:build unit || e2e

package testutil

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/require"
)

// DtoMap turns v into its JSON object form so a test can break one field at a time.
func DtoMap(t *testing.T, v any, mutations ...func(map[string]any)) map[string]any {
	t.Helper()

	raw, err := json.Marshal(v)
	require.NoError(t, err)
	body := map[string]any{}
	require.NoError(t, json.Unmarshal(raw, &body))

	for _, mutate := range mutations {
		mutate(body)
	}
	return body
}

// Field sets key to value. A nil value drops the key, which trips "required" bindings.
func Field(key string, value any) func(map[string]any) {
	return func(body map[string]any) {
		if value == nil {
			delete(body, key)
			return
		}
		body[key] = value
	}
}
