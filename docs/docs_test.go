package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSwaggerDocument(t *testing.T) {
	var doc struct {
		Paths       map[string]map[string]json.RawMessage `json:"paths"`
		Definitions map[string]json.RawMessage            `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(SwaggerInfo.ReadDoc()), &doc))

	for _, path := range []string{
		"/rates", "/rates/{from}/{to}", "/rates/estimate", "/rates/reset",
		"/tokens/{token}/pairs", "/tokens/{token}/demand",
		"/swaps/validate", "/swaps", "/contributions",
	} {
		assert.Contains(t, doc.Paths, path)
	}
	assert.Contains(t, doc.Definitions, "http.ErrorResponse")
	assert.Contains(t, doc.Definitions, "http.StatusResponse")
}
