package swagger

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDocDescribesEnvelope(t *testing.T) {
	raw, err := swag.ReadDoc()
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Description string `json:"description"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			Description string `json:"description"`
		} `json:"paths"`
		Definitions map[string]struct {
			Description string `json:"description"`
		} `json:"definitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Contains(t, doc.Info.Description, "{success, data, error, meta}")
	assert.Contains(t, doc.Definitions["ResponseEnvelope"].Description, "nested under data")
	assert.Contains(t, doc.Paths["/toggle/{habit_id}"]["post"].Description, "under data")
	assert.Contains(t, doc.Paths["/api/chart-data/{period}"]["get"].Description, "data.data")
}
