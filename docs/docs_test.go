package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestRegisteredDoc(t *testing.T) {
	doc, err := swag.ReadDoc()
	require.NoError(t, err)
	require.True(t, json.Valid([]byte(doc)))

	var parsed struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths map[string]map[string]struct {
			Description string `json:"description"`
		} `json:"paths"`
	}
	require.NoError(t, json.Unmarshal([]byte(doc), &parsed))
	assert.Equal(t, "Sales Dashboard API", parsed.Info.Title)

	tests := []struct {
		path        string
		description string
	}{
		{path: "/api/getdata", description: "Fetches the transaction dataset from the upstream URL and returns it verbatim"},
		{path: "/api/transactions", description: "Filtered and paginated transactions of the loaded dataset"},
		{path: "/api/statistics", description: "Total sales of sold items and sold/not sold counts for the filtered set"},
		{path: "/api/bar-chart", description: "Count of filtered transactions per fixed price range; empty ranges are reported as 0"},
		{path: "/health"},
	}
	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			op, ok := parsed.Paths[tt.path]["get"]
			require.True(t, ok)
			assert.Equal(t, tt.description, op.Description)
		})
	}
}
