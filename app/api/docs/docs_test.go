package docs

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/swaggo/swag"
)

func TestReadDoc(t *testing.T) {
	raw, err := swag.ReadDoc(SwaggerInfo.InstanceName())
	require.NoError(t, err)

	var doc struct {
		Info struct {
			Title string `json:"title"`
		} `json:"info"`
		Paths               map[string]map[string]json.RawMessage `json:"paths"`
		Definitions         map[string]json.RawMessage            `json:"definitions"`
		SecurityDefinitions map[string]json.RawMessage            `json:"securityDefinitions"`
	}
	require.NoError(t, json.Unmarshal([]byte(raw), &doc))

	assert.Equal(t, "Staking API", doc.Info.Title)
	for path, method := range map[string]string{
		"/stakes/claim":              "post",
		"/stakes/unstake":            "post",
		"/notify/transfer":           "post",
		"/accounts/{account}/stakes": "get",
		"/admin/params":              "post",
		"/admin/pause":               "post",
		"/configs":                   "get",
		"/configs/{symbol}":          "get",
		"/transfers":                 "get",
		"/auth/refresh":              "post",
		"/health":                    "get",
	} {
		assert.Contains(t, doc.Paths[path], method, path)
	}
	assert.Contains(t, doc.Definitions, "staking.Position")
	assert.Contains(t, doc.SecurityDefinitions, "ApiKeyAuth")
}
