package connection

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mericlorris-hash/vanilio/pkg/gqlclient"
)

func TestParsePageEdges(t *testing.T) {
	body := []byte(`{
		"data": {
			"orders": {
				"edges": [
					{"node": {"id": "gid://shopify/Order/1", "name": "#1001"}},
					{"node": {"id": "gid://shopify/Order/2", "name": "#1002"}}
				],
				"pageInfo": {"endCursor": "cursor-2", "hasNextPage": true}
			}
		}
	}`)
	page, err := ParsePage(body, "", "orders", false)
	require.NoError(t, err)
	assert.True(t, page.HasNextPage)
	assert.Equal(t, "cursor-2", page.EndCursor)
	require.Len(t, page.Items, 2)
	assert.Equal(t, "#1001", page.Items[0]["name"])
	assert.Equal(t, "#1002", page.Items[1]["name"])
}

func TestParsePageNodes(t *testing.T) {
	body := []byte(`{
		"data": {
			"shopifyPaymentsAccount": {
				"payouts": {
					"nodes": [{"legacyResourceId": "9"}],
					"pageInfo": {"endCursor": null, "hasNextPage": false}
				}
			}
		}
	}`)
	page, err := ParsePage(body, "shopifyPaymentsAccount", "payouts", true)
	require.NoError(t, err)
	assert.False(t, page.HasNextPage)
	assert.Equal(t, "", page.EndCursor)
	require.Len(t, page.Items, 1)
	assert.Equal(t, "9", page.Items[0]["legacyResourceId"])
}

func TestParsePageErrorsBesideData(t *testing.T) {
	body := []byte(`{
		"data": {"orders": null},
		"errors": [{"message": "field cost exceeded", "extensions": {"code": "MAX_COST_EXCEEDED"}}]
	}`)
	_, err := ParsePage(body, "", "orders", false)
	var gqlErr *gqlclient.GraphQLError
	require.ErrorAs(t, err, &gqlErr)
	assert.Equal(t, gqlclient.ExtensionCodeMaxCostExceeded, gqlErr.ExtensionCode())
}

func TestParsePageMissingData(t *testing.T) {
	for name, body := range map[string]string{
		"empty object": `{}`,
		"null data":    `{"data": null}`,
	} {
		t.Run(name, func(t *testing.T) {
			_, err := ParsePage([]byte(body), "", "orders", false)
			var invalidErr *gqlclient.InvalidResponseError
			require.ErrorAs(t, err, &invalidErr)
		})
	}
}

func TestParsePageMissingNesting(t *testing.T) {
	page, err := ParsePage([]byte(`{"data": {"shop": {}}}`), "", "orders", false)
	require.NoError(t, err)
	assert.Empty(t, page.Items)
	assert.False(t, page.HasNextPage)
	assert.Equal(t, "", page.EndCursor)
}

func TestParsePageMalformedNode(t *testing.T) {
	body := []byte(`{
		"data": {
			"orders": {
				"edges": [{"node": null}, {}],
				"pageInfo": {"endCursor": "c", "hasNextPage": false}
			}
		}
	}`)
	page, err := ParsePage(body, "", "orders", false)
	require.NoError(t, err)
	require.Len(t, page.Items, 2)
	assert.Empty(t, page.Items[0])
	assert.Empty(t, page.Items[1])
}
