package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDraftOrderComplete(t *testing.T) {
	exec := &recordingExecer{bodies: []string{
		`{"data": {"draftOrderComplete": {"draftOrder": {"id": "gid://shopify/DraftOrder/4", "completedAt": "2025-01-02T00:00:00Z"}, "userErrors": []}}}`,
	}}
	client := New(exec)

	payload, err := client.DraftOrders.Complete(context.Background(), 4, "")
	require.NoError(t, err)
	draftOrder := payload["draftOrder"].(map[string]interface{})
	assert.Equal(t, "2025-01-02T00:00:00Z", draftOrder["completedAt"])

	assert.Contains(t, exec.documents[0], `draftOrderComplete(id: "gid://shopify/DraftOrder/4")`)
}

func TestDraftOrderDelete(t *testing.T) {
	exec := &recordingExecer{bodies: []string{
		`{"data": {"draftOrderDelete": {"deletedId": "gid://shopify/DraftOrder/4", "userErrors": []}}}`,
	}}
	client := New(exec)

	payload, err := client.DraftOrders.Delete(context.Background(), 4)
	require.NoError(t, err)
	assert.Equal(t, "gid://shopify/DraftOrder/4", payload["deletedId"])

	assert.Contains(t, exec.documents[0], `draftOrderDelete(input: {id: "gid://shopify/DraftOrder/4"})`)
}

func TestDraftOrderList(t *testing.T) {
	exec := &recordingExecer{bodies: []string{`{"data": {"draftOrders": {
		"edges": [{"node": {"id": "gid://shopify/DraftOrder/4", "name": "#D1"}}],
		"pageInfo": {"hasNextPage": true, "endCursor": "cursor-1"}}}}`}}
	client := New(exec)

	drafts, err := client.DraftOrders.List(context.Background(), 0, "")
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "#D1", drafts[0]["name"])

	// a single page is fetched even though more pages exist
	require.Len(t, exec.documents, 1)
	assert.Contains(t, exec.documents[0], "draftOrders(first: 10")
}
