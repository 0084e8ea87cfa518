package admin

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestInventoryLevels(t *testing.T) {
	exec := &recordingExecer{bodies: []string{`{"data": {"inventoryItems": {
		"nodes": [{"inventoryLevel": {"quantities": [{"id": "q1", "name": "available", "quantity": 3}]}}],
		"pageInfo": {"hasNextPage": false, "endCursor": null}}}}`}}
	client := New(exec)

	levels, err := client.Inventory.Levels(context.Background(), 42, 0)
	require.NoError(t, err)
	require.Len(t, levels, 1)

	require.Len(t, exec.documents, 1)
	assert.Contains(t, exec.documents[0], "query InventoryLevels {inventoryItems(first: 20")
	assert.Contains(t, exec.documents[0], `inventoryLevel(locationId: "gid://shopify/Location/42")`)
	assert.Contains(t, exec.documents[0], `quantities(names: ["available"])`)
}

func TestInventorySetQuantities(t *testing.T) {
	exec := &recordingExecer{bodies: []string{
		`{"data": {"inventorySetQuantities": {"userErrors": []}}}`,
	}}
	client := New(exec)

	err := client.Inventory.SetQuantities(context.Background(), []QuantityInput{
		{InventoryItemID: 1, LocationID: 2, Quantity: 5},
		{InventoryItemID: 3, LocationID: 2, Quantity: 0},
	}, DefaultSetQuantitiesOptions())
	require.NoError(t, err)

	require.Len(t, exec.documents, 1)
	document := exec.documents[0]
	assert.Contains(t, document, "mutation {inventorySetQuantities(input: {")
	assert.Contains(t, document, `reason: "correction"`)
	assert.Contains(t, document, `name: "available"`)
	assert.Contains(t, document, "ignoreCompareQuantity: true")
	assert.Contains(t, document, `{inventoryItemId: "gid://shopify/InventoryItem/1", locationId: "gid://shopify/Location/2", quantity: 5}`)
	assert.Contains(t, document, `{inventoryItemId: "gid://shopify/InventoryItem/3", locationId: "gid://shopify/Location/2", quantity: 0}`)
	assert.Contains(t, document, "userErrors { code field message }")
}

func TestInventorySetQuantitiesUserErrors(t *testing.T) {
	exec := &recordingExecer{bodies: []string{
		`{"data": {"inventorySetQuantities": {"userErrors": [{"code": "INVALID_QUANTITY", "field": ["input"], "message": "quantity out of range"}]}}}`,
	}}
	client := New(exec)

	err := client.Inventory.SetQuantities(context.Background(), []QuantityInput{
		{InventoryItemID: 1, LocationID: 2, Quantity: -5},
	}, DefaultSetQuantitiesOptions())
	var userErr *UserErrorsError
	require.ErrorAs(t, err, &userErr)
	assert.Equal(t, "inventorySetQuantities", userErr.Mutation)
	assert.Contains(t, string(userErr.Errors), "INVALID_QUANTITY")
}

func TestInventoryItemDefaultFields(t *testing.T) {
	exec := &recordingExecer{bodies: []string{
		`{"data": {"inventoryItem": {"id": "gid://shopify/InventoryItem/7", "sku": "SKU-1", "tracked": true}}}`,
	}}
	client := New(exec)

	item, err := client.Inventory.Item(context.Background(), 7, "")
	require.NoError(t, err)
	assert.Equal(t, "SKU-1", item["sku"])
	assert.Contains(t, exec.documents[0], `inventoryItem(id: "gid://shopify/InventoryItem/7") {id sku tracked}`)
}
