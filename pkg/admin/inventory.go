package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/mericlorris-hash/vanilio/pkg/query"
)

type InventoryService struct {
	client *Client
}

// Item fetches one inventory item by numeric id. fields defaults to
// "id sku tracked".
func (s *InventoryService) Item(ctx context.Context, id int64, fields string) (map[string]interface{}, error) {
	if fields == "" {
		fields = "id sku tracked"
	}
	return s.client.objectQuery(ctx, "inventoryItem", GID("InventoryItem", id), fields)
}

// Levels fetches the available quantities of all inventory items at one
// location, following pagination to the end. first defaults to 20.
func (s *InventoryService) Levels(ctx context.Context, locationID int64, first int) ([]map[string]interface{}, error) {
	if first == 0 {
		first = 20
	}
	fields := fmt.Sprintf(
		`inventoryLevel(locationId: "%s") { quantities(names: ["available"]) { id name quantity } }`,
		GID("Location", locationID),
	)
	spec := query.Spec{
		QueryName:      "InventoryLevels",
		ConnectionName: "inventoryItems",
		Fields:         fields,
		First:          first,
		UseNodes:       true,
	}
	nodes, _, err := s.client.paginator.FetchAll(ctx, spec)
	return nodes, err
}

// QuantityInput sets one inventory item's quantity at one location. Ids are
// plain numeric REST ids.
type QuantityInput struct {
	InventoryItemID int64
	LocationID      int64
	Quantity        int
}

type SetQuantitiesOptions struct {
	Reason        string // default "correction"
	Name          string // default "available"
	IgnoreCompare bool
}

// DefaultSetQuantitiesOptions matches the legacy stock export behavior.
func DefaultSetQuantitiesOptions() SetQuantitiesOptions {
	return SetQuantitiesOptions{
		Reason:        "correction",
		Name:          "available",
		IgnoreCompare: true,
	}
}

// SetQuantities runs the inventorySetQuantities mutation for a batch of
// quantities. When the payload reports user errors the whole batch fails with
// *UserErrorsError; the API does not say which input caused the failure.
func (s *InventoryService) SetQuantities(ctx context.Context, quantities []QuantityInput, opts SetQuantitiesOptions) error {
	if opts.Reason == "" {
		opts.Reason = "correction"
	}
	if opts.Name == "" {
		opts.Name = "available"
	}
	parts := make([]string, 0, len(quantities))
	for _, q := range quantities {
		parts = append(parts, fmt.Sprintf(
			`{inventoryItemId: "%s", locationId: "%s", quantity: %d}`,
			GID("InventoryItem", q.InventoryItemID), GID("Location", q.LocationID), q.Quantity,
		))
	}
	input := fmt.Sprintf(
		`{reason: %q, name: %q, quantities: [%s], ignoreCompareQuantity: %t}`,
		opts.Reason, opts.Name, strings.Join(parts, ", "), opts.IgnoreCompare,
	)
	_, err := s.client.mutate(ctx, "inventorySetQuantities",
		[]query.Argument{{Name: "input", Value: query.RawValue(input)}}, "")
	return err
}
