package admin

import (
	"context"

	"github.com/mericlorris-hash/vanilio/pkg/query"
)

const defaultDraftOrderFields = "id name email totalPrice"

type DraftOrderService struct {
	client *Client
}

func (s *DraftOrderService) Get(ctx context.Context, id int64, fields string) (map[string]interface{}, error) {
	if fields == "" {
		fields = defaultDraftOrderFields
	}
	return s.client.objectQuery(ctx, "draftOrder", GID("DraftOrder", id), fields)
}

// List fetches one page of draft orders. first defaults to 10.
func (s *DraftOrderService) List(ctx context.Context, first int, fields string) ([]map[string]interface{}, error) {
	if first == 0 {
		first = 10
	}
	if fields == "" {
		fields = defaultDraftOrderFields
	}
	spec := query.Spec{
		ConnectionName: "draftOrders",
		Fields:         fields,
		First:          first,
	}
	nodes, _, err := s.client.paginator.FetchPage(ctx, spec)
	return nodes, err
}

// Create runs draftOrderCreate with a raw GraphQL input object.
func (s *DraftOrderService) Create(ctx context.Context, input string, fields string) (map[string]interface{}, error) {
	if fields == "" {
		fields = "draftOrder { id name }"
	}
	return s.client.mutate(ctx, "draftOrderCreate",
		[]query.Argument{{Name: "input", Value: query.RawValue(input)}}, fields)
}

func (s *DraftOrderService) Complete(ctx context.Context, id int64, fields string) (map[string]interface{}, error) {
	if fields == "" {
		fields = "draftOrder { id completedAt }"
	}
	return s.client.mutate(ctx, "draftOrderComplete",
		[]query.Argument{{Name: "id", Value: query.StringValue(GID("DraftOrder", id))}}, fields)
}

func (s *DraftOrderService) Delete(ctx context.Context, id int64) (map[string]interface{}, error) {
	return s.client.mutate(ctx, "draftOrderDelete",
		[]query.Argument{{Name: "input", Value: query.RawValue(`{id: "` + GID("DraftOrder", id) + `"}`)}},
		"deletedId")
}
