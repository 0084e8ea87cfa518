package admin

import (
	"context"

	"github.com/mericlorris-hash/vanilio/pkg/query"
)

type RefundService struct {
	client *Client
}

// Get fetches one refund by numeric id. fields defaults to
// "id status processedAt".
func (s *RefundService) Get(ctx context.Context, id int64, fields string) (map[string]interface{}, error) {
	if fields == "" {
		fields = "id status processedAt"
	}
	return s.client.objectQuery(ctx, "refund", GID("Refund", id), fields)
}

// Create runs refundCreate. input is a raw GraphQL input object; fields
// selects the payload and defaults to "refund { id status }".
func (s *RefundService) Create(ctx context.Context, input string, fields string) (map[string]interface{}, error) {
	if fields == "" {
		fields = "refund { id status }"
	}
	return s.client.mutate(ctx, "refundCreate",
		[]query.Argument{{Name: "input", Value: query.RawValue(input)}}, fields)
}
