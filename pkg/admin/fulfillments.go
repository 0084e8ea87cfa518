package admin

import (
	"context"
)

type FulfillmentService struct {
	client *Client
}

// Get fetches one fulfillment by numeric id. fields defaults to
// "id status trackingInfo { company number url }".
func (s *FulfillmentService) Get(ctx context.Context, id int64, fields string) (map[string]interface{}, error) {
	if fields == "" {
		fields = "id status trackingInfo { company number url }"
	}
	return s.client.objectQuery(ctx, "fulfillment", GID("Fulfillment", id), fields)
}
