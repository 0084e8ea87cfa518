package admin

import (
	"context"
	"fmt"
	"strings"

	"github.com/tidwall/gjson"

	"github.com/mericlorris-hash/vanilio/pkg/query"
)

// orderAPIName marks records that took the GraphQL bridge path, so downstream
// consumers can tell them apart from records imported over the retired REST
// endpoints.
const orderAPIName = "fetched_via_graphql"

type OrderService struct {
	client *Client
}

// OrderListFilters is the search window for listing orders.
type OrderListFilters struct {
	FulfillmentStatus string
	UpdatedAtMin      string
	UpdatedAtMax      string
	// Limit is the page size per field-group query, 100 when zero.
	Limit int
}

func (f OrderListFilters) filter() query.Filter {
	return query.FilterClauses{
		"fulfillment_status:" + f.FulfillmentStatus,
		fmt.Sprintf("updated_at:>='%s'", f.UpdatedAtMin),
		fmt.Sprintf("updated_at:<='%s'", f.UpdatedAtMax),
	}
}

// Count returns the number of orders matching the filters.
func (s *OrderService) Count(ctx context.Context, filters OrderListFilters) (int, error) {
	document, err := query.BuildCount("ordersCount", filters.filter())
	if err != nil {
		return 0, err
	}
	body, err := s.client.gql.Execute(ctx, document, nil)
	if err != nil {
		return 0, err
	}
	return int(gjson.GetBytes(body, "data.ordersCount.count").Int()), nil
}

// Get fetches single orders by numeric id, each with the full selection, and
// returns them REST-shaped.
func (s *OrderService) Get(ctx context.Context, ids []int64) ([]map[string]interface{}, error) {
	groups := OrderFieldGroups()
	fields := make([]string, 0, len(groups))
	for _, group := range groups {
		fields = append(fields, group.Fields)
	}
	allFields := strings.Join(fields, "\n")

	out := make([]map[string]interface{}, 0, len(ids))
	for _, id := range ids {
		node, err := s.client.objectQuery(ctx, "order", GID("Order", id), allFields)
		if err != nil {
			return nil, err
		}
		rest, ok := s.client.normalizer.NormalizeEntity(node)
		if !ok {
			continue
		}
		out = append(out, finishOrder(rest))
	}
	return out, nil
}

// List fetches all orders in the filter window, one paginated query per field
// group, merged by order id and normalized to REST shape.
func (s *OrderService) List(ctx context.Context, filters OrderListFilters) ([]map[string]interface{}, error) {
	limit := filters.Limit
	if limit == 0 {
		limit = 100
	}
	spec := query.Spec{
		ConnectionName: "orders",
		Filters:        filters.filter(),
		First:          limit,
		ExtraArgs:      "sortKey: UPDATED_AT",
		UseNodes:       true,
	}
	orders, err := s.client.merger.FetchMerged(ctx, spec, OrderFieldGroups())
	if err != nil {
		return nil, err
	}
	for i, order := range orders {
		orders[i] = finishOrder(order)
	}
	return orders, nil
}

// finishOrder applies the REST response conventions the normalizer does not
// cover: the transactions list is exposed under the singular key and the
// record carries the bridge marker.
func finishOrder(order map[string]interface{}) map[string]interface{} {
	if transactions, ok := order["transactions"]; ok {
		order["transaction"] = transactions
		delete(order, "transactions")
	}
	order["order_api_name"] = orderAPIName
	return order
}

// Risk is the fraud assessment summary of one order.
type Risk struct {
	Recommendation string
	Level          string
}

// OrderRisk extracts the fraud assessment from a normalized order. ok is
// false when the order carries no assessment or the recommendation is NONE.
func OrderRisk(order map[string]interface{}) (Risk, bool) {
	risk, okRisk := order["risk"].(map[string]interface{})
	if !okRisk {
		return Risk{}, false
	}
	recommendation, _ := risk["recommendation"].(string)
	if recommendation == "" || strings.EqualFold(recommendation, "NONE") {
		return Risk{}, false
	}
	var level string
	if assessments, ok := risk["assessments"].([]interface{}); ok {
		for _, assessment := range assessments {
			m, ok := assessment.(map[string]interface{})
			if !ok {
				continue
			}
			if l, _ := m["risk_level"].(string); l != "" {
				level = l
				break
			}
		}
	}
	return Risk{
		Recommendation: strings.ToLower(recommendation),
		Level:          strings.ToLower(level),
	}, true
}
