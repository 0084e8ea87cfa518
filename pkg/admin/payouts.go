package admin

import (
	"context"
	"strconv"
	"strings"

	"github.com/mericlorris-hash/vanilio/pkg/gqlclient"
	"github.com/mericlorris-hash/vanilio/pkg/query"
)

const payoutFields = `
	id status transactionType issuedAt legacyResourceId
	net { amount currencyCode }
	summary { adjustmentsFee { amount } chargesFee { amount } refundsFee { amount } reservedFundsFee { amount }
	retriedPayoutsFee { amount } adjustmentsGross { amount } advanceFees { amount } advanceGross { amount }
	chargesGross { amount } refundsFeeGross { amount } reservedFundsGross { amount } retriedPayoutsGross { amount } }`

type PayoutService struct {
	client *Client
}

type PayoutListOptions struct {
	Filters query.Filter
	// First is the page size, 10 when zero.
	First int
}

// List fetches all payouts of the shop's payments account and returns them as
// REST-shaped payout reports.
func (s *PayoutService) List(ctx context.Context, opts PayoutListOptions) ([]gqlclient.Object, error) {
	first := opts.First
	if first == 0 {
		first = 10
	}
	spec := query.Spec{
		QueryName:      "GetPayouts",
		ObjectName:     "shopifyPaymentsAccount",
		ConnectionName: "payouts",
		Fields:         payoutFields,
		Filters:        opts.Filters,
		First:          first,
	}
	nodes, _, err := s.client.paginator.FetchAll(ctx, spec)
	if err != nil {
		return nil, err
	}
	out := make([]gqlclient.Object, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, gqlclient.NewObject(payoutToREST(node)))
	}
	return out, nil
}

// summary field renames, GraphQL name to REST name
var payoutSummaryFields = [][2]string{
	{"adjustmentsFee", "adjustments_fee_amount"},
	{"adjustmentsGross", "adjustments_gross_amount"},
	{"chargesFee", "charges_fee_amount"},
	{"chargesGross", "charges_gross_amount"},
	{"refundsFee", "refunds_fee_amount"},
	{"refundsFeeGross", "refunds_gross_amount"},
	{"reservedFundsFee", "reserved_funds_fee_amount"},
	{"reservedFundsGross", "reserved_funds_gross_amount"},
	{"retriedPayoutsFee", "retried_payouts_fee_amount"},
	{"retriedPayoutsGross", "retried_payouts_gross_amount"},
	{"advanceFees", "advance_fees_amount"},
	{"advanceGross", "advance_gross_amount"},
}

// payoutToREST maps one payout node to the REST payout report shape.
func payoutToREST(node map[string]interface{}) map[string]interface{} {
	rest := make(map[string]interface{}, len(node))
	for key, value := range node {
		switch key {
		case "legacyResourceId":
			rest["id"] = legacyID(value)
		case "status":
			if s, ok := value.(string); ok {
				rest["status"] = strings.ToLower(s)
			} else {
				rest["status"] = value
			}
		case "issuedAt":
			if s, ok := value.(string); ok && len(s) >= 10 {
				rest["date"] = s[:10]
			} else {
				rest["date"] = nil
			}
		case "net":
			money, _ := value.(map[string]interface{})
			rest["amount"] = money["amount"]
			rest["currency"] = money["currencyCode"]
		case "summary":
			summary, ok := value.(map[string]interface{})
			if !ok {
				rest[key] = value
				continue
			}
			restSummary := make(map[string]interface{}, len(payoutSummaryFields))
			for _, mapping := range payoutSummaryFields {
				amount := interface{}("0.00")
				if money, ok := summary[mapping[0]].(map[string]interface{}); ok {
					if a, ok := money["amount"]; ok {
						amount = a
					}
				}
				restSummary[mapping[1]] = amount
			}
			rest["summary"] = restSummary
		default:
			rest[key] = value
		}
	}
	return rest
}

// legacyID converts a legacyResourceId value (decoded as string or number)
// to int64, or nil.
func legacyID(value interface{}) interface{} {
	switch v := value.(type) {
	case string:
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return id
		}
	case float64:
		return int64(v)
	}
	return nil
}
