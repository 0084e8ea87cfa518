package admin

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/mericlorris-hash/vanilio/pkg/gqlclient"
	"github.com/mericlorris-hash/vanilio/pkg/normalize"
	"github.com/mericlorris-hash/vanilio/pkg/query"
)

const balanceTransactionFields = `
	id adjustmentReason fee { amount currencyCode } net { amount currencyCode }
	adjustmentsOrders { amount { amount currencyCode } fees { amount currencyCode } link name orderTransactionId net { amount currencyCode } }
	amount { amount currencyCode } associatedOrder { id name } associatedPayout { id status }
	sourceId sourceOrderTransactionId sourceType test transactionDate type`

// restTransactionTypes maps each REST transaction type to the GraphQL type
// vocabulary it covers. Unlisted GraphQL types fall back to their lowercased
// form.
var restTransactionTypes = map[string][]string{
	"charge": {
		"CHARGE", "ADJUSTMENT", "BALANCE_TRANSFER_INBOUND", "ANOMALY_CREDIT", "CHANNEL_CREDIT",
		"CHANNEL_PROMOTION_CREDIT", "CHANNEL_TRANSFER_CREDIT", "COLLECTIONS_CREDIT", "MARKETS_PRO_CREDIT",
		"MERCHANT_GOODWILL_CREDIT", "PROMOTION_CREDIT", "SELLER_PROTECTION_CREDIT", "SHOPIFY_COLLECTIVE_CREDIT",
		"SHOPIFY_SOURCE_CREDIT", "ADS_PUBLISHER_CREDIT", "TAX_ADJUSTMENT_CREDIT",
	},
	"credit": {
		"LENDING_CREDIT", "LENDING_CREDIT_REFUND", "SHOP_CASH_CREDIT",
	},
	"refund": {
		"REFUND", "REFUND_ADJUSTMENT", "REFUND_FAILURE", "IMPORT_TAX_REFUND", "APPLICATION_FEE_REFUND",
		"CHARGEBACK_FEE_REFUND", "LENDING_CAPITAL_REFUND", "LENDING_CREDIT_REFUND_REVERSAL",
	},
	"dispute": {
		"CHARGEBACK_HOLD", "CHARGEBACK_HOLD_RELEASE", "DISPUTE_REVERSAL", "DISPUTE_WITHDRAWAL", "CHARGE_ADJUSTMENT",
	},
	"reserve": {
		"RESERVED_FUNDS", "RESERVED_FUNDS_REVERSAL", "RESERVED_FUNDS_WITHDRAWAL", "RISK_WITHDRAWAL", "RISK_REVERSAL",
	},
	"payout": {
		"TRANSFER",
	},
	"payout_failure": {
		"TRANSFER_FAILURE", "ACH_BANK_FAILURE_DEBIT_FEE",
	},
	"payout_cancellation": {
		"TRANSFER_CANCEL",
	},
	"debit": {
		"CHARGEBACK_FEE", "BILLING_DEBIT", "LENDING_DEBIT", "LENDING_CAPITAL_REMITTANCE", "MERCHANT_TO_MERCHANT_DEBIT",
		"SHOP_CASH_BILLING_DEBIT", "SHOP_CASH_CAMPAIGN_BILLING_DEBIT", "SHOP_CASH_REFUND_DEBIT",
		"SHOPIFY_COLLECTIVE_DEBIT", "SHOPIFY_SOURCE_DEBIT", "CUSTOMS_DUTY", "IMPORT_TAX", "SHIPPING_LABEL",
		"SHIPPING_LABEL_ADJUSTMENT", "SHIPPING_OTHER_CARRIER_CHARGE_ADJUSTMENT", "SHIPPING_RETURN_TO_ORIGIN_ADJUSTMENT",
		"REFERRAL_FEE", "REFERRAL_FEE_TAX", "STRIPE_FEE", "ANOMALY_DEBIT", "CHARGEBACK_PROTECTION_DEBIT",
		"TAX_ADJUSTMENT_DEBIT", "ADS_PUBLISHER_CREDIT_REVERSAL", "ANOMALY_CREDIT_REVERSAL", "CHANNEL_CREDIT_REVERSAL",
		"COLLECTIONS_CREDIT_REVERSAL", "LENDING_CREDIT_REVERSAL", "MARKETPLACE_FEE_CREDIT_REVERSAL",
		"MERCHANT_GOODWILL_CREDIT_REVERSAL", "PROMOTION_CREDIT_REVERSAL", "SELLER_PROTECTION_CREDIT_REVERSAL",
		"SHOPIFY_COLLECTIVE_CREDIT_REVERSAL",
	},
	"adjustment": {
		"ADVANCE", "ADVANCE_FUNDING", "CUSTOMS_DUTY_ADJUSTMENT", "IMPORT_TAX_ADJUSTMENT",
	},
}

// RESTTransactionType maps a GraphQL balance transaction type to its REST
// equivalent.
func RESTTransactionType(gqlType string) string {
	if gqlType == "" {
		return "other"
	}
	for restType, gqlTypes := range restTransactionTypes {
		for _, t := range gqlTypes {
			if t == gqlType {
				return restType
			}
		}
	}
	return strings.ToLower(gqlType)
}

type TransactionService struct {
	client *Client
}

type TransactionListOptions struct {
	// PayoutID filters to one payout's transactions when non-zero.
	PayoutID int64
	Filters  query.FilterMap
	// First is the page size, DefaultPageSize when zero.
	First int
}

// List fetches all balance transactions matching the options and returns the
// raw GraphQL nodes.
func (s *TransactionService) List(ctx context.Context, opts TransactionListOptions) ([]map[string]interface{}, error) {
	filters := query.FilterMap{}
	for k, v := range opts.Filters {
		filters[k] = v
	}
	if opts.PayoutID != 0 {
		filters["payments_transfer_id"] = strconv.FormatInt(opts.PayoutID, 10)
	}
	spec := query.Spec{
		QueryName:      "GetBalanceTransactions",
		ObjectName:     "shopifyPaymentsAccount",
		ConnectionName: "balanceTransactions",
		Fields:         balanceTransactionFields,
		Filters:        filters,
		First:          opts.First,
	}
	nodes, _, err := s.client.paginator.FetchAll(ctx, spec)
	return nodes, err
}

// ListREST fetches balance transactions and converts each node to the REST
// transaction shape.
func (s *TransactionService) ListREST(ctx context.Context, opts TransactionListOptions) ([]gqlclient.Object, error) {
	nodes, err := s.List(ctx, opts)
	if err != nil {
		return nil, err
	}
	out := make([]gqlclient.Object, 0, len(nodes))
	for _, node := range nodes {
		out = append(out, gqlclient.NewObject(transactionToREST(node)))
	}
	return out, nil
}

func transactionToREST(node map[string]interface{}) map[string]interface{} {
	associatedOrder, _ := node["associatedOrder"].(map[string]interface{})
	associatedPayout, _ := node["associatedPayout"].(map[string]interface{})
	amount, _ := node["amount"].(map[string]interface{})
	fee, _ := node["fee"].(map[string]interface{})
	net, _ := node["net"].(map[string]interface{})
	gqlType, _ := node["type"].(string)

	txn := map[string]interface{}{
		"id":                            numericID(node["id"]),
		"type":                          RESTTransactionType(gqlType),
		"gql_type":                      gqlType,
		"test":                          boolOrFalse(node["test"]),
		"payout_id":                     nil,
		"payout_status":                 nil,
		"currency":                      amount["currencyCode"],
		"amount":                        amountString(amount["amount"]),
		"fee":                           amountString(fee["amount"]),
		"net":                           amountString(net["amount"]),
		"source_id":                     numericID(node["sourceId"]),
		"source_type":                   nil,
		"source_order_id":               nil,
		"source_order_transaction_id":   numericID(node["sourceOrderTransactionId"]),
		"processed_at":                  node["transactionDate"],
		"adjustment_order_transactions": emptyToNil(node["adjustmentsOrders"]),
		"adjustment_reason":             node["adjustmentReason"],
	}
	if associatedPayout != nil {
		txn["payout_id"] = numericID(associatedPayout["id"])
		txn["payout_status"] = associatedPayout["status"]
	}
	if associatedOrder != nil {
		txn["source_order_id"] = numericID(associatedOrder["id"])
	}
	if s, ok := node["sourceType"].(string); ok && s != "" {
		txn["source_type"] = strings.ToLower(s)
	}
	return txn
}

// numericID converts ids that arrive as gid strings, numeric strings or JSON
// numbers to int64, or nil.
func numericID(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		if normalize.IsGID(v) {
			if id, ok := normalize.GIDLegacyID(v); ok {
				return id
			}
			return nil
		}
		if id, err := strconv.ParseInt(v, 10, 64); err == nil {
			return id
		}
	case float64:
		return int64(v)
	}
	return nil
}

func amountString(value interface{}) interface{} {
	switch v := value.(type) {
	case nil:
		return nil
	case string:
		return v
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprint(v)
	}
}

func boolOrFalse(value interface{}) bool {
	b, _ := value.(bool)
	return b
}

func emptyToNil(value interface{}) interface{} {
	if list, ok := value.([]interface{}); ok && len(list) == 0 {
		return nil
	}
	return value
}
