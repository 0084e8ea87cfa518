// Package admin exposes REST-shaped resource helpers (orders, payouts,
// transactions, inventory, products, refunds, draft orders, fulfillments)
// over the Admin GraphQL API. Each service builds its queries through
// pkg/query, pages through pkg/connection and rewrites responses through
// pkg/normalize, so downstream consumers keep seeing the legacy REST shapes.
package admin

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/jensneuse/abstractlogger"
	"github.com/tidwall/gjson"

	"github.com/mericlorris-hash/vanilio/pkg/connection"
	"github.com/mericlorris-hash/vanilio/pkg/merge"
	"github.com/mericlorris-hash/vanilio/pkg/normalize"
	"github.com/mericlorris-hash/vanilio/pkg/query"
)

// Execer executes one GraphQL operation against a shop.
// *gqlclient.Client satisfies it.
type Execer interface {
	Execute(ctx context.Context, query string, variables interface{}) ([]byte, error)
}

type Client struct {
	gql        Execer
	paginator  *connection.Paginator
	normalizer *normalize.Normalizer
	merger     *merge.Merger
	log        abstractlogger.Logger

	Orders       *OrderService
	Payouts      *PayoutService
	Transactions *TransactionService
	Inventory    *InventoryService
	Products     *ProductService
	Refunds      *RefundService
	DraftOrders  *DraftOrderService
	Fulfillments *FulfillmentService
}

type Option func(*Client)

func WithLogger(log abstractlogger.Logger) Option {
	return func(c *Client) {
		c.log = log
	}
}

// WithPresentmentCurrency flattens money sets to the presentment (customer
// facing) currency instead of the shop currency.
func WithPresentmentCurrency(use bool) Option {
	return func(c *Client) {
		c.normalizer.UsePresentment = use
	}
}

func New(gql Execer, options ...Option) *Client {
	c := &Client{
		gql:        gql,
		normalizer: &normalize.Normalizer{},
		log:        abstractlogger.NoopLogger,
	}
	for _, option := range options {
		option(c)
	}
	c.paginator = connection.NewPaginator(gql, connection.WithLogger(c.log))
	c.merger = merge.NewMerger(c.paginator, c.normalizer, merge.WithLogger(c.log))

	c.Orders = &OrderService{client: c}
	c.Payouts = &PayoutService{client: c}
	c.Transactions = &TransactionService{client: c}
	c.Inventory = &InventoryService{client: c}
	c.Products = &ProductService{client: c}
	c.Refunds = &RefundService{client: c}
	c.DraftOrders = &DraftOrderService{client: c}
	c.Fulfillments = &FulfillmentService{client: c}
	return c
}

// GID builds a global object identifier for a numeric REST id.
func GID(entityType string, id int64) string {
	return fmt.Sprintf("gid://shopify/%s/%d", entityType, id)
}

// UserErrorsError is a mutation whose payload reported user errors. The API
// does not attribute batched-mutation errors to individual inputs, so callers
// cannot tell which input entity failed; Errors carries the raw payload.
type UserErrorsError struct {
	Mutation string
	Errors   json.RawMessage
}

func (e *UserErrorsError) Error() string {
	return fmt.Sprintf("admin: %s reported user errors: %s", e.Mutation, e.Errors)
}

// objectQuery fetches a single object by global id with a raw field
// selection and returns it decoded.
func (c *Client) objectQuery(ctx context.Context, field, gid, fields string) (map[string]interface{}, error) {
	document := query.Print(query.Operation{
		Type: query.OperationTypeQuery,
		Selection: query.SelectionSet{Fields: []query.Field{{
			Name:       field,
			Arguments:  []query.Argument{{Name: "id", Value: query.StringValue(gid)}},
			Selections: &query.SelectionSet{Raw: fields},
		}}},
	})
	body, err := c.gql.Execute(ctx, document, nil)
	if err != nil {
		return nil, err
	}
	return decodeObject(gjson.GetBytes(body, "data."+field)), nil
}

// mutate runs one mutation field, fails on reported user errors and returns
// the decoded mutation payload. fields selects the payload besides
// userErrors, which is always requested.
func (c *Client) mutate(ctx context.Context, name string, args []query.Argument, fields string) (map[string]interface{}, error) {
	selection := query.SelectionSet{Raw: strings.TrimSpace(fields + " userErrors { code field message }")}
	document := query.Print(query.Operation{
		Type: query.OperationTypeMutation,
		Selection: query.SelectionSet{Fields: []query.Field{{
			Name:       name,
			Arguments:  args,
			Selections: &selection,
		}}},
	})
	body, err := c.gql.Execute(ctx, document, nil)
	if err != nil {
		return nil, err
	}
	if userErrors := gjson.GetBytes(body, "data."+name+".userErrors"); userErrors.IsArray() && len(userErrors.Array()) != 0 {
		return nil, &UserErrorsError{Mutation: name, Errors: json.RawMessage(userErrors.Raw)}
	}
	return decodeObject(gjson.GetBytes(body, "data."+name)), nil
}

func decodeObject(result gjson.Result) map[string]interface{} {
	if !result.IsObject() {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(result.Raw), &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}
