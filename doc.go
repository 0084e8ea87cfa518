// Package vanilio bridges the Shopify Admin GraphQL API back to the REST
// response shapes that existing import pipelines consume.
//
// Shopify retired the REST order and payout endpoints in favor of the
// GraphQL Admin API, which paginates through Relay-style connections,
// identifies entities by global ids and nests amounts inside money set
// objects. Consumers written against the REST shapes expect flat snake_case
// records with numeric ids. This module closes that gap:
//
//   - pkg/gqlclient executes operations against one shop with retrying
//     transport and a typed error taxonomy.
//   - pkg/query builds connection queries from a small AST, so filter values
//     are escaped at print time.
//   - pkg/connection parses connection pages and drives cursor pagination.
//   - pkg/normalize recursively rewrites response trees into REST shape.
//   - pkg/merge splits expensive selections into field groups and reassembles
//     entities by id, keeping each query under the API cost budget.
//   - pkg/bulk runs server-side bulk exports for very large result sets.
//   - pkg/admin combines the layers into resource services (orders, payouts,
//     balance transactions, inventory, products, refunds, draft orders,
//     fulfillments).
package vanilio
