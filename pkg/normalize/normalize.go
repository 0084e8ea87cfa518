// Package normalize rewrites raw Admin GraphQL response trees into the
// REST-shaped dictionaries the legacy consumers expect: snake_case keys,
// flattened money sets, numeric ids decoded from global ids, collapsed
// connection wrappers and lowercased enum vocabulary.
package normalize

import (
	"sort"
	"strings"
)

// Normalizer converts GraphQL response trees to REST shape. The zero value is
// ready to use and selects shop currency amounts; set UsePresentment to pick
// presentment (customer facing) currency amounts instead.
type Normalizer struct {
	UsePresentment bool
}

// Normalize returns the REST-shaped copy of value. The input is never
// mutated. Lists normalize element-wise, scalars and nil pass through.
// A connection wrapper map (one carrying a "nodes" list) collapses into the
// normalized list itself.
func (n *Normalizer) Normalize(value interface{}) interface{} {
	switch v := value.(type) {
	case map[string]interface{}:
		return n.normalizeMap(v)
	case []interface{}:
		out := make([]interface{}, len(v))
		for i, item := range v {
			out[i] = n.Normalize(item)
		}
		return out
	default:
		return value
	}
}

// NormalizeEntity normalizes a single entity node. ok is false when the node
// collapsed into a list, which only happens for connection wrapper input.
func (n *Normalizer) NormalizeEntity(node map[string]interface{}) (entity map[string]interface{}, ok bool) {
	entity, ok = n.Normalize(node).(map[string]interface{})
	return entity, ok
}

func (n *Normalizer) normalizeMap(node map[string]interface{}) interface{} {
	// A map carrying a "nodes" list is a connection wrapper: the whole map
	// collapses into the normalized list.
	if nodes, ok := node["nodes"].([]interface{}); ok {
		return n.Normalize(nodes)
	}
	out := make(map[string]interface{}, len(node))
	for _, key := range sortedKeys(node) {
		n.rewritePair(key, node[key], out)
	}
	return out
}

// rewriteRule inspects one key/value pair of the node under rewrite and emits
// entries into out. It reports whether it consumed the pair; rules run in
// order and the first consuming rule wins.
type rewriteRule func(n *Normalizer, key string, value interface{}, out map[string]interface{}) bool

var rules []rewriteRule

// Assigned here because the rules recurse back through Normalize into
// rewritePair; a composite literal initializer would form an initialization
// cycle.
func init() {
	rules = []rewriteRule{
		(*Normalizer).flattenNestedConnection,
		(*Normalizer).flattenMoneySet,
		(*Normalizer).decodeEntityID,
		(*Normalizer).dropOriginalTotal,
		(*Normalizer).liftProductID,
		(*Normalizer).flattenVariant,
		(*Normalizer).flattenFulfillmentService,
	}
}

func (n *Normalizer) rewritePair(key string, value interface{}, out map[string]interface{}) {
	for _, rule := range rules {
		if rule(n, key, value, out) {
			return
		}
	}
	n.rewriteGeneric(key, value, out)
}

// flattenNestedConnection replaces a nested connection value, e.g.
// lineItems: {nodes: [...], pageInfo: {...}}, with the normalized nodes list
// under the snake_case key. pageInfo of nested connections is dropped here:
// callers needing to page through a nested connection beyond its requested
// size must query it separately.
func (n *Normalizer) flattenNestedConnection(key string, value interface{}, out map[string]interface{}) bool {
	m, ok := value.(map[string]interface{})
	if !ok {
		return false
	}
	nodes, ok := m["nodes"]
	if !ok {
		return false
	}
	out[toSnake(key)] = n.Normalize(nodes)
	return true
}

// toSnake converts a camelCase key by splitting before uppercase letters
// only. Digits never start a new word: address1 stays address1 and
// countryCodeV2 becomes country_code_v2, matching the REST key vocabulary.
func toSnake(key string) string {
	var out strings.Builder
	out.Grow(len(key) + 4)
	for i, r := range key {
		if r >= 'A' && r <= 'Z' {
			if i > 0 {
				out.WriteByte('_')
			}
			out.WriteRune(r + 'a' - 'A')
			continue
		}
		out.WriteRune(r)
	}
	return out.String()
}

// flattenMoneySet turns a *Set money object into the flat REST amount, the
// recursively normalized *_set sub-object and, for the primary amount fields,
// a sibling currency entry.
func (n *Normalizer) flattenMoneySet(key string, value interface{}, out map[string]interface{}) bool {
	if !strings.HasSuffix(key, "Set") {
		return false
	}
	m, ok := value.(map[string]interface{})
	if !ok {
		return false
	}
	if _, ok := m["shopMoney"]; !ok {
		return false
	}
	restKey := moneyRestKey(key)
	money, _ := n.chosenMoney(m).(map[string]interface{})
	out[restKey] = money["amount"]
	out[restKey+"_set"] = n.Normalize(value)
	switch restKey {
	case "amount", "total_price", "subtotal_price", "price":
		out["currency"] = money["currencyCode"]
	}
	return true
}

func (n *Normalizer) chosenMoney(moneySet map[string]interface{}) interface{} {
	if n.UsePresentment {
		return moneySet["presentmentMoney"]
	}
	return moneySet["shopMoney"]
}

// moneyRestKey derives the flat REST key for a money set field.
func moneyRestKey(key string) string {
	rest := toSnake(strings.ReplaceAll(key, "Set", ""))
	switch rest {
	case "totalprice":
		return "total_price"
	case "totaldiscounts":
		return "total_discounts"
	case "original_unit_price", "original_price":
		return "price"
	case "allocated_amount":
		return "amount"
	}
	return rest
}

// decodeEntityID replaces a global id under "id" with the numeric REST id and
// preserves the original under admin_graphql_api_id.
func (n *Normalizer) decodeEntityID(key string, value interface{}, out map[string]interface{}) bool {
	if key != "id" {
		return false
	}
	s, ok := value.(string)
	if !ok || !IsGID(s) {
		return false
	}
	out["id"] = legacyIDValue(s)
	out["admin_graphql_api_id"] = s
	return true
}

// dropOriginalTotal removes originalTotalSet entirely; the REST price comes
// from originalUnitPriceSet.
func (n *Normalizer) dropOriginalTotal(key string, value interface{}, out map[string]interface{}) bool {
	return key == "originalTotalSet"
}

// liftProductID emits a sibling product_id decoded from the product's gid.
// It never consumes the pair, so the product sub-object itself still gets the
// generic treatment.
func (n *Normalizer) liftProductID(key string, value interface{}, out map[string]interface{}) bool {
	if key != "product" {
		return false
	}
	m, ok := value.(map[string]interface{})
	if !ok {
		return false
	}
	if s, ok := m["id"].(string); ok && IsGID(s) {
		out["product_id"] = legacyIDValue(s)
	}
	return false
}

// flattenVariant lifts the variant id, sku and title to the line item level
// and drops the rest of the variant sub-object.
func (n *Normalizer) flattenVariant(key string, value interface{}, out map[string]interface{}) bool {
	if key != "variant" {
		return false
	}
	m, ok := value.(map[string]interface{})
	if !ok {
		return false
	}
	out["variant_id"] = gidValueOrNil(m["id"])
	out["sku"] = m["sku"]
	out["variant_title"] = m["title"]
	return true
}

// flattenFulfillmentService reduces a fulfillment service sub-object to its
// service name scalar.
func (n *Normalizer) flattenFulfillmentService(key string, value interface{}, out map[string]interface{}) bool {
	if key != "fulfillmentService" && key != "fulfillment_service" {
		return false
	}
	m, ok := value.(map[string]interface{})
	if !ok {
		return false
	}
	if name, ok := m["serviceName"]; ok {
		out["fulfillment_service"] = name
		return true
	}
	if name, ok := m["service_name"]; ok {
		out["fulfillment_service"] = name
		return true
	}
	return false
}

var restKeyReplacer = strings.NewReplacer(
	"code_v2", "code",
	"client_ip", "browser_ip",
	"legacy_resource_id", "id",
)

var lowercasedEnums = map[string]bool{
	"kind":               true,
	"status":             true,
	"source_name":        true,
	"financial_status":   true,
	"fulfillment_status": true,
}

// rewriteGeneric converts the key to snake_case (with the targeted REST
// renames), lowercases enum vocabulary and recurses into the value.
func (n *Normalizer) rewriteGeneric(key string, value interface{}, out map[string]interface{}) {
	newKey := key
	if key != "admin_graphql_api_id" && key != "currencyCode" {
		newKey = restKeyReplacer.Replace(toSnake(key))
		switch newKey {
		case "display_financial_status":
			newKey = "financial_status"
		case "display_fulfillment_status":
			newKey = "fulfillment_status"
		}
		if newKey == "name" {
			// REST exposes the order name a second time as order_number
			out["order_number"] = value
		}
		if lowercasedEnums[newKey] {
			if s, ok := value.(string); ok {
				value = strings.ToLower(s)
			}
		}
	}
	out[newKey] = n.Normalize(value)
}

func gidValueOrNil(v interface{}) interface{} {
	if s, ok := v.(string); ok && IsGID(s) {
		return legacyIDValue(s)
	}
	return nil
}

// sortedKeys keeps rewrite output deterministic regardless of map iteration
// order; later keys overwrite earlier emissions on collision, e.g.
// legacyResourceId over a decoded id.
func sortedKeys(m map[string]interface{}) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
