// Package connection parses Relay-style connection responses and drives
// cursor pagination to completion.
package connection

import (
	"encoding/json"

	"github.com/tidwall/gjson"

	"github.com/mericlorris-hash/vanilio/pkg/gqlclient"
)

// Page is one page of a connection response. EndCursor is empty when the
// upstream reported a null cursor; well-formed responses always carry a
// cursor while HasNextPage is true.
type Page struct {
	HasNextPage bool
	EndCursor   string
	Items       []map[string]interface{}
}

// ParsePage extracts one page from a raw response envelope, using the same
// objectName/connectionName/useNodes descriptors the query was built with.
// It fails with *gqlclient.GraphQLError when the response carries errors
// (even alongside data) and with *gqlclient.InvalidResponseError when the
// data key is missing; absent intermediate nesting yields an empty page.
func ParsePage(body []byte, objectName, connectionName string, useNodes bool) (Page, error) {
	if errorsValue := gjson.GetBytes(body, "errors"); errorsValue.Exists() && errorsValue.Type != gjson.Null {
		return Page{}, &gqlclient.GraphQLError{Errors: json.RawMessage(errorsValue.Raw)}
	}
	data := gjson.GetBytes(body, "data")
	if !data.Exists() || data.Type == gjson.Null {
		return Page{}, &gqlclient.InvalidResponseError{Body: body}
	}

	conn := data
	if objectName != "" {
		conn = conn.Get(objectName)
	}
	conn = conn.Get(connectionName)

	page := Page{
		HasNextPage: conn.Get("pageInfo.hasNextPage").Bool(),
		EndCursor:   conn.Get("pageInfo.endCursor").String(),
	}
	if useNodes {
		for _, node := range conn.Get("nodes").Array() {
			page.Items = append(page.Items, decodeNode(node))
		}
		return page, nil
	}
	for _, edge := range conn.Get("edges").Array() {
		page.Items = append(page.Items, decodeNode(edge.Get("node")))
	}
	return page, nil
}

// decodeNode decodes a node object into a mapping; a missing or malformed
// node decodes to an empty mapping.
func decodeNode(node gjson.Result) map[string]interface{} {
	if !node.IsObject() {
		return map[string]interface{}{}
	}
	var out map[string]interface{}
	if err := json.Unmarshal([]byte(node.Raw), &out); err != nil {
		return map[string]interface{}{}
	}
	return out
}
