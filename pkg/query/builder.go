package query

import (
	"errors"
	"strings"
)

var (
	ErrMissingConnectionName = errors.New("query: connection name must not be empty")
	ErrMissingFields         = errors.New("query: node selection must not be empty")
)

// Build produces the GraphQL document for one page of a connection query.
// It performs no I/O and is deterministic for identical input.
func Build(spec Spec) (string, error) {
	if spec.ConnectionName == "" {
		return "", ErrMissingConnectionName
	}
	nodeSelection := spec.nodeSelection()
	if nodeSelection.isEmpty() {
		return "", ErrMissingFields
	}

	first := spec.First
	if first == 0 {
		first = DefaultPageSize
	}
	args := []Argument{
		{Name: "first", Value: IntValue(first)},
	}
	if spec.After != "" {
		args = append(args, Argument{Name: "after", Value: StringValue(spec.After)})
	}
	args = append(args, Argument{Name: "query", Value: StringValue(NormalizeFilter(spec.Filters))})
	if spec.ExtraArgs != "" {
		args = append(args, parseRawArgs(spec.ExtraArgs)...)
	}

	pageInfo := Field{
		Name:       "pageInfo",
		Selections: &SelectionSet{Fields: []Field{{Name: "endCursor"}, {Name: "hasNextPage"}}},
	}

	var connectionBody SelectionSet
	if spec.UseNodes {
		connectionBody = SelectionSet{Fields: []Field{
			{Name: "nodes", Selections: &nodeSelection},
			pageInfo,
		}}
	} else {
		connectionBody = SelectionSet{Fields: []Field{
			{Name: "edges", Selections: &SelectionSet{Fields: []Field{
				{Name: "node", Selections: &nodeSelection},
			}}},
			pageInfo,
		}}
	}

	connection := Field{
		Name:       spec.ConnectionName,
		Arguments:  args,
		Selections: &connectionBody,
	}

	root := connection
	if spec.ObjectName != "" {
		root = Field{
			Name:       spec.ObjectName,
			Selections: &SelectionSet{Fields: []Field{connection}},
		}
	}

	return Print(Operation{
		Type:      OperationTypeQuery,
		Name:      spec.QueryName,
		Selection: SelectionSet{Fields: []Field{root}},
	}), nil
}

// BuildCount produces the document for a count field, e.g.
// "ordersCount", filtered the same way as the connection query.
func BuildCount(countField string, filters Filter) (string, error) {
	if countField == "" {
		return "", ErrMissingConnectionName
	}
	return Print(Operation{
		Type: OperationTypeQuery,
		Selection: SelectionSet{Fields: []Field{{
			Name:       countField,
			Arguments:  []Argument{{Name: "query", Value: StringValue(NormalizeFilter(filters))}},
			Selections: &SelectionSet{Fields: []Field{{Name: "count"}}},
		}}},
	}), nil
}

// parseRawArgs splits a raw connection argument string such as
// "sortKey: UPDATED_AT, reverse: true" into raw-valued arguments. Values are
// passed through untouched.
func parseRawArgs(raw string) []Argument {
	var out []Argument
	for _, part := range splitTopLevel(raw, ',') {
		name, value, found := strings.Cut(part, ":")
		if !found {
			continue
		}
		out = append(out, Argument{
			Name:  strings.TrimSpace(name),
			Value: RawValue(strings.TrimSpace(value)),
		})
	}
	return out
}

// splitTopLevel splits on sep outside of quotes, brackets and braces so raw
// input objects survive intact.
func splitTopLevel(s string, sep byte) []string {
	var (
		out      []string
		depth    int
		inString bool
		start    int
	)
	for i := 0; i < len(s); i++ {
		switch s[i] {
		case '"':
			inString = !inString
		case '{', '[', '(':
			if !inString {
				depth++
			}
		case '}', ']', ')':
			if !inString {
				depth--
			}
		case sep:
			if !inString && depth == 0 {
				out = append(out, s[start:i])
				start = i + 1
			}
		}
	}
	out = append(out, s[start:])
	return out
}
