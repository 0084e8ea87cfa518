// Package query builds Shopify Admin GraphQL operation strings from
// declarative specs. Queries are assembled through a small selection set AST
// and printed in one pass, so user supplied filter values can never break out
// of the string literal they are embedded in.
package query

import (
	"strconv"
	"strings"
)

type OperationType int

const (
	OperationTypeQuery OperationType = iota
	OperationTypeMutation
)

// Operation is the root of a printable GraphQL document.
type Operation struct {
	Type      OperationType
	Name      string
	Selection SelectionSet
}

// SelectionSet holds the fields selected at one nesting level. Raw, when set,
// is emitted verbatim (whitespace collapsed) before the structured fields.
// Resource helpers carry their field selections as raw text blocks.
type SelectionSet struct {
	Raw    string
	Fields []Field
}

func (s SelectionSet) isEmpty() bool {
	return strings.TrimSpace(s.Raw) == "" && len(s.Fields) == 0
}

type Field struct {
	Name       string
	Arguments  []Argument
	Selections *SelectionSet
}

type Argument struct {
	Name  string
	Value Value
}

type ValueKind int

const (
	ValueKindRaw ValueKind = iota
	ValueKindString
	ValueKindInt
)

// Value is a GraphQL argument value. String values are escaped at print time,
// raw values (enums, pre-built input objects) are emitted verbatim.
type Value struct {
	Kind ValueKind
	Raw  string
}

func StringValue(s string) Value {
	return Value{Kind: ValueKindString, Raw: s}
}

func IntValue(i int) Value {
	return Value{Kind: ValueKindInt, Raw: strconv.Itoa(i)}
}

func RawValue(s string) Value {
	return Value{Kind: ValueKindRaw, Raw: s}
}

// Print renders the operation as a single line GraphQL document. Anonymous
// queries print as a bare selection set block.
func Print(op Operation) string {
	out := &strings.Builder{}
	switch {
	case op.Type == OperationTypeMutation && op.Name != "":
		out.WriteString("mutation " + op.Name + " ")
	case op.Type == OperationTypeMutation:
		out.WriteString("mutation ")
	case op.Name != "":
		out.WriteString("query " + op.Name + " ")
	}
	printSelectionSet(out, op.Selection)
	return out.String()
}

func printSelectionSet(out *strings.Builder, set SelectionSet) {
	out.WriteString("{")
	wrote := false
	if raw := collapseWhitespace(set.Raw); raw != "" {
		out.WriteString(raw)
		wrote = true
	}
	for _, field := range set.Fields {
		if wrote {
			out.WriteString(" ")
		}
		printField(out, field)
		wrote = true
	}
	out.WriteString("}")
}

func printField(out *strings.Builder, field Field) {
	out.WriteString(field.Name)
	if len(field.Arguments) != 0 {
		out.WriteString("(")
		for i, arg := range field.Arguments {
			if i != 0 {
				out.WriteString(", ")
			}
			out.WriteString(arg.Name)
			out.WriteString(": ")
			printValue(out, arg.Value)
		}
		out.WriteString(")")
	}
	if field.Selections != nil && !field.Selections.isEmpty() {
		out.WriteString(" ")
		printSelectionSet(out, *field.Selections)
	}
}

func printValue(out *strings.Builder, value Value) {
	if value.Kind != ValueKindString {
		out.WriteString(value.Raw)
		return
	}
	out.WriteString(`"`)
	for _, r := range value.Raw {
		switch r {
		case '"':
			out.WriteString(`\"`)
		case '\\':
			out.WriteString(`\\`)
		default:
			out.WriteRune(r)
		}
	}
	out.WriteString(`"`)
}

// collapseWhitespace joins a multi line selection block into a single line,
// the same way raw field blocks were flattened before being interpolated.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
