package admin

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/parser"

	"github.com/mericlorris-hash/vanilio/pkg/query"
)

// Every field group must survive being wrapped into a connection query, so a
// typo in one of the raw selection blocks fails here instead of against the
// live API.
func TestOrderFieldGroupsAreValidSelections(t *testing.T) {
	groups := OrderFieldGroups()
	require.Len(t, groups, 8)

	seen := map[string]bool{}
	for _, group := range groups {
		t.Run(group.Name, func(t *testing.T) {
			assert.False(t, seen[group.Name], "duplicate group name")
			seen[group.Name] = true

			document, err := query.Build(query.Spec{
				ConnectionName: "orders",
				Fields:         group.Fields,
				UseNodes:       true,
			})
			require.NoError(t, err)

			doc, parseErr := parser.ParseQuery(&ast.Source{Input: document})
			require.Nil(t, parseErr, "group %s does not parse: %s", group.Name, document)
			require.NotNil(t, doc)
		})
	}
}
