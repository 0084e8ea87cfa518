package merge

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulatorMergesGroupsByID(t *testing.T) {
	acc := NewAccumulator()
	acc.Add([]map[string]interface{}{
		{"id": "gid://shopify/Order/1", "name": "#1001"},
		{"id": "gid://shopify/Order/2", "name": "#1002"},
	})
	acc.Add([]map[string]interface{}{
		{"id": "gid://shopify/Order/2", "email": "b@example.com"},
		{"id": "gid://shopify/Order/1", "email": "a@example.com"},
	})

	merged := acc.Merged()
	require.Len(t, merged, 2)
	// first-seen order, not group-two order
	assert.Equal(t, "#1001", merged[0]["name"])
	assert.Equal(t, "a@example.com", merged[0]["email"])
	assert.Equal(t, "#1002", merged[1]["name"])
	assert.Equal(t, "b@example.com", merged[1]["email"])
}

func TestAccumulatorSkipsNodesWithoutID(t *testing.T) {
	acc := NewAccumulator()
	acc.Add([]map[string]interface{}{
		{"name": "#1001"},
		{"id": "", "name": "#1002"},
		{"id": "gid://shopify/Order/3", "name": "#1003"},
	})
	merged := acc.Merged()
	require.Len(t, merged, 1)
	assert.Equal(t, "#1003", merged[0]["name"])
}

func TestDeepMergeLaterGroupWins(t *testing.T) {
	merged := DeepMerge(
		map[string]interface{}{"status": "OPEN", "total": "10.00"},
		map[string]interface{}{"status": "CLOSED"},
	)
	assert.Equal(t, "CLOSED", merged["status"])
	assert.Equal(t, "10.00", merged["total"])
}

func TestDeepMergeNestedMappings(t *testing.T) {
	merged := DeepMerge(
		map[string]interface{}{
			"customer": map[string]interface{}{"id": "gid://shopify/Customer/7", "email": "a@example.com"},
		},
		map[string]interface{}{
			"customer": map[string]interface{}{"phone": "+1555", "email": "b@example.com"},
		},
	)
	want := map[string]interface{}{
		"customer": map[string]interface{}{
			"id":    "gid://shopify/Customer/7",
			"email": "b@example.com",
			"phone": "+1555",
		},
	}
	if diff := cmp.Diff(want, merged); diff != "" {
		t.Fatalf("merge mismatch (-want +got):\n%s", diff)
	}
}

func TestDeepMergeDoesNotAliasSources(t *testing.T) {
	source := map[string]interface{}{
		"customer": map[string]interface{}{"email": "a@example.com"},
	}
	merged := DeepMerge(source)
	merged["customer"].(map[string]interface{})["email"] = "changed"
	assert.Equal(t, "a@example.com", source["customer"].(map[string]interface{})["email"])
}

func TestDeepMergeReplacesMappingWithScalar(t *testing.T) {
	merged := DeepMerge(
		map[string]interface{}{"risk": map[string]interface{}{"level": "LOW"}},
		map[string]interface{}{"risk": nil},
	)
	assert.Nil(t, merged["risk"])
}
