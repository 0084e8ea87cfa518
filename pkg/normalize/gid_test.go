package normalize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsGID(t *testing.T) {
	assert.True(t, IsGID("gid://shopify/Order/1"))
	assert.False(t, IsGID("1234567890"))
	assert.False(t, IsGID(""))
}

func TestGIDLegacyID(t *testing.T) {
	tests := []struct {
		gid  string
		want int64
		ok   bool
	}{
		{"gid://shopify/Order/1234567890", 1234567890, true},
		{"gid://shopify/ProductVariant/77", 77, true},
		{"gid://shopify/InventoryLevel/123?inventory_item_id=456", 0, false},
		{"gid://shopify/Order/", 0, false},
		{"no-slashes", 0, false},
	}
	for _, tt := range tests {
		t.Run(tt.gid, func(t *testing.T) {
			id, ok := GIDLegacyID(tt.gid)
			assert.Equal(t, tt.ok, ok)
			assert.Equal(t, tt.want, id)
		})
	}
}
