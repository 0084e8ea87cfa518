package admin

import (
	"context"
	"fmt"

	"github.com/mericlorris-hash/vanilio/pkg/query"
)

const defaultProductFields = `
	id title descriptionHtml vendor createdAt handle updatedAt publishedAt templateSuffix tags status
	variants(first: 100) { edges { node { id title price position compareAtPrice createdAt updatedAt taxable
	barcode sku inventoryPolicy selectedOptions { name value }
	inventoryItem { measurement { weight { unit value } } requiresShipping tracked legacyResourceId }
	image { id src } } } }
	options { values position name id }
	media(first: 100) { edges { node { ... on MediaImage { id image { url } } } } }`

type ProductService struct {
	client *Client
}

// ImportBasedOn selects which timestamp the date window filters on.
const (
	ImportBasedOnCreateDate = "create_date"
	ImportBasedOnUpdateDate = "update_date"
)

type ProductListOptions struct {
	Status        string
	ImportBasedOn string
	FromDate      string
	ToDate        string
	// Fields overrides the default node selection.
	Fields string
	// First is the page size, DefaultPageSize when zero.
	First int
}

func (o ProductListOptions) filter() query.Filter {
	var parts query.FilterClauses
	if o.Status != "" {
		parts = append(parts, "status:"+o.Status)
	}
	if o.FromDate != "" && o.ToDate != "" {
		switch o.ImportBasedOn {
		case ImportBasedOnCreateDate:
			parts = append(parts,
				fmt.Sprintf("created_at:>='%s'", o.FromDate),
				fmt.Sprintf("created_at:<='%s'", o.ToDate),
			)
		case ImportBasedOnUpdateDate:
			parts = append(parts,
				fmt.Sprintf("updated_at:>='%s'", o.FromDate),
				fmt.Sprintf("updated_at:<='%s'", o.ToDate),
			)
		}
	}
	return parts
}

// List fetches all products in the filter window and returns them REST-shaped.
func (s *ProductService) List(ctx context.Context, opts ProductListOptions) ([]map[string]interface{}, error) {
	fields := opts.Fields
	if fields == "" {
		fields = defaultProductFields
	}
	spec := query.Spec{
		ConnectionName: "products",
		Fields:         fields,
		Filters:        opts.filter(),
		First:          opts.First,
		UseNodes:       true,
	}
	nodes, _, err := s.client.paginator.FetchAll(ctx, spec)
	if err != nil {
		return nil, err
	}
	out := make([]map[string]interface{}, 0, len(nodes))
	for _, node := range nodes {
		if product, ok := s.client.normalizer.NormalizeEntity(node); ok {
			out = append(out, product)
		}
	}
	return out, nil
}
