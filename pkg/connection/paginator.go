package connection

import (
	"context"

	"github.com/jensneuse/abstractlogger"

	"github.com/mericlorris-hash/vanilio/pkg/query"
)

// Client executes one GraphQL operation and returns the raw response
// envelope. *gqlclient.Client satisfies it.
type Client interface {
	Execute(ctx context.Context, query string, variables interface{}) ([]byte, error)
}

// Paginator drives a connection query across pages. Pagination is strictly
// sequential: each page's cursor comes from the previous page.
type Paginator struct {
	client Client
	log    abstractlogger.Logger
}

type Option func(*Paginator)

func WithLogger(log abstractlogger.Logger) Option {
	return func(p *Paginator) {
		p.log = log
	}
}

func NewPaginator(client Client, options ...Option) *Paginator {
	p := &Paginator{
		client: client,
		log:    abstractlogger.NoopLogger,
	}
	for _, option := range options {
		option(p)
	}
	return p
}

// FetchAll follows the cursor until the upstream reports no further page.
// Items keep page order and within-page order; duplicates across pages are
// the caller's concern. Termination relies on the upstream eventually
// reporting hasNextPage=false.
func (p *Paginator) FetchAll(ctx context.Context, spec query.Spec) ([]map[string]interface{}, Page, error) {
	return p.fetch(ctx, spec, false)
}

// FetchPage fetches a single page starting at spec.After and returns the
// pagination state so the caller can resume.
func (p *Paginator) FetchPage(ctx context.Context, spec query.Spec) ([]map[string]interface{}, Page, error) {
	return p.fetch(ctx, spec, true)
}

func (p *Paginator) fetch(ctx context.Context, spec query.Spec, stopAfterFirstPage bool) ([]map[string]interface{}, Page, error) {
	var (
		items []map[string]interface{}
		last  Page
	)
	cursor := spec.After
	for {
		spec.After = cursor
		document, err := query.Build(spec)
		if err != nil {
			return nil, Page{}, err
		}
		body, err := p.client.Execute(ctx, document, nil)
		if err != nil {
			return nil, Page{}, err
		}
		page, err := ParsePage(body, spec.ObjectName, spec.ConnectionName, spec.UseNodes)
		if err != nil {
			return nil, Page{}, err
		}
		items = append(items, page.Items...)
		last = page
		p.log.Debug("connection: fetched page",
			abstractlogger.String("connection", spec.ConnectionName),
			abstractlogger.Int("items", len(page.Items)),
			abstractlogger.Bool("has_next_page", page.HasNextPage),
			abstractlogger.String("end_cursor", page.EndCursor),
		)
		if stopAfterFirstPage || !page.HasNextPage {
			return items, last, nil
		}
		cursor = page.EndCursor
	}
}
