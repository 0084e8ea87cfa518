package merge

import (
	"context"

	"github.com/jensneuse/abstractlogger"

	"github.com/mericlorris-hash/vanilio/pkg/connection"
	"github.com/mericlorris-hash/vanilio/pkg/normalize"
	"github.com/mericlorris-hash/vanilio/pkg/query"
)

// FieldGroup is one independently paginated slice of an entity's selection.
type FieldGroup struct {
	Name   string
	Fields string
}

// Merger fetches every field group of a connection to exhaustion, deep-merges
// the partial nodes per entity id and normalizes the merged records.
type Merger struct {
	paginator  *connection.Paginator
	normalizer *normalize.Normalizer
	log        abstractlogger.Logger
}

type Option func(*Merger)

func WithLogger(log abstractlogger.Logger) Option {
	return func(m *Merger) {
		m.log = log
	}
}

func NewMerger(paginator *connection.Paginator, normalizer *normalize.Normalizer, options ...Option) *Merger {
	m := &Merger{
		paginator:  paginator,
		normalizer: normalizer,
		log:        abstractlogger.NoopLogger,
	}
	for _, option := range options {
		option(m)
	}
	return m
}

// FetchMerged runs base once per field group (replacing only the node
// selection), merges by entity id and returns the normalized entities in
// first-seen order. Transport and parser errors propagate unchanged; there is
// no partial-result suppression.
func (m *Merger) FetchMerged(ctx context.Context, base query.Spec, groups []FieldGroup) ([]map[string]interface{}, error) {
	acc := NewAccumulator()
	for _, group := range groups {
		spec := base
		spec.Fields = group.Fields
		spec.Selection = nil
		items, _, err := m.paginator.FetchAll(ctx, spec)
		if err != nil {
			return nil, err
		}
		m.log.Debug("merge: fetched field group",
			abstractlogger.String("group", group.Name),
			abstractlogger.Int("items", len(items)),
		)
		acc.Add(items)
	}

	merged := acc.Merged()
	out := make([]map[string]interface{}, 0, len(merged))
	for _, entity := range merged {
		normalized, ok := m.normalizer.NormalizeEntity(entity)
		if !ok {
			continue
		}
		out = append(out, normalized)
	}
	return out, nil
}
