// Package merge reassembles entities whose fields were fetched through
// multiple independently paginated field-group queries, keeping each query
// under the API's cost budget while still producing one complete record per
// entity.
package merge

// Accumulator collects partial raw nodes per entity, keyed by the raw global
// id under "id" (pre-normalization). Entity order is first-seen order across
// all contributed groups.
type Accumulator struct {
	order []string
	parts map[string][]map[string]interface{}
}

func NewAccumulator() *Accumulator {
	return &Accumulator{
		parts: make(map[string][]map[string]interface{}),
	}
}

// Add appends one group's nodes. Nodes without an id are skipped.
func (a *Accumulator) Add(nodes []map[string]interface{}) {
	for _, node := range nodes {
		id, ok := node["id"].(string)
		if !ok || id == "" {
			continue
		}
		if _, seen := a.parts[id]; !seen {
			a.order = append(a.order, id)
		}
		a.parts[id] = append(a.parts[id], node)
	}
}

// Merged deep-merges each entity's contributions in group order and returns
// the entities in first-seen order.
func (a *Accumulator) Merged() []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(a.order))
	for _, id := range a.order {
		merged := map[string]interface{}{}
		for _, part := range a.parts[id] {
			deepMergeInto(merged, part)
		}
		out = append(out, merged)
	}
	return out
}

// DeepMerge merges a sequence of mappings into one: nested mappings merge
// keywise, any other overlapping value is overwritten by the later mapping.
func DeepMerge(parts ...map[string]interface{}) map[string]interface{} {
	merged := map[string]interface{}{}
	for _, part := range parts {
		deepMergeInto(merged, part)
	}
	return merged
}

func deepMergeInto(dst, src map[string]interface{}) {
	for key, value := range src {
		if incoming, ok := value.(map[string]interface{}); ok {
			existing, ok := dst[key].(map[string]interface{})
			if !ok {
				existing = make(map[string]interface{}, len(incoming))
				dst[key] = existing
			}
			deepMergeInto(existing, incoming)
			continue
		}
		dst[key] = value
	}
}
