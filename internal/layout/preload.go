package layout

import (
	"github.com/wadvanced/aurora-uix/internal/resource"
)

// Preload names a relational field whose related rows must be eagerly loaded
// before rendering, with at most one level of nested plan.
type Preload struct {
	Field   string    `json:"field"`
	Related string    `json:"related"`
	Nested  []Preload `json:"nested,omitempty"`
}

// kindOrder fixes the walk order over a resource's trees so extraction is
// deterministic.
var kindOrder = []Tag{TagIndex, TagForm, TagShow}

// ExtractPreloads collects the deduplicated (field, related resource) pairs
// of a resource's association fields: first by walking every kind-tree in
// document order, then by appending schema associations no tree references.
// The data layer must eager-load an association even when the current layouts
// leave the field out (the default index does, always), so schema presence
// alone is enough to demand a preload.
func ExtractPreloads(trees map[Tag]*Node, res *resource.Resource) []Preload {
	var out []Preload
	seen := make(map[string]bool)
	for _, kind := range kindOrder {
		collectPreloads(trees[kind], res, seen, &out)
	}
	for _, f := range res.Fields {
		if f.IsAssociation() && !seen[f.Key] {
			seen[f.Key] = true
			out = append(out, Preload{Field: f.Key, Related: f.Assoc.Related})
		}
	}
	return out
}

func collectPreloads(n *Node, res *resource.Resource, seen map[string]bool, out *[]Preload) {
	if n == nil {
		return
	}
	if n.Tag == TagField {
		f, ok := res.Field(n.Name)
		if ok && f.IsAssociation() && !seen[n.Name] {
			seen[n.Name] = true
			*out = append(*out, Preload{Field: n.Name, Related: f.Assoc.Related})
		}
		return
	}
	for _, c := range n.Children {
		collectPreloads(c, res, seen, out)
	}
}

// ExpandAssociations resolves one level of transitive closure over the direct
// preloads of every resource. A relation leading back to the originating
// resource is truncated to an empty nested list so mutual references cannot
// expand forever; deeper chains are never expanded automatically.
func ExpandAssociations(byResource map[string][]Preload) map[string][]Preload {
	out := make(map[string][]Preload, len(byResource))
	for name, direct := range byResource {
		expanded := make([]Preload, len(direct))
		for i, p := range direct {
			expanded[i] = Preload{Field: p.Field, Related: p.Related}
			for _, q := range byResource[p.Related] {
				nested := Preload{Field: q.Field, Related: q.Related}
				expanded[i].Nested = append(expanded[i].Nested, nested)
			}
		}
		out[name] = expanded
	}
	return out
}
