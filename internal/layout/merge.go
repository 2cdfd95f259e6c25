package layout

// Key identifies the group a fragment merges into. Fragments for different
// resources or different layout kinds never merge.
type Key struct {
	Resource string
	Tag      Tag
}

// Registry collects layout fragments produced by top-level declarations,
// preserving registration order per (resource, tag) group.
type Registry struct {
	order []Key
	frags map[Key][]*Node
}

// NewRegistry returns an empty fragment registry.
func NewRegistry() *Registry {
	return &Registry{frags: make(map[Key][]*Node)}
}

// Register adds one container fragment. The fragment's Name is the resource.
func (r *Registry) Register(frag *Node) {
	k := Key{Resource: frag.Name, Tag: frag.Tag}
	if _, seen := r.frags[k]; !seen {
		r.order = append(r.order, k)
	}
	r.frags[k] = append(r.frags[k], frag)
}

// Keys returns the registered groups in first-registration order.
func (r *Registry) Keys() []Key {
	return append([]Key(nil), r.order...)
}

// Fragments returns the fragments registered under (resource, tag).
func (r *Registry) Fragments(resource string, tag Tag) []*Node {
	return r.frags[Key{Resource: resource, Tag: tag}]
}

// Resources returns the distinct resource names in first-registration order.
func (r *Registry) Resources() []string {
	var names []string
	seen := make(map[string]bool)
	for _, k := range r.order {
		if !seen[k.Resource] {
			seen[k.Resource] = true
			names = append(names, k.Resource)
		}
	}
	return names
}

// Merge folds fragments of one (resource, tag) group into a single tree.
// Options merge keyword-style (later value wins, first position kept) and
// children concatenate in declaration order. The input is never empty: each
// registered group has at least one member.
func Merge(fragments []*Node) *Node {
	acc := fragments[0].Clone()
	for _, frag := range fragments[1:] {
		acc.Options = acc.Options.Merge(frag.Options)
		for _, c := range frag.Children {
			acc.Children = append(acc.Children, c.Clone())
		}
		if len(frag.Config.Fields) > 0 {
			acc.Config.Fields = append(acc.Config.Fields, frag.Config.Fields...)
		}
		if acc.Config.Title == "" {
			acc.Config.Title = frag.Config.Title
		}
	}
	return acc
}
