package layout

// FieldDef is one entry of a field-list declaration: a field key plus any
// per-field options. Bare identifiers become defs with no options.
type FieldDef struct {
	Key     string
	Options Options
}

// FieldKey wraps a bare identifier into a FieldDef.
func FieldKey(key string) FieldDef {
	return FieldDef{Key: key}
}

// FieldOpts wraps a (identifier, options) pair into a FieldDef. Option values
// are expected to be fully evaluated by the declaration layer; nothing here is
// deferred.
func FieldOpts(key string, opts Options) FieldDef {
	return FieldDef{Key: key, Options: opts}
}

// FieldKeys converts bare identifiers into a FieldDef list.
func FieldKeys(keys ...string) []FieldDef {
	defs := make([]FieldDef, len(keys))
	for i, k := range keys {
		defs[i] = FieldDef{Key: k}
	}
	return defs
}

// Build converts a single declaration into a layout node. The nested block is
// passed as an already-flattened child sequence; nil children are dropped so
// an absent block becomes an empty list.
func Build(tag Tag, name string, cfg Config, opts Options, children ...*Node) *Node {
	n := &Node{
		Tag:     tag,
		Name:    name,
		Options: opts,
		Config:  cfg,
	}
	for _, c := range children {
		if c != nil {
			n.Children = append(n.Children, c)
		}
	}
	return n
}

// Container builds a top-level Index/Form/Show node for a resource.
func Container(tag Tag, resource string, opts Options, children ...*Node) *Node {
	return Build(tag, resource, Config{}, opts, children...)
}

// expandFields converts a field-list config into Field-tag child nodes and
// records the key order on the config.
func expandFields(cfg Config, defs []FieldDef) (Config, []*Node) {
	if len(defs) == 0 {
		return cfg, nil
	}
	cfg.Fields = make([]string, len(defs))
	children := make([]*Node, len(defs))
	for i, d := range defs {
		cfg.Fields[i] = d.Key
		children[i] = &Node{Tag: TagField, Name: d.Key, Options: d.Options}
	}
	return cfg, children
}

// Inline arranges the given fields left-to-right.
func Inline(opts Options, defs ...FieldDef) *Node {
	cfg, children := expandFields(Config{}, defs)
	return Build(TagInline, "", cfg, opts, children...)
}

// Stacked arranges the given fields top-to-bottom.
func Stacked(opts Options, defs ...FieldDef) *Node {
	cfg, children := expandFields(Config{}, defs)
	return Build(TagStacked, "", cfg, opts, children...)
}

// Group wraps children under a titled box.
func Group(title string, opts Options, children ...*Node) *Node {
	return Build(TagGroup, "", Config{Title: title}, opts, children...)
}

// GroupFields is a Group whose block is a plain field list.
func GroupFields(title string, opts Options, defs ...FieldDef) *Node {
	cfg, children := expandFields(Config{Title: title}, defs)
	return Build(TagGroup, "", cfg, opts, children...)
}

// Sections wraps Section children into a tab strip. Ids and indices are
// assigned during normalization.
func Sections(opts Options, children ...*Node) *Node {
	return Build(TagSections, "", Config{}, opts, children...)
}

// Section is one tab of an enclosing Sections scope.
func Section(title string, opts Options, children ...*Node) *Node {
	return Build(TagSection, "", Config{Title: title}, opts, children...)
}

// FieldRef builds a standalone Field node.
func FieldRef(def FieldDef) *Node {
	return &Node{Tag: TagField, Name: def.Key, Options: def.Options}
}
