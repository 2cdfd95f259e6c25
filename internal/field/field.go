// Package field resolves schema field metadata into the semantic records the
// layout engine arranges. A Field is computed once from the native schema type
// (plus association info when the field is relational), then overridden by
// user-declared per-field options.
package field

// Cardinality distinguishes to-one from to-many associations.
type Cardinality int

const (
	// One marks a many-to-one (belongs-to) association.
	One Cardinality = iota + 1
	// Many marks a one-to-many (has-many) association.
	Many
)

// Association carries the relational linkage for a field.
type Association struct {
	Cardinality Cardinality `json:"cardinality"`
	Related     string      `json:"related"`
	OwnerKey    string      `json:"owner_key"`
	RelatedKey  string      `json:"related_key"`
}

// Semantic field types produced by Resolve. Association types double as the
// HTML kind so the renderer can pick a selector widget or a nested table.
const (
	TypeString     = "string"
	TypeInteger    = "integer"
	TypeFloat      = "float"
	TypeDate       = "date"
	TypeTime       = "time"
	TypeDateTime   = "datetime"
	TypeBoolean    = "boolean"
	TypeMap        = "map"
	TypeManyToOne  = "many_to_one_association"
	TypeOneToMany  = "one_to_many_association"
)

// Field is the resolved metadata for one schema field.
type Field struct {
	Key         string       `json:"key"`
	Label       string       `json:"label"`
	Placeholder string       `json:"placeholder,omitempty"`
	Type        string       `json:"type"`
	HTMLType    string       `json:"html_type"`
	Length      int          `json:"length,omitempty"`
	Precision   int          `json:"precision,omitempty"`
	Scale       int          `json:"scale,omitempty"`
	Disabled    bool         `json:"disabled,omitempty"`
	Omitted     bool         `json:"omitted,omitempty"`
	Hidden      bool         `json:"hidden,omitempty"`
	Filterable  bool         `json:"filterable"`
	Assoc       *Association `json:"assoc,omitempty"`
}

// IsAssociation reports whether the field resolved to a relational type.
func (f Field) IsAssociation() bool {
	return f.Assoc != nil
}

// Apply returns a copy of f with user-declared options merged in. The user
// always wins; option keys outside the known set are ignored here (the layout
// node keeps them for the renderer).
func (f Field) Apply(opts map[string]any) Field {
	for k, v := range opts {
		switch k {
		case "label":
			if s, ok := v.(string); ok {
				f.Label = s
			}
		case "placeholder":
			if s, ok := v.(string); ok {
				f.Placeholder = s
			}
		case "html_type":
			if s, ok := v.(string); ok {
				f.HTMLType = s
			}
		case "length":
			if n, ok := toInt(v); ok {
				f.Length = n
			}
		case "precision":
			if n, ok := toInt(v); ok {
				f.Precision = n
			}
		case "scale":
			if n, ok := toInt(v); ok {
				f.Scale = n
			}
		case "disabled":
			if b, ok := v.(bool); ok {
				f.Disabled = b
			}
		case "omitted":
			if b, ok := v.(bool); ok {
				f.Omitted = b
			}
		case "hidden":
			if b, ok := v.(bool); ok {
				f.Hidden = b
			}
		case "filterable":
			if b, ok := v.(bool); ok {
				f.Filterable = b
			}
		}
	}
	return f
}

func toInt(v any) (int, bool) {
	switch n := v.(type) {
	case int:
		return n, true
	case int64:
		return int(n), true
	case float64:
		return int(n), true
	}
	return 0, false
}
