package layout

import (
	"github.com/wadvanced/aurora-uix/internal/resource"
)

// Settings are the global options steering default synthesis and variant
// filling.
type Settings struct {
	// DefaultFieldsLayout selects the wrapper for synthesized form/show
	// layouts: "stacked" (default) or "inline".
	DefaultFieldsLayout string
	// FillRules derive missing layout variants, applied in order.
	FillRules []FillRule
}

// DefaultSettings derives Show from Form and Form from Show, stacking fields.
func DefaultSettings() Settings {
	return Settings{
		DefaultFieldsLayout: "stacked",
		FillRules: []FillRule{
			{Source: TagForm, Target: TagShow},
			{Source: TagShow, Target: TagForm},
		},
	}
}

// Synthesize generates the default tree for a resource/kind pair with no
// explicit layout. Index layouts list every non-association field as a
// column, in schema order; form/show layouts stack (or inline) all fields,
// associations included.
func Synthesize(res *resource.Resource, set Settings, kind Tag) *Node {
	if kind == TagIndex {
		var defs []FieldDef
		for _, f := range res.Fields {
			if f.IsAssociation() {
				continue
			}
			defs = append(defs, FieldDef{Key: f.Key})
		}
		cfg, children := expandFields(Config{}, defs)
		return Build(TagIndex, res.Name, cfg, nil, children...)
	}

	defs := make([]FieldDef, len(res.Fields))
	for i, f := range res.Fields {
		defs[i] = FieldDef{Key: f.Key}
	}
	wrapper := Stacked(nil, defs...)
	if set.DefaultFieldsLayout == "inline" {
		wrapper = Inline(nil, defs...)
	}
	return Build(kind, res.Name, Config{}, nil, wrapper)
}
