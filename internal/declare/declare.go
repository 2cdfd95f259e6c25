// Package declare parses layout declaration files into layout fragments. The
// declaration language is HCL: top-level index/form/show blocks labeled with
// the resource name, nesting inline/stacked/group/sections/section/field
// blocks. Attributes outside the small reserved set pass through untouched as
// node options.
//
//	form "product" {
//		inline { fields = ["reference", "name"] }
//		sections {
//			section "Details" {
//				default = true
//				stacked { fields = ["description"] }
//			}
//		}
//	}
package declare

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"

	"github.com/wadvanced/aurora-uix/internal/layout"
)

// Attributes consumed by the parser itself; everything else is an option.
var reservedAttrs = map[string]bool{
	"fields":  true,
	"columns": true,
	"title":   true,
}

// ParseDir parses every .hcl file in dir, in filename order, and returns the
// declared fragments in declaration order.
func ParseDir(dir string) ([]*layout.Node, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading layout dir: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if !e.IsDir() && strings.HasSuffix(e.Name(), ".hcl") {
			paths = append(paths, filepath.Join(dir, e.Name()))
		}
	}
	sort.Strings(paths)

	var fragments []*layout.Node
	for _, p := range paths {
		src, err := os.ReadFile(p)
		if err != nil {
			return nil, fmt.Errorf("reading %s: %w", p, err)
		}
		frags, err := Parse(src, p)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, frags...)
	}
	return fragments, nil
}

// Parse parses one declaration source into container fragments.
func Parse(src []byte, filename string) ([]*layout.Node, error) {
	file, diags := hclparse.NewParser().ParseHCL(src, filename)
	if diags.HasErrors() {
		return nil, fmt.Errorf("parsing %s: %w", filename, diags)
	}
	body, ok := file.Body.(*hclsyntax.Body)
	if !ok {
		return nil, fmt.Errorf("parsing %s: unexpected body type", filename)
	}

	var fragments []*layout.Node
	for _, block := range body.Blocks {
		tag, err := layout.ParseTag(block.Type)
		if err != nil {
			return nil, blockErr(block, err)
		}
		if !tag.IsContainer() {
			return nil, blockErr(block, fmt.Errorf("%s is not a top-level layout kind", block.Type))
		}
		frag, err := decodeBlock(block)
		if err != nil {
			return nil, err
		}
		fragments = append(fragments, frag)
	}
	return fragments, nil
}

func blockErr(block *hclsyntax.Block, err error) error {
	r := block.DefRange()
	return fmt.Errorf("%s:%d: %w", r.Filename, r.Start.Line, err)
}

func decodeBlock(block *hclsyntax.Block) (*layout.Node, error) {
	tag, err := layout.ParseTag(block.Type)
	if err != nil {
		return nil, blockErr(block, err)
	}

	var name string
	cfg := layout.Config{}
	switch {
	case tag.IsContainer():
		if len(block.Labels) != 1 || block.Labels[0] == "" {
			return nil, blockErr(block, fmt.Errorf("%s block requires a resource name label", block.Type))
		}
		name = block.Labels[0]
	case tag == layout.TagField:
		if len(block.Labels) != 1 {
			return nil, blockErr(block, fmt.Errorf("field block requires a field name label"))
		}
		name = block.Labels[0]
	case tag == layout.TagGroup || tag == layout.TagSection:
		if len(block.Labels) > 0 {
			cfg.Title = block.Labels[0]
		}
	default:
		if len(block.Labels) > 0 {
			return nil, blockErr(block, fmt.Errorf("%s block takes no label", block.Type))
		}
	}

	opts, defs, err := decodeAttributes(block)
	if err != nil {
		return nil, err
	}
	if cfg.Title == "" {
		if t := opts.String("title"); t != "" {
			cfg.Title = t
		}
	}

	var children []*layout.Node
	for _, child := range block.Body.Blocks {
		node, err := decodeBlock(child)
		if err != nil {
			return nil, err
		}
		children = append(children, node)
	}

	if len(defs) > 0 {
		node := layout.Build(tag, name, cfg, opts)
		expanded, fieldChildren := expandDefs(cfg, defs)
		node.Config = expanded
		node.Children = append(fieldChildren, children...)
		return node, nil
	}
	return layout.Build(tag, name, cfg, opts, children...), nil
}

// decodeAttributes evaluates a block's attributes in source order, splitting
// the field-list attribute from pass-through options.
func decodeAttributes(block *hclsyntax.Block) (layout.Options, []layout.FieldDef, error) {
	attrs := make([]*hclsyntax.Attribute, 0, len(block.Body.Attributes))
	for _, a := range block.Body.Attributes {
		attrs = append(attrs, a)
	}
	sort.Slice(attrs, func(i, j int) bool {
		return attrs[i].SrcRange.Start.Byte < attrs[j].SrcRange.Start.Byte
	})

	var opts layout.Options
	var defs []layout.FieldDef
	for _, a := range attrs {
		val, diags := a.Expr.Value(nil)
		if diags.HasErrors() {
			return nil, nil, fmt.Errorf("%s:%d: evaluating %s: %w",
				a.SrcRange.Filename, a.SrcRange.Start.Line, a.Name, diags)
		}
		gv, err := ctyToGo(val)
		if err != nil {
			return nil, nil, fmt.Errorf("%s:%d: attribute %s: %w",
				a.SrcRange.Filename, a.SrcRange.Start.Line, a.Name, err)
		}

		switch a.Name {
		case "fields", "columns":
			list, ok := gv.([]any)
			if !ok {
				return nil, nil, fmt.Errorf("%s:%d: %s must be a list",
					a.SrcRange.Filename, a.SrcRange.Start.Line, a.Name)
			}
			parsed, err := parseFieldDefs(list)
			if err != nil {
				return nil, nil, fmt.Errorf("%s:%d: %s: %w",
					a.SrcRange.Filename, a.SrcRange.Start.Line, a.Name, err)
			}
			defs = append(defs, parsed...)
		case "title":
			opts = append(opts, layout.Option{Key: "title", Value: gv})
		default:
			opts = append(opts, layout.Option{Key: a.Name, Value: gv})
		}
	}
	return opts, defs, nil
}

// parseFieldDefs accepts bare identifiers and {name = ..., option...} objects.
func parseFieldDefs(list []any) ([]layout.FieldDef, error) {
	defs := make([]layout.FieldDef, 0, len(list))
	for _, item := range list {
		switch v := item.(type) {
		case string:
			defs = append(defs, layout.FieldKey(v))
		case map[string]any:
			name, _ := v["name"].(string)
			if name == "" {
				return nil, fmt.Errorf("field entry object requires a name")
			}
			var opts layout.Options
			keys := make([]string, 0, len(v))
			for k := range v {
				if k != "name" {
					keys = append(keys, k)
				}
			}
			sort.Strings(keys)
			for _, k := range keys {
				opts = append(opts, layout.Option{Key: k, Value: v[k]})
			}
			defs = append(defs, layout.FieldOpts(name, opts))
		default:
			return nil, fmt.Errorf("field entry must be a string or object, got %T", item)
		}
	}
	return defs, nil
}

func expandDefs(cfg layout.Config, defs []layout.FieldDef) (layout.Config, []*layout.Node) {
	cfg.Fields = make([]string, len(defs))
	children := make([]*layout.Node, len(defs))
	for i, d := range defs {
		cfg.Fields[i] = d.Key
		children[i] = layout.FieldRef(d)
	}
	return cfg, children
}
