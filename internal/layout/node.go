// Package layout implements the layout-tree engine: building nodes from
// declarations, merging partial fragments, synthesizing defaults, filling
// missing variants, normalizing section/tab state, and extracting association
// preloads. The normalized trees are consumed by the renderer as-is; nothing
// in this package mutates a tree after normalization completes.
package layout

import (
	"encoding/json"
	"fmt"
)

// Tag is the closed set of layout node kinds.
type Tag int

const (
	// Container tags. Exactly one container node exists per (resource, kind)
	// pair after merging.
	TagIndex Tag = iota + 1
	TagForm
	TagShow

	// Sub-layout tags.
	TagInline
	TagStacked
	TagGroup
	TagSections
	TagSection
	TagField
)

var tagNames = map[Tag]string{
	TagIndex:    "index",
	TagForm:     "form",
	TagShow:     "show",
	TagInline:   "inline",
	TagStacked:  "stacked",
	TagGroup:    "group",
	TagSections: "sections",
	TagSection:  "section",
	TagField:    "field",
}

var tagValues = func() map[string]Tag {
	m := make(map[string]Tag, len(tagNames))
	for t, n := range tagNames {
		m[n] = t
	}
	return m
}()

func (t Tag) String() string {
	if n, ok := tagNames[t]; ok {
		return n
	}
	return fmt.Sprintf("tag(%d)", int(t))
}

// IsContainer reports whether t is a top-level layout kind.
func (t Tag) IsContainer() bool {
	return t == TagIndex || t == TagForm || t == TagShow
}

// ParseTag converts a declaration block name to its Tag.
func ParseTag(s string) (Tag, error) {
	if t, ok := tagValues[s]; ok {
		return t, nil
	}
	return 0, fmt.Errorf("unknown layout tag %q", s)
}

// MarshalJSON emits the tag name so generated schemas stay readable.
func (t Tag) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON accepts a tag name.
func (t *Tag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := ParseTag(s)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Option is one key/value entry of a node's ordered option list.
type Option struct {
	Key   string `json:"key"`
	Value any    `json:"value"`
}

// Options is an ordered key→value association list. Order is the declaration
// order of the first occurrence of each key; unrecognized keys pass through
// untouched for the renderer.
type Options []Option

// Get returns the value for key and whether it is present.
func (o Options) Get(key string) (any, bool) {
	for _, opt := range o {
		if opt.Key == key {
			return opt.Value, true
		}
	}
	return nil, false
}

// Bool returns the option value as a bool; absent or non-bool values are false.
func (o Options) Bool(key string) bool {
	v, ok := o.Get(key)
	if !ok {
		return false
	}
	b, _ := v.(bool)
	return b
}

// String returns the option value as a string, or "" when absent.
func (o Options) String(key string) string {
	v, ok := o.Get(key)
	if !ok {
		return ""
	}
	s, _ := v.(string)
	return s
}

// Merge combines o with later, keyword-merge style: the first-declared key
// keeps its position, but the later value wins on conflict. Keys only present
// in later are appended in their declaration order.
func (o Options) Merge(later Options) Options {
	if len(later) == 0 {
		return o.Clone()
	}
	merged := make(Options, 0, len(o)+len(later))
	merged = append(merged, o...)
	for _, opt := range later {
		replaced := false
		for i := range merged {
			if merged[i].Key == opt.Key {
				merged[i].Value = opt.Value
				replaced = true
				break
			}
		}
		if !replaced {
			merged = append(merged, opt)
		}
	}
	return merged
}

// Clone returns a shallow copy of the option list. Values are shared; option
// values are never mutated after building.
func (o Options) Clone() Options {
	if o == nil {
		return nil
	}
	return append(Options(nil), o...)
}

// Map flattens the option list for consumers that only need lookup.
func (o Options) Map() map[string]any {
	if len(o) == 0 {
		return nil
	}
	m := make(map[string]any, len(o))
	for _, opt := range o {
		m[opt.Key] = opt.Value
	}
	return m
}

// Tab summarizes one Section for the tab-strip widget of its Sections parent.
type Tab struct {
	ID     string `json:"id"`
	Label  string `json:"label"`
	Index  int    `json:"index"`
	Active bool   `json:"active"`
}

// Config is the tag-specific static payload of a node. Fields that do not
// apply to a node's tag stay at their zero value; "absent" booleans are
// modeled as explicit pointers.
type Config struct {
	// Title is the label text of Group and Section nodes.
	Title string `json:"title,omitempty"`
	// Fields is the field-list reference of Field-bearing containers
	// (inline/stacked/group and index columns), recorded in declaration order.
	Fields []string `json:"fields,omitempty"`

	// Populated by normalization.
	ID            string `json:"id,omitempty"`
	UID           string `json:"uid,omitempty"`
	Active        *bool  `json:"active,omitempty"`
	SectionsID    string `json:"sections_id,omitempty"`
	SectionsIndex int    `json:"sections_index,omitempty"`
	TabParentID   string `json:"tab_parent_id,omitempty"`
	TabIndex      int    `json:"tab_index,omitempty"`
	Tabs          []Tab  `json:"tabs,omitempty"`
}

func (c Config) clone() Config {
	out := c
	if c.Fields != nil {
		out.Fields = append([]string(nil), c.Fields...)
	}
	if c.Active != nil {
		b := *c.Active
		out.Active = &b
	}
	if c.Tabs != nil {
		out.Tabs = append([]Tab(nil), c.Tabs...)
	}
	return out
}

// Node is the atomic unit of a layout tree. Children render in order,
// top-to-bottom / left-to-right.
type Node struct {
	Tag      Tag     `json:"tag"`
	Name     string  `json:"name,omitempty"`
	Options  Options `json:"options,omitempty"`
	Config   Config  `json:"config"`
	Children []*Node `json:"children,omitempty"`
}

// Clone returns a deep copy of the subtree rooted at n.
func (n *Node) Clone() *Node {
	if n == nil {
		return nil
	}
	out := &Node{
		Tag:     n.Tag,
		Name:    n.Name,
		Options: n.Options.Clone(),
		Config:  n.Config.clone(),
	}
	if n.Children != nil {
		out.Children = make([]*Node, len(n.Children))
		for i, c := range n.Children {
			out.Children[i] = c.Clone()
		}
	}
	return out
}
