package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func childNames(n *Node) []string {
	names := make([]string, len(n.Children))
	for i, c := range n.Children {
		names[i] = c.Name
	}
	return names
}

func TestMerge_ChildrenConcatInDeclarationOrder(t *testing.T) {
	f1 := Container(TagForm, "product", nil, Inline(nil, FieldKey("reference")))
	f2 := Container(TagForm, "product", nil, Inline(nil, FieldKey("name")), Inline(nil, FieldKey("description")))
	f3 := Container(TagForm, "product", nil, Stacked(nil, FieldKey("quantity")))

	merged := Merge([]*Node{f1, f2, f3})
	require.Len(t, merged.Children, 4)
	assert.Equal(t, "reference", merged.Children[0].Children[0].Name)
	assert.Equal(t, "name", merged.Children[1].Children[0].Name)
	assert.Equal(t, "description", merged.Children[2].Children[0].Name)
	assert.Equal(t, "quantity", merged.Children[3].Children[0].Name)

	// Same result regardless of grouping.
	grouped := Merge([]*Node{Merge([]*Node{f1, f2}), f3})
	assert.Equal(t, len(merged.Children), len(grouped.Children))
}

func TestMerge_LaterOptionValueWins(t *testing.T) {
	f1 := Container(TagForm, "product", Options{{Key: "title", Value: "A"}, {Key: "rows", Value: 2}})
	f2 := Container(TagForm, "product", Options{{Key: "title", Value: "B"}})

	merged := Merge([]*Node{f1, f2})
	v, ok := merged.Options.Get("title")
	require.True(t, ok)
	assert.Equal(t, "B", v)

	// First-declared key keeps its position.
	assert.Equal(t, "title", merged.Options[0].Key)
	assert.Equal(t, "rows", merged.Options[1].Key)
}

func TestMerge_UnknownOptionsPassThrough(t *testing.T) {
	f1 := Container(TagForm, "product", Options{{Key: "renderer_hint", Value: "wide"}})
	f2 := Container(TagForm, "product", Options{{Key: "another", Value: 42}})

	merged := Merge([]*Node{f1, f2})
	v, ok := merged.Options.Get("renderer_hint")
	require.True(t, ok)
	assert.Equal(t, "wide", v)
	v, ok = merged.Options.Get("another")
	require.True(t, ok)
	assert.Equal(t, 42, v)
}

func TestMerge_SingleFragmentIsItself(t *testing.T) {
	f := Container(TagIndex, "product", nil, FieldRef(FieldKey("name")))
	merged := Merge([]*Node{f})
	assert.Equal(t, TagIndex, merged.Tag)
	assert.Equal(t, []string{"name"}, childNames(merged))
	// Merge clones: mutating the result leaves the fragment alone.
	merged.Children[0].Name = "changed"
	assert.Equal(t, "name", f.Children[0].Name)
}

func TestRegistry_GroupsByResourceAndTag(t *testing.T) {
	reg := NewRegistry()
	reg.Register(Container(TagForm, "product", nil))
	reg.Register(Container(TagForm, "customer", nil))
	reg.Register(Container(TagForm, "product", nil))
	reg.Register(Container(TagIndex, "product", nil))

	assert.Len(t, reg.Fragments("product", TagForm), 2)
	assert.Len(t, reg.Fragments("customer", TagForm), 1)
	assert.Len(t, reg.Fragments("product", TagIndex), 1)
	assert.Empty(t, reg.Fragments("product", TagShow))
	assert.Equal(t, []string{"product", "customer"}, reg.Resources())
}
