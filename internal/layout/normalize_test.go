package layout

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func isActive(n *Node) bool {
	return n.Config.Active != nil && *n.Config.Active
}

func TestNormalize_FirstSectionActiveWhenNoDefault(t *testing.T) {
	tree := Container(TagForm, "product", nil,
		Sections(nil,
			Section("One", nil),
			Section("Two", nil),
			Section("Three", nil),
		),
	)

	norm := Normalize(tree)
	sections := norm.Children[0]
	require.Len(t, sections.Children, 3)
	assert.True(t, isActive(sections.Children[0]))
	assert.False(t, isActive(sections.Children[1]))
	assert.False(t, isActive(sections.Children[2]))
}

func TestNormalize_ExplicitDefaultWins(t *testing.T) {
	tree := Container(TagForm, "product", nil,
		Sections(nil,
			Section("One", nil),
			Section("Two", Options{{Key: "default", Value: true}}),
			Section("Three", nil),
		),
	)

	sections := Normalize(tree).Children[0]
	assert.False(t, isActive(sections.Children[0]))
	assert.True(t, isActive(sections.Children[1]))
	assert.False(t, isActive(sections.Children[2]))
}

func TestNormalize_FirstDeclaredDefaultWins(t *testing.T) {
	tree := Container(TagForm, "product", nil,
		Sections(nil,
			Section("One", Options{{Key: "default", Value: true}}),
			Section("Two", Options{{Key: "default", Value: true}}),
		),
	)

	sections := Normalize(tree).Children[0]
	assert.True(t, isActive(sections.Children[0]))
	assert.False(t, isActive(sections.Children[1]))
}

func TestNormalize_ExactlyOneActivePerScope(t *testing.T) {
	tree := Container(TagShow, "product", nil,
		Sections(nil,
			Section("A", nil),
			Section("B", Options{{Key: "default", Value: true}}),
		),
		Sections(nil,
			Section("C", nil),
			Section("D", nil),
		),
	)

	norm := Normalize(tree)
	for _, sections := range norm.Children {
		count := 0
		for _, s := range sections.Children {
			if isActive(s) {
				count++
			}
		}
		assert.Equal(t, 1, count, "scope %s", sections.Config.ID)
	}
}

func TestNormalize_SectionsIndexGlobalAndMonotonic(t *testing.T) {
	tree := Container(TagForm, "product", nil,
		Sections(nil,
			Section("Outer", nil,
				Sections(nil,
					Section("Inner", nil),
				),
			),
		),
		Sections(nil,
			Section("Later", nil),
		),
	)

	norm := Normalize(tree)
	first := norm.Children[0]
	nested := first.Children[0].Children[0]
	second := norm.Children[1]

	assert.Equal(t, 1, first.Config.SectionsIndex)
	assert.Equal(t, 2, nested.Config.SectionsIndex)
	assert.Equal(t, 3, second.Config.SectionsIndex)
}

func TestNormalize_TabIndexResetsPerScope(t *testing.T) {
	tree := Container(TagForm, "product", nil,
		Sections(nil,
			Section("A", nil),
			Section("B", nil,
				Sections(nil,
					Section("B1", nil),
					Section("B2", nil),
				),
			),
		),
		Sections(nil,
			Section("C", nil),
		),
	)

	norm := Normalize(tree)
	outer := norm.Children[0]
	assert.Equal(t, 1, outer.Children[0].Config.TabIndex)
	assert.Equal(t, 2, outer.Children[1].Config.TabIndex)

	inner := outer.Children[1].Children[0]
	assert.Equal(t, 1, inner.Children[0].Config.TabIndex)
	assert.Equal(t, 2, inner.Children[1].Config.TabIndex)

	sibling := norm.Children[1]
	assert.Equal(t, 1, sibling.Children[0].Config.TabIndex)
}

func TestNormalize_IdsAndParentWiring(t *testing.T) {
	tree := Container(TagForm, "product", nil,
		Sections(nil,
			Section("Details", nil,
				Sections(nil,
					Section("Nested", nil),
				),
			),
		),
	)

	norm := Normalize(tree)
	outer := norm.Children[0]
	assert.Equal(t, "uix-product-form-sections-1", outer.Config.ID)

	details := outer.Children[0]
	assert.Equal(t, "uix-product-form-sections-1-tab-1", details.Config.ID)
	assert.Equal(t, outer.Config.ID, details.Config.SectionsID)
	assert.Equal(t, 1, details.Config.SectionsIndex)
	assert.Empty(t, details.Config.TabParentID)

	inner := details.Children[0]
	assert.Equal(t, "uix-product-form-sections-2", inner.Config.ID)

	nested := inner.Children[0]
	assert.Equal(t, details.Config.ID, nested.Config.TabParentID)
	assert.Equal(t, inner.Config.ID, nested.Config.SectionsID)
	assert.Equal(t, 2, nested.Config.SectionsIndex)
}

func TestNormalize_TabsSummary(t *testing.T) {
	tree := Container(TagForm, "product", nil,
		Sections(nil,
			Section("General", nil),
			Section("Pricing", Options{{Key: "default", Value: true}}),
		),
	)

	sections := Normalize(tree).Children[0]
	tabs := sections.Config.Tabs
	require.Len(t, tabs, 2)
	assert.Equal(t, "General", tabs[0].Label)
	assert.False(t, tabs[0].Active)
	assert.Equal(t, 1, tabs[0].Index)
	assert.Equal(t, "Pricing", tabs[1].Label)
	assert.True(t, tabs[1].Active)
	assert.Equal(t, 2, tabs[1].Index)
	assert.Equal(t, sections.Children[0].Config.ID, tabs[0].ID)
}

func TestNormalize_RetroactiveFixupReflectedInTabs(t *testing.T) {
	tree := Container(TagForm, "product", nil,
		Sections(nil,
			Section("Only", nil),
		),
	)

	sections := Normalize(tree).Children[0]
	require.Len(t, sections.Config.Tabs, 1)
	assert.True(t, sections.Config.Tabs[0].Active)
}

func TestNormalize_NoopOnIndex(t *testing.T) {
	tree := Container(TagIndex, "product", nil, FieldRef(FieldKey("name")))
	norm := Normalize(tree)
	assert.Equal(t, TagIndex, norm.Tag)
	assert.Empty(t, norm.Config.ID)
}

func TestNormalize_InputTreeUnchanged(t *testing.T) {
	tree := Container(TagForm, "product", nil,
		Sections(nil, Section("One", nil)),
	)
	_ = Normalize(tree)
	assert.Empty(t, tree.Children[0].Config.ID)
	assert.Nil(t, tree.Children[0].Children[0].Config.Active)
}

func TestNormalize_Deterministic(t *testing.T) {
	tree := Container(TagForm, "product", nil,
		Group("Main", nil, Inline(nil, FieldKey("reference"), FieldKey("name"))),
		Sections(nil,
			Section("A", nil, Stacked(nil, FieldKey("description"))),
			Section("B", nil),
		),
	)

	a := Normalize(tree)
	b := Normalize(tree)
	if diff := cmp.Diff(a, b); diff != "" {
		t.Errorf("normalization not deterministic (-first +second):\n%s", diff)
	}
}
