package layout

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadvanced/aurora-uix/internal/field"
	"github.com/wadvanced/aurora-uix/internal/resource"
)

func categoryResource() *resource.Resource {
	return resource.New("category", []field.Field{
		field.Resolve("id", "id", nil),
		field.Resolve("name", "string", nil),
		field.Resolve("parent_id", "", &field.Association{
			Cardinality: field.One, Related: "category", OwnerKey: "parent_id", RelatedKey: "id",
		}),
		field.Resolve("children", "", &field.Association{
			Cardinality: field.Many, Related: "category", OwnerKey: "id", RelatedKey: "parent_id",
		}),
	})
}

func TestSynthesize_IndexExcludesAssociations(t *testing.T) {
	tree := Synthesize(categoryResource(), DefaultSettings(), TagIndex)
	assert.Equal(t, TagIndex, tree.Tag)
	assert.Equal(t, "category", tree.Name)
	assert.Equal(t, []string{"id", "name"}, childNames(tree))
	assert.Equal(t, []string{"id", "name"}, tree.Config.Fields)
}

func TestSynthesize_FormStacksAllFields(t *testing.T) {
	tree := Synthesize(categoryResource(), DefaultSettings(), TagForm)
	require.Len(t, tree.Children, 1)
	wrapper := tree.Children[0]
	assert.Equal(t, TagStacked, wrapper.Tag)
	assert.Equal(t, []string{"id", "name", "parent_id", "children"}, childNames(wrapper))
}

func TestSynthesize_InlineWhenConfigured(t *testing.T) {
	set := DefaultSettings()
	set.DefaultFieldsLayout = "inline"
	tree := Synthesize(categoryResource(), set, TagShow)
	require.Len(t, tree.Children, 1)
	assert.Equal(t, TagInline, tree.Children[0].Tag)
}
