package resource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/wadvanced/aurora-uix/ent/schema"
	"github.com/wadvanced/aurora-uix/internal/field"
)

func TestFromEnt_Product(t *testing.T) {
	res, err := FromEnt("product", schema.Product{})
	require.NoError(t, err)

	keys := make([]string, len(res.Fields))
	for i, f := range res.Fields {
		keys[i] = f.Key
	}
	assert.Equal(t, []string{
		"id",
		"reference", "name", "description", "list_price", "rrp", "quantity_at_hand", "inactive",
		"created_at", "updated_at",
		"product_location_id",
	}, keys)
}

func TestFromEnt_ColumnTypes(t *testing.T) {
	res, err := FromEnt("product", schema.Product{})
	require.NoError(t, err)

	ref, _ := res.Field("reference")
	assert.Equal(t, field.TypeString, ref.Type)
	assert.Equal(t, 30, ref.Length, "MaxLen carries over as display length")

	price, _ := res.Field("list_price")
	assert.Equal(t, field.TypeFloat, price.Type)
	assert.Equal(t, "number", price.HTMLType)

	qty, _ := res.Field("quantity_at_hand")
	assert.Equal(t, field.TypeInteger, qty.Type)

	inactive, _ := res.Field("inactive")
	assert.Equal(t, "checkbox", inactive.HTMLType)
	assert.True(t, inactive.Disabled, "advisory disabled default applies")

	created, _ := res.Field("created_at")
	assert.Equal(t, field.TypeDateTime, created.Type)
	assert.True(t, created.Omitted)
}

func TestFromEnt_UniqueEdgeBecomesManyToOne(t *testing.T) {
	res, err := FromEnt("product", schema.Product{})
	require.NoError(t, err)

	loc, ok := res.Field("product_location_id")
	require.True(t, ok)
	require.NotNil(t, loc.Assoc)
	assert.Equal(t, field.One, loc.Assoc.Cardinality)
	assert.Equal(t, "product_location", loc.Assoc.Related)
	assert.Equal(t, "product_location_id", loc.Assoc.OwnerKey)
	assert.Equal(t, "id", loc.Assoc.RelatedKey)
}

func TestFromEnt_InverseEdgeBecomesOneToMany(t *testing.T) {
	res, err := FromEnt("product_location", schema.ProductLocation{})
	require.NoError(t, err)

	products, ok := res.Field("products")
	require.True(t, ok)
	require.NotNil(t, products.Assoc)
	assert.Equal(t, field.Many, products.Assoc.Cardinality)
	assert.Equal(t, "product", products.Assoc.Related)
	assert.Equal(t, "id", products.Assoc.OwnerKey)
	assert.Equal(t, "product_location_id", products.Assoc.RelatedKey)
}

func TestOverride_UnknownFieldFails(t *testing.T) {
	res := New("product", []field.Field{field.Resolve("name", "string", nil)})
	err := res.Override("ghost", map[string]any{"hidden": true})
	require.Error(t, err)

	require.NoError(t, res.Override("name", map[string]any{"hidden": true}))
	f, _ := res.Field("name")
	assert.True(t, f.Hidden)
}
