package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// ProductLocation is a warehouse or store position holding products.
type ProductLocation struct {
	ent.Schema
}

// Fields of the ProductLocation.
func (ProductLocation) Fields() []ent.Field {
	return []ent.Field{
		field.String("reference").
			MaxLen(30).
			Unique(),
		field.String("name").
			MaxLen(100),
		field.String("warehouse").
			Optional(),
	}
}

// Edges of the ProductLocation.
func (ProductLocation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("products", Product.Type).
			Ref("product_location"),
	}
}
