// Package schema holds the example catalog Ent schemas. They are consumed by
// the resource adapter (internal/resource.FromEnt) to derive layout field
// metadata; no code generation or database is involved.
package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
)

// Product is a sellable catalog item.
type Product struct {
	ent.Schema
}

// Mixin of the Product.
func (Product) Mixin() []ent.Mixin {
	return []ent.Mixin{
		TimestampsMixin{},
	}
}

// Fields of the Product.
func (Product) Fields() []ent.Field {
	return []ent.Field{
		field.String("reference").
			MaxLen(30).
			Unique(),
		field.String("name").
			MaxLen(100),
		field.String("description").
			Optional(),
		field.Float("list_price"),
		field.Float("rrp"),
		field.Int("quantity_at_hand"),
		field.Bool("inactive").
			Default(false),
	}
}

// Edges of the Product.
func (Product) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("product_location", ProductLocation.Type).
			Unique(),
	}
}
