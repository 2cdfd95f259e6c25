package resource

import (
	"fmt"

	"entgo.io/ent"
	entfield "entgo.io/ent/schema/field"

	"github.com/wadvanced/aurora-uix/internal/field"
)

// EntSchema is the slice of an Ent schema this adapter reads. Any type
// embedding ent.Schema satisfies it.
type EntSchema interface {
	Fields() []ent.Field
	Edges() []ent.Edge
}

// FromEnt derives a Resource from an Ent schema's field and edge descriptors,
// so projects already carrying Ent schemas need no second declaration. The
// implicit id column is prepended; mixin fields follow the schema's own
// columns; edges become association fields last, in edge order.
func FromEnt(name string, s EntSchema) (*Resource, error) {
	declared := s.Fields()
	if m, ok := s.(interface{ Mixin() []ent.Mixin }); ok {
		for _, mx := range m.Mixin() {
			declared = append(declared, mx.Fields()...)
		}
	}

	fields := []field.Field{field.Resolve("id", "id", nil)}

	for _, f := range declared {
		desc := f.Descriptor()
		native, err := nativeFromEnt(desc.Info.Type)
		if err != nil {
			return nil, fmt.Errorf("resource %s, field %s: %w", name, desc.Name, err)
		}
		resolved := field.Resolve(desc.Name, native, nil)
		if desc.Size > 0 {
			resolved = resolved.Apply(map[string]any{"length": int(desc.Size)})
		}
		fields = append(fields, resolved)
	}

	for _, e := range s.Edges() {
		desc := e.Descriptor()
		related := field.ToSnake(desc.Type)
		var assoc *field.Association
		key := desc.Name
		if desc.Unique {
			key = desc.Name + "_id"
			assoc = &field.Association{
				Cardinality: field.One,
				Related:     related,
				OwnerKey:    key,
				RelatedKey:  "id",
			}
		} else {
			assoc = &field.Association{
				Cardinality: field.Many,
				Related:     related,
				OwnerKey:    "id",
				RelatedKey:  name + "_id",
			}
		}
		fields = append(fields, field.Resolve(key, "", assoc))
	}

	return New(name, fields), nil
}

// nativeFromEnt maps Ent column types onto the resolver's native type tags.
func nativeFromEnt(t entfield.Type) (string, error) {
	switch t {
	case entfield.TypeString, entfield.TypeEnum:
		return "string", nil
	case entfield.TypeUUID:
		return "uuid", nil
	case entfield.TypeBool:
		return "boolean", nil
	case entfield.TypeTime:
		return "utc_datetime", nil
	case entfield.TypeJSON, entfield.TypeBytes, entfield.TypeOther:
		return "map", nil
	case entfield.TypeInt, entfield.TypeInt8, entfield.TypeInt16, entfield.TypeInt32, entfield.TypeInt64,
		entfield.TypeUint, entfield.TypeUint8, entfield.TypeUint16, entfield.TypeUint32, entfield.TypeUint64:
		return "integer", nil
	case entfield.TypeFloat32, entfield.TypeFloat64:
		return "float", nil
	default:
		return "", fmt.Errorf("unsupported ent column type %s", t)
	}
}
