// Package resource holds the per-resource field metadata map the layout
// engine consumes. Resources are produced by schema introspection — CUE
// definition files or Ent schemas — and are immutable afterwards.
package resource

import (
	"fmt"

	"github.com/wadvanced/aurora-uix/internal/field"
)

// Resource is one introspected schema: its name plus resolved fields in
// schema declaration order.
type Resource struct {
	Name   string
	Fields []field.Field

	byKey map[string]field.Field
}

// New builds a Resource and indexes its fields by key.
func New(name string, fields []field.Field) *Resource {
	r := &Resource{
		Name:   name,
		Fields: fields,
		byKey:  make(map[string]field.Field, len(fields)),
	}
	for _, f := range fields {
		r.byKey[f.Key] = f
	}
	return r
}

// Field returns the resolved field for key.
func (r *Resource) Field(key string) (field.Field, bool) {
	f, ok := r.byKey[key]
	return f, ok
}

// Override applies user-declared per-field options on top of the resolved
// metadata. Unknown keys are an error: a typo in an override would otherwise
// vanish silently.
func (r *Resource) Override(key string, opts map[string]any) error {
	f, ok := r.byKey[key]
	if !ok {
		return fmt.Errorf("resource %s has no field %q", r.Name, key)
	}
	f = f.Apply(opts)
	r.byKey[key] = f
	for i := range r.Fields {
		if r.Fields[i].Key == key {
			r.Fields[i] = f
			break
		}
	}
	return nil
}

// Map is a set of resources keyed by name.
type Map map[string]*Resource
