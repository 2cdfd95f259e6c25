package resource

import (
	"fmt"

	"cuelang.org/go/cue"
	"cuelang.org/go/cue/cuecontext"
	"cuelang.org/go/cue/load"

	"github.com/wadvanced/aurora-uix/internal/field"
)

// LoadCUE loads resource definitions from a CUE package directory. The
// expected shape is a top-level "resources" struct mapping each resource name
// to an ordered list of field definitions:
//
//	resources: product: [
//		{name: "reference", type: "string", length: 30},
//		{name: "product_location_id", related: "product_location"},
//	]
//
// The directory's .cue files must carry a package clause, as cue/load skips
// package-less files.
func LoadCUE(dir string) (Map, error) {
	insts := load.Instances([]string{"."}, &load.Config{Dir: dir})
	if len(insts) == 0 {
		return nil, fmt.Errorf("no CUE instances found in %s", dir)
	}
	if insts[0].Err != nil {
		return nil, fmt.Errorf("loading resource CUE: %w", insts[0].Err)
	}
	val := cuecontext.New().BuildInstance(insts[0])
	if val.Err() != nil {
		return nil, fmt.Errorf("building resource CUE value: %w", val.Err())
	}
	return FromCUE(val)
}

// FromCUE extracts resource definitions from an already-built CUE value.
func FromCUE(val cue.Value) (Map, error) {
	root := val.LookupPath(cue.ParsePath("resources"))
	if root.Err() != nil {
		return nil, fmt.Errorf("no \"resources\" struct: %w", root.Err())
	}

	resources := make(Map)
	iter, err := root.Fields()
	if err != nil {
		return nil, fmt.Errorf("iterating resources: %w", err)
	}
	for iter.Next() {
		name := iter.Selector().Unquoted()
		fields, err := parseCUEFields(name, iter.Value())
		if err != nil {
			return nil, err
		}
		resources[name] = New(name, fields)
	}
	return resources, nil
}

// cueField mirrors one element of a resource's field list. Length, precision,
// and scale sit at the top level as shorthand for the matching options keys.
type cueField struct {
	Name        string         `json:"name"`
	Type        string         `json:"type"`
	Length      int            `json:"length"`
	Precision   int            `json:"precision"`
	Scale       int            `json:"scale"`
	Related     string         `json:"related"`
	Cardinality string         `json:"cardinality"`
	OwnerKey    string         `json:"owner_key"`
	RelatedKey  string         `json:"related_key"`
	Options     map[string]any `json:"options"`
}

// overrides folds the shorthand attributes under the declared options. An
// explicit options entry wins over the shorthand.
func (cf cueField) overrides() map[string]any {
	opts := make(map[string]any, len(cf.Options)+3)
	if cf.Length > 0 {
		opts["length"] = cf.Length
	}
	if cf.Precision > 0 {
		opts["precision"] = cf.Precision
	}
	if cf.Scale > 0 {
		opts["scale"] = cf.Scale
	}
	for k, v := range cf.Options {
		opts[k] = v
	}
	return opts
}

func parseCUEFields(resource string, list cue.Value) ([]field.Field, error) {
	iter, err := list.List()
	if err != nil {
		return nil, fmt.Errorf("resource %s: fields must be a list: %w", resource, err)
	}

	var fields []field.Field
	for iter.Next() {
		var cf cueField
		if err := iter.Value().Decode(&cf); err != nil {
			return nil, fmt.Errorf("resource %s: decoding field: %w", resource, err)
		}
		if cf.Name == "" {
			return nil, fmt.Errorf("resource %s: field without a name", resource)
		}

		var assoc *field.Association
		if cf.Related != "" {
			assoc = &field.Association{
				Cardinality: field.One,
				Related:     cf.Related,
				OwnerKey:    cf.OwnerKey,
				RelatedKey:  cf.RelatedKey,
			}
			if cf.Cardinality == "many" {
				assoc.Cardinality = field.Many
			}
			if assoc.OwnerKey == "" {
				assoc.OwnerKey = cf.Name
			}
			if assoc.RelatedKey == "" {
				assoc.RelatedKey = "id"
			}
		}

		f := field.Resolve(cf.Name, cf.Type, assoc)
		if opts := cf.overrides(); len(opts) > 0 {
			f = f.Apply(opts)
		}
		fields = append(fields, f)
	}
	return fields, nil
}
