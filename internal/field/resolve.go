package field

// typeSpec is one row of the native-type lookup table.
type typeSpec struct {
	semantic   string
	htmlType   string
	length     int
	precision  int
	scale      int
	filterable bool
}

// nativeTypes maps a schema's native type tag to its resolved display spec.
// Unrecognized tags fall back to a short text input (see Resolve).
var nativeTypes = map[string]typeSpec{
	"string":         {TypeString, "text", 255, 0, 0, true},
	"uuid":           {TypeString, "text", 36, 0, 0, true},
	"binary_id":      {TypeString, "text", 36, 0, 0, true},
	"integer":        {TypeInteger, "number", 10, 10, 0, true},
	"id":             {TypeInteger, "number", 10, 10, 0, true},
	"bigint":         {TypeInteger, "number", 10, 10, 0, true},
	"float":          {TypeFloat, "number", 12, 10, 2, true},
	"decimal":        {TypeFloat, "number", 12, 10, 2, true},
	"date":           {TypeDate, "date", 10, 0, 0, true},
	"time":           {TypeTime, "time", 10, 0, 0, true},
	"time_usec":      {TypeTime, "time", 15, 0, 0, true},
	"datetime":       {TypeDateTime, "datetime-local", 20, 0, 0, true},
	"utc_datetime":   {TypeDateTime, "datetime-local", 20, 0, 0, true},
	"naive_datetime": {TypeDateTime, "datetime-local", 20, 0, 0, true},
	"timestamp":      {TypeDateTime, "datetime-local", 20, 0, 0, true},
	"boolean":        {TypeBoolean, "checkbox", 5, 0, 0, true},
	"map":            {TypeMap, "textarea", 0, 0, 0, false},
	"tuple":          {TypeMap, "textarea", 0, 0, 0, false},
	"struct":         {TypeMap, "textarea", 0, 0, 0, false},
	"union":          {TypeMap, "textarea", 0, 0, 0, false},
	"term":           {TypeMap, "textarea", 0, 0, 0, false},
}

// Identity and soft-delete style keys render disabled unless overridden.
var disabledKeys = map[string]bool{
	"id": true, "deleted": true, "inactive": true,
}

// Audit-timestamp keys are omitted from forms unless overridden.
var omittedKeys = map[string]bool{
	"created_at": true, "updated_at": true, "inserted_at": true,
}

// Resolve maps a field's native schema type and optional association
// descriptor to its Field record. Deterministic, no side effects. The
// disabled/omitted defaults keyed on well-known names are advisory and fully
// overridable via Field.Apply.
func Resolve(key, nativeType string, assoc *Association) Field {
	f := Field{
		Key:      key,
		Label:    Label(key),
		Disabled: disabledKeys[key],
		Omitted:  omittedKeys[key],
	}

	if assoc != nil && nativeType == "" {
		f.Assoc = assoc
		switch assoc.Cardinality {
		case Many:
			f.Type = TypeOneToMany
		default:
			f.Type = TypeManyToOne
		}
		f.HTMLType = f.Type
		f.Filterable = false
		return f
	}

	spec, ok := nativeTypes[nativeType]
	if !ok {
		spec = typeSpec{TypeString, "text", 50, 0, 0, true}
	}
	f.Type = spec.semantic
	f.HTMLType = spec.htmlType
	f.Length = spec.length
	f.Precision = spec.precision
	f.Scale = spec.scale
	f.Filterable = spec.filterable
	if assoc != nil {
		f.Assoc = assoc
	}
	return f
}
