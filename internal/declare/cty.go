package declare

import (
	"fmt"

	"github.com/zclconf/go-cty/cty"
)

// ctyToGo converts an evaluated cty value into the plain Go value stored on a
// node's option list. Declarations are static, so evaluation is eager: by the
// time a value lands here it is a literal.
func ctyToGo(v cty.Value) (any, error) {
	if v.IsNull() {
		return nil, nil
	}
	t := v.Type()
	switch {
	case t == cty.Bool:
		return v.True(), nil
	case t == cty.Number:
		bf := v.AsBigFloat()
		if n, acc := bf.Int64(); acc == 0 {
			return int(n), nil
		}
		f, _ := bf.Float64()
		return f, nil
	case t == cty.String:
		return v.AsString(), nil
	case t.IsTupleType() || t.IsListType() || t.IsSetType():
		var out []any
		for it := v.ElementIterator(); it.Next(); {
			_, ev := it.Element()
			gv, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out = append(out, gv)
		}
		return out, nil
	case t.IsObjectType() || t.IsMapType():
		out := make(map[string]any)
		for it := v.ElementIterator(); it.Next(); {
			kv, ev := it.Element()
			gv, err := ctyToGo(ev)
			if err != nil {
				return nil, err
			}
			out[kv.AsString()] = gv
		}
		return out, nil
	default:
		return nil, fmt.Errorf("unsupported option value type %s", t.FriendlyName())
	}
}
