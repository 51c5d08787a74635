package gomap

import "github.com/stc-format/go-stc/ir"

// ToAny converts a canonical value to plain Go containers: nil, bool,
// int64, float64, string, []any and map[string]any.  Map insertion
// follows the value's sorted field order.
func ToAny(v *ir.Value) any {
	switch v.Type {
	case ir.NullType:
		return nil
	case ir.BoolType:
		return v.Bool
	case ir.IntType:
		return v.Int64
	case ir.FloatType:
		return v.Float64
	case ir.StringType:
		return v.String
	case ir.ArrayType:
		res := make([]any, len(v.Values))
		for i, elt := range v.Values {
			res[i] = ToAny(elt)
		}
		return res
	case ir.ObjectType:
		res := make(map[string]any, len(v.Fields))
		for i, field := range v.Fields {
			res[field] = ToAny(v.Values[i])
		}
		return res
	default:
		panic("type")
	}
}
