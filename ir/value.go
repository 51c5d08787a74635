package ir

import (
	"maps"
	"slices"
	"sort"
)

// Value is the canonical, JSON-compatible result of parsing an STC
// document.  It is a tagged union: Type selects which of the remaining
// fields carry the value.
type Value struct {
	Type Type

	Bool    bool
	Int64   int64
	Float64 float64
	String  string

	// Fields holds object keys in lexicographically sorted order and is
	// parallel to Values.  For arrays, Fields is nil and Values holds the
	// elements in index order.
	Fields []string
	Values []*Value
}

func Null() *Value {
	return &Value{Type: NullType}
}

func FromBool(v bool) *Value {
	return &Value{Type: BoolType, Bool: v}
}

func FromInt(v int64) *Value {
	return &Value{Type: IntType, Int64: v}
}

func FromFloat(v float64) *Value {
	return &Value{Type: FloatType, Float64: v}
}

func FromString(v string) *Value {
	return &Value{Type: StringType, String: v}
}

func EmptyArray() *Value {
	return &Value{Type: ArrayType}
}

func EmptyObject() *Value {
	return &Value{Type: ObjectType}
}

func FromSlice(vs []*Value) *Value {
	return &Value{Type: ArrayType, Values: vs}
}

func FromMap(m map[string]*Value) *Value {
	res := &Value{
		Type:   ObjectType,
		Fields: make([]string, 0, len(m)),
		Values: make([]*Value, 0, len(m)),
	}
	for _, key := range slices.Sorted(maps.Keys(m)) {
		res.Fields = append(res.Fields, key)
		res.Values = append(res.Values, m[key])
	}
	return res
}

// Get returns the value under field, or nil if v is not an object or the
// field is absent.
func (v *Value) Get(field string) *Value {
	if v.Type != ObjectType {
		return nil
	}
	i := sort.SearchStrings(v.Fields, field)
	if i < len(v.Fields) && v.Fields[i] == field {
		return v.Values[i]
	}
	return nil
}

// Set inserts or replaces the value under field, keeping Fields sorted.
func (v *Value) Set(field string, val *Value) {
	i := sort.SearchStrings(v.Fields, field)
	if i < len(v.Fields) && v.Fields[i] == field {
		v.Values[i] = val
		return
	}
	v.Fields = slices.Insert(v.Fields, i, field)
	v.Values = slices.Insert(v.Values, i, val)
}

func (v *Value) Clone() *Value {
	res := &Value{}
	return v.CloneTo(res)
}

func (v *Value) CloneTo(dst *Value) *Value {
	dst.Type = v.Type
	dst.Bool = v.Bool
	dst.Int64 = v.Int64
	dst.Float64 = v.Float64
	dst.String = v.String
	dst.Fields = slices.Clone(v.Fields)
	if v.Values != nil {
		dst.Values = make([]*Value, len(v.Values))
		for i, vv := range v.Values {
			dst.Values[i] = vv.Clone()
		}
	}
	return dst
}

// Visit walks the value tree in depth-first order.  f is called twice per
// value, before (isPost false) and after (isPost true) its children; the
// pre call's first return controls descent.
func (v *Value) Visit(f func(v *Value, isPost bool) (bool, error)) error {
	dive, err := f(v, false)
	if err != nil {
		return err
	}
	if dive {
		for _, vv := range v.Values {
			if err := vv.Visit(f); err != nil {
				return err
			}
		}
	}
	if _, err := f(v, true); err != nil {
		return err
	}
	return nil
}

// Truth reports the truthiness of a value: empty containers, empty
// strings, zeros, false and null are all false.
func Truth(v *Value) bool {
	switch v.Type {
	case ObjectType, ArrayType:
		return len(v.Values) != 0
	case StringType:
		return v.String != ""
	case IntType:
		return v.Int64 != 0
	case FloatType:
		return v.Float64 != 0.0
	case BoolType:
		return v.Bool
	case NullType:
		return false
	default:
		panic("type")
	}
}
