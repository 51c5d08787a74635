package gomap

import (
	"fmt"
	"math"
	"reflect"

	"github.com/stc-format/go-stc/ir"
)

// FromAny builds a canonical value from a Go value: scalars, slices,
// string-keyed maps and structs (honoring `stc` tags).  Non-finite
// floats are rejected, as are integers that do not fit in int64.
func FromAny(x any) (*ir.Value, error) {
	return fromAny(reflect.ValueOf(x), "")
}

func fromAny(rv reflect.Value, path string) (*ir.Value, error) {
	if !rv.IsValid() {
		return ir.Null(), nil
	}
	if v, ok := rv.Interface().(*ir.Value); ok {
		return v.Clone(), nil
	}
	switch rv.Kind() {
	case reflect.Pointer, reflect.Interface:
		if rv.IsNil() {
			return ir.Null(), nil
		}
		return fromAny(rv.Elem(), path)
	case reflect.Bool:
		return ir.FromBool(rv.Bool()), nil
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return ir.FromInt(rv.Int()), nil
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		u := rv.Uint()
		if u > math.MaxInt64 {
			return nil, &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("uint %d overflows int64", u)}
		}
		return ir.FromInt(int64(u)), nil
	case reflect.Float32, reflect.Float64:
		f := rv.Float()
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("float %v is not representable", f)}
		}
		return ir.FromFloat(f), nil
	case reflect.String:
		return ir.FromString(rv.String()), nil
	case reflect.Slice, reflect.Array:
		vs := make([]*ir.Value, rv.Len())
		for i := range vs {
			elt, err := fromAny(rv.Index(i), fmt.Sprintf("%s.$%d", path, i))
			if err != nil {
				return nil, err
			}
			vs[i] = elt
		}
		return ir.FromSlice(vs), nil
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return nil, &UnmarshalError{FieldPath: path, Message: "map keys must be strings"}
		}
		m := make(map[string]*ir.Value, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			key := iter.Key().String()
			elt, err := fromAny(iter.Value(), ir.JoinPath(path, key))
			if err != nil {
				return nil, err
			}
			m[key] = elt
		}
		return ir.FromMap(m), nil
	case reflect.Struct:
		m := map[string]*ir.Value{}
		if err := structFields(rv, path, m); err != nil {
			return nil, err
		}
		return ir.FromMap(m), nil
	default:
		return nil, &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("unsupported kind %s", rv.Kind())}
	}
}

func structFields(rv reflect.Value, path string, dst map[string]*ir.Value) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.PkgPath != "" {
			continue
		}
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if err := structFields(rv.Field(i), path, dst); err != nil {
				return err
			}
			continue
		}
		ft := parseFieldTag(sf)
		if ft.skip {
			continue
		}
		fv := rv.Field(i)
		if ft.omitEmpty && fv.IsZero() {
			continue
		}
		elt, err := fromAny(fv, ir.JoinPath(path, ft.name))
		if err != nil {
			return err
		}
		dst[ft.name] = elt
	}
	return nil
}
