package gomap

import (
	"fmt"
	"reflect"

	"github.com/stc-format/go-stc/ir"
)

// Decode unpacks a canonical value into the Go value pointed to by dst:
// scalars, slices, arrays, string-keyed maps, structs with `stc` tags,
// and any-typed destinations.  Absent struct fields are left at their
// zero value; unknown document fields are ignored.
func Decode(v *ir.Value, dst any) error {
	rv := reflect.ValueOf(dst)
	if rv.Kind() != reflect.Pointer || rv.IsNil() {
		return &UnmarshalError{Message: "destination must be a non-nil pointer"}
	}
	return decodeValue(v, rv.Elem(), "")
}

func decodeValue(v *ir.Value, rv reflect.Value, path string) error {
	for rv.Kind() == reflect.Pointer {
		if v.Type == ir.NullType {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		if rv.IsNil() {
			rv.Set(reflect.New(rv.Type().Elem()))
		}
		rv = rv.Elem()
	}
	if rv.Kind() == reflect.Interface && rv.NumMethod() == 0 {
		if v.Type == ir.NullType {
			rv.Set(reflect.Zero(rv.Type()))
			return nil
		}
		rv.Set(reflect.ValueOf(ToAny(v)))
		return nil
	}

	switch v.Type {
	case ir.NullType:
		rv.Set(reflect.Zero(rv.Type()))
		return nil
	case ir.BoolType:
		if rv.Kind() != reflect.Bool {
			return typeErr(path, "bool", rv)
		}
		rv.SetBool(v.Bool)
		return nil
	case ir.IntType:
		switch rv.Kind() {
		case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
			if rv.OverflowInt(v.Int64) {
				return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("int %d overflows %s", v.Int64, rv.Type())}
			}
			rv.SetInt(v.Int64)
		case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
			if v.Int64 < 0 || rv.OverflowUint(uint64(v.Int64)) {
				return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("int %d overflows %s", v.Int64, rv.Type())}
			}
			rv.SetUint(uint64(v.Int64))
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(float64(v.Int64))
		default:
			return typeErr(path, "integer", rv)
		}
		return nil
	case ir.FloatType:
		switch rv.Kind() {
		case reflect.Float32, reflect.Float64:
			rv.SetFloat(v.Float64)
		default:
			// a Float never silently becomes an integer
			return typeErr(path, "float", rv)
		}
		return nil
	case ir.StringType:
		if rv.Kind() != reflect.String {
			return typeErr(path, "string", rv)
		}
		rv.SetString(v.String)
		return nil
	case ir.ArrayType:
		return decodeArray(v, rv, path)
	case ir.ObjectType:
		return decodeObject(v, rv, path)
	default:
		return &UnmarshalError{FieldPath: path, Message: fmt.Sprintf("unsupported value type %s", v.Type)}
	}
}

func decodeArray(v *ir.Value, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.Slice:
		slice := reflect.MakeSlice(rv.Type(), len(v.Values), len(v.Values))
		for i, elt := range v.Values {
			if err := decodeValue(elt, slice.Index(i), fmt.Sprintf("%s.$%d", path, i)); err != nil {
				return err
			}
		}
		rv.Set(slice)
		return nil
	case reflect.Array:
		if rv.Len() != len(v.Values) {
			return &UnmarshalError{FieldPath: path,
				Message: fmt.Sprintf("array length %d does not fit [%d]%s", len(v.Values), rv.Len(), rv.Type().Elem())}
		}
		for i, elt := range v.Values {
			if err := decodeValue(elt, rv.Index(i), fmt.Sprintf("%s.$%d", path, i)); err != nil {
				return err
			}
		}
		return nil
	default:
		return typeErr(path, "array", rv)
	}
}

func decodeObject(v *ir.Value, rv reflect.Value, path string) error {
	switch rv.Kind() {
	case reflect.Map:
		t := rv.Type()
		if t.Key().Kind() != reflect.String {
			return typeErr(path, "object with string keys", rv)
		}
		m := reflect.MakeMapWithSize(t, len(v.Fields))
		for i, field := range v.Fields {
			elt := reflect.New(t.Elem()).Elem()
			if err := decodeValue(v.Values[i], elt, ir.JoinPath(path, field)); err != nil {
				return err
			}
			m.SetMapIndex(reflect.ValueOf(field).Convert(t.Key()), elt)
		}
		rv.Set(m)
		return nil
	case reflect.Struct:
		return decodeStruct(v, rv, path)
	default:
		return typeErr(path, "object", rv)
	}
}

func decodeStruct(v *ir.Value, rv reflect.Value, path string) error {
	t := rv.Type()
	for i := 0; i < t.NumField(); i++ {
		sf := t.Field(i)
		if sf.Anonymous && sf.Type.Kind() == reflect.Struct {
			if err := decodeStruct(v, rv.Field(i), path); err != nil {
				return err
			}
			continue
		}
		if sf.PkgPath != "" {
			continue
		}
		ft := parseFieldTag(sf)
		if ft.skip {
			continue
		}
		child := v.Get(ft.name)
		if child == nil {
			continue
		}
		if err := decodeValue(child, rv.Field(i), ir.JoinPath(path, ft.name)); err != nil {
			return err
		}
	}
	return nil
}

func typeErr(path, expected string, rv reflect.Value) error {
	return &TypeError{FieldPath: path, Expected: expected, Actual: rv.Type().String()}
}
