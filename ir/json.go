package ir

import (
	"bytes"
	"fmt"
	"math"
	"strconv"

	json "github.com/goccy/go-json"
)

// MarshalJSON renders the canonical value as JSON.  Object keys keep their
// sorted order.  Integral floats are written with a trailing ".0" so the
// Int/Float distinction survives a JSON round trip.
func (v *Value) MarshalJSON() ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := appendJSON(buf, v); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func appendJSON(buf *bytes.Buffer, v *Value) error {
	switch v.Type {
	case NullType:
		buf.WriteString("null")
	case BoolType:
		buf.WriteString(strconv.FormatBool(v.Bool))
	case IntType:
		buf.WriteString(strconv.FormatInt(v.Int64, 10))
	case FloatType:
		if math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
			return fmt.Errorf("float %v is not representable in JSON", v.Float64)
		}
		buf.WriteString(formatFloat(v.Float64))
	case StringType:
		d, err := json.Marshal(v.String)
		if err != nil {
			return err
		}
		buf.Write(d)
	case ArrayType:
		buf.WriteByte('[')
		for i, elt := range v.Values {
			if i > 0 {
				buf.WriteByte(',')
			}
			if err := appendJSON(buf, elt); err != nil {
				return err
			}
		}
		buf.WriteByte(']')
	case ObjectType:
		buf.WriteByte('{')
		for i, field := range v.Fields {
			if i > 0 {
				buf.WriteByte(',')
			}
			d, err := json.Marshal(field)
			if err != nil {
				return err
			}
			buf.Write(d)
			buf.WriteByte(':')
			if err := appendJSON(buf, v.Values[i]); err != nil {
				return err
			}
		}
		buf.WriteByte('}')
	default:
		return fmt.Errorf("unencodable type %s", v.Type)
	}
	return nil
}

func formatFloat(f float64) string {
	s := strconv.FormatFloat(f, 'g', -1, 64)
	if bytes.ContainsAny([]byte(s), ".eE") {
		return s
	}
	return s + ".0"
}

// FromJSON parses JSON into a canonical value.  Numbers without a
// fraction or exponent become Int, all others Float; object keys are
// re-sorted to canonical order.
func FromJSON(d []byte) (*Value, error) {
	dec := json.NewDecoder(bytes.NewReader(d))
	dec.UseNumber()
	var doc any
	if err := dec.Decode(&doc); err != nil {
		return nil, err
	}
	return fromJSONAny(doc)
}

func fromJSONAny(v any) (*Value, error) {
	switch x := v.(type) {
	case nil:
		return Null(), nil
	case bool:
		return FromBool(x), nil
	case string:
		return FromString(x), nil
	case json.Number:
		if i, err := x.Int64(); err == nil && !bytes.ContainsAny([]byte(x), ".eE") {
			return FromInt(i), nil
		}
		f, err := x.Float64()
		if err != nil {
			return nil, err
		}
		return FromFloat(f), nil
	case []any:
		vs := make([]*Value, len(x))
		for i, elt := range x {
			ev, err := fromJSONAny(elt)
			if err != nil {
				return nil, err
			}
			vs[i] = ev
		}
		return FromSlice(vs), nil
	case map[string]any:
		m := make(map[string]*Value, len(x))
		for k, elt := range x {
			ev, err := fromJSONAny(elt)
			if err != nil {
				return nil, err
			}
			m[k] = ev
		}
		return FromMap(m), nil
	default:
		return nil, fmt.Errorf("unsupported JSON value %T", v)
	}
}
