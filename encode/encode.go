package encode

import (
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"
	"unicode"

	"github.com/goccy/go-yaml"

	"github.com/stc-format/go-stc/format"
	"github.com/stc-format/go-stc/gomap"
	"github.com/stc-format/go-stc/ir"
	"github.com/stc-format/go-stc/token"
)

var ErrEncoding = errors.New("encoding error")

type EncState struct {
	format format.Format

	Color func(ir.Type, ColorAttr, string) string
}

// Encode writes the canonical text form of v.  The default output is
// one assignment line per leaf, fields in sorted order; EncodeFormat
// selects JSON or YAML projections instead.
func Encode(v *ir.Value, w io.Writer, opts ...EncodeOption) error {
	es := &EncState{}
	for _, opt := range opts {
		opt(es)
	}
	switch {
	case es.format.IsJSON():
		return encodeJSON(v, w)
	case es.format.IsYAML():
		return encodeYAML(v, w)
	default:
		return encodeSTC(v, w, es)
	}
}

func encodeJSON(v *ir.Value, w io.Writer) error {
	d, err := v.MarshalJSON()
	if err != nil {
		return err
	}
	d = append(d, '\n')
	_, err = w.Write(d)
	return err
}

func encodeYAML(v *ir.Value, w io.Writer) error {
	d, err := yaml.Marshal(gomap.ToAny(v))
	if err != nil {
		return err
	}
	_, err = w.Write(d)
	return err
}

func encodeSTC(v *ir.Value, w io.Writer, es *EncState) error {
	switch v.Type {
	case ir.ObjectType:
		if len(v.Fields) == 0 {
			return writeString(w, applyColor(es, ir.ObjectType, ValueColor, "{}")+"\n")
		}
	case ir.ArrayType:
		if len(v.Values) == 0 {
			return fmt.Errorf("%w: an empty list has no top-level form", ErrEncoding)
		}
	default:
		return fmt.Errorf("%w: top-level value must be a dict or a list, have %s", ErrEncoding, v.Type)
	}
	return encodeAssigns(v, "", w, es)
}

func encodeAssigns(v *ir.Value, path string, w io.Writer, es *EncState) error {
	switch v.Type {
	case ir.ObjectType:
		if len(v.Fields) == 0 {
			return writeAssign(w, es, path, ir.ObjectType, "{}")
		}
		for i, field := range v.Fields {
			if !token.IsIdentifier(field) {
				return fmt.Errorf("%w: field %q is not a valid key segment", ErrEncoding, field)
			}
			if err := encodeAssigns(v.Values[i], ir.JoinPath(path, field), w, es); err != nil {
				return err
			}
		}
		return nil
	case ir.ArrayType:
		if len(v.Values) == 0 {
			return writeAssign(w, es, path, ir.ArrayType, "[]")
		}
		for i, elt := range v.Values {
			seg := "$" + strconv.Itoa(i)
			if err := encodeAssigns(elt, ir.JoinPath(path, seg), w, es); err != nil {
				return err
			}
		}
		return nil
	case ir.BoolType:
		return writeAssign(w, es, path, ir.BoolType, "`"+strconv.FormatBool(v.Bool)+"`")
	case ir.IntType:
		return writeAssign(w, es, path, ir.IntType, strconv.FormatInt(v.Int64, 10))
	case ir.FloatType:
		if math.IsNaN(v.Float64) || math.IsInf(v.Float64, 0) {
			return fmt.Errorf("%w: float %v is not representable", ErrEncoding, v.Float64)
		}
		return writeAssign(w, es, path, ir.FloatType, formatFloat(v.Float64))
	case ir.StringType:
		return writeStringAssign(w, es, path, v.String)
	default:
		return fmt.Errorf("%w: cannot encode %s value at %q", ErrEncoding, v.Type, path)
	}
}

// formatFloat renders a float so that it reads back as a float, never
// as an integer.
func formatFloat(f float64) string {
	v := strconv.FormatFloat(f, 'g', -1, 64)
	if !strings.ContainsAny(v, ".eE") {
		v += ".0"
	}
	return v
}

func writeAssign(w io.Writer, es *EncState, path string, t ir.Type, lit string) error {
	if err := writeKey(w, es, path, t); err != nil {
		return err
	}
	return writeString(w, applyColor(es, t, ValueColor, lit)+"\n")
}

func writeStringAssign(w io.Writer, es *EncState, path, v string) error {
	if err := writeKey(w, es, path, ir.StringType); err != nil {
		return err
	}
	lines := strings.Split(v, "\n")
	fence := strings.Repeat("`", fenceWidth(lines))
	fence = applyColor(es, ir.StringType, FenceColor, fence)
	if err := writeString(w, fence+"\n"); err != nil {
		return err
	}
	for _, ln := range lines {
		if ln != "" {
			ln = applyColor(es, ir.StringType, ValueColor, ln)
		}
		if err := writeString(w, ln+"\n"); err != nil {
			return err
		}
	}
	return writeString(w, fence+"\n")
}

// fenceWidth picks a delimiter wide enough that no content line closes
// the block early.
func fenceWidth(lines []string) int {
	n := 3
	for _, ln := range lines {
		ln = strings.TrimRightFunc(ln, unicode.IsSpace)
		if !allBackticks(ln) {
			continue
		}
		if len(ln) >= n {
			n = len(ln) + 1
		}
	}
	return n
}

func allBackticks(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] != '`' {
			return false
		}
	}
	return true
}

func writeKey(w io.Writer, es *EncState, path string, t ir.Type) error {
	key := applyColor(es, t, FieldColor, path)
	sep := applyColor(es, t, SepColor, ":")
	return writeString(w, key+sep+" ")
}

func writeString(w io.Writer, s string) error {
	_, err := w.Write([]byte(s))
	return err
}

func applyColor(es *EncState, t ir.Type, attr ColorAttr, v string) string {
	if es.Color == nil {
		return v
	}
	return es.Color(t, attr, v)
}
