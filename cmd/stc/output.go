package main

import (
	"fmt"
	"io"
	"strconv"

	"github.com/stc-format/go-stc/encode"
	"github.com/stc-format/go-stc/ir"
)

// writeResult renders a value.  Leaves have no top-level assignment
// form, so in stc output they print as bare scalars.
func writeResult(cfg *MainConfig, w io.Writer, v *ir.Value) error {
	if cfg.outFormat().IsSTC() && v.Type.IsLeaf() {
		_, err := fmt.Fprintf(w, "%s\n", leafText(v))
		return err
	}
	return encode.Encode(v, w, cfg.encOpts(w)...)
}

func leafText(v *ir.Value) string {
	switch v.Type {
	case ir.NullType:
		return "null"
	case ir.BoolType:
		return strconv.FormatBool(v.Bool)
	case ir.IntType:
		return strconv.FormatInt(v.Int64, 10)
	case ir.FloatType:
		return strconv.FormatFloat(v.Float64, 'g', -1, 64)
	case ir.StringType:
		return v.String
	default:
		return v.Type.String()
	}
}
