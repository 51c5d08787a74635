// Package stc is the top-level interface to the STC format: parsing,
// encoding, diffing and patching of documents.
package stc

import (
	"bytes"

	"github.com/stc-format/go-stc/encode"
	"github.com/stc-format/go-stc/ir"
	"github.com/stc-format/go-stc/parse"
)

// Parse consumes a whole document and returns its canonical value.
func Parse(d []byte, opts ...parse.ParseOption) (*ir.Value, error) {
	return parse.Parse(d, opts...)
}

// MustParse is Parse for known-good inputs, panicking on error.
func MustParse(d []byte, opts ...parse.ParseOption) *ir.Value {
	v, err := parse.Parse(d, opts...)
	if err != nil {
		panic(err)
	}
	return v
}

// Encode renders the canonical text of v.
func Encode(v *ir.Value, opts ...encode.EncodeOption) ([]byte, error) {
	buf := bytes.NewBuffer(nil)
	if err := encode.Encode(v, buf, opts...); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
