package parse

import (
	"bytes"

	"github.com/stc-format/go-stc/debug"
	"github.com/stc-format/go-stc/ir"
	"github.com/stc-format/go-stc/token"
)

// Parse consumes a whole STC document and returns its canonical value.
// The first error encountered aborts parsing; there is no partial
// result.  Each call owns its intermediate state, so concurrent calls on
// separate inputs are safe.
func Parse(d []byte, opts ...ParseOption) (*ir.Value, error) {
	pOpts := &parseOpts{}
	for _, f := range opts {
		f(pOpts)
	}
	if string(bytes.TrimSpace(d)) == "{}" {
		return ir.EmptyObject(), nil
	}
	assigns, err := token.Scan(d, pOpts.scanOpts()...)
	if err != nil {
		return nil, err
	}
	if debug.Scan() {
		for _, a := range assigns {
			debug.Logf("scan line %d: %s = %s\n", a.Line, a.Path, a.Lit.Describe())
		}
	}
	root := newContainer()
	for _, a := range assigns {
		if err := fillIn(root, a.Path, a.Lit, a.Line); err != nil {
			return nil, err
		}
	}
	res, err := finalize(root, "")
	if err != nil {
		return nil, err
	}
	if debug.Parse() {
		debug.Logf("parse: %v\n", res)
	}
	return res, nil
}
