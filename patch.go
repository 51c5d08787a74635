package stc

import (
	jsonpatch "github.com/evanphx/json-patch"

	"github.com/stc-format/go-stc/debug"
	"github.com/stc-format/go-stc/ir"
)

// Patch applies an RFC 6902 JSON patch to a document.  The patch
// operates on the document's JSON projection; the result is read back
// into a canonical value.
func Patch(doc *ir.Value, patch []byte) (*ir.Value, error) {
	ops, err := jsonpatch.DecodePatch(patch)
	if err != nil {
		return nil, err
	}
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	if debug.Patch() {
		debug.Logf("patching %s\n", string(d))
	}
	out, err := ops.Apply(d)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(out)
}

// MergePatch applies an RFC 7386 merge patch to a document.
func MergePatch(doc, patch *ir.Value) (*ir.Value, error) {
	d, err := doc.MarshalJSON()
	if err != nil {
		return nil, err
	}
	p, err := patch.MarshalJSON()
	if err != nil {
		return nil, err
	}
	out, err := jsonpatch.MergePatch(d, p)
	if err != nil {
		return nil, err
	}
	return ir.FromJSON(out)
}
