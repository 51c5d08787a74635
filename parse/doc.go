// Package parse provides STC parsing support.
//
// # Usage
//
//	v, err := parse.Parse(d)
//
//	// Reject opening fences with trailing characters
//	v, err := parse.Parse(d, parse.StrictFences())
//
// Parsing resolves the flat `path: value` lines of an STC document into a
// canonical ir.Value tree: assignments are inserted into an intermediate
// tree with immediate conflict detection, then the tree is finalized into
// arrays and objects with deterministic, sorted key order.
//
// # Related Packages
//
//   - github.com/stc-format/go-stc/token - Line scanning and classification
//   - github.com/stc-format/go-stc/ir - The canonical value
//   - github.com/stc-format/go-stc/encode - The inverse operation
package parse
