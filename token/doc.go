// Package token scans STC input into a flat sequence of assignments.
//
// STC is line oriented: outside a string block, every non-blank line is
// `<key>: <value>` where the key is a dotted path and the value is an
// immediate literal or the opening fence of a multi-line string block.
// The scanner walks lines with a two-state machine (normal / in string
// block), parses key paths, classifies value literals, and reports every
// failure with its 1-based line number.
//
// # Usage
//
//	assigns, err := token.Scan(d)
//	for _, a := range assigns {
//	    // a.Path, a.Lit, a.Line
//	}
//
// # Related Packages
//
//   - github.com/stc-format/go-stc/parse - Builds canonical values from assignments
package token
