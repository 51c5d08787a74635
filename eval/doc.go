// Package eval runs expressions against parsed documents.
//
// Expressions use expr-lang syntax.  Top-level document fields are in
// scope as identifiers; get("a.b.$0") resolves an arbitrary dotted
// path.
package eval
