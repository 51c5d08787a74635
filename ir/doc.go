// Package ir provides the canonical value representation for STC documents.
//
// # Overview
//
// STC input is a flat sequence of `path: value` lines.  Parsing resolves
// those lines into a tree of ir.Value nodes, the canonical, JSON-compatible
// form handed to every other package in this module.
//
// The canonical value is a simple recursive tagged union.  It carries no
// position information from input documents, making it purely semantic.
//
// # Value Types
//
// The Type field indicates the value's type:
//
//   - NullType: null value
//   - BoolType: boolean (true/false)
//   - IntType: 64-bit signed integer
//   - FloatType: 64-bit IEEE float, always finite
//   - StringType: string value
//   - ArrayType: ordered list of values
//   - ObjectType: key-value pairs with lexicographically sorted keys
//
// Int and Float are distinct types: a document value written as an integer
// stays an integer through every conversion.
//
// # Creating Values
//
// Use constructor functions:
//
//	v := ir.FromString("hello")
//	n := ir.FromInt(42)
//	b := ir.FromBool(true)
//	o := ir.FromMap(map[string]*ir.Value{
//	    "key": ir.FromString("value"),
//	})
//	a := ir.FromSlice([]*ir.Value{ir.FromInt(1), ir.FromInt(2)})
//
// # Structure Constraints
//
// For ObjectType values, Fields[i] is the key for the value at Values[i],
// so there are always as many fields as values, and Fields is sorted.
// FromMap establishes the sort; producers building objects by hand must
// keep it.  ArrayType values use Values only, in element order.
//
// # Addressing
//
// GetPath navigates a value using STC key-path syntax, where `$<n>`
// segments index arrays:
//
//	child, err := v.GetPath("users.$0.name")
//
// # Thread Safety
//
// Values are not thread-safe.  Distinct values may be used from distinct
// goroutines without synchronization; share a value only after cloning.
//
// # Related Packages
//
//   - github.com/stc-format/go-stc/parse - Parses STC text into values
//   - github.com/stc-format/go-stc/encode - Encodes values to text
//   - github.com/stc-format/go-stc/gomap - Converts values to and from Go types
package ir
