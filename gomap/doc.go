// Package gomap provides encoding and decoding between canonical STC
// values and Go values.
//
// # Usage
//
//	// Decode a canonical value into a Go struct
//	type User struct {
//	    Name string `stc:"name"`
//	    Age  int    `stc:"age"`
//	}
//	var user User
//	err := gomap.Decode(v, &user)
//
//	// Convert to plain Go containers
//	any := gomap.ToAny(v)
//
//	// Build a canonical value from a Go value
//	v, err := gomap.FromAny(user)
//
// Field visibility follows encoding/json: only exported struct fields are
// processed, matching is case-sensitive, and the `stc` tag renames or
// skips fields.
//
// The Int/Float distinction of the canonical value is preserved: ToAny
// yields int64 for Int and float64 for Float, and Decode refuses to place
// a Float into an integer field.
package gomap
