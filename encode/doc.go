// Package encode renders canonical values back to text.
//
// # Usage
//
//	v := ir.FromMap(map[string]*ir.Value{
//	    "name": ir.FromString("alice"),
//	    "age":  ir.FromInt(30),
//	})
//	err := encode.Encode(v, os.Stdout)
//
//	// JSON projection
//	err = encode.Encode(v, os.Stdout, encode.EncodeFormat(format.JSONFormat))
//
// # Related Packages
//
//   - github.com/stc-format/go-stc/ir - canonical value representation
//   - github.com/stc-format/go-stc/parse - parse text to canonical values
package encode
