// Package format names the serialization formats the module can write.
//
// # Usage
//
//	f, err := format.ParseFormat("json")
//	suffix := f.Suffix()
//
// STC is the native format; JSON and YAML are projections of the
// canonical value used for interchange.
//
// # Related Packages
//
//   - github.com/stc-format/go-stc/encode - Encode canonical values in a format
package format
