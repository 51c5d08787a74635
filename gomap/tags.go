package gomap

import (
	"reflect"
	"strings"
)

type fieldTag struct {
	name      string
	omitEmpty bool
	skip      bool
}

// parseFieldTag reads the `stc` struct tag of a field, defaulting the
// name to the Go field name.
func parseFieldTag(sf reflect.StructField) fieldTag {
	ft := fieldTag{name: sf.Name}
	tag, ok := sf.Tag.Lookup("stc")
	if !ok {
		return ft
	}
	if tag == "-" {
		ft.skip = true
		return ft
	}
	parts := strings.Split(tag, ",")
	if parts[0] != "" {
		ft.name = parts[0]
	}
	for _, opt := range parts[1:] {
		if opt == "omitempty" {
			ft.omitEmpty = true
		}
	}
	return ft
}
