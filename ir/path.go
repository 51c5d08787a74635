package ir

import (
	"fmt"
	"strconv"
	"strings"
)

// GetPath navigates v along an STC key path such as "users.$0.name",
// where "$<n>" segments index arrays and plain segments select object
// fields.  A missing field returns (nil, nil); a structural mismatch
// (indexing an object, out of range index) returns an error.
func (v *Value) GetPath(path string) (*Value, error) {
	if path == "" {
		return nil, fmt.Errorf("empty path")
	}
	res := v
	for _, seg := range strings.Split(path, ".") {
		if seg == "" {
			return nil, fmt.Errorf("path %q has an empty segment", path)
		}
		if seg[0] == '$' {
			idx, err := strconv.Atoi(seg[1:])
			if err != nil {
				return nil, fmt.Errorf("path %q: bad index %q", path, seg)
			}
			if res.Type != ArrayType {
				return nil, fmt.Errorf("path %q: expected array at %q, got %s", path, seg, res.Type)
			}
			if idx < 0 || idx >= len(res.Values) {
				return nil, fmt.Errorf("path %q: index %d out of bounds (len %d)", path, idx, len(res.Values))
			}
			res = res.Values[idx]
			continue
		}
		if res.Type != ObjectType {
			return nil, fmt.Errorf("path %q: expected object at %q, got %s", path, seg, res.Type)
		}
		res = res.Get(seg)
		if res == nil {
			return nil, nil
		}
	}
	return res, nil
}

// JoinPath extends a dotted path prefix with one more segment, used when
// reporting locations inside a document.
func JoinPath(prefix, seg string) string {
	if prefix == "" {
		return seg
	}
	return prefix + "." + seg
}
