package parse

import "errors"

var (
	errInternal = errors.New("internal parse error")

	// ErrConflict wraps structural conflicts: a path used both as a
	// value and as a container prefix, duplicate assignments, mixed
	// list/dict keys, and non-contiguous list indices.
	ErrConflict = errors.New("conflicting keys")
	// ErrNotFinite wraps non-finite float leaves, which have no
	// canonical representation.
	ErrNotFinite = errors.New("float not finite")
)
