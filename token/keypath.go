package token

import (
	"fmt"
	"strconv"
	"strings"
)

// KeyPath is the ordered sequence of validated segments addressing one
// slot in a document.  A segment is either a plain identifier or a list
// index marker of the form "$<digits>".
type KeyPath []string

func (p KeyPath) String() string {
	return strings.Join(p, ".")
}

// Prefix returns the dotted path of the first n segments.
func (p KeyPath) Prefix(n int) string {
	return strings.Join(p[:n], ".")
}

// ParseKeyPath splits and validates the key text of an assignment line.
// Errors carry the given 1-based line number.
func ParseKeyPath(key string, line int) (KeyPath, error) {
	pieces := strings.Split(key, ".")
	path := make(KeyPath, 0, len(pieces))
	for _, piece := range pieces {
		if piece == "" {
			return nil, AtLine(line, fmt.Errorf("%w %q: key must be a valid identifier", ErrKey, key))
		}
		if piece[0] == '$' {
			if !isIndexDigits(piece[1:]) {
				return nil, AtLine(line, fmt.Errorf("%w %q: list index must be $numeric", ErrKey, key))
			}
			path = append(path, piece)
			continue
		}
		if !IsIdentifier(piece) {
			return nil, AtLine(line, fmt.Errorf("%w %q: key must be a valid identifier", ErrKey, key))
		}
		path = append(path, piece)
	}
	return path, nil
}

// IsIndex reports whether a validated segment is a list index marker.
func IsIndex(seg string) bool {
	return len(seg) > 0 && seg[0] == '$'
}

// Index returns the numeric value of a list index marker segment.
func Index(seg string) (int, error) {
	if !IsIndex(seg) {
		return 0, fmt.Errorf("%w: %q is not a list index", ErrKey, seg)
	}
	u, err := strconv.ParseUint(seg[1:], 10, 32)
	if err != nil {
		return 0, fmt.Errorf("%w: bad list index %q: %v", ErrKey, seg, err)
	}
	return int(u), nil
}

func isIndexDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// IsIdentifier reports whether s is a valid key segment,
// ASCII [A-Za-z_][A-Za-z0-9_]*.
func IsIdentifier(s string) bool {
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case c == '_':
		case c >= 'a' && c <= 'z':
		case c >= 'A' && c <= 'Z':
		case c >= '0' && c <= '9':
			if i == 0 {
				return false
			}
		default:
			return false
		}
	}
	return len(s) > 0
}
