package token

import (
	"fmt"
	"strings"
	"unicode"
)

// Assign is one `path: value` assignment produced by the scanner.  For
// string blocks, Line is the line of the opening fence, EndLine the line
// of the closing fence, and Lit holds the accumulated content as a
// LitString.  Single-line assignments have Line == EndLine.
type Assign struct {
	Path    KeyPath
	Lit     *Literal
	Line    int
	EndLine int
}

type scanOpts struct {
	strictFences bool
}

type ScanOpt func(*scanOpts)

// StrictFences rejects opening fences followed by trailing characters on
// the same line.  The default accepts and ignores them.
func StrictFences() ScanOpt {
	return func(o *scanOpts) { o.strictFences = true }
}

type scanState int

const (
	scanNormal scanState = iota
	scanInString
)

// Scan walks the input line by line and returns its assignments in input
// order.  The whole-document `{}` shortcut is handled by the parser, not
// here: Scan sees only line-shaped input.
func Scan(d []byte, opts ...ScanOpt) ([]Assign, error) {
	sOpts := &scanOpts{}
	for _, f := range opts {
		f(sOpts)
	}

	var (
		res   []Assign
		state = scanNormal

		// string block state
		fence   int
		path    KeyPath
		open    int
		content strings.Builder
	)

	lines := strings.Split(string(d), "\n")
	for idx, line := range lines {
		ln := idx + 1

		if state == scanInString {
			if isFence(line, fence) {
				if content.Len() == 0 {
					return nil, AtLine(ln, fmt.Errorf(
						"%w: an empty string is an opening fence, one blank line, then a closing fence", ErrEmptyStringBlock))
				}
				s := content.String()
				s = s[:len(s)-1] // final appended separator
				res = append(res, Assign{
					Path:    path,
					Lit:     &Literal{Kind: LitString, Str: s},
					Line:    open,
					EndLine: ln,
				})
				state = scanNormal
				content.Reset()
				continue
			}
			content.WriteString(line)
			content.WriteByte('\n')
			continue
		}

		if strings.TrimSpace(line) == "" {
			continue
		}
		colon := strings.IndexByte(line, ':')
		if colon == -1 {
			return nil, AtLine(ln, fmt.Errorf("%w in line content %q", ErrMissingColon, line))
		}
		key := strings.TrimSpace(line[:colon])
		value := strings.TrimSpace(line[colon+1:])

		keyPath, err := ParseKeyPath(key, ln)
		if err != nil {
			return nil, err
		}
		lit, err := Classify(value, ln)
		if err != nil {
			return nil, err
		}
		if lit.Kind != LitFenceOpen {
			res = append(res, Assign{Path: keyPath, Lit: lit, Line: ln, EndLine: ln})
			continue
		}
		if sOpts.strictFences && len(value) != lit.Fence {
			return nil, AtLine(ln, fmt.Errorf("%w: %q", ErrFenceTrailing, value[lit.Fence:]))
		}
		state = scanInString
		fence = lit.Fence
		path = keyPath
		open = ln
	}

	if state == scanInString {
		n := len(lines)
		if n > 0 && lines[n-1] == "" {
			n--
		}
		return nil, AtLine(n, ErrUnclosedStringBlock)
	}
	return res, nil
}

// A closing fence is exactly width backticks, alone on the line, with
// only trailing whitespace ignored.
func isFence(line string, width int) bool {
	line = strings.TrimRightFunc(line, unicode.IsSpace)
	if len(line) != width {
		return false
	}
	for i := 0; i < len(line); i++ {
		if line[i] != '`' {
			return false
		}
	}
	return true
}
