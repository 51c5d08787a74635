package stc

import (
	"strings"

	diffpatch "github.com/sergi/go-diff/diffmatchpatch"

	"github.com/stc-format/go-stc/debug"
	"github.com/stc-format/go-stc/ir"
)

// Diff returns a line diff of the canonical encodings of two values.
// Because encoding is deterministic with one assignment per leaf, the
// diff reads as a per-path change list.  The result is empty when the
// values are equal.
func Diff(from, to *ir.Value) (string, error) {
	if from.Equal(to) {
		return "", nil
	}
	fromText, err := Encode(from)
	if err != nil {
		return "", err
	}
	toText, err := Encode(to)
	if err != nil {
		return "", err
	}
	diffCfg := diffpatch.New()
	fromRunes, toRunes, lines := diffCfg.DiffLinesToRunes(string(fromText), string(toText))
	diffs := diffCfg.DiffMainRunes(fromRunes, toRunes, false)
	diffs = diffCfg.DiffCharsToLines(diffs, lines)
	if debug.Diff() {
		debug.Logf("diff produced %d segments\n", len(diffs))
	}
	return renderDiff(diffs), nil
}

func renderDiff(diffs []diffpatch.Diff) string {
	sb := &strings.Builder{}
	for _, d := range diffs {
		var prefix string
		switch d.Type {
		case diffpatch.DiffDelete:
			prefix = "- "
		case diffpatch.DiffInsert:
			prefix = "+ "
		case diffpatch.DiffEqual:
			prefix = "  "
		}
		for _, ln := range splitDiffLines(d.Text) {
			sb.WriteString(prefix)
			sb.WriteString(ln)
			sb.WriteByte('\n')
		}
	}
	return sb.String()
}

func splitDiffLines(text string) []string {
	text = strings.TrimSuffix(text, "\n")
	return strings.Split(text, "\n")
}
