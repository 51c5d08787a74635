package parse

import (
	"bytes"
	"testing"

	"github.com/stc-format/go-stc/encode"
)

func FuzzParse(f *testing.F) {
	// Seed with various valid inputs
	seeds := []string{
		// Whole-input shortcut
		`{}`,
		"  {}  \n",

		// Scalars
		"a: 1\n",
		"a: -42\n",
		"a: 3.14\n",
		"a: -1e10\n",
		"a: `true`\n",
		"a: `false`\n",

		// Empty containers
		"a: []\n",
		"a: {}\n",

		// Lists
		"a.$0: 1\na.$1: 2\n",
		"$0: 1\n$1: 2\n",
		"a.$0.$0: 1\n",

		// Nesting
		"a.b.c: 1\n",
		"users.$0.name: 1\nusers.$1.name: 2\n",

		// String blocks
		"s: ```\nhello\n```\n",
		"s: ```\n\n```\n",
		"s: ````\n```\n````\n",
		"s: ```\nline1\nline2\n```\n",

		// Invalid shapes worth mutating
		"a: \n",
		"a b: 1\n",
		"a.: 1\n",
		"a.$x: 1\n",
		"a: ``\n",
		"a: ```\nunclosed\n",
		"a: 1\na: 2\n",
		"a: 1\na.b: 2\n",
		"a.$0: 1\na.b: 2\n",
		"a.$0: 1\na.$2: 2\n",
	}

	for _, s := range seeds {
		f.Add([]byte(s))
	}

	f.Fuzz(func(t *testing.T, data []byte) {
		// Primary target: parse should not panic
		v, err := Parse(data)
		if err != nil {
			return // parse errors are expected for random input
		}
		if v == nil {
			t.Fatal("nil value without error")
		}

		// Secondary: a parsed value should encode and round trip
		var buf bytes.Buffer
		if err := encode.Encode(v, &buf); err != nil {
			t.Fatalf("encode of parsed value failed: %v", err)
		}
		back, err := Parse(buf.Bytes())
		if err != nil {
			t.Fatalf("re-parse of %q failed: %v", buf.String(), err)
		}
		if !v.Equal(back) {
			t.Fatalf("round trip changed value:\n%s", buf.String())
		}
	})
}
