package parse

import (
	"errors"
	"math/rand"
	"strings"
	"testing"

	"github.com/stc-format/go-stc/ir"
	"github.com/stc-format/go-stc/token"
)

type parseTest struct {
	in   string
	want string // JSON projection of the expected value
}

func mustJSON(t *testing.T, v *ir.Value) string {
	t.Helper()
	d, err := v.MarshalJSON()
	if err != nil {
		t.Fatal(err)
	}
	return string(d)
}

func TestParseOK(t *testing.T) {
	pts := []parseTest{
		{
			in:   `{}`,
			want: `{}`,
		},
		{
			in:   "  \n\t{} \n",
			want: `{}`,
		},
		{
			in:   "a: 1\n",
			want: `{"a":1}`,
		},
		{
			in:   "a: `true`\nb: `false`\n",
			want: `{"a":true,"b":false}`,
		},
		{
			in:   "a: 3\nb: 3.0\nc: -1e3\n",
			want: `{"a":3,"b":3.0,"c":-1000.0}`,
		},
		{
			in:   "a: []\nb: {}\n",
			want: `{"a":[],"b":{}}`,
		},
		{
			in:   "name: 1\nlist.$0: 2\nlist.$1: 3\n",
			want: `{"list":[2,3],"name":1}`,
		},
		{
			in:   "a.b.c: 1\na.b.d: 2\na.e: 3\n",
			want: `{"a":{"b":{"c":1,"d":2},"e":3}}`,
		},
		{
			in:   "$0: 1\n$1: 2\n",
			want: `[1,2]`,
		},
		{
			in:   "m.$1.x: 2\nm.$0.x: 1\n",
			want: `{"m":[{"x":1},{"x":2}]}`,
		},
		{
			in:   "a: ```\nhello\nworld\n```\n",
			want: `{"a":"hello\nworld"}`,
		},
		{
			in:   "a: ```\n\n```\n",
			want: `{"a":""}`,
		},
		{
			// four-backtick content line inside a five-wide fence
			in:   "a: `````\nalpha\n````\nbeta\n`````\n",
			want: "{\"a\":\"alpha\\n````\\nbeta\"}",
		},
		{
			// final line separator is dropped, embedded ones kept
			in:   "a: ```\nx\n\ny\n```\n",
			want: `{"a":"x\n\ny"}`,
		},
		{
			// trailing characters on the opening fence are ignored
			in:   "a: ```json\n{\"not\": \"parsed\"}\n```\n",
			want: `{"a":"{\"not\": \"parsed\"}"}`,
		},
		{
			in:   "zed: 1\nalpha: 2\nmid: 3\n",
			want: `{"alpha":2,"mid":3,"zed":1}`,
		},
		{
			in:   "\n\na: 1\n\n\nb: 2\n\n",
			want: `{"a":1,"b":2}`,
		},
		{
			// a leading zero changes the key but not the slot number
			in:   "a.$0: 1\na.$01: 2\n",
			want: `{"a":[1,2]}`,
		},
	}
	for _, pt := range pts {
		v, err := Parse([]byte(pt.in))
		if err != nil {
			t.Errorf("%q: %v", pt.in, err)
			continue
		}
		if got := mustJSON(t, v); got != pt.want {
			t.Errorf("%q: got %s, want %s", pt.in, got, pt.want)
		}
	}
}

type parseErrTest struct {
	in string
	e  error
}

func TestParseErrors(t *testing.T) {
	pts := []parseErrTest{
		{in: "a: hello\n", e: token.ErrValue},
		{in: "a: `True`\n", e: token.ErrValue},
		{in: "a: ``\nx\n``\n", e: token.ErrValue},
		{in: "bogus\n", e: token.ErrMissingColon},
		{in: "a..b: 1\n", e: token.ErrKey},
		{in: ".a: 1\n", e: token.ErrKey},
		{in: "a.: 1\n", e: token.ErrKey},
		{in: "a.$: 1\n", e: token.ErrKey},
		{in: "a.$1b: 1\n", e: token.ErrKey},
		{in: ": 1\n", e: token.ErrKey},
		{in: "a: ```\n```\n", e: token.ErrEmptyStringBlock},
		{in: "a: ```\nnever closed\n", e: token.ErrUnclosedStringBlock},
		{in: "a: 1\na.b: 2\n", e: ErrConflict},
		{in: "a.b: 2\na: 1\n", e: ErrConflict},
		{in: "a: 1\na: 1\n", e: ErrConflict},
		{in: "a: []\na.$0: 1\n", e: ErrConflict},
		{in: "a: {}\na.b: 1\n", e: ErrConflict},
		{in: "a.$0: 1\na.x: 2\n", e: ErrConflict},
		{in: "a.x: 2\na.$0: 1\n", e: ErrConflict},
		{in: "a.$0: 1\na.$2: 2\n", e: ErrConflict},
		{in: "a.$1: 1\na.$2: 2\n", e: ErrConflict},
		// distinct keys, duplicate slot
		{in: "a.$1: 1\na.$01: 2\n", e: ErrConflict},
		{in: "a: nan\n", e: ErrNotFinite},
		{in: "a: inf\n", e: ErrNotFinite},
		{in: "a: -inf\n", e: ErrNotFinite},
		// overflows to +Inf rather than failing classification
		{in: "a: 1e999\n", e: ErrNotFinite},
	}
	for _, pt := range pts {
		_, err := Parse([]byte(pt.in))
		if err == nil {
			t.Errorf("%q: expected error", pt.in)
			continue
		}
		if !errors.Is(err, pt.e) {
			t.Errorf("%q: got %v, want %v", pt.in, err, pt.e)
		}
	}
}

func TestParseErrorLines(t *testing.T) {
	_, err := Parse([]byte("a: 1\nb: 2\nc: oops\n"))
	if token.ErrLine(err) != 3 {
		t.Fatalf("expected line 3, got %v", err)
	}
	_, err = Parse([]byte("a: 1\n\na: 2\n"))
	if token.ErrLine(err) != 3 {
		t.Fatalf("duplicate assignment should report its line, got %v", err)
	}
}

func TestParseFinalizeErrorNamesPath(t *testing.T) {
	_, err := Parse([]byte("a.b.$0: 1\na.b.x: 2\n"))
	if err == nil || !strings.Contains(err.Error(), "a.b") {
		t.Fatalf("expected path a.b in error, got %v", err)
	}
	_, err = Parse([]byte("$0: 1\nx: 2\n"))
	if err == nil || !strings.Contains(err.Error(), "<root>") {
		t.Fatalf("expected <root> in error, got %v", err)
	}
}

func TestParseOrderIndependence(t *testing.T) {
	lines := []string{
		"name: 1",
		"list.$0: 2",
		"list.$1: 3",
		"list.$2: `true`",
		"obj.x: 1.5",
		"obj.y: ```\ntext\n```",
	}
	var want string
	rng := rand.New(rand.NewSource(42))
	for trial := 0; trial < 20; trial++ {
		perm := rng.Perm(len(lines))
		in := make([]string, len(lines))
		for i, j := range perm {
			in[i] = lines[j]
		}
		v, err := Parse([]byte(strings.Join(in, "\n") + "\n"))
		if err != nil {
			t.Fatalf("permutation %v: %v", perm, err)
		}
		got := mustJSON(t, v)
		if trial == 0 {
			want = got
			continue
		}
		if got != want {
			t.Fatalf("permutation %v: got %s, want %s", perm, got, want)
		}
	}
}

func TestParseIntFloatDistinct(t *testing.T) {
	v, err := Parse([]byte("i: 3\nf: 3.0\n"))
	if err != nil {
		t.Fatal(err)
	}
	if v.Get("i").Type != ir.IntType {
		t.Fatalf("i: got %s", v.Get("i").Type)
	}
	if v.Get("f").Type != ir.FloatType {
		t.Fatalf("f: got %s", v.Get("f").Type)
	}
	if v.Get("f").Float64 != 3.0 || v.Get("i").Int64 != 3 {
		t.Fatal("values wrong")
	}
}

func TestParseStrictFences(t *testing.T) {
	in := []byte("a: ```js\ncode\n```\n")
	if _, err := Parse(in); err != nil {
		t.Fatal(err)
	}
	if _, err := Parse(in, StrictFences()); !errors.Is(err, token.ErrFenceTrailing) {
		t.Fatalf("got %v", err)
	}
}
