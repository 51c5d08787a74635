package token

import (
	"errors"
	"testing"
)

func TestParseKeyPathOK(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want []string
	}{
		{in: "a", want: []string{"a"}},
		{in: "a.b.c", want: []string{"a", "b", "c"}},
		{in: "_x.y2", want: []string{"_x", "y2"}},
		{in: "a.$0", want: []string{"a", "$0"}},
		{in: "a.$10.b", want: []string{"a", "$10", "b"}},
		{in: "$0", want: []string{"$0"}},
	} {
		got, err := ParseKeyPath(tc.in, 1)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if len(got) != len(tc.want) {
			t.Fatalf("%q: got %v", tc.in, got)
		}
		for i := range got {
			if got[i] != tc.want[i] {
				t.Fatalf("%q: got %v, want %v", tc.in, got, tc.want)
			}
		}
	}
}

func TestParseKeyPathErrors(t *testing.T) {
	for _, in := range []string{
		"",
		".",
		"a..b",
		".a",
		"a.",
		"a.$",
		"a.$1b",
		"a.$-1",
		"1a",
		"a-b",
		"a b",
		"ä",
	} {
		_, err := ParseKeyPath(in, 7)
		if err == nil {
			t.Fatalf("%q: expected error", in)
		}
		if !errors.Is(err, ErrKey) {
			t.Fatalf("%q: expected ErrKey, got %v", in, err)
		}
		if ErrLine(err) != 7 {
			t.Fatalf("%q: expected line 7, got %d", in, ErrLine(err))
		}
	}
}

func TestIndex(t *testing.T) {
	if !IsIndex("$0") || IsIndex("x") || IsIndex("") {
		t.Fatal("IsIndex misbehaves")
	}
	i, err := Index("$12")
	if err != nil || i != 12 {
		t.Fatalf("Index($12) = %d, %v", i, err)
	}
	if _, err := Index("x"); err == nil {
		t.Fatal("Index on non-marker should error")
	}
}
