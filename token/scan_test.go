package token

import (
	"errors"
	"testing"
)

func TestScanImmediate(t *testing.T) {
	in := "name: 1\n\nlist.$0: 2\nlist.$1: 3\n"
	got, err := Scan([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 3 {
		t.Fatalf("got %d assigns", len(got))
	}
	if got[0].Path.String() != "name" || got[0].Lit.Int64 != 1 || got[0].Line != 1 {
		t.Fatalf("assign 0: %+v", got[0])
	}
	if got[2].Path.String() != "list.$1" || got[2].Line != 4 || got[2].EndLine != 4 {
		t.Fatalf("assign 2: %+v", got[2])
	}
}

func TestScanStringBlock(t *testing.T) {
	in := "a: ```\nhello\nworld\n```\n"
	got, err := Scan([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if len(got) != 1 {
		t.Fatalf("got %d assigns", len(got))
	}
	a := got[0]
	if a.Lit.Kind != LitString || a.Lit.Str != "hello\nworld" {
		t.Fatalf("got %q", a.Lit.Str)
	}
	if a.Line != 1 {
		t.Fatalf("string assign should carry the opening line, got %d", a.Line)
	}
	if a.EndLine != 4 {
		t.Fatalf("string assign should carry the closing fence line, got %d", a.EndLine)
	}
}

func TestScanFenceWidth(t *testing.T) {
	// a four-backtick line is content for a five-wide fence
	in := "a: `````\nalpha\n````\nbeta\n`````\n"
	got, err := Scan([]byte(in))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Lit.Str != "alpha\n````\nbeta" {
		t.Fatalf("got %q", got[0].Lit.Str)
	}

	// an exact-width backtick line terminates the block
	in = "a: ````\nalpha\n````\nbeta\n````\n"
	if _, err = Scan([]byte(in)); err == nil {
		t.Fatal("content line matching the fence width should close the block early")
	}
}

func TestScanEmptyStringBlock(t *testing.T) {
	if _, err := Scan([]byte("a: ```\n```\n")); !errors.Is(err, ErrEmptyStringBlock) {
		t.Fatalf("got %v", err)
	}
	// one blank content line is the empty string
	got, err := Scan([]byte("a: ```\n\n```\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Lit.Str != "" {
		t.Fatalf("got %q", got[0].Lit.Str)
	}
}

func TestScanUnclosed(t *testing.T) {
	err := func() error {
		_, err := Scan([]byte("a: ```\nhello\n"))
		return err
	}()
	if !errors.Is(err, ErrUnclosedStringBlock) {
		t.Fatalf("got %v", err)
	}
	if ErrLine(err) != 2 {
		t.Fatalf("expected line 2, got %d", ErrLine(err))
	}
}

func TestScanMissingColon(t *testing.T) {
	err := func() error {
		_, err := Scan([]byte("a: 1\nbogus\n"))
		return err
	}()
	if !errors.Is(err, ErrMissingColon) {
		t.Fatalf("got %v", err)
	}
	if ErrLine(err) != 2 {
		t.Fatalf("expected line 2, got %d", ErrLine(err))
	}
}

func TestScanStrictFences(t *testing.T) {
	in := []byte("a: ```js\ncode\n```\n")
	if _, err := Scan(in); err != nil {
		t.Fatalf("default should ignore fence trailing text: %v", err)
	}
	if _, err := Scan(in, StrictFences()); !errors.Is(err, ErrFenceTrailing) {
		t.Fatalf("strict fences should reject trailing text, got %v", err)
	}
}

func TestScanClosingFenceTrailingWhitespace(t *testing.T) {
	got, err := Scan([]byte("a: ```\nx\n``` \t\n"))
	if err != nil {
		t.Fatal(err)
	}
	if got[0].Lit.Str != "x" {
		t.Fatalf("got %q", got[0].Lit.Str)
	}
}
