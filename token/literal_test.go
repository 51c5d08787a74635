package token

import (
	"errors"
	"testing"
)

func TestClassify(t *testing.T) {
	for _, tc := range []struct {
		in   string
		want Literal
	}{
		{in: "`true`", want: Literal{Kind: LitBool, Bool: true}},
		{in: "`false`", want: Literal{Kind: LitBool}},
		{in: "[]", want: Literal{Kind: LitEmptyList}},
		{in: "{}", want: Literal{Kind: LitEmptyDict}},
		{in: "3", want: Literal{Kind: LitInt, Int64: 3}},
		{in: "-42", want: Literal{Kind: LitInt, Int64: -42}},
		{in: "9223372036854775807", want: Literal{Kind: LitInt, Int64: 9223372036854775807}},
		{in: "3.0", want: Literal{Kind: LitFloat, Float64: 3.0}},
		{in: "-1e3", want: Literal{Kind: LitFloat, Float64: -1000}},
		// too large for int64, still a float
		{in: "9223372036854775808", want: Literal{Kind: LitFloat, Float64: 9223372036854775808}},
		{in: "```", want: Literal{Kind: LitFenceOpen, Fence: 3}},
		{in: "`````", want: Literal{Kind: LitFenceOpen, Fence: 5}},
		{in: "```extra", want: Literal{Kind: LitFenceOpen, Fence: 3}},
	} {
		got, err := Classify(tc.in, 1)
		if err != nil {
			t.Fatalf("%q: %v", tc.in, err)
		}
		if *got != tc.want {
			t.Fatalf("%q: got %+v, want %+v", tc.in, *got, tc.want)
		}
	}
}

func TestClassifyErrors(t *testing.T) {
	for _, in := range []string{
		"",
		"hello",
		"true",
		"`True`",
		"`123`",
		"``",
		"[1]",
		"{a: 1}",
	} {
		_, err := Classify(in, 3)
		if err == nil {
			t.Fatalf("%q: expected error", in)
		}
		if !errors.Is(err, ErrValue) {
			t.Fatalf("%q: expected ErrValue, got %v", in, err)
		}
		if ErrLine(err) != 3 {
			t.Fatalf("%q: expected line 3, got %d", in, ErrLine(err))
		}
	}
}

func TestClassifyNonFiniteIsFloat(t *testing.T) {
	// nan/inf classify as floats; the finalizer rejects them later.
	for _, in := range []string{"nan", "NaN", "inf", "-inf"} {
		got, err := Classify(in, 1)
		if err != nil {
			t.Fatalf("%q: %v", in, err)
		}
		if got.Kind != LitFloat {
			t.Fatalf("%q: got %s, want Float", in, got.Kind)
		}
	}
}
