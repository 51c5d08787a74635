package ir

import (
	"cmp"
	"strings"
)

// Compare returns an integer comparing two values.
// The result will be 0 if a==b, -1 if a < b, and +1 if a > b.
func Compare(a, b *Value) int {
	if a == b {
		return 0
	}
	if a == nil {
		return -1
	}
	if b == nil {
		return 1
	}

	rankA := rank(a.Type)
	rankB := rank(b.Type)
	if rankA != rankB {
		return cmp.Compare(rankA, rankB)
	}

	switch a.Type {
	case NullType:
		return 0
	case BoolType:
		if a.Bool == b.Bool {
			return 0
		}
		if !a.Bool {
			return -1
		}
		return 1
	case IntType, FloatType:
		return compareNumbers(a, b)
	case StringType:
		return strings.Compare(a.String, b.String)
	case ArrayType:
		return compareArrays(a, b)
	case ObjectType:
		return compareObjects(a, b)
	}
	return 0
}

// Equal reports whether two values are structurally identical, including
// the Int/Float distinction.
func Equal(a, b *Value) bool {
	if a != nil && b != nil && a.Type != b.Type {
		return false
	}
	return Compare(a, b) == 0
}

func (v *Value) Equal(o *Value) bool {
	return Equal(v, o)
}

// rank returns the sorting rank of a type.
// Order: Null < Bool < numbers < String < Array < Object
func rank(t Type) int {
	switch t {
	case NullType:
		return 0
	case BoolType:
		return 1
	case IntType, FloatType:
		return 2
	case StringType:
		return 3
	case ArrayType:
		return 4
	case ObjectType:
		return 5
	}
	return 6
}

// Ints and floats compare by numeric value, so Equal must separately
// reject 3 == 3.0.
func compareNumbers(a, b *Value) int {
	af, bf := numf(a), numf(b)
	if af != bf {
		return cmp.Compare(af, bf)
	}
	if a.Type == IntType && b.Type == IntType {
		return cmp.Compare(a.Int64, b.Int64)
	}
	return 0
}

func numf(v *Value) float64 {
	if v.Type == IntType {
		return float64(v.Int64)
	}
	return v.Float64
}

func compareArrays(a, b *Value) int {
	n := min(len(a.Values), len(b.Values))
	for i := range n {
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Values), len(b.Values))
}

func compareObjects(a, b *Value) int {
	n := min(len(a.Fields), len(b.Fields))
	for i := range n {
		if c := strings.Compare(a.Fields[i], b.Fields[i]); c != 0 {
			return c
		}
		if c := Compare(a.Values[i], b.Values[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a.Fields), len(b.Fields))
}
