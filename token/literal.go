package token

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

type LitKind int

const (
	LitBool LitKind = iota
	LitInt
	LitFloat
	LitEmptyList
	LitEmptyDict
	// LitString is produced by the scanner for a completed string block,
	// never by Classify.
	LitString
	// LitFenceOpen marks the opening fence of a string block; Fence holds
	// the fence width.
	LitFenceOpen
)

func (k LitKind) String() string {
	switch k {
	case LitBool:
		return "Bool"
	case LitInt:
		return "Int"
	case LitFloat:
		return "Float"
	case LitEmptyList:
		return "EmptyList"
	case LitEmptyDict:
		return "EmptyDict"
	case LitString:
		return "Str"
	case LitFenceOpen:
		return "FenceOpen"
	}
	return "<unknown literal>"
}

// Literal is a classified value text.
type Literal struct {
	Kind    LitKind
	Bool    bool
	Int64   int64
	Float64 float64
	Str     string
	Fence   int
}

const minFence = 3

// Classify determines the form of the trimmed value text of an
// assignment line, in priority order: backtick-quoted booleans, the empty
// container tokens, integer, float, then an opening fence of three or
// more backticks.  Anything else is an error naming the accepted forms.
func Classify(raw string, line int) (*Literal, error) {
	switch raw {
	case "`true`":
		return &Literal{Kind: LitBool, Bool: true}, nil
	case "`false`":
		return &Literal{Kind: LitBool, Bool: false}, nil
	case "[]":
		return &Literal{Kind: LitEmptyList}, nil
	case "{}":
		return &Literal{Kind: LitEmptyDict}, nil
	}
	if i, err := strconv.ParseInt(raw, 10, 64); err == nil {
		return &Literal{Kind: LitInt, Int64: i}, nil
	}
	// overflow still reads as a float; finiteness is checked when the
	// tree is built
	if f, err := strconv.ParseFloat(raw, 64); err == nil || errors.Is(err, strconv.ErrRange) {
		return &Literal{Kind: LitFloat, Float64: f}, nil
	}
	if strings.HasPrefix(raw, "```") {
		w := 0
		for w < len(raw) && raw[w] == '`' {
			w++
		}
		return &Literal{Kind: LitFenceOpen, Fence: w}, nil
	}
	return nil, AtLine(line, fmt.Errorf("%w %q: value must be:\n"+
		"- `true` or `false` for a boolean\n"+
		"- [] for an empty list\n"+
		"- {} for an empty dict\n"+
		"- a number for an integer or a float\n"+
		"- a string block enclosed in lines of three or more backticks "+
		"(longer than any backtick-only line of the string)", ErrValue, raw))
}

// Describe renders a literal for conflict diagnostics.
func (l *Literal) Describe() string {
	switch l.Kind {
	case LitBool:
		return fmt.Sprintf("Bool(%v)", l.Bool)
	case LitInt:
		return fmt.Sprintf("Int(%d)", l.Int64)
	case LitFloat:
		return fmt.Sprintf("Float(%v)", l.Float64)
	case LitString:
		return fmt.Sprintf("Str(%q)", l.Str)
	default:
		return l.Kind.String()
	}
}
