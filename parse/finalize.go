package parse

import (
	"fmt"
	"maps"
	"math"
	"slices"

	"github.com/stc-format/go-stc/ir"
	"github.com/stc-format/go-stc/token"
)

// finalize converts the intermediate tree into the canonical value,
// deciding list-vs-object per container and validating the structural
// invariants that only whole containers can exhibit.  prefix is the
// dotted path of n, used in error messages ("" for the root).
func finalize(n *node, prefix string) (*ir.Value, error) {
	if !n.isContainer() {
		return finalizeLeaf(n, prefix)
	}
	if len(n.kids) == 0 {
		return ir.EmptyObject(), nil
	}

	keys := slices.Sorted(maps.Keys(n.kids))
	here := prefix
	if here == "" {
		here = "<root>"
	}

	if !token.IsIndex(keys[0]) {
		// object: no key may be an index marker
		for _, k := range keys {
			if token.IsIndex(k) {
				return nil, listDictConflict(here)
			}
		}
		res := &ir.Value{
			Type:   ir.ObjectType,
			Fields: keys,
			Values: make([]*ir.Value, len(keys)),
		}
		for i, k := range keys {
			child, err := finalize(n.kids[k], ir.JoinPath(prefix, k))
			if err != nil {
				return nil, err
			}
			res.Values[i] = child
		}
		return res, nil
	}

	// list: every key must be an index marker and the indices must be
	// exactly 0..N-1
	indices := make([]int, len(keys))
	for i, k := range keys {
		if !token.IsIndex(k) {
			return nil, listDictConflict(here)
		}
		idx, err := token.Index(k)
		if err != nil {
			return nil, fmt.Errorf("%w: %s has invalid list index `%s`", ErrConflict, here, k)
		}
		indices[i] = idx
	}
	sorted := slices.Clone(indices)
	slices.Sort(sorted)
	for i, idx := range sorted {
		if idx != i {
			return nil, fmt.Errorf(
				"%w: %s is set as a list, but not all indices 0..%d are present",
				ErrConflict, here, len(keys)-1)
		}
	}
	res := &ir.Value{
		Type:   ir.ArrayType,
		Values: make([]*ir.Value, len(keys)),
	}
	for i, k := range keys {
		child, err := finalize(n.kids[k], ir.JoinPath(prefix, k))
		if err != nil {
			return nil, err
		}
		res.Values[indices[i]] = child
	}
	return res, nil
}

func finalizeLeaf(n *node, prefix string) (*ir.Value, error) {
	lit := n.leaf
	switch lit.Kind {
	case token.LitBool:
		return ir.FromBool(lit.Bool), nil
	case token.LitInt:
		return ir.FromInt(lit.Int64), nil
	case token.LitFloat:
		if math.IsNaN(lit.Float64) || math.IsInf(lit.Float64, 0) {
			return nil, token.AtLine(n.line, fmt.Errorf(
				"%w: %v at `%s` is not representable", ErrNotFinite, lit.Float64, prefix))
		}
		return ir.FromFloat(lit.Float64), nil
	case token.LitString:
		return ir.FromString(lit.Str), nil
	case token.LitEmptyList:
		return ir.EmptyArray(), nil
	case token.LitEmptyDict:
		return ir.EmptyObject(), nil
	default:
		return nil, fmt.Errorf("%w: leaf %s at `%s`", errInternal, lit.Kind, prefix)
	}
}

func listDictConflict(here string) error {
	return fmt.Errorf("%w: %s is set both as a list and a dict", ErrConflict, here)
}
