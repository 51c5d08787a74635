package eval

import (
	"fmt"

	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/stc-format/go-stc/debug"
	"github.com/stc-format/go-stc/gomap"
	"github.com/stc-format/go-stc/ir"
)

// Env is the evaluation environment: the document's fields plus the
// built-in functions.
type Env map[string]any

// NewEnv builds the evaluation environment for a document.  Top-level
// fields become identifiers; get(path) resolves dotted paths against
// the whole document.
func NewEnv(doc *ir.Value) (Env, error) {
	env := Env{}
	if doc.Type == ir.ObjectType {
		for i, field := range doc.Fields {
			env[field] = gomap.ToAny(doc.Values[i])
		}
	} else {
		env["doc"] = gomap.ToAny(doc)
	}
	env["get"] = func(path string) (any, error) {
		v, err := doc.GetPath(path)
		if err != nil {
			return nil, err
		}
		if v == nil {
			return nil, nil
		}
		return gomap.ToAny(v), nil
	}
	return env, nil
}

// Eval compiles and runs an expression against a document.
func Eval(doc *ir.Value, src string) (any, error) {
	env, err := NewEnv(doc)
	if err != nil {
		return nil, err
	}
	m := map[string]any(env)
	program, err := expr.Compile(src, expr.Env(m), expr.AllowUndefinedVariables())
	if err != nil {
		return nil, fmt.Errorf("error compiling %q: %w", src, err)
	}
	res, err := vm.Run(program, m)
	if err != nil {
		return nil, fmt.Errorf("error evaluating %q: %w", src, err)
	}
	if debug.Eval() {
		debug.Logf("eval %q: %v\n", src, res)
	}
	return res, nil
}

// EvalToValue runs an expression and converts the result back to a
// canonical value.
func EvalToValue(doc *ir.Value, src string) (*ir.Value, error) {
	res, err := Eval(doc, src)
	if err != nil {
		return nil, err
	}
	return gomap.FromAny(res)
}
