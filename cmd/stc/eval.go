package main

import (
	"fmt"

	"github.com/stc-format/go-stc/eval"
	"github.com/stc-format/go-stc/gomap"

	"github.com/scott-cotton/cli"
)

func stcEval(cfg *EvalConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Eval.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: eval requires an expression argument", cli.ErrUsage)
	}
	expr := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	for _, arg := range args {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		res, err := eval.Eval(doc, expr)
		if err != nil {
			return fmt.Errorf("error evaluating on %s: %w", arg, err)
		}
		v, err := gomap.FromAny(res)
		if err != nil {
			return fmt.Errorf("error rendering result for %s: %w", arg, err)
		}
		if err := writeResult(cfg.MainConfig, cc.Out, v); err != nil {
			return err
		}
	}
	return nil
}
