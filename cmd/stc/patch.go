package main

import (
	"fmt"
	"os"

	stc "github.com/stc-format/go-stc"
	"github.com/stc-format/go-stc/encode"
	"github.com/stc-format/go-stc/parse"

	"github.com/scott-cotton/cli"
)

func patch(cfg *PatchConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Patch.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		return fmt.Errorf("%w: patch requires a patch file argument", cli.ErrUsage)
	}
	patchArg := args[0]
	args = args[1:]
	if len(args) == 0 {
		args = []string{"-"}
	}
	patchData, err := os.ReadFile(patchArg)
	if err != nil {
		return fmt.Errorf("error reading patch %s: %w", patchArg, err)
	}
	for _, arg := range args {
		doc, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			return err
		}
		var res = doc
		if cfg.Merge {
			p, err := parse.Parse(patchData, cfg.parseOpts()...)
			if err != nil {
				return fmt.Errorf("error decoding patch %s: %w", patchArg, err)
			}
			res, err = stc.MergePatch(doc, p)
			if err != nil {
				return fmt.Errorf("error merge patching %s: %w", arg, err)
			}
		} else {
			res, err = stc.Patch(doc, patchData)
			if err != nil {
				return fmt.Errorf("error patching %s: %w", arg, err)
			}
		}
		if err := encode.Encode(res, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	return nil
}
