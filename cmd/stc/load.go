package main

import (
	"github.com/stc-format/go-stc/encode"

	"github.com/scott-cotton/cli"
)

func load(cfg *LoadConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Load.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) == 0 {
		args = []string{"-"}
	}
	failed := false
	for _, arg := range args {
		v, err := readDoc(cfg.MainConfig, arg)
		if err != nil {
			theLog.Error("load failed", "file", arg, "err", err)
			failed = true
			continue
		}
		if err := encode.Encode(v, cc.Out, cfg.encOpts(cc.Out)...); err != nil {
			return err
		}
	}
	if failed {
		return cli.ExitCodeErr(1)
	}
	return nil
}
