package main

import (
	"fmt"

	stc "github.com/stc-format/go-stc"

	"github.com/scott-cotton/cli"
)

func diff(cfg *DiffConfig, cc *cli.Context, args []string) error {
	args, err := cfg.Diff.Parse(cc, args)
	if err != nil {
		return err
	}
	if len(args) != 2 {
		return fmt.Errorf("%w: diff requires two document arguments", cli.ErrUsage)
	}
	from, err := readDoc(cfg.MainConfig, args[0])
	if err != nil {
		return err
	}
	to, err := readDoc(cfg.MainConfig, args[1])
	if err != nil {
		return err
	}
	d, err := stc.Diff(from, to)
	if err != nil {
		return err
	}
	if d == "" {
		return nil
	}
	if !cfg.Quiet {
		if _, err := cc.Out.Write([]byte(d)); err != nil {
			return err
		}
	}
	return cli.ExitCodeErr(1)
}
