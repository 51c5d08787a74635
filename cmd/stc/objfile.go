package main

import (
	"fmt"
	"io"
	"os"

	"github.com/stc-format/go-stc/ir"
	"github.com/stc-format/go-stc/parse"
)

// readDoc parses one document argument, "-" meaning stdin.
func readDoc(cfg *MainConfig, arg string) (*ir.Value, error) {
	var r io.Reader
	if arg == "-" {
		r = os.Stdin
	} else {
		f, err := os.Open(arg)
		if err != nil {
			return nil, fmt.Errorf("error opening %s: %w", arg, err)
		}
		defer f.Close()
		r = f
	}
	d, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	v, err := parse.Parse(d, cfg.parseOpts()...)
	if err != nil {
		return nil, fmt.Errorf("error decoding %s: %w", arg, err)
	}
	return v, nil
}
