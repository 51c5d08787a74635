package debug

import (
	"os"
	"strconv"
)

type debug struct {
	Scan  bool
	Parse bool
	Diff  bool
	Patch bool
	Eval  bool
	LSP   bool
}

var d *debug

func init() {
	d = &debug{}
	d.Scan = boolEnv("STC_DEBUG_SCAN")
	d.Parse = boolEnv("STC_DEBUG_PARSE")
	d.Diff = boolEnv("STC_DEBUG_DIFF")
	d.Patch = boolEnv("STC_DEBUG_PATCH")
	d.Eval = boolEnv("STC_DEBUG_EVAL")
	d.LSP = boolEnv("STC_DEBUG_LSP")
}

func boolEnv(v string) bool {
	x := os.Getenv(v)
	if x == "" {
		return false
	}
	b, _ := strconv.ParseBool(x)
	return b
}

func Scan() bool {
	return d.Scan
}
func Parse() bool {
	return d.Parse
}
func Diff() bool {
	return d.Diff
}
func Patch() bool {
	return d.Patch
}
func Eval() bool {
	return d.Eval
}
func LSP() bool {
	return d.LSP
}
