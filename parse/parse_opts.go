package parse

import "github.com/stc-format/go-stc/token"

type parseOpts struct {
	strictFences bool
}

func (o *parseOpts) scanOpts() []token.ScanOpt {
	if o.strictFences {
		return []token.ScanOpt{token.StrictFences()}
	}
	return nil
}

type ParseOption func(*parseOpts)

// StrictFences rejects trailing characters after an opening fence's
// backticks.  By default they are accepted and ignored.
func StrictFences() ParseOption {
	return func(o *parseOpts) { o.strictFences = true }
}
