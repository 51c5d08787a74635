package main

import (
	"context"
	"fmt"

	"go.lsp.dev/protocol"

	"github.com/stc-format/go-stc/token"
)

// Hover reports the key path and classified value of the assignment
// under the cursor.
func (s *Server) Hover(ctx context.Context, params *protocol.HoverParams) (*protocol.Hover, error) {
	doc := s.docs.get(string(params.TextDocument.URI))
	if doc == nil || doc.err != nil {
		return nil, nil
	}
	assigns, err := token.Scan([]byte(doc.content))
	if err != nil {
		return nil, nil
	}
	a := assignAt(assigns, int(params.Position.Line)+1)
	if a == nil {
		return nil, nil
	}
	return &protocol.Hover{
		Contents: protocol.MarkupContent{
			Kind:  protocol.Markdown,
			Value: fmt.Sprintf("`%s` = %s", a.Path, a.Lit.Describe()),
		},
		Range: &protocol.Range{
			Start: protocol.Position{Line: uint32(a.Line - 1), Character: 0},
			End:   protocol.Position{Line: uint32(a.Line - 1), Character: uint32(len(a.Path.String()))},
		},
	}, nil
}

// assignAt picks the assignment starting at the given 1-based line, or
// the string block assignment whose fences contain it.
func assignAt(assigns []token.Assign, ln int) *token.Assign {
	var best *token.Assign
	for i := range assigns {
		a := &assigns[i]
		if a.Line > ln {
			break
		}
		best = a
	}
	if best == nil {
		return nil
	}
	if best.Line == ln {
		return best
	}
	if best.Lit.Kind == token.LitString && ln <= best.EndLine {
		return best
	}
	return nil
}
