package main

import (
	"fmt"

	"github.com/cockroachdb/errors"
	"github.com/quasilyte/minire/syntax"
)

// outputFormat selects how syntax trees are printed.
// It implements pflag.Value.
type outputFormat string

const (
	formatSexpr   outputFormat = "sexpr"
	formatGo      outputFormat = "go"
	formatPattern outputFormat = "pattern"
)

func (f *outputFormat) String() string { return string(*f) }

func (f *outputFormat) Type() string { return "format" }

func (f *outputFormat) Set(s string) error {
	switch v := outputFormat(s); v {
	case formatSexpr, formatGo, formatPattern:
		*f = v
		return nil
	default:
		return errors.Newf("unknown format %q (want sexpr, go or pattern)", s)
	}
}

func (f outputFormat) render(e syntax.Expr) string {
	switch f {
	case formatGo:
		return fmt.Sprintf("%#v", e)
	case formatPattern:
		return syntax.Pattern(e)
	default:
		return syntax.FormatSyntax(e)
	}
}

func formatStats(s syntax.TreeStats) string {
	return fmt.Sprintf("nodes=%d chars=%d dots=%d stars=%d pluses=%d seqs=%d groups=%d depth=%d",
		s.Nodes(), s.Chars, s.Dots, s.Stars, s.Pluses, s.Seqs, s.Groups, s.MaxDepth)
}
