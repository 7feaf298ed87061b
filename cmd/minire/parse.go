package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/quasilyte/minire/syntax"
	"github.com/spf13/cobra"
)

var parseCmd = &cobra.Command{
	Use:   "parse [pattern...]",
	Short: "print syntax trees of patterns",
	Long: `
Parse every argument as a pattern and print its syntax tree.
Without arguments, patterns are read from the standard input, one per line.

Errors are reported to the standard error; the command fails if any
of the patterns could not be parsed.
`,
	RunE: runParse,
}

func runParse(cmd *cobra.Command, args []string) error {
	patterns := args
	if len(patterns) == 0 {
		err := readLines(cmd.InOrStdin(), func(line string) bool {
			patterns = append(patterns, line)
			return true
		})
		if err != nil {
			return errors.Wrap(err, "reading patterns")
		}
	}

	p := cliCtx.newParser()
	out := cmd.OutOrStdout()
	failed := 0
	for _, pattern := range patterns {
		re, err := p.Parse(pattern)
		if err != nil {
			fmt.Fprintln(cmd.ErrOrStderr(), errors.Wrapf(err, "parse %q", pattern))
			failed++
			continue
		}
		printTree(out, re.Expr)
	}

	if failed != 0 {
		return errors.Newf("%d of %d patterns failed to parse", failed, len(patterns))
	}
	return nil
}

func printTree(w io.Writer, e syntax.Expr) {
	fmt.Fprintln(w, cliCtx.format.render(e))
	if parseCtx.stats {
		fmt.Fprintln(w, formatStats(syntax.Stats(e)))
	}
}

// readLines calls fn for every line of r, without the line terminator.
// Lines are not length-limited. Reading stops early if fn returns false.
func readLines(r io.Reader, fn func(line string) bool) error {
	br := bufio.NewReader(r)
	for {
		line, err := br.ReadString('\n')
		if len(line) != 0 && (err == nil || err == io.EOF) {
			if !fn(strings.TrimSuffix(line, "\n")) {
				return nil
			}
		}
		if err == io.EOF {
			return nil
		}
		if err != nil {
			return err
		}
	}
}
