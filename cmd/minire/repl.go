package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/cockroachdb/errors"
	"github.com/fatih/color"
	"github.com/peterh/liner"
	"github.com/quasilyte/minire/syntax"
	"github.com/spf13/cobra"
)

const (
	historyFile = ".minire_history"
	promptMain  = "re> "
)

var replCmd = &cobra.Command{
	Use:   "repl",
	Short: "parse patterns interactively",
	Long: `
Read patterns line by line and print their syntax trees.

Lines starting with ':' are commands:
  :format NAME   switch the output format (sexpr, go or pattern)
  :quit          exit

To parse a pattern that starts with ':', escape it as '\:'.
`,
	Args: cobra.NoArgs,
	RunE: runRepl,
}

// replSession evaluates REPL input lines.
type replSession struct {
	parser *syntax.Parser
	format outputFormat

	out    io.Writer
	errOut io.Writer

	// highlightErr decorates error messages; identity if nil.
	highlightErr func(a ...interface{}) string
}

func newReplSession(cmd *cobra.Command) *replSession {
	return &replSession{
		parser: cliCtx.newParser(),
		format: cliCtx.format,
		out:    cmd.OutOrStdout(),
		errOut: cmd.ErrOrStderr(),
	}
}

func (s *replSession) printErr(err error) {
	msg := err.Error()
	if s.highlightErr != nil {
		msg = s.highlightErr(msg)
	}
	fmt.Fprintln(s.errOut, msg)
}

// handleLine processes a single input line.
// It returns true when the session should end.
func (s *replSession) handleLine(line string) (exit bool) {
	if line == "" {
		return false
	}

	if strings.HasPrefix(line, ":") {
		fields := strings.Fields(line)
		switch fields[0] {
		case ":quit", ":q":
			return true
		case ":format":
			if len(fields) != 2 {
				s.printErr(errors.New("usage: :format NAME"))
				return false
			}
			if err := s.format.Set(fields[1]); err != nil {
				s.printErr(err)
			}
		default:
			s.printErr(errors.Newf("unknown command %s. Type :quit to exit.", fields[0]))
		}
		return false
	}

	re, err := s.parser.Parse(line)
	if err != nil {
		s.printErr(err)
		return false
	}
	fmt.Fprintln(s.out, s.format.render(re.Expr))
	return false
}

func runRepl(cmd *cobra.Command, args []string) error {
	s := newReplSession(cmd)
	if !isInteractive {
		return runReplPlain(s, cmd.InOrStdin())
	}
	return runReplTerminal(s)
}

// runReplPlain is used when there is no terminal to edit lines on.
func runReplPlain(s *replSession, in io.Reader) error {
	err := readLines(in, func(line string) bool {
		return !s.handleLine(line)
	})
	return errors.Wrap(err, "reading input")
}

func runReplTerminal(s *replSession) error {
	s.highlightErr = color.New(color.FgRed).SprintFunc()

	ln := liner.NewLiner()
	defer ln.Close()
	ln.SetCtrlCAborts(true)

	var histPath string
	if home, err := os.UserHomeDir(); err == nil {
		histPath = filepath.Join(home, historyFile)
	}
	if histPath != "" {
		if f, err := os.Open(histPath); err == nil {
			_, _ = ln.ReadHistory(f)
			_ = f.Close()
		}
		defer func() {
			if f, err := os.Create(histPath); err == nil {
				_, _ = ln.WriteHistory(f)
				_ = f.Close()
			}
		}()
	}

	for {
		line, err := ln.Prompt(promptMain)
		if errors.Is(err, io.EOF) || errors.Is(err, liner.ErrPromptAborted) {
			fmt.Fprintln(s.out)
			return nil
		}
		if err != nil {
			return errors.Wrap(err, "reading input")
		}
		if s.handleLine(line) {
			return nil
		}
		if line != "" {
			ln.AppendHistory(line)
		}
	}
}
