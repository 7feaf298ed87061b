package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func runCLI(t *testing.T, stdin string, args ...string) (stdout, stderr string, err error) {
	t.Helper()

	initCLIDefaults()
	defer func(v bool) { isInteractive = v }(isInteractive)
	isInteractive = false

	var out, errOut bytes.Buffer
	minireCmd.SetIn(strings.NewReader(stdin))
	minireCmd.SetOut(&out)
	minireCmd.SetErr(&errOut)
	err = Run(args)
	return out.String(), errOut.String(), err
}

func TestParseCommand(t *testing.T) {
	tests := []struct {
		args []string
		want string
	}{
		{[]string{"parse", "abc*", "a(bc)*"}, "{a b (* c)}\n{a (* (group {b c}))}\n"},
		{[]string{"parse", ""}, "{}\n"},
		{[]string{"parse", "--format", "pattern", "a**"}, "a*\\*\n"},
		{[]string{"parse", "--format=sexpr", "()"}, "{(group {})}\n"},
		{[]string{"parse", "--stats", "(a)."}, "{(group {a}) .}\nnodes=5 chars=1 dots=1 stars=0 pluses=0 seqs=2 groups=1 depth=1\n"},
	}

	for _, test := range tests {
		stdout, stderr, err := runCLI(t, "", test.args...)
		require.NoError(t, err, "args: %q", test.args)
		require.Equal(t, test.want, stdout, "args: %q", test.args)
		require.Empty(t, stderr, "args: %q", test.args)
	}
}

func TestParseCommandGoFormat(t *testing.T) {
	// Zero-valued children like Dot{} and an empty Seq must be printed too.
	tests := []struct {
		pattern string
		want    string
	}{
		{`.+`, `syntax.Seq{Items:[]syntax.Expr{syntax.Plus{X:syntax.Dot{}}}}`},
		{`()`, `syntax.Seq{Items:[]syntax.Expr{syntax.Group{X:syntax.Seq{Items:[]syntax.Expr(nil)}}}}`},
		{`a*`, `syntax.Seq{Items:[]syntax.Expr{syntax.Star{X:syntax.Char{Value:0x61}}}}`},
	}

	for _, test := range tests {
		stdout, _, err := runCLI(t, "", "parse", "--format", "go", test.pattern)
		require.NoError(t, err, "pattern %q", test.pattern)
		require.Equal(t, test.want+"\n", stdout, "pattern %q", test.pattern)
	}
}

func TestParseCommandStdin(t *testing.T) {
	stdout, stderr, err := runCLI(t, "a\nb*\n(c)+\n", "parse")
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Equal(t, "{a}\n{(* b)}\n{(+ (group {c}))}\n", stdout)
}

func TestParseCommandStdinLongLine(t *testing.T) {
	long := strings.Repeat("a", 70000)
	stdout, stderr, err := runCLI(t, long+"\nb\n", "parse", "--format", "pattern")
	require.NoError(t, err)
	require.Empty(t, stderr)
	require.Equal(t, long+"\nb\n", stdout)
}

func TestParseCommandStdinNoTrailingNewline(t *testing.T) {
	stdout, _, err := runCLI(t, "a\n\nb", "parse")
	require.NoError(t, err)
	require.Equal(t, "{a}\n{}\n{b}\n", stdout)
}

func TestParseCommandErrors(t *testing.T) {
	stdout, stderr, err := runCLI(t, "", "parse", "(", "a", `\`)
	require.EqualError(t, err, "2 of 3 patterns failed to parse")
	require.Equal(t, "{a}\n", stdout)
	require.Equal(t,
		`parse "(": at position 1, expected ')', found EOF`+"\n"+
			`parse "\\": at position 1, EOF in escape`+"\n",
		stderr)
}

func TestParseCommandMaxDepth(t *testing.T) {
	_, stderr, err := runCLI(t, "", "parse", "--max-depth", "1", "((a))")
	require.Error(t, err)
	require.Equal(t, `parse "((a))": at position 1, nesting depth exceeds limit of 1`+"\n", stderr)

	deep := strings.Repeat("(", 2000) + strings.Repeat(")", 2000)
	_, _, err = runCLI(t, "", "parse", "--max-depth", "0", deep)
	require.NoError(t, err)

	_, _, err = runCLI(t, "", "parse", deep)
	require.Error(t, err)
}

func TestParseCommandBadFormat(t *testing.T) {
	_, _, err := runCLI(t, "", "parse", "--format", "xml", "a")
	require.Error(t, err)
	require.Contains(t, err.Error(), `unknown format "xml"`)
}

func TestReplCommand(t *testing.T) {
	input := strings.Join([]string{
		`a*`,
		`:format pattern`,
		`a**`,
		``,
		`:format`,
		`:bogus`,
		`)`,
		`:format sexpr`,
		` `,
		`\:x`,
		`:quit`,
		`b`,
	}, "\n")

	stdout, stderr, err := runCLI(t, input, "repl")
	require.NoError(t, err)
	require.Equal(t, "{(* a)}\na*\\*\n{' '}\n{: x}\n", stdout)
	require.Equal(t, strings.Join([]string{
		`usage: :format NAME`,
		`unknown command :bogus. Type :quit to exit.`,
		`at position 0, unexpected character ')'`,
	}, "\n")+"\n", stderr)
}

func TestReplCommandEOF(t *testing.T) {
	stdout, _, err := runCLI(t, "x+", "repl", "--format", "pattern")
	require.NoError(t, err)
	require.Equal(t, "x+\n", stdout)
}

func TestReplCommandLongLine(t *testing.T) {
	long := strings.Repeat("x", 70000)
	stdout, _, err := runCLI(t, long+"\n:quit\n", "repl", "--format", "pattern")
	require.NoError(t, err)
	require.Equal(t, long+"\n", stdout)
}

func TestVersionCommand(t *testing.T) {
	stdout, _, err := runCLI(t, "", "version")
	require.NoError(t, err)
	require.Contains(t, stdout, "Version:")
	require.Contains(t, stdout, "Go Version:")
}
