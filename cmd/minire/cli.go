package main

import (
	"fmt"
	"os"
	"runtime/debug"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/quasilyte/minire/syntax"
	"github.com/spf13/cobra"
)

// Proxy to allow overrides in tests.
var osStderr = os.Stderr

// cliContext holds the flag values shared by all commands.
type cliContext struct {
	maxDepth int
	format   outputFormat
}

var cliCtx cliContext

// parseCtx holds the flag values of the parse command.
var parseCtx struct {
	stats bool
}

// initCLIDefaults resets all flag-backed values.
// Tests call it to isolate runs from each other.
func initCLIDefaults() {
	cliCtx = cliContext{
		maxDepth: syntax.DefaultMaxDepth,
		format:   formatSexpr,
	}
	parseCtx.stats = false
}

func (ctx *cliContext) newParser() *syntax.Parser {
	maxDepth := ctx.maxDepth
	if maxDepth == 0 {
		// Zero means "use the default" for ParserOptions,
		// for the flag it's more natural to read it as "no limit".
		maxDepth = -1
	}
	return syntax.NewParser(&syntax.ParserOptions{MaxDepth: maxDepth})
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "output version information",
	Args:  cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		version, goVersion := "(devel)", "unknown"
		if info, ok := debug.ReadBuildInfo(); ok {
			if info.Main.Version != "" {
				version = info.Main.Version
			}
			goVersion = info.GoVersion
		}
		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 2, 1, 2, ' ', 0)
		fmt.Fprintf(tw, "Version:\t%s\n", version)
		fmt.Fprintf(tw, "Go Version:\t%s\n", goVersion)
		_ = tw.Flush()
	},
}

var minireCmd = &cobra.Command{
	Use:   "minire [command] (flags)",
	Short: "minimal regular expression parser",
	Long: `
Parse patterns written in a small regular expression dialect and print
their syntax trees. The dialect has literal characters, '.', single-byte
'\' escapes, '(...)' groups and postfix '*' and '+' repetition.
`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// isInteractive indicates whether both stdin and stdout refer to the
// terminal.
var isInteractive = isatty.IsTerminal(os.Stdout.Fd()) &&
	isatty.IsTerminal(os.Stdin.Fd())

func init() {
	cobra.EnableCommandSorting = false
	initCLIDefaults()

	pf := minireCmd.PersistentFlags()
	pf.IntVar(&cliCtx.maxDepth, "max-depth", cliCtx.maxDepth,
		"maximum group nesting depth, 0 disables the limit")
	pf.Var(&cliCtx.format, "format",
		"output format: sexpr, go or pattern")

	parseCmd.Flags().BoolVar(&parseCtx.stats, "stats", false,
		"print node counts after every tree")

	minireCmd.AddCommand(
		parseCmd,
		replCmd,
		versionCmd,
	)
}

// Run executes the command line given by args.
func Run(args []string) error {
	minireCmd.SetArgs(args)
	return minireCmd.Execute()
}
