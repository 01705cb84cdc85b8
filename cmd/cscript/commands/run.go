package commands

import (
	"strings"

	"github.com/spf13/cobra"
	"go.trai.ch/cscript/internal/core/domain"
)

func (c *CLI) newRunCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run [options] [sourcefile|-] [arguments...]",
		Short: "Compile (or reuse) and run a program",
		Long: "Compile the program and run it, reusing a cached build when nothing changed.\n" +
			"Without a source file or -e expression the program is read from stdin.",
		Example: "  cscript run -cWall -cO2 -e 'printf(\"hello world\\n\")'\n" +
			"  cscript run -p -e 'int main(int, char**) { cout << \"hello\" << endl; }'\n" +
			"  cscript run script.c arg1 arg2",
		Args: cobra.ArbitraryArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			inv, err := invocationFromFlags(cmd, args)
			if err != nil {
				return err
			}
			code, err := c.app.Run(cmd.Context(), inv)
			c.exitCode = code
			return err
		},
	}

	flags := cmd.Flags()
	flags.SetInterspersed(false)
	flags.StringArrayP("cflag", "c", nil, "Pass an option to the compiler (-cWall passes -Wall)")
	flags.StringArrayP("ldflag", "l", nil, "Pass an option to the linker (-llm passes -lm)")
	flags.StringArrayP("include", "i", nil, "Add an include file")
	flags.StringArrayP("expr", "e", nil, "Execute the expression instead of a source file")
	flags.BoolP("debug", "d", false, "Run the program under the debugger")
	flags.BoolP("keep", "k", false, "Keep the temporary workspace (disables the cache)")
	flags.BoolP("main", "m", false, "The source defines its own main function")
	flags.BoolP("cxx", "p", false, "Compile as C++ (implies --main)")
	flags.BoolP("asm", "S", false, "Print the generated assembly instead of running")
	flags.BoolP("no-cache", "n", false, "Bypass the build cache")

	return cmd
}

// invocationFromFlags turns the parsed command line into an Invocation.
func invocationFromFlags(cmd *cobra.Command, args []string) (domain.Invocation, error) {
	flags := cmd.Flags()
	cflags, _ := flags.GetStringArray("cflag")
	ldflags, _ := flags.GetStringArray("ldflag")
	includes, _ := flags.GetStringArray("include")
	exprs, _ := flags.GetStringArray("expr")
	debug, _ := flags.GetBool("debug")
	keep, _ := flags.GetBool("keep")
	ownMain, _ := flags.GetBool("main")
	cxx, _ := flags.GetBool("cxx")
	showAsm, _ := flags.GetBool("asm")
	noCache, _ := flags.GetBool("no-cache")

	if len(exprs) > 1 {
		return domain.Invocation{}, domain.ErrMultipleExpressions
	}

	opts := domain.BuildOptions{
		CFlags:   compilerOptions(cflags),
		LDFlags:  compilerOptions(ldflags),
		Includes: includes,
		OwnMain:  ownMain || cxx,
		Debug:    debug,
		Keep:     keep,
		ShowAsm:  showAsm,
		NoCache:  noCache,
	}
	if cxx {
		opts.Language = domain.LanguageCXX
	}

	inv := domain.Invocation{Options: opts}
	switch {
	case len(exprs) == 1:
		inv.Source = domain.Source{Kind: domain.SourceInline, Text: exprs[0]}
		inv.Args = args
	case len(args) == 0:
		inv.Source = domain.Source{Kind: domain.SourceStdin}
	case args[0] == "-":
		inv.Source = domain.Source{Kind: domain.SourceStdin}
		inv.Args = args[1:]
	default:
		inv.Source = domain.Source{Kind: domain.SourceFile, Path: args[0]}
		inv.Args = args[1:]
	}

	return inv, nil
}

// compilerOptions restores the leading dash of options given in attached form,
// so -cWall and -c -Wall both pass -Wall.
func compilerOptions(values []string) []string {
	out := make([]string, 0, len(values))
	for _, v := range values {
		if !strings.HasPrefix(v, "-") {
			v = "-" + v
		}
		out = append(out, v)
	}
	return out
}
