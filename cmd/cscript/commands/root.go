// Package commands implements the CLI commands for cscript.
package commands

import (
	"context"
	"fmt"
	"io"
	"slices"

	"github.com/spf13/cobra"
	"go.trai.ch/cscript/internal/app"
	"go.trai.ch/cscript/internal/build"
	"go.trai.ch/cscript/internal/core/domain"
)

// CLI represents the command line interface for cscript.
type CLI struct {
	app      Application
	rootCmd  *cobra.Command
	exitCode int
}

// Application represents the application logic interface.
type Application interface {
	Run(ctx context.Context, inv domain.Invocation) (int, error)
	List(ctx context.Context) error
	Clean(ctx context.Context, opts app.CleanOptions) error
	GC(ctx context.Context, opts app.GCOptions) error
}

// New creates a new CLI instance with the given app.
func New(a Application) *CLI {
	rootCmd := &cobra.Command{
		Use:           "cscript",
		Short:         "Run C and C++ programs like scripts, with a build cache",
		SilenceUsage:  true,
		SilenceErrors: true,
		Version:       build.Version,
	}

	rootCmd.SetVersionTemplate(fmt.Sprintf(
		"{{.Name}} version {{.Version}} (commit: %s, date: %s)\n",
		build.Commit,
		build.Date,
	))
	rootCmd.InitDefaultVersionFlag()
	rootCmd.Flags().Lookup("version").Usage = "Print the application version"

	rootCmd.InitDefaultHelpFlag()
	rootCmd.Flags().Lookup("help").Usage = "Show help for command"

	c := &CLI{
		app:     a,
		rootCmd: rootCmd,
	}

	rootCmd.AddCommand(c.newRunCmd())
	rootCmd.AddCommand(c.newCacheCmd())
	rootCmd.AddCommand(c.newVersionCmd())

	return c
}

// Execute runs the root command with the given context and returns the exit
// code of the executed program, if any.
func (c *CLI) Execute(ctx context.Context) (int, error) {
	c.exitCode = 0
	c.rootCmd.SetContext(ctx)
	err := c.rootCmd.Execute()
	return c.exitCode, err
}

// SetArgs sets the arguments for the root command. Arguments that do not
// start with a known command are treated as "run" arguments, so a script can
// name cscript in its shebang line. No arguments at all runs stdin.
func (c *CLI) SetArgs(args []string) {
	c.rootCmd.SetArgs(c.withDefaultCommand(args))
}

// SetOutput sets the output and error writers. Used for testing.
func (c *CLI) SetOutput(out, errOut io.Writer) {
	c.rootCmd.SetOut(out)
	c.rootCmd.SetErr(errOut)
}

func (c *CLI) withDefaultCommand(args []string) []string {
	if len(args) == 0 {
		return []string{"run"}
	}

	first := args[0]
	if slices.Contains([]string{"-h", "--help", "--version", "help", "completion"}, first) {
		return args
	}
	for _, cmd := range c.rootCmd.Commands() {
		if cmd.Name() == first || slices.Contains(cmd.Aliases, first) {
			return args
		}
	}

	return append([]string{"run"}, args...)
}
