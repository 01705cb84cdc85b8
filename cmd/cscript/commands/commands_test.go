package commands_test

import (
	"bytes"
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/cscript/cmd/cscript/commands"
	"go.trai.ch/cscript/internal/app"
	"go.trai.ch/cscript/internal/build"
	"go.trai.ch/cscript/internal/core/domain"
)

type mockApp struct {
	runFunc   func(ctx context.Context, inv domain.Invocation) (int, error)
	listFunc  func(ctx context.Context) error
	cleanFunc func(ctx context.Context, opts app.CleanOptions) error
	gcFunc    func(ctx context.Context, opts app.GCOptions) error
}

func (m *mockApp) Run(ctx context.Context, inv domain.Invocation) (int, error) {
	if m.runFunc != nil {
		return m.runFunc(ctx, inv)
	}
	return 0, nil
}

func (m *mockApp) List(ctx context.Context) error {
	if m.listFunc != nil {
		return m.listFunc(ctx)
	}
	return nil
}

func (m *mockApp) Clean(ctx context.Context, opts app.CleanOptions) error {
	if m.cleanFunc != nil {
		return m.cleanFunc(ctx, opts)
	}
	return nil
}

func (m *mockApp) GC(ctx context.Context, opts app.GCOptions) error {
	if m.gcFunc != nil {
		return m.gcFunc(ctx, opts)
	}
	return nil
}

// capture runs the CLI with args and returns the invocation handed to Run.
func capture(t *testing.T, args ...string) domain.Invocation {
	t.Helper()
	var got domain.Invocation
	called := false
	cli := commands.New(&mockApp{
		runFunc: func(_ context.Context, inv domain.Invocation) (int, error) {
			got = inv
			called = true
			return 0, nil
		},
	})
	cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
	cli.SetArgs(args)

	code, err := cli.Execute(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 0, code)
	require.True(t, called, "Run was not called")
	return got
}

func TestCommands_Run(t *testing.T) {
	t.Run("wires flags correctly", func(t *testing.T) {
		inv := capture(t, "run", "-cWall", "-c", "-O2", "-llm", "-i", "math.h", "-d", "-k", "-S", "-n",
			"script.c", "a", "-b")

		assert.Equal(t, []string{"-Wall", "-O2"}, inv.Options.CFlags)
		assert.Equal(t, []string{"-lm"}, inv.Options.LDFlags)
		assert.Equal(t, []string{"math.h"}, inv.Options.Includes)
		assert.True(t, inv.Options.Debug)
		assert.True(t, inv.Options.Keep)
		assert.True(t, inv.Options.ShowAsm)
		assert.True(t, inv.Options.NoCache)
		assert.False(t, inv.Options.OwnMain)
		assert.Equal(t, domain.SourceFile, inv.Source.Kind)
		assert.Equal(t, "script.c", inv.Source.Path)
		assert.Equal(t, []string{"a", "-b"}, inv.Args)
	})

	t.Run("cxx implies own main", func(t *testing.T) {
		inv := capture(t, "run", "-p", "prog.cc")

		assert.Equal(t, domain.LanguageCXX, inv.Options.Language)
		assert.True(t, inv.Options.OwnMain)
	})

	t.Run("expression takes all positionals as arguments", func(t *testing.T) {
		inv := capture(t, "run", "-e", `printf("%s\n", argv[1])`, "x", "y")

		assert.Equal(t, domain.SourceInline, inv.Source.Kind)
		assert.Equal(t, `printf("%s\n", argv[1])`, inv.Source.Text)
		assert.Equal(t, []string{"x", "y"}, inv.Args)
	})

	t.Run("reads stdin without a source", func(t *testing.T) {
		inv := capture(t, "run")
		assert.Equal(t, domain.SourceStdin, inv.Source.Kind)
		assert.Empty(t, inv.Args)
	})

	t.Run("dash selects stdin", func(t *testing.T) {
		inv := capture(t, "run", "-", "arg")
		assert.Equal(t, domain.SourceStdin, inv.Source.Kind)
		assert.Equal(t, []string{"arg"}, inv.Args)
	})

	t.Run("defaults to run for shebang use", func(t *testing.T) {
		inv := capture(t, "./script.c", "one")
		assert.Equal(t, "./script.c", inv.Source.Path)
		assert.Equal(t, []string{"one"}, inv.Args)

		inv = capture(t, "-cO2", "script.c")
		assert.Equal(t, []string{"-O2"}, inv.Options.CFlags)
	})

	t.Run("rejects repeated expressions", func(t *testing.T) {
		cli := commands.New(&mockApp{
			runFunc: func(context.Context, domain.Invocation) (int, error) {
				panic("should not be called")
			},
		})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "-e", "1", "-e", "2"})

		_, err := cli.Execute(context.Background())
		require.ErrorIs(t, err, domain.ErrMultipleExpressions)
	})

	t.Run("propagates the exit code", func(t *testing.T) {
		cli := commands.New(&mockApp{
			runFunc: func(context.Context, domain.Invocation) (int, error) {
				return 7, nil
			},
		})
		cli.SetArgs([]string{"run", "-e", "exit(7)"})

		code, err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 7, code)
	})

	t.Run("returns error on run failure", func(t *testing.T) {
		cli := commands.New(&mockApp{
			runFunc: func(context.Context, domain.Invocation) (int, error) {
				return domain.FatalExitCode, errors.New("simulated error")
			},
		})
		cli.SetOutput(new(bytes.Buffer), new(bytes.Buffer))
		cli.SetArgs([]string{"run", "prog.c"})

		code, err := cli.Execute(context.Background())
		require.Error(t, err)
		assert.Equal(t, domain.FatalExitCode, code)
		assert.Contains(t, err.Error(), "simulated error")
	})
}

func TestCommands_Cache(t *testing.T) {
	t.Run("list", func(t *testing.T) {
		called := false
		cli := commands.New(&mockApp{
			listFunc: func(context.Context) error {
				called = true
				return nil
			},
		})
		cli.SetArgs([]string{"cache", "ls"})

		_, err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.True(t, called)
	})

	tests := []struct {
		name string
		args []string
		want app.CleanOptions
	}{
		{name: "cache only by default", args: nil, want: app.CleanOptions{Cache: true}},
		{name: "tmp", args: []string{"--tmp"}, want: app.CleanOptions{Temp: true}},
		{name: "all", args: []string{"-a"}, want: app.CleanOptions{Cache: true, Temp: true}},
	}
	for _, tt := range tests {
		t.Run("clean "+tt.name, func(t *testing.T) {
			var got app.CleanOptions
			cli := commands.New(&mockApp{
				cleanFunc: func(_ context.Context, opts app.CleanOptions) error {
					got = opts
					return nil
				},
			})
			cli.SetArgs(append([]string{"cache", "clean"}, tt.args...))

			_, err := cli.Execute(context.Background())
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}

	t.Run("gc", func(t *testing.T) {
		var got app.GCOptions
		cli := commands.New(&mockApp{
			gcFunc: func(_ context.Context, opts app.GCOptions) error {
				got = opts
				return nil
			},
		})
		cli.SetArgs([]string{"cache", "gc", "--older-than", "2h"})

		_, err := cli.Execute(context.Background())
		require.NoError(t, err)
		assert.Equal(t, 2*time.Hour, got.OlderThan)
	})
}

func TestCommands_Version(t *testing.T) {
	cli := commands.New(&mockApp{})

	buf := new(bytes.Buffer)
	cli.SetOutput(buf, buf)
	cli.SetArgs([]string{"version"})

	_, err := cli.Execute(context.Background())
	require.NoError(t, err)

	assert.Contains(t, buf.String(), build.Version)
}
