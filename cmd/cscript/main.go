// Package main is the entry point for cscript.
package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/cscript/cmd/cscript/commands"
	"go.trai.ch/cscript/internal/app"
	"go.trai.ch/cscript/internal/core/domain"
	_ "go.trai.ch/cscript/internal/wiring"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string, opts ...func(*app.App)) int {
	defer catchInterrupts()()

	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGTERM)
	defer cancel()

	components, _, err := graft.ExecuteFor[*app.Components](ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = os.Stderr.WriteString("Error: " + err.Error() + "\n")
		return domain.FatalExitCode
	}

	for _, opt := range opts {
		opt(components.App)
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)

	code, err := cli.Execute(ctx)
	if err != nil {
		components.Logger.Error(err)
		if code == 0 {
			code = domain.FatalExitCode
		}
	}
	return code
}

// catchInterrupts swallows SIGINT until the returned stop function is called.
// The program shares our terminal and receives SIGINT itself; we only outlive
// it and report its status. SIG_IGN is not used since children inherit it.
func catchInterrupts() (stop func()) {
	interrupts := make(chan os.Signal, 1)
	done := make(chan struct{})
	signal.Notify(interrupts, os.Interrupt)
	go func() {
		defer close(done)
		for range interrupts {
		}
	}()

	return func() {
		signal.Stop(interrupts)
		close(interrupts)
		<-done
	}
}
