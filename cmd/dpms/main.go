// Package main is the entry point for the dpms package index tool.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/grindlemire/graft"
	"go.trai.ch/dpms/cmd/dpms/commands"
	"go.trai.ch/dpms/internal/app"
	"go.trai.ch/dpms/internal/core/domain"
	_ "go.trai.ch/dpms/internal/wiring"
)

// ComponentProvider is a function that returns the application components.
type ComponentProvider func(context.Context) (*app.Components, error)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr, func(ctx context.Context) (*app.Components, error) {
		c, _, err := graft.ExecuteFor[*app.Components](ctx)
		return c, err
	}))
}

func run(
	ctx context.Context,
	args []string,
	stdout, stderr io.Writer,
	provider ComponentProvider,
) int {
	ctx, cancel := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer cancel()

	components, err := provider(ctx)
	if err != nil {
		// Logger is not available yet if initialization failed
		_, _ = fmt.Fprintln(stderr, "Error: "+err.Error())
		return 1
	}

	cli := commands.New(components.App)
	cli.SetArgs(args)
	cli.SetOutput(stdout, stderr)

	if err := cli.Execute(ctx); err != nil {
		if !reportedByIndex(err) {
			components.Logger.Error(err)
		}
		return 1
	}
	return 0
}

// reportedByIndex reports whether err is a fatal index error the parser has
// already sent to the error reporter.
func reportedByIndex(err error) bool {
	return errors.Is(err, domain.ErrIndexNotFound) || errors.Is(err, domain.ErrIndexReadFailed)
}
