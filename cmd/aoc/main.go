package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/matzehuels/aoc/internal/cli"
	aocerrors "github.com/matzehuels/aoc/pkg/errors"
)

// Set by release builds:
//
//	go build -ldflags "-X main.version=v1.2.0 -X main.commit=$(git rev-parse --short HEAD)"
var (
	version string
	commit  string
	date    string
)

func main() {
	cli.SetVersion(version, commit, date)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := cli.Execute(ctx); err != nil {
		if errors.Is(err, context.Canceled) {
			os.Exit(130) // Standard shell convention for SIGINT
		}
		if code := aocerrors.GetCode(err); code != "" {
			fmt.Fprintf(os.Stderr, "%s: %s\n", code, aocerrors.UserMessage(err))
		} else {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(1)
	}
}
