package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arthur-debert/modkeeper/cmd/modkeeper"
	"github.com/arthur-debert/modkeeper/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	env := cli.New()
	rootCmd := modkeeper.NewRootCmd(env)
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		if renderErr := env.RenderError(err); renderErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}
