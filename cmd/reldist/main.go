// cmd/reldist/main.go
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/arc-language/reldist"
	"github.com/arc-language/reldist/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := cli.Execute(ctx)
	stop()

	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(reldist.ExitCode(err))
	}
}
