// Command urisplit splits, joins and percent-encodes URIs.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/ghettovoice/urisplit/internal/cli"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cli.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintf(os.Stderr, "urisplit: %v\n", err)
		stop()
		os.Exit(1)
	}
}
