// Command server serves the advocate directory over HTTP.
//
// Configuration comes from config.yaml (or CONFIG_PATH), a .env file and the
// environment. SIGINT and SIGTERM trigger a graceful shutdown.
//
// Exit codes: 0 = clean shutdown, 1 = error.
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/heartmarshall/advocates-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server: %v\n", err)
		os.Exit(1)
	}
}
