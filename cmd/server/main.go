// Command server runs the study-content backend.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and
// environment variables; DATABASE_DSN and AUTH_JWT_SECRET are required.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/studyhub/backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("run: %v", err)
	}
}
