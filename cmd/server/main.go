// Command server runs the CreatorHub HTTP API.
//
// Configuration is read from CONFIG_PATH (default ./config.yaml) and the
// environment; a local .env file is loaded first when present.
package main

import (
	"context"
	"log"

	"github.com/joho/godotenv"

	"github.com/heartmarshall/creatorhub-backend/internal/app"
)

func main() {
	_ = godotenv.Load()

	if err := app.Run(context.Background()); err != nil {
		log.Fatalf("server: %v", err)
	}
}
