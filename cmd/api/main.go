// The api command runs the JSON API server standalone: lead data endpoints
// plus the build-event SSE stream for observability consumers.
package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"leadscope/internal/api"
	"leadscope/internal/config"
	"leadscope/internal/container"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Printf("No .env file found, using environment variables")
	}

	appConfig, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	c, err := container.New(appConfig)
	if err != nil {
		log.Fatalf("Failed to create container: %v", err)
	}
	defer func() {
		if err := c.Shutdown(context.Background()); err != nil {
			log.Printf("Shutdown error: %v", err)
		}
	}()

	if appConfig.Server.DevMode {
		if err := c.InitWithTestKit(); err != nil {
			log.Fatalf("Failed to initialize container: %v", err)
		}
	} else {
		db, err := sqlx.Connect("postgres", appConfig.Database.URL)
		if err != nil {
			log.Fatalf("Failed to connect to database: %v", err)
		}
		if err := c.InitWithDatabase(db); err != nil {
			log.Fatalf("Failed to initialize container: %v", err)
		}
	}

	server := api.NewServer(c.LeadRepo, c.EventHub, appConfig.Server.GinMode)
	log.Printf("Starting Leadscope API server on :%s", appConfig.Server.APIPort)
	if err := server.Run(appConfig.Server.APIPort); err != nil {
		log.Fatalf("API server failed: %v", err)
	}
}
