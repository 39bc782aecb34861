package main

import (
	"context"
	"log"

	"github.com/jmoiron/sqlx"
	"github.com/joho/godotenv"
	_ "github.com/lib/pq"

	"leadscope/internal/config"
	"leadscope/internal/container"
	"leadscope/internal/errors"
	"leadscope/internal/migration"
	"leadscope/ui"
)

// initDatabase initializes the PostgreSQL database connection
func initDatabase(appConfig *config.Config) (*sqlx.DB, error) {
	if appConfig.Database.URL == "" {
		return nil, errors.ConfigInvalid("DATABASE_URL is required")
	}

	db, err := sqlx.Connect("postgres", appConfig.Database.URL)
	if err != nil {
		return nil, errors.Wrap(err, "failed to connect to database")
	}
	if err := db.Ping(); err != nil {
		return nil, errors.Wrap(err, "failed to ping database")
	}
	return db, nil
}

func main() {
	// .env is optional; real deployments set the environment directly.
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
		db, err := initDatabase(appConfig)
		if err != nil {
			log.Fatalf("Failed to initialize database: %v", err)
		}
		if err := migration.NewRunner().Run(context.Background(), db); err != nil {
			log.Fatalf("Failed to run migrations: %v", err)
		}
		if err := c.InitWithDatabase(db); err != nil {
			log.Fatalf("Failed to initialize container: %v", err)
		}
	}

	app, err := ui.NewApp(ui.Config{
		Port:                 appConfig.Server.UIPort,
		MaxConcurrentExports: appConfig.Export.MaxConcurrent,
	}, c.LeadRepo, c.Builder)
	if err != nil {
		log.Fatalf("Failed to create UI application: %v", err)
	}

	if err := app.Start(appConfig.Server.UIPort); err != nil {
		log.Fatalf("UI server failed: %v", err)
	}
}
