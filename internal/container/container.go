package container

import (
	"context"
	"fmt"
	"log"

	"github.com/jmoiron/sqlx"

	"leadscope/adapters/layouts"
	"leadscope/adapters/postgres"
	"leadscope/internal/api"
	"leadscope/internal/config"
	"leadscope/internal/testkit"
	"leadscope/ports"
	"leadscope/ui/compose"

	// Fragment packages register through the compose extension queue from
	// their init; importing them is all the wiring they need.
	_ "leadscope/ui/fragments"
)

// Container holds all application dependencies and manages their lifecycle
type Container struct {
	Config *config.Config

	// Infrastructure
	DB *sqlx.DB

	// Data access
	LeadRepo ports.LeadRepository

	// View composition
	Registry *compose.Registry
	Layouts  ports.LayoutStore
	Builder  *compose.Builder

	// Observability
	EventHub *api.EventHub
}

// New creates a new dependency injection container
func New(cfg *config.Config) (*Container, error) {
	if cfg == nil {
		return nil, fmt.Errorf("config cannot be nil")
	}
	return &Container{Config: cfg}, nil
}

// InitWithDatabase initializes components backed by Postgres.
func (c *Container) InitWithDatabase(db *sqlx.DB) error {
	if db == nil {
		return fmt.Errorf("database connection cannot be nil")
	}
	if err := db.Ping(); err != nil {
		return fmt.Errorf("database connection test failed: %w", err)
	}

	c.DB = db
	c.LeadRepo = postgres.NewLeadRepository(db)
	return c.initComposition()
}

// InitWithTestKit initializes components over the in-memory demo dataset
// (DEV_MODE); no database is touched.
func (c *Container) InitWithTestKit() error {
	kit, err := testkit.NewTestKit()
	if err != nil {
		return fmt.Errorf("failed to initialize test kit: %w", err)
	}
	c.LeadRepo = kit.LeadRepository()
	log.Printf("Container running on testkit demo data (DEV_MODE)")
	return c.initComposition()
}

// initComposition wires the view-composition engine: the registry drains
// the extension queue exactly once here, then the builder gets the registry
// injected along with the layout store and observers.
func (c *Container) initComposition() error {
	c.Registry = compose.NewRegistry()
	if c.Registry.Len() == 0 {
		return fmt.Errorf("fragment registry drained empty: no fragment packages loaded")
	}

	c.Layouts = layouts.NewStaticStore()
	c.EventHub = api.NewEventHub()

	c.Builder = compose.NewBuilder(c.Registry, c.Layouts, c.EventHub)

	log.Printf("Composition engine initialized: %d fragments registered", c.Registry.Len())
	return nil
}

// Shutdown gracefully shuts down all components
func (c *Container) Shutdown(ctx context.Context) error {
	if c.EventHub != nil {
		c.EventHub.Stop()
	}
	if c.DB != nil {
		return c.DB.Close()
	}
	return nil
}
