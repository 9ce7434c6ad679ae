// Package main implements the entry point for the storefront API server:
// configuration loading, logging setup, schema migration, container wiring,
// and the HTTP server lifecycle.
package main

import (
	"context"
	"flag"
	"log"
)

func main() {
	migrateCmd := flag.String("migrate", "", "run a migration command (up, down, status) and exit")
	flag.Parse()

	app, err := newApplication()
	if err != nil {
		log.Fatalf("failed to initialize application: %v", err)
	}
	defer app.cleanup()

	if *migrateCmd != "" {
		if err := app.runMigrationCommand(*migrateCmd); err != nil {
			log.Fatalf("migration failed: %v", err)
		}
		return
	}

	if err := app.run(context.Background()); err != nil {
		log.Fatalf("server error: %v", err)
	}
}
