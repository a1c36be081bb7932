// Command seed loads the destination catalog into the database.
package main

import (
	"context"
	"flag"
	"log"

	intconfig "travelapi/internal/config"
	intdb "travelapi/internal/db"
	"travelapi/internal/repositories"
	"travelapi/internal/seed"
)

func main() {
	env := intconfig.LoadEnv()
	file := flag.String("file", env.SeedFile, "YAML catalog to load")
	flag.Parse()

	list, err := seed.LoadFile(*file)
	if err != nil {
		log.Fatalf("Failed to read catalog %s: %v", *file, err)
	}

	db, dialect, err := intconfig.OpenDB(env)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	ctx := context.Background()
	if err := intdb.EnsureSchema(ctx, db, dialect); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	n, err := seed.Apply(ctx, repositories.DestinationRepository{DB: db, Dialect: dialect}, list)
	if err != nil {
		log.Fatalf("Seed stopped after %d destinations: %v", n, err)
	}
	log.Printf("Seeded %d destinations from %s", n, *file)
}
