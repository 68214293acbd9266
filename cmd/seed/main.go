// Command seed loads the reference fee tier table into the database,
// validating it as a partition of the configured day range first. An
// already-populated table is left alone unless -replace is given.
package main

import (
	"context"
	"flag"
	"log"

	"remessa/internal/config"
	"remessa/internal/repositories"
	"remessa/internal/services/fee"
)

func main() {
	replace := flag.Bool("replace", false, "replace an existing tier table")
	flag.Parse()

	config.LoadEnv()

	if err := repositories.InitDB(); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}
	defer repositories.CloseDB()

	cfg := config.LoadSchedulerConfig()
	tiers := fee.DefaultTable()

	if err := fee.ValidateTable(tiers, cfg.MaxDays); err != nil {
		log.Fatalf("refusing to seed: %v", err)
	}

	ctx := context.Background()
	repo := repositories.NewCachedFeeTierRepository(
		repositories.NewFeeTierRepository(repositories.DB),
		repositories.CacheService,
	)

	existing, err := repo.List(ctx)
	if err != nil {
		log.Fatalf("failed to read existing tiers: %v", err)
	}
	if len(existing) > 0 && !*replace {
		log.Printf("tier table already has %d rows, nothing to do (use -replace to overwrite)", len(existing))
		return
	}

	if err := repo.Replace(ctx, tiers); err != nil {
		log.Fatalf("failed to seed fee tiers: %v", err)
	}
	log.Printf("seeded %d fee tiers covering days 0 through %d", len(tiers), cfg.MaxDays)
}
