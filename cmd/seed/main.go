package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"time"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sbilibin2017/gt-landmarks/internal/config"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/repositories"
	"github.com/sbilibin2017/gt-landmarks/internal/seeder"
)

func main() {
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	report, err := run(context.Background(), cfg)
	if err != nil {
		log.Fatalf("seed failed: %v", err)
	}
	printReport(report)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run loads the fixed sample dataset into the store.
func run(ctx context.Context, cfg *config.Config) (*seeder.Report, error) {
	if err := logger.Initialize(cfg.LogLevel, cfg.LogEncoding); err != nil {
		return nil, err
	}
	defer logger.Sync()

	db, err := sqlx.ConnectContext(ctx, "pgx", cfg.PostgresDSN())
	if err != nil {
		return nil, fmt.Errorf("PostgreSQL connection error: %w", err)
	}
	defer db.Close()

	if err := repositories.Bootstrap(ctx, db); err != nil {
		return nil, fmt.Errorf("schema bootstrap failed: %w", err)
	}

	s := seeder.New(
		repositories.NewLandmarkRepository(db),
		repositories.NewUserRepository(db),
		repositories.NewVisitRepository(db),
	)
	return s.Run(ctx, time.Now().UTC())
}

// printReport prints the seeding summary.
func printReport(r *seeder.Report) {
	fmt.Printf("Landmarks: %d created, %d existing\n", r.LandmarksCreated, r.LandmarksExisted)
	fmt.Printf("Users: %d created, %d existing\n", r.UsersCreated, r.UsersExisted)
	fmt.Printf("Visits: %d created, %d existing\n", r.VisitsCreated, r.VisitsExisted)
}
