package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/jmoiron/sqlx"

	_ "github.com/jackc/pgx/v5/stdlib"

	"github.com/sbilibin2017/gt-landmarks/internal/config"
	"github.com/sbilibin2017/gt-landmarks/internal/importer"
	"github.com/sbilibin2017/gt-landmarks/internal/logger"
	"github.com/sbilibin2017/gt-landmarks/internal/repositories"
)

func main() {
	configPath := parseFlags()

	cfg, err := config.Load(configPath)
	if err != nil {
		log.Fatalf("failed to parse config: %v", err)
	}

	report, err := run(context.Background(), cfg)
	if err != nil {
		log.Fatalf("import failed: %v", err)
	}
	printReport(report)
}

// parseFlags parses command-line flags and returns the config file path.
func parseFlags() string {
	c := flag.String("c", "config.env", "Path to configuration file")
	flag.Parse()
	return *c
}

// run imports every landmark folder under cfg.DataDir into the store.
func run(ctx context.Context, cfg *config.Config) (*importer.Report, error) {
	info, err := os.Stat(cfg.DataDir)
	if err != nil {
		return nil, fmt.Errorf("data dir %s: %w", cfg.DataDir, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("data dir %s is not a directory", cfg.DataDir)
	}

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

	imp := importer.New(
		repositories.NewLandmarkRepository(db),
		repositories.NewImageRepository(db),
	)
	logger.Log.Infow("Importing landmarks", "data_dir", cfg.DataDir)
	return imp.Run(ctx, os.DirFS(cfg.DataDir))
}

// printReport prints the import summary.
func printReport(r *importer.Report) {
	fmt.Printf("Imported %d landmarks (%d new) with %d images\n", r.Landmarks, r.CreatedLandmarks, r.Images)
	fmt.Printf("Uploaded %d images, %d already stored, %d files skipped\n", r.Uploaded, r.AlreadyStored, r.SkippedFiles)
}
