package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"labelproof/constants"
	"labelproof/gen/ent"
	"labelproof/internal/batch"
	"labelproof/internal/common"
	"labelproof/internal/export"
	"labelproof/internal/ingest"
	repo "labelproof/internal/repository"
	"labelproof/internal/vision/openai"
)

// printError prints an error message to stderr, falling back to stdout if stderr fails
func printError(format string, args ...interface{}) {
	if _, err := fmt.Fprintf(os.Stderr, format, args...); err != nil {
		fmt.Printf(format, args...)
	}
}

func main() {
	var (
		inmem      = flag.Bool("inmem", false, "use an in-memory SQLite database")
		manifest   = flag.String("manifest", "", "manifest JSON describing applications and label images to ingest")
		idsStr     = flag.String("ids", "", "comma-separated application UUIDs to verify")
		allPending = flag.Bool("all-pending", false, "verify every application currently in pending status")
		out        = flag.String("out", "", "output XLSX report path (optional)")
	)
	flag.Parse()

	if *manifest == "" && *idsStr == "" && !*allPending {
		printError("Error: one of --manifest, --ids or --all-pending is required\n")
		os.Exit(1)
	}
	if *out == "" {
		base := "."
		if *manifest != "" {
			base = filepath.Dir(*manifest)
		}
		*out = filepath.Join(base, "verification.xlsx")
	}

	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	}))
	slog.SetDefault(logger)

	ctx := context.Background()
	cfg := common.LoadConfig()

	if cfg.Vision.APIKey == "" {
		printError("Error: OPENAI_API_KEY is required\n")
		os.Exit(1)
	}

	// Database: local SQLite for self-contained runs, Postgres otherwise.
	var (
		entc *ent.Client
		pool *pgxpool.Pool
		err  error
	)
	if *inmem {
		entc, err = repo.OpenSQLite(ctx, "", logger)
		if err != nil {
			logger.Error("failed to open in-memory database", "error", err)
			os.Exit(1)
		}
		defer func() { _ = entc.Close() }()
	} else {
		if cfg.Database.DSN == "" {
			printError("Error: DB_URL is required unless --inmem is set\n")
			os.Exit(1)
		}
		entc, pool, err = repo.Open(ctx, repo.Config(cfg.Database), logger)
		if err != nil {
			logger.Error("failed to open database", "error", err)
			os.Exit(1)
		}
		defer repo.Close(entc, pool, logger)
	}

	appsRepo := repo.NewApplicationRepository(entc, logger)
	imagesRepo := repo.NewLabelImageRepository(entc, logger)
	recordsRepo := repo.NewExtractionRecordRepository(entc, logger)

	visionClient := openai.NewClient(openai.Config{
		Model:       cfg.Vision.Model,
		APIKey:      cfg.Vision.APIKey,
		Temperature: cfg.Vision.Temperature,
		Timeout:     cfg.Vision.Timeout,
		Lenient:     true,
	}, logger)

	processor := batch.NewProcessor(logger, visionClient, appsRepo, imagesRepo, recordsRepo)
	coordinator := batch.NewCoordinator(processor, logger,
		batch.WithMaxConcurrent(cfg.Batch.MaxConcurrent),
		batch.WithMaxBatchSize(cfg.Batch.MaxBatchSize),
		batch.WithItemTimeout(cfg.Batch.ItemTimeout),
	)

	// Resolve the application set to verify.
	var ids []uuid.UUID
	ingested := 0
	switch {
	case *manifest != "":
		usecase := ingest.NewUsecase(appsRepo, imagesRepo, logger)
		results, stats, err := usecase.IngestManifest(ctx, *manifest)
		if err != nil {
			logger.Error("failed to ingest manifest", "error", err)
			os.Exit(1)
		}
		for _, r := range results {
			if r.Err == "" {
				ids = append(ids, r.ApplicationID)
			}
		}
		ingested = len(ids)
		logger.Info("manifest ingested",
			"applications", stats.Applications,
			"succeeded", stats.Succeeded,
			"failed", stats.Failed,
			"images", stats.Images)
	case *idsStr != "":
		for _, raw := range strings.Split(*idsStr, ",") {
			id, err := uuid.Parse(strings.TrimSpace(raw))
			if err != nil {
				printError("Error: %q is not a UUID\n", raw)
				os.Exit(1)
			}
			ids = append(ids, id)
		}
	case *allPending:
		ids, err = appsRepo.ListIDsByStatus(ctx, constants.StatusPending)
		if err != nil {
			logger.Error("failed to list pending applications", "error", err)
			os.Exit(1)
		}
	}
	if len(ids) == 0 {
		printError("Error: nothing to verify\n")
		os.Exit(1)
	}

	batchID, err := coordinator.Submit(ctx, ids)
	if err != nil {
		logger.Error("failed to submit batch", "error", err)
		os.Exit(1)
	}
	logger.Info("batch submitted", "batch_id", batchID, "applications", len(ids))

	snap := awaitBatch(coordinator, batchID)

	logger.Info("exporting verification report", "output", *out)
	exportSvc := export.NewService(appsRepo, recordsRepo, logger)
	xlsxBytes, err := exportSvc.ExportVerificationXLSX(ctx, nil)
	if err != nil {
		logger.Error("failed to export report", "error", err)
		os.Exit(1)
	}
	if err := os.WriteFile(*out, xlsxBytes, 0644); err != nil {
		logger.Error("failed to write output file", "error", err)
		os.Exit(1)
	}

	needsReview := 0
	for _, item := range snap.Items {
		if item.Disposition == constants.StatusNeedsReview {
			needsReview++
		}
	}

	fmt.Printf("Verification complete!\n")
	if ingested > 0 {
		fmt.Printf("- Applications ingested: %d\n", ingested)
	}
	fmt.Printf("- Applications verified: %d\n", snap.Successful)
	fmt.Printf("- Failures: %d\n", snap.Failed)
	fmt.Printf("- Flagged for review: %d\n", needsReview)
	fmt.Printf("- Output: %s\n", *out)
}

// awaitBatch polls the coordinator until the run completes.
func awaitBatch(coord *batch.Coordinator, batchID uuid.UUID) batch.Snapshot {
	ticker := time.NewTicker(500 * time.Millisecond)
	defer ticker.Stop()
	for range ticker.C {
		snap, ok := coord.GetStatus(batchID)
		if !ok {
			printError("Error: batch %s vanished\n", batchID)
			os.Exit(1)
		}
		if snap.Status == constants.BatchCompleted {
			return snap
		}
	}
	return batch.Snapshot{}
}
