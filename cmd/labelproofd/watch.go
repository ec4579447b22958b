package main

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"labelproof/internal/batch"
	"labelproof/internal/ingest"
)

// watchManifests ingests every manifest dropped under dir and submits the
// new applications as one batch each. Runs until ctx is cancelled.
func watchManifests(ctx context.Context, dir string, usecase *ingest.Usecase, coord *batch.Coordinator, logger *slog.Logger) {
	events, errs, err := ingest.StartWatcher(ctx, ingest.WatchConfig{Root: dir, InitialScan: true}, logger)
	if err != nil {
		logger.Error("manifest watcher failed to start", "dir", dir, "error", err)
		return
	}
	logger.Info("watching for manifests", "dir", dir)

	for {
		select {
		case <-ctx.Done():
			return
		case err, ok := <-errs:
			if !ok {
				return
			}
			logger.Warn("manifest watcher error", "error", err)
		case path, ok := <-events:
			if !ok {
				return
			}
			results, _, err := usecase.IngestManifest(ctx, path)
			if err != nil {
				logger.Error("manifest rejected", "path", path, "error", err)
				continue
			}
			var ids []uuid.UUID
			for _, r := range results {
				if r.Err == "" {
					ids = append(ids, r.ApplicationID)
				}
			}
			if len(ids) == 0 {
				continue
			}
			batchID, err := coord.Submit(ctx, ids)
			if err != nil {
				logger.Error("failed to submit ingested batch", "path", path, "error", err)
				continue
			}
			logger.Info("ingested manifest queued for verification",
				"path", path, "batch_id", batchID, "applications", len(ids))
		}
	}
}
