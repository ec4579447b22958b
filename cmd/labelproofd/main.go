package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"google.golang.org/grpc"
	"google.golang.org/grpc/health"
	"google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/reflection"

	labelspb "labelproof/gen/proto/labels/v1"
	"labelproof/internal/batch"
	"labelproof/internal/common"
	"labelproof/internal/export"
	"labelproof/internal/ingest"
	repo "labelproof/internal/repository"
	svc "labelproof/internal/server"
	"labelproof/internal/vision/openai"
)

func main() {
	// Structured logger that outputs messages with variables but no time/level
	logger := slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelInfo,
		ReplaceAttr: func(groups []string, a slog.Attr) slog.Attr {
			if a.Key == slog.TimeKey || a.Key == slog.LevelKey {
				return slog.Attr{}
			}
			return a
		},
	}))
	slog.SetDefault(logger)

	cfg := common.LoadConfig()
	if err := cfg.Validate(); err != nil {
		logger.Error("invalid configuration", "error", err)
		os.Exit(1)
	}
	addr := cfg.Server.GRPCAddr
	if !strings.HasPrefix(addr, ":") && !strings.Contains(addr, ":") {
		addr = ":" + addr
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	entc, pool, err := svc.ConnectDB(ctx, cfg.Database.DSN, logger)
	if err != nil {
		os.Exit(1)
	}
	defer svc.CloseDB(entc, pool, logger)

	if err := svc.PingDB(ctx, pool, logger, cfg.Database.DialTimeout); err != nil {
		os.Exit(1)
	}

	lis, err := net.Listen("tcp", addr)
	if err != nil {
		logger.Error("failed to listen on address", "addr", addr, "error", err)
		os.Exit(1)
	}
	grpcServer := grpc.NewServer()

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
		batch.WithRetention(cfg.Batch.JobRetention),
	)

	labelspb.RegisterLabelsServiceServer(grpcServer, svc.NewLabelsService(appsRepo, processor, logger))
	labelspb.RegisterBatchServiceServer(grpcServer, svc.NewBatchService(coordinator, logger))

	exportSvc := export.NewService(appsRepo, recordsRepo, logger)
	labelspb.RegisterExportServiceServer(grpcServer, svc.NewExportServer(exportSvc, logger))

	// Optional manifest drop directory: new submissions are ingested and
	// queued for verification without an RPC call.
	if watchDir := os.Getenv("INGEST_WATCH_DIR"); watchDir != "" {
		usecase := ingest.NewUsecase(appsRepo, imagesRepo, logger)
		go watchManifests(ctx, watchDir, usecase, coordinator, logger)
	}

	healthServer := health.NewServer()
	grpc_health_v1.RegisterHealthServer(grpcServer, healthServer)
	healthServer.SetServingStatus("", grpc_health_v1.HealthCheckResponse_SERVING)
	reflection.Register(grpcServer)

	logger.Info("labelproofd listening", "addr", addr)
	go func() {
		if err := grpcServer.Serve(lis); err != nil {
			slog.Error("gRPC serve error", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	coordinator.Close(context.Background())
	grpcServer.GracefulStop()
}
