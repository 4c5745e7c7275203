package main

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/tranorrepository/h36m-fetch/internal/domain/entity"
	"github.com/tranorrepository/h36m-fetch/internal/infra/config"
	"github.com/tranorrepository/h36m-fetch/internal/infra/ffmpeg"
	"github.com/tranorrepository/h36m-fetch/internal/infra/hdf5"
	"github.com/tranorrepository/h36m-fetch/internal/infra/npz"
	"github.com/tranorrepository/h36m-fetch/internal/usecase"
	"github.com/tranorrepository/h36m-fetch/pkg/logger"
)

func main() {
	cfg, err := config.Load()
	fatalOnErr(err, "load config")

	log, err := logger.New(cfg.LogLevel)
	fatalOnErr(err, "init logger")
	defer log.Sync()

	log = log.With(zap.String("run_id", uuid.NewString()))
	log.Info("starting h36m-fetch packager",
		zap.String("extracted_root", cfg.ExtractedRoot),
		zap.String("processed_root", cfg.ProcessedRoot),
	)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	catalog := entity.NewCatalog()
	reader := npz.NewReader()
	extractor := ffmpeg.NewExtractor(cfg.FFmpegBin, cfg.FFmpegQScale, log)
	writer := hdf5.NewWriter()

	uc := usecase.NewPackSequencesUseCase(
		catalog, reader, extractor, writer,
		log,
		usecase.PackSequencesConfig{
			ExtractedRoot: cfg.ExtractedRoot,
			ProcessedRoot: cfg.ProcessedRoot,
			TempDir:       cfg.TempDir,
			FrameFormat:   cfg.FrameFormat,
		},
	)

	if err := uc.ProcessAll(ctx); err != nil {
		log.Fatal("batch failed", zap.Error(err))
	}

	log.Info("all sequences packaged")
}

func fatalOnErr(err error, msg string) {
	if err != nil {
		panic(msg + ": " + err.Error())
	}
}
