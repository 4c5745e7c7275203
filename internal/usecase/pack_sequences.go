// Package usecase implements the dataset packaging pipeline: resolving a
// view's source files, loading its poses, fitting camera intrinsics, selecting
// frames, extracting the selected stills, and merging per-view annotations
// into one archive per (subject, action) sequence.
package usecase

import (
	"go.uber.org/zap"

	"github.com/tranorrepository/h36m-fetch/internal/domain/entity"
	"github.com/tranorrepository/h36m-fetch/internal/domain/port"
)

// jointCount is the fixed skeleton size of the dataset.
const jointCount = 32

type PackSequencesUseCase struct {
	catalog   *entity.Catalog
	poses     port.PoseReader
	extractor port.FrameExtractor
	annots    port.AnnotationWriter
	logger    *zap.Logger

	extractedRoot string
	processedRoot string
	tempDir       string
	frameFormat   string
}

type PackSequencesConfig struct {
	ExtractedRoot string
	ProcessedRoot string
	TempDir       string
	FrameFormat   string
}

func NewPackSequencesUseCase(
	catalog *entity.Catalog,
	poses port.PoseReader,
	extractor port.FrameExtractor,
	annots port.AnnotationWriter,
	logger *zap.Logger,
	cfg PackSequencesConfig,
) *PackSequencesUseCase {
	format := cfg.FrameFormat
	if format == "" {
		format = "jpg"
	}
	return &PackSequencesUseCase{
		catalog:       catalog,
		poses:         poses,
		extractor:     extractor,
		annots:        annots,
		logger:        logger,
		extractedRoot: cfg.ExtractedRoot,
		processedRoot: cfg.ProcessedRoot,
		tempDir:       cfg.TempDir,
		frameFormat:   format,
	}
}
