package usecase

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"go.uber.org/zap"

	"github.com/tranorrepository/h36m-fetch/internal/domain/entity"
)

// ProcessSequence packages one (subject, action) pair: every catalog camera is
// processed in sorted order, views whose source data is absent are logged and
// skipped, and the surviving bundles are merged into one annotation archive.
// A sequence with zero surviving views writes nothing.
func (uc *PackSequencesUseCase) ProcessSequence(ctx context.Context, subject, action string) error {
	log := uc.logger.With(zap.String("subject", subject), zap.String("action", action))

	var merged []entity.Dataset
	index := make(map[string]int)
	views := 0

	for _, camera := range uc.catalog.SortedCameras() {
		bundle, err := uc.ProcessView(ctx, subject, action, camera)
		if errors.Is(err, entity.ErrMissingData) {
			log.Warn("skipping view with missing source data",
				zap.String("camera", camera),
				zap.Error(err),
			)
			continue
		}
		if err != nil {
			return fmt.Errorf("process view %s/%s.%s: %w", subject, action, camera, err)
		}

		views++
		for _, ds := range bundle.Datasets() {
			i, ok := index[ds.Name]
			if !ok {
				index[ds.Name] = len(merged)
				merged = append(merged, ds)
				continue
			}
			merged[i], err = appendDataset(merged[i], ds)
			if err != nil {
				return fmt.Errorf("merge dataset %q for %s/%s: %w", ds.Name, subject, action, err)
			}
		}
	}

	if views == 0 {
		log.Debug("no views produced data, skipping sequence")
		return nil
	}

	outPath := uc.annotPath(subject, action)
	if err := os.MkdirAll(filepath.Dir(outPath), 0o755); err != nil {
		return fmt.Errorf("create output dir for %s/%s: %w", subject, action, err)
	}
	if err := uc.annots.WriteAnnotations(outPath, merged); err != nil {
		return fmt.Errorf("write annotations for %s/%s: %w", subject, action, err)
	}

	log.Info("sequence packed",
		zap.Int("cameras", views),
		zap.Int("rows", totalRows(merged)),
		zap.String("archive", outPath),
	)
	return nil
}

// appendDataset concatenates b onto a along the first axis. The trailing
// dimensions must agree; per-camera dataset names keep intrinsics from ever
// reaching this path.
func appendDataset(a, b entity.Dataset) (entity.Dataset, error) {
	if len(a.Shape) != len(b.Shape) {
		return entity.Dataset{}, fmt.Errorf("rank mismatch: %v vs %v", a.Shape, b.Shape)
	}
	for i := 1; i < len(a.Shape); i++ {
		if a.Shape[i] != b.Shape[i] {
			return entity.Dataset{}, fmt.Errorf("shape mismatch: %v vs %v", a.Shape, b.Shape)
		}
	}

	shape := make([]int, len(a.Shape))
	copy(shape, a.Shape)
	shape[0] += b.Shape[0]

	merged := entity.Dataset{Name: a.Name, Shape: shape}
	if a.Floats != nil || b.Floats != nil {
		merged.Floats = append(append([]float64{}, a.Floats...), b.Floats...)
	} else {
		merged.Ints = append(append([]int64{}, a.Ints...), b.Ints...)
	}
	return merged, nil
}

func totalRows(datasets []entity.Dataset) int {
	for _, ds := range datasets {
		if ds.Name == "frame" {
			return ds.Rows()
		}
	}
	return 0
}
