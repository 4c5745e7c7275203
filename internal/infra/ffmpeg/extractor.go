package ffmpeg

import (
	"context"
	"fmt"
	"os/exec"
	"strconv"

	"go.uber.org/zap"
)

type Extractor struct {
	bin    string
	qscale int
	logger *zap.Logger
}

func NewExtractor(bin string, qscale int, logger *zap.Logger) *Extractor {
	return &Extractor{bin: bin, qscale: qscale, logger: logger}
}

// ExtractFrames decodes the whole video into stills matching outputPattern
// (a path containing a %06d counter). ffmpeg numbers output frames from 1.
func (e *Extractor) ExtractFrames(ctx context.Context, videoPath string, outputPattern string) error {
	cmd := exec.CommandContext(ctx, e.bin,
		"-nostats", "-loglevel", "0",
		"-i", videoPath,
		"-qscale:v", strconv.Itoa(e.qscale),
		outputPattern,
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		return fmt.Errorf("ffmpeg error: %w, output: %s", err, string(output))
	}

	e.logger.Debug("video decoded",
		zap.String("video", videoPath),
		zap.String("pattern", outputPattern),
	)
	return nil
}
