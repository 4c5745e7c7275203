package port

import "context"

// FrameExtractor decodes a whole video resource into sequentially numbered
// still images. outputPattern is a printf-style path with a %06d counter; the
// extractor numbers frames starting at 1.
type FrameExtractor interface {
	ExtractFrames(ctx context.Context, videoPath string, outputPattern string) error
}
