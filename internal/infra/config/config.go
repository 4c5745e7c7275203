package config

import (
	"github.com/caarlos0/env/v11"
)

type Config struct {
	ExtractedRoot string `env:"EXTRACTED_ROOT" envDefault:"extracted"`
	ProcessedRoot string `env:"PROCESSED_ROOT" envDefault:"processed"`
	TempDir       string `env:"TEMP_DIR"       envDefault:"/tmp/h36m-fetch"`

	FFmpegBin    string `env:"FFMPEG_BIN"    envDefault:"ffmpeg"`
	FFmpegQScale int    `env:"FFMPEG_QSCALE" envDefault:"3"`
	FrameFormat  string `env:"FRAME_FORMAT"  envDefault:"jpg"`

	LogLevel string `env:"LOG_LEVEL" envDefault:"info"`
}

func Load() (*Config, error) {
	cfg := &Config{}
	if err := env.Parse(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}
