// iconforge — Generates the Initium application icons.
//
// Usage:
//
//	iconforge
//
// Run it from the project root. The icons/ directory must already exist;
// it receives icon.png (32x32), icon-128x128.png, icon-256x256.png,
// icon-512x512.png and icon.ico.
package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/initium/iconforge/pkg/generator"
)

func main() {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)

	logger := zerolog.New(zerolog.ConsoleWriter{
		Out:        os.Stderr,
		TimeFormat: "2006-01-02 15:04:05",
	}).With().Timestamp().Logger()

	cfg := generator.DefaultConfig()
	cfg.Logger = &logger

	if err := generator.Run(os.Stdout, cfg); err != nil {
		fatal(logger, err)
	}
	logger.Info().Str("dir", cfg.Dir).Int("rasters", len(cfg.Rasters)).Msg("icon set generated")
}

func fatal(logger zerolog.Logger, err error) {
	logger.Error().Err(err).Msg("icon generation failed")
	os.Exit(1)
}
