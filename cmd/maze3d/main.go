package main

import (
	"flag"
	"os"
	"path/filepath"
	"strings"

	"maze3d/internal/config"
	"maze3d/internal/game"

	"github.com/rs/zerolog"
)

func main() {
	configPath := flag.String("config", "maze3d.yaml", "path to the YAML config file")
	scenePath := flag.String("scene", "", "scene file to load, overrides the config")
	debug := flag.Bool("debug", false, "enable debug logging")
	flag.Parse()

	// Change working directory to executable location for deployed builds.
	// Skip this for "go run" which puts the binary in a temp directory.
	if execPath, err := os.Executable(); err == nil {
		execDir := filepath.Dir(execPath)
		if !strings.Contains(execDir, "go-build") {
			os.Chdir(execDir)
		}
	}

	level := zerolog.InfoLevel
	if *debug {
		level = zerolog.DebugLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal().Err(err).Str("path", *configPath).Msg("load config")
	}
	if *scenePath != "" {
		cfg.Scene.Path = *scenePath
	}

	g := game.NewGame(cfg, log)
	if err := g.Run(); err != nil {
		log.Fatal().Err(err).Msg("run")
	}
}
