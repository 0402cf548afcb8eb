package main

import (
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"taskdeck/internal/config"
	"taskdeck/internal/server"
)

func main() {
	cfg := config.Load()

	level, err := zerolog.ParseLevel(strings.ToLower(cfg.LogLevel))
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.DateTime}).
		Level(level).
		With().
		Timestamp().
		Logger()

	s, err := server.Init(cfg, log)
	if err != nil {
		log.Fatal().Err(err).Msg("server initialization failed")
	}

	s.Run()
}
