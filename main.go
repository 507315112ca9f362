package main

import (
	"os"

	"github.com/rs/zerolog"

	"todoserver/config"
	httphandlers "todoserver/http"
	"todoserver/store"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		bootLog := zerolog.New(os.Stderr)
		bootLog.Fatal().Err(err).Msg("loading config")
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	log := zerolog.New(os.Stderr).Level(level).With().Timestamp().Logger()

	// Schema bootstrap happens here, once, before any traffic is served.
	st, err := store.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatal().Err(err).Str("database", cfg.DatabasePath).Msg("opening store")
	}
	defer st.Close()

	server := httphandlers.NewServer(st, log)
	app := server.Router()

	log.Info().Str("port", cfg.Port).Str("database", st.Path()).Msg("server starting")
	if err := app.Listen(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server stopped")
	}
}
