package main

import (
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"github.com/robalobadob/hangman/internal/database"
	"github.com/robalobadob/hangman/internal/httpserver"
	"github.com/robalobadob/hangman/internal/results"
	"github.com/robalobadob/hangman/internal/store"
	"github.com/robalobadob/hangman/internal/words"
)

func main() {
	_ = godotenv.Load()
	cfg := loadConfig()
	if lvl, err := zerolog.ParseLevel(cfg.LogLevel); err == nil {
		zerolog.SetGlobalLevel(lvl)
	}

	if err := words.Init(); err != nil {
		log.Fatal().Err(err).Msg("failed to load word list")
	}

	var (
		opts    []store.Option
		archive httpserver.Archive
	)
	if cfg.archiveEnabled() {
		db, err := database.Open(cfg.DatabasePath)
		if err != nil {
			log.Fatal().Err(err).Str("path", cfg.DatabasePath).Msg("open database")
		}
		defer db.Close()
		if err := database.Migrate(db); err != nil {
			log.Fatal().Err(err).Msg("migrate database")
		}
		rs := results.NewStore(db)
		opts = append(opts, store.WithRecorder(rs))
		archive = rs
	} else {
		log.Info().Msg("results archive disabled")
	}
	if cfg.HTTP.AdminPasswordHash == "" {
		log.Warn().Msg("ADMIN_PASSWORD_HASH not set; management routes are open")
	}

	reg := store.NewMemoryRegistry(opts...)
	srv := httpserver.New(reg, archive, cfg.HTTP)
	log.Info().Str("port", cfg.Port).Int("words", words.Count()).Msg("starting hangman server")
	if err := srv.Start(":" + cfg.Port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}
