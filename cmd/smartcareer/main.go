package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog"

	"smartcareer/internal/catalog"
	"smartcareer/internal/config"
	"smartcareer/internal/recommend"
	"smartcareer/internal/server"
	"smartcareer/internal/tui"
)

func main() {
	_ = godotenv.Load()

	var (
		cfgPath     = flag.String("config", "config.yaml", "Path to YAML config file")
		catalogPath = flag.String("catalog", "", "Path to the course catalog CSV (overrides config)")
		serve       = flag.Bool("serve", false, "Run the HTTP API instead of the interactive UI")
		addr        = flag.String("addr", "", "HTTP listen address (overrides config)")
	)
	flag.Parse()

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}
	if *catalogPath != "" {
		cfg.CatalogPath = *catalogPath
	}
	if *addr != "" {
		cfg.Server.Addr = *addr
	}

	logger := newLogger(cfg.LogLevel)

	courses, err := catalog.LoadFile(cfg.CatalogPath)
	if err != nil {
		var ferr *catalog.FormatError
		if errors.As(err, &ferr) {
			logger.Fatal().Str("catalog", cfg.CatalogPath).Msg(ferr.Error())
		}
		logger.Fatal().Err(err).Str("catalog", cfg.CatalogPath).Msg("failed to load catalog")
	}

	if *serve {
		svc, err := recommend.NewService(courses, logger)
		if err != nil {
			logger.Fatal().Err(err).Msg("failed to build recommender")
		}
		srv := server.New(cfg.Server.Addr, svc, cfg.TopN, logger)
		logger.Info().Str("addr", cfg.Server.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil {
			logger.Fatal().Err(err).Msg("server stopped")
		}
		return
	}

	// The TUI owns the terminal; the service must not write to it.
	svc, err := recommend.NewService(courses, zerolog.Nop())
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to build recommender: %v\n", err)
		os.Exit(1)
	}
	m := tui.New(svc, cfg.TopN)
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		fmt.Fprintf(os.Stderr, "ui error: %v\n", err)
		os.Exit(1)
	}
}

func newLogger(level string) zerolog.Logger {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(lvl).
		With().Timestamp().Logger()
}
