package main

import (
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"drawdata/internal/config"
	"drawdata/internal/logging"
	"drawdata/internal/tui"
)

func main() {
	cfg, err := config.Load(config.DefaultPath())
	if err != nil {
		log.Fatal(err)
	}
	level, err := cfg.LogLevel()
	if err != nil {
		log.Fatal(err)
	}
	logger, closer, err := logging.Open(cfg.Log.File, level)
	if err != nil {
		log.Fatal(err)
	}
	defer closer.Close()
	logger.Info().Float64("sigma", cfg.Sigma).Int("count", cfg.Count).Str("label", cfg.Label).Msg("starting")

	var m tea.Model
	if len(os.Args) > 1 {
		m = tui.NewWithPath(cfg, logger, os.Args[1])
	} else {
		m = tui.New(cfg, logger)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseAllMotion()).Run(); err != nil {
		logger.Error().Err(err).Msg("program failed")
		log.Fatal(err)
	}
}
