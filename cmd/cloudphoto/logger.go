package main

import (
	"log/slog"
	"os"
	"strings"

	"github.com/adampresley/cloudphoto/cmd/cloudphoto/internal/configuration"
)

/*
setupLogger sends structured logs to stderr so they never mix with the
command output on stdout.
*/
func setupLogger(config *configuration.Config, version string) {
	level := slog.LevelWarn

	switch strings.ToLower(config.LogLevel) {
	case "debug":
		level = slog.LevelDebug

	case "info":
		level = slog.LevelInfo

	case "error":
		level = slog.LevelError
	}

	handler := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
		Level: level,
	})

	slog.SetDefault(slog.New(handler).With("version", version))
}
