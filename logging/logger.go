package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
)

const (
	// EnvLogLevel sets the plugin log level (debug/info/warn/error/off).
	EnvLogLevel = "STREAMWELD_LOG_LEVEL"

	// LevelOff sits above every real level so nothing is emitted.
	LevelOff = slog.Level(100)
)

func Initialize(pluginName string) {
	slog.SetDefault(streamweldPluginLogger(pluginName))
}

// streamweldPluginLogger returns a logger that writes JSON entries to stderr,
// tagged with the plugin name
func streamweldPluginLogger(pluginName string) *slog.Logger {
	level := getLogLevel()
	if level == LevelOff {
		return slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{}))
	}

	handlerOptions := &slog.HandlerOptions{
		Level: level,
	}
	// add plugin name as source
	pluginLongName := fmt.Sprintf("streamweld-plugin-%s", pluginName)
	return slog.New(slog.NewJSONHandler(os.Stderr, handlerOptions)).With("source", pluginLongName)
}

func getLogLevel() slog.Leveler {
	levelEnv := os.Getenv(EnvLogLevel)

	switch strings.ToLower(levelEnv) {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return LevelOff
	}
}
