package app

import (
	"io"
	"os"

	"github.com/mattn/go-isatty"
	"github.com/rs/zerolog"
)

// NewLogger builds a logger from cfg.
// Format "json" writes raw JSON; anything else goes through a ConsoleWriter,
// coloured when the output is a terminal unless format says otherwise.
// A trace level also lowers zerolog's global level so trace lines pass.
func NewLogger(cfg LogConfig) zerolog.Logger {
	var writer io.Writer = os.Stdout
	if cfg.Output == "stderr" {
		writer = os.Stderr
	}
	return newLogger(cfg, writer)
}

func newLogger(cfg LogConfig, writer io.Writer) zerolog.Logger {
	if cfg.Format != "json" {
		console := zerolog.ConsoleWriter{Out: writer, TimeFormat: "15:04:05.000"}

		switch cfg.Format {
		case "text":
			console.NoColor = true
		case "color":
			console.NoColor = false
		default:
			// go-isatty - dependency for go-colorable - dependency for ConsoleWriter
			f, ok := writer.(*os.File)
			console.NoColor = !ok || !isatty.IsTerminal(f.Fd())
		}

		writer = console
	}

	lvl, err := zerolog.ParseLevel(cfg.Level)
	if err != nil || cfg.Level == "" {
		lvl = zerolog.InfoLevel
	}
	// trace sits below the global default of debug
	if lvl < zerolog.GlobalLevel() {
		zerolog.SetGlobalLevel(lvl)
	}

	return zerolog.New(writer).Level(lvl).With().Timestamp().Logger()
}
