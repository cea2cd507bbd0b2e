package logging

import (
	"io"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/damonallison/swift-fundamentals-sub000/internal/config"
	"github.com/lmittmann/tint"
)

func Auto(cfg config.Config) io.Closer {
	w, err := getWriter(cfg.LogFile)
	if err != nil {
		log.Fatalln(err)
	}

	logLevel := slog.LevelDebug
	if !cfg.Debug {
		logLevel = slog.LevelInfo
	}

	logger := slog.New(tint.NewHandler(w, &tint.Options{
		AddSource:   cfg.Debug,
		Level:       logLevel,
		ReplaceAttr: nil,
		TimeFormat:  time.Kitchen,
		NoColor:     !cfg.Debug || cfg.LogFile != "",
	}))

	slog.SetDefault(logger)
	slog.SetLogLoggerLevel(logLevel)

	return w
}

func getWriter(path string) (io.WriteCloser, error) {
	if path == "" {
		return struct {
			io.Writer
			io.Closer
		}{
			os.Stderr,
			io.NopCloser(nil),
		}, nil
	}

	return os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
}
