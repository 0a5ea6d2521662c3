package main

import (
	"os"

	"github.com/rs/zerolog"

	"github.com/terra-rs/save-codec/internal/logging"
)

func configureLogging(level string) error {
	parsed, err := zerolog.ParseLevel(level)
	if err != nil {
		return err
	}
	zl := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).Level(parsed).With().Timestamp().Logger()
	logging.SetLogger(logging.NewZerologAdapter(zl))
	return nil
}
