package main

import (
	"io"
	"log/slog"
)

// NewLogger builds the JSON logger shared by every service, level is one of slog's names
func NewLogger(level string, w io.Writer) (*slog.Logger, error) {
	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(level)); err != nil {
		return nil, err
	}

	return slog.New(slog.NewJSONHandler(w, &slog.HandlerOptions{Level: logLevel})), nil
}
