// Vinoteca - Wine Ranking Catalog and Related-Wine Recommendations
// Copyright 2026 Tom F. (tomtom215)
// SPDX-License-Identifier: AGPL-3.0-or-later
// https://github.com/tomtom215/vinoteca

package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func TestSlogLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerFrom(zerolog.New(&buf))

	logger.With("service", "http").
		WithGroup("restart").
		Warn("service restarted",
			"attempt", 2,
			"backoff", time.Second,
			"failed", true,
			"err", errors.New("exit"),
			slog.Group("tree", "name", "vinoteca"),
		)

	out := buf.String()
	for _, want := range []string{
		`"level":"warn"`,
		`"message":"service restarted"`,
		`"service":"http"`,
		`"restart.attempt":2`,
		`"restart.failed":true`,
		`"restart.err":"exit"`,
		`"restart.tree.name":"vinoteca"`,
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %s: %s", want, out)
		}
	}
}

func TestSlogLogger_Enabled(t *testing.T) {
	var buf bytes.Buffer
	logger := NewSlogLoggerFrom(zerolog.New(&buf).Level(zerolog.WarnLevel))

	logger.Info("dropped")
	logger.Error("kept")

	if strings.Contains(buf.String(), "dropped") {
		t.Error("info record written below logger level")
	}
	if !strings.Contains(buf.String(), "kept") {
		t.Error("error record missing")
	}
}

func TestZerologLevel(t *testing.T) {
	tests := []struct {
		in   slog.Level
		want zerolog.Level
	}{
		{slog.LevelDebug - 4, zerolog.TraceLevel},
		{slog.LevelDebug, zerolog.DebugLevel},
		{slog.LevelInfo, zerolog.InfoLevel},
		{slog.LevelWarn, zerolog.WarnLevel},
		{slog.LevelError, zerolog.ErrorLevel},
		{slog.LevelError + 4, zerolog.ErrorLevel},
	}
	for _, tt := range tests {
		if got := zerologLevel(tt.in); got != tt.want {
			t.Errorf("zerologLevel(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
