package main

import (
	"context"
	"io"
	"log/slog"
	"strings"

	"github.com/goliatone/go-settingstab/pkg/model"
)

// newSlog builds the process logger from config.
func newSlog(w io.Writer, cfg LogConfig) *slog.Logger {
	opts := &slog.HandlerOptions{Level: parseLevel(cfg.Level)}
	if strings.EqualFold(cfg.Format, "json") {
		return slog.New(slog.NewJSONHandler(w, opts))
	}
	return slog.New(slog.NewTextHandler(w, opts))
}

func parseLevel(raw string) slog.Level {
	var level slog.Level
	if err := level.UnmarshalText([]byte(strings.TrimSpace(raw))); err != nil {
		return slog.LevelInfo
	}
	return level
}

// slogEvents forwards tab events to slog. Skipped assets and corrected
// defaults are worth a look, everything else is debug noise.
type slogEvents struct {
	log *slog.Logger
}

func (s slogEvents) LogEvent(event model.Event) {
	level := slog.LevelDebug
	switch event.Name {
	case model.EventDefaultCorrected, model.EventAssetsSkipped:
		level = slog.LevelInfo
	}

	attrs := []slog.Attr{slog.String("slug", event.Slug)}
	if event.FieldID != "" {
		attrs = append(attrs, slog.String("field", event.FieldID))
	}
	if event.From != nil || event.To != nil {
		attrs = append(attrs, slog.Any("from", event.From), slog.Any("to", event.To))
	}
	if event.Count > 0 {
		attrs = append(attrs, slog.Int("count", event.Count))
	}
	if event.Message != "" {
		attrs = append(attrs, slog.String("reason", event.Message))
	}
	s.log.LogAttrs(context.Background(), level, event.Name, attrs...)
}
