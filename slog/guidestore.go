// Package slog provides logging decorators around the triage domain
// interfaces.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pwielgus/triage"
)

// Ensure LoggingGuideStore implements triage.GuideStore.
var _ triage.GuideStore = (*LoggingGuideStore)(nil)

// LoggingGuideStore wraps a GuideStore with operation logging.
type LoggingGuideStore struct {
	next   triage.GuideStore
	logger *slog.Logger
}

// NewLoggingGuideStore creates a new LoggingGuideStore.
func NewLoggingGuideStore(next triage.GuideStore, logger *slog.Logger) *LoggingGuideStore {
	return &LoggingGuideStore{next: next, logger: logger}
}

// Read delegates to the wrapped store and logs the operation.
func (s *LoggingGuideStore) Read(ctx context.Context) (guide *triage.Guide, err error) {
	defer func(begin time.Time) {
		size := 0
		if guide != nil {
			size = len(guide.Content)
		}
		s.logger.Debug("guide read",
			"bytes", size,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Read(ctx)
}

// Overwrite delegates to the wrapped store and logs the operation.
func (s *LoggingGuideStore) Overwrite(ctx context.Context, content string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("guide overwrite",
			"bytes", len(content),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Overwrite(ctx, content)
}

// Append delegates to the wrapped store and logs the operation.
func (s *LoggingGuideStore) Append(ctx context.Context, name, steps string) (err error) {
	defer func(begin time.Time) {
		s.logger.Info("guide append",
			"name", name,
			"bytes", len(steps),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Append(ctx, name, steps)
}
