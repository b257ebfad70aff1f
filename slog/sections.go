package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/pwielgus/triage"
)

// Ensure LoggingSectionSource implements triage.SectionSource.
var _ triage.SectionSource = (*LoggingSectionSource)(nil)

// LoggingSectionSource wraps a SectionSource with debug logging.
type LoggingSectionSource struct {
	next   triage.SectionSource
	logger *slog.Logger
}

// NewLoggingSectionSource creates a new LoggingSectionSource.
func NewLoggingSectionSource(next triage.SectionSource, logger *slog.Logger) *LoggingSectionSource {
	return &LoggingSectionSource{next: next, logger: logger}
}

// Sections delegates to the wrapped source and logs the operation.
func (s *LoggingSectionSource) Sections(ctx context.Context) (sections []triage.Section, modTime time.Time, err error) {
	defer func(begin time.Time) {
		s.logger.Debug("sections load",
			"count", len(sections),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Sections(ctx)
}
