package mock

import (
	"context"
	"time"

	"github.com/pwielgus/triage"
)

var _ triage.SectionSource = (*SectionSource)(nil)

// SectionSource is a mock implementation of triage.SectionSource.
type SectionSource struct {
	SectionsFn func(ctx context.Context) ([]triage.Section, time.Time, error)
}

func (s *SectionSource) Sections(ctx context.Context) ([]triage.Section, time.Time, error) {
	return s.SectionsFn(ctx)
}
