// Package mock provides function-field mock implementations of the
// triage domain interfaces for use in tests.
package mock

import (
	"context"

	"github.com/pwielgus/triage"
)

var _ triage.GuideStore = (*GuideStore)(nil)

// GuideStore is a mock implementation of triage.GuideStore.
type GuideStore struct {
	ReadFn      func(ctx context.Context) (*triage.Guide, error)
	OverwriteFn func(ctx context.Context, content string) error
	AppendFn    func(ctx context.Context, name, steps string) error
}

func (s *GuideStore) Read(ctx context.Context) (*triage.Guide, error) {
	return s.ReadFn(ctx)
}

func (s *GuideStore) Overwrite(ctx context.Context, content string) error {
	return s.OverwriteFn(ctx, content)
}

func (s *GuideStore) Append(ctx context.Context, name, steps string) error {
	return s.AppendFn(ctx, name, steps)
}
