package triage

import (
	"context"
	"time"
)

// Guide is the full text content of the troubleshooting guide, owned by
// the filesystem and rewritten by editor submissions.
type Guide struct {
	Content string
	ModTime time.Time
}

// GuideStore reads and writes the guide file.
type GuideStore interface {
	// Read returns the guide content and its modification time.
	// Returns ENOTFOUND if the guide file does not exist.
	Read(ctx context.Context) (*Guide, error)

	// Overwrite durably replaces the entire guide content.
	Overwrite(ctx context.Context, content string) error

	// Append adds a new application section to the end of the guide,
	// creating the file if it does not exist.
	// Returns EINVALID if name is empty.
	Append(ctx context.Context, name, steps string) error
}

// SectionSource provides the parsed guide sections together with the
// modification time they were parsed from.
type SectionSource interface {
	Sections(ctx context.Context) ([]Section, time.Time, error)
}
