// Package fs provides filesystem-backed storage for the guide file.
package fs

import (
	"context"
	"os"
	"path/filepath"
	"strings"

	"github.com/pwielgus/triage"
)

// Ensure GuideStore implements triage.GuideStore at compile time.
var _ triage.GuideStore = (*GuideStore)(nil)

// GuideStore reads and writes a single plain-text guide file. Writes are
// atomic: content goes to a temporary file in the same directory which is
// then renamed over the target, so readers see either the old or the new
// guide, never a torn one.
type GuideStore struct {
	path string
}

// NewGuideStore creates a store for the guide file at path.
func NewGuideStore(path string) *GuideStore {
	return &GuideStore{path: path}
}

// Path returns the guide file path.
func (s *GuideStore) Path() string {
	return s.path
}

// Read returns the guide content and modification time.
// Returns ENOTFOUND if the file does not exist.
func (s *GuideStore) Read(ctx context.Context) (*triage.Guide, error) {
	info, err := os.Stat(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, triage.Errorf(triage.ENOTFOUND, "guide file %q not found", s.path)
		}
		return nil, err
	}

	content, err := os.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, triage.Errorf(triage.ENOTFOUND, "guide file %q not found", s.path)
		}
		return nil, err
	}

	return &triage.Guide{
		Content: string(content),
		ModTime: info.ModTime(),
	}, nil
}

// Overwrite durably replaces the guide content.
func (s *GuideStore) Overwrite(ctx context.Context, content string) error {
	dir := filepath.Dir(s.path)

	tmp, err := os.CreateTemp(dir, filepath.Base(s.path)+".tmp*")
	if err != nil {
		return err
	}
	defer os.Remove(tmp.Name())

	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		return err
	}
	if err := tmp.Close(); err != nil {
		return err
	}

	return os.Rename(tmp.Name(), s.path)
}

// Append adds a new application section to the end of the guide,
// creating the file if it does not exist.
func (s *GuideStore) Append(ctx context.Context, name, steps string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return triage.Errorf(triage.EINVALID, "application name required")
	}

	existing := ""
	if guide, err := s.Read(ctx); err == nil {
		existing = guide.Content
	} else if triage.ErrorCode(err) != triage.ENOTFOUND {
		return err
	}

	entry := FormatEntry(name, steps)
	return s.Overwrite(ctx, existing+entry)
}

// FormatEntry formats a quick-add submission as a guide section.
func FormatEntry(name, steps string) string {
	var b strings.Builder
	b.WriteString("\n\n# ")
	b.WriteString(strings.TrimSpace(name))
	b.WriteString("\n\n")
	b.WriteString(strings.TrimSpace(steps))
	b.WriteString("\n")
	return b.String()
}
