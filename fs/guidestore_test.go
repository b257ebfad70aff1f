package fs_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/pwielgus/triage"
	"github.com/pwielgus/triage/fs"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuideStore_Read(t *testing.T) {
	t.Parallel()

	t.Run("returns content and modtime", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "steps.txt")
		require.NoError(t, os.WriteFile(path, []byte("# Veeam\n- step\n"), 0644))

		guide, err := fs.NewGuideStore(path).Read(context.Background())

		require.NoError(t, err)
		assert.Equal(t, "# Veeam\n- step\n", guide.Content)
		assert.False(t, guide.ModTime.IsZero())
	})

	t.Run("missing file returns ENOTFOUND", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "missing.txt")

		_, err := fs.NewGuideStore(path).Read(context.Background())

		assert.Equal(t, triage.ENOTFOUND, triage.ErrorCode(err))
	})
}

func TestGuideStore_Overwrite(t *testing.T) {
	t.Parallel()

	t.Run("replaces content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "steps.txt")
		require.NoError(t, os.WriteFile(path, []byte("old"), 0644))
		store := fs.NewGuideStore(path)

		require.NoError(t, store.Overwrite(context.Background(), "# New\n"))

		guide, err := store.Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "# New\n", guide.Content)
	})

	t.Run("creates the file when missing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "steps.txt")
		store := fs.NewGuideStore(path)

		require.NoError(t, store.Overwrite(context.Background(), "content"))

		guide, err := store.Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "content", guide.Content)
	})

	t.Run("leaves no temp files behind", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "steps.txt")
		store := fs.NewGuideStore(path)

		require.NoError(t, store.Overwrite(context.Background(), "content"))

		entries, err := os.ReadDir(dir)
		require.NoError(t, err)
		require.Len(t, entries, 1)
		assert.Equal(t, "steps.txt", entries[0].Name())
	})
}

func TestGuideStore_Append(t *testing.T) {
	t.Parallel()

	t.Run("appends a section to existing content", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "steps.txt")
		require.NoError(t, os.WriteFile(path, []byte("# A\n- step\n"), 0644))
		store := fs.NewGuideStore(path)

		require.NoError(t, store.Append(context.Background(), "B", "- new step"))

		guide, err := store.Read(context.Background())
		require.NoError(t, err)
		assert.Equal(t, "# A\n- step\n\n\n# B\n\n- new step\n", guide.Content)

		sections := triage.ParseGuide(guide.Content)
		require.Len(t, sections, 2)
		assert.Equal(t, "B", sections[1].Name)
	})

	t.Run("creates the file when missing", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "steps.txt")
		store := fs.NewGuideStore(path)

		require.NoError(t, store.Append(context.Background(), "First", "- step"))

		guide, err := store.Read(context.Background())
		require.NoError(t, err)
		sections := triage.ParseGuide(guide.Content)
		require.Len(t, sections, 1)
		assert.Equal(t, "First", sections[0].Name)
	})

	t.Run("empty name returns EINVALID", func(t *testing.T) {
		t.Parallel()

		store := fs.NewGuideStore(filepath.Join(t.TempDir(), "steps.txt"))

		err := store.Append(context.Background(), "   ", "- step")

		assert.Equal(t, triage.EINVALID, triage.ErrorCode(err))
	})
}
