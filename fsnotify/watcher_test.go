package fsnotify_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/pwielgus/triage/fsnotify"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcher(t *testing.T) {
	t.Parallel()

	t.Run("fires on write to the watched file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "steps.txt")
		require.NoError(t, os.WriteFile(path, []byte("# A\n"), 0644))

		changed := make(chan struct{}, 1)
		w, err := fsnotify.NewWatcher(path, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		}, fsnotify.WithDebounce(10*time.Millisecond))
		require.NoError(t, err)
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = w.Run(ctx) }()

		require.NoError(t, os.WriteFile(path, []byte("# B\n"), 0644))

		select {
		case <-changed:
		case <-time.After(5 * time.Second):
			t.Fatal("expected change notification")
		}
	})

	t.Run("ignores sibling files", func(t *testing.T) {
		t.Parallel()

		dir := t.TempDir()
		path := filepath.Join(dir, "steps.txt")
		require.NoError(t, os.WriteFile(path, []byte("# A\n"), 0644))

		changed := make(chan struct{}, 1)
		w, err := fsnotify.NewWatcher(path, func() {
			select {
			case changed <- struct{}{}:
			default:
			}
		}, fsnotify.WithDebounce(10*time.Millisecond))
		require.NoError(t, err)
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		defer cancel()
		go func() { _ = w.Run(ctx) }()

		require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("x"), 0644))

		select {
		case <-changed:
			t.Fatal("unexpected change notification")
		case <-time.After(200 * time.Millisecond):
		}
	})

	t.Run("run returns on context cancel", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "steps.txt")
		w, err := fsnotify.NewWatcher(path, func() {})
		require.NoError(t, err)
		defer w.Close()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		assert.NoError(t, w.Run(ctx))
	})
}
