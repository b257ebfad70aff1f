package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Help(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := NewMain().Run(context.Background(), []string{"--help"}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Contains(t, stdout.String(), "serve")
}

func TestRun_UnknownCommand(t *testing.T) {
	t.Parallel()

	var stdout, stderr bytes.Buffer
	err := NewMain().Run(context.Background(), []string{"bogus-command"}, &stdout, &stderr)

	assert.Error(t, err)
}

func TestResolveConfig(t *testing.T) {
	t.Parallel()

	t.Run("defaults apply without flags", func(t *testing.T) {
		t.Parallel()

		cfg, err := (&ServeCmd{}).resolveConfig()

		require.NoError(t, err)
		assert.Equal(t, ":8000", cfg.Addr)
		assert.Equal(t, "steps.txt", cfg.GuidePath)
	})

	t.Run("config file overrides defaults", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "triage.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\n"), 0644))

		cfg, err := (&ServeCmd{Config: path}).resolveConfig()

		require.NoError(t, err)
		assert.Equal(t, ":9000", cfg.Addr)
		assert.Equal(t, "steps.txt", cfg.GuidePath)
	})

	t.Run("flags override the config file", func(t *testing.T) {
		t.Parallel()

		path := filepath.Join(t.TempDir(), "triage.yaml")
		require.NoError(t, os.WriteFile(path, []byte("addr: \":9000\"\ntitle: File Title\n"), 0644))

		cfg, err := (&ServeCmd{Config: path, Addr: ":7000"}).resolveConfig()

		require.NoError(t, err)
		assert.Equal(t, ":7000", cfg.Addr)
		assert.Equal(t, "File Title", cfg.Title)
	})

	t.Run("missing config file is an error", func(t *testing.T) {
		t.Parallel()

		_, err := (&ServeCmd{Config: filepath.Join(t.TempDir(), "nope.yaml")}).resolveConfig()

		assert.Error(t, err)
	})
}

// syncBuffer makes the output buffers safe to read while the server
// goroutine is still writing to them.
type syncBuffer struct {
	mu  sync.Mutex
	buf bytes.Buffer
}

func (b *syncBuffer) Write(p []byte) (int, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.Write(p)
}

func (b *syncBuffer) String() string {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.buf.String()
}

func TestServe_EndToEnd(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	guide := filepath.Join(dir, "steps.txt")
	require.NoError(t, os.WriteFile(guide, []byte("# Veeam\n- review job logs\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var stdout, stderr syncBuffer
	done := make(chan error, 1)
	go func() {
		done <- NewMain().Run(ctx, []string{"serve", "--addr", "127.0.0.1:0", "--guide", guide}, &stdout, &stderr)
	}()

	// The listen address is chosen by the OS, so read it off stdout.
	var base string
	require.Eventually(t, func() bool {
		out := stdout.String()
		_, after, found := strings.Cut(out, "on http://")
		if !found {
			return false
		}
		base = "http://" + strings.TrimSpace(strings.SplitN(after, "\n", 2)[0])
		return true
	}, 5*time.Second, 20*time.Millisecond)

	resp, err := http.Get(fmt.Sprintf("%s/", base))
	require.NoError(t, err)
	defer resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("serve did not stop on cancel")
	}
}
