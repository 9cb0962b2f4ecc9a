package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func waitRun(t *testing.T, runs <-chan struct{}) {
	t.Helper()
	select {
	case <-runs:
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for a run")
	}
}

func TestRun(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	ctx, cancel := context.WithCancel(context.Background())

	runs := make(chan struct{}, 16)
	done := make(chan error, 1)
	go func() {
		done <- Run(ctx, root, Options{
			Match:    func(rel string) bool { return strings.HasSuffix(rel, ".yaml") },
			Debounce: 10 * time.Millisecond,
		}, func() error {
			runs <- struct{}{}
			return nil
		})
	}()

	waitRun(t, runs)

	require.NoError(t, os.WriteFile(filepath.Join(root, "pets.yaml"), []byte("components: {}\n"), 0o600))
	waitRun(t, runs)

	require.NoError(t, os.Mkdir(filepath.Join(root, "nested"), 0o750))
	// give the watcher a moment to pick up the new directory
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(filepath.Join(root, "nested", "owners.yaml"), []byte("components: {}\n"), 0o600))
	waitRun(t, runs)

	cancel()
	select {
	case err := <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestRun_MissingRoot(t *testing.T) {
	t.Parallel()
	err := Run(context.Background(), filepath.Join(t.TempDir(), "missing"), Options{}, func() error {
		t.Fatal("fn must not run")
		return nil
	})
	require.Error(t, err)
}
