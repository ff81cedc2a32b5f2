package knowledge

import (
	"context"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatch_ReloadsOverlay(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "kb.yaml")
	require.NoError(t, os.WriteFile(path, []byte("archetypes: []\n"), 0644))

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	var latest atomic.Pointer[Base]
	done := make(chan error, 1)
	go func() {
		done <- Watch(ctx, afero.NewOsFs(), path, func(b *Base) { latest.Store(b) })
	}()

	// give the watcher time to register before writing
	time.Sleep(100 * time.Millisecond)
	require.NoError(t, os.WriteFile(path, []byte(testOverlay), 0644))

	require.Eventually(t, func() bool {
		b := latest.Load()
		return b != nil && b.HasArchetype("astronaut")
	}, 5*time.Second, 50*time.Millisecond)

	cancel()
	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(2 * time.Second):
		t.Fatal("Watch did not return after cancel")
	}
}

func TestWatch_MissingDirectory(t *testing.T) {
	err := Watch(context.Background(), afero.NewOsFs(), filepath.Join(t.TempDir(), "nope", "kb.yaml"), func(*Base) {})
	assert.Error(t, err)
}
