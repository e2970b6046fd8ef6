package watch

import (
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestWatcher(t *testing.T, delay time.Duration, fired *atomic.Int32) (*Watcher, string) {
	t.Helper()
	dir := t.TempDir()
	path := filepath.Join(dir, "active.pb.txt")
	require.NoError(t, os.WriteFile(path, []byte("name: \"a\"\n"), 0644))

	w, err := New([]string{path}, delay, func() { fired.Add(1) })
	require.NoError(t, err)
	return w, path
}

func TestWatcher_DebouncesBursts(t *testing.T) {
	var fired atomic.Int32
	w, path := newTestWatcher(t, 20*time.Millisecond, &fired)
	defer w.fsw.Close()

	// A burst of events inside the quiet period fires once.
	w.notify(path)
	w.notify(path)
	w.flush()
	assert.Equal(t, int32(0), fired.Load())

	time.Sleep(30 * time.Millisecond)
	w.flush()
	assert.Equal(t, int32(1), fired.Load())

	// Nothing pending anymore.
	w.flush()
	assert.Equal(t, int32(1), fired.Load())
}

func TestWatcher_IgnoresUnwatchedPaths(t *testing.T) {
	var fired atomic.Int32
	w, path := newTestWatcher(t, time.Millisecond, &fired)
	defer w.fsw.Close()

	w.notify(filepath.Join(filepath.Dir(path), "other.pb.txt"))
	time.Sleep(5 * time.Millisecond)
	w.flush()
	assert.Equal(t, int32(0), fired.Load())
}

func TestWatcher_FiresOnFileWrite(t *testing.T) {
	var fired atomic.Int32
	w, path := newTestWatcher(t, 10*time.Millisecond, &fired)
	w.Start()
	defer w.Stop()

	require.NoError(t, os.WriteFile(path, []byte("name: \"b\"\n"), 0644))

	require.Eventually(t, func() bool { return fired.Load() >= 1 },
		5*time.Second, 20*time.Millisecond)
}

func TestWatcher_StopTerminatesLoop(t *testing.T) {
	var fired atomic.Int32
	w, _ := newTestWatcher(t, time.Millisecond, &fired)
	w.Start()
	w.Stop()

	select {
	case <-w.done:
	case <-time.After(time.Second):
		t.Fatal("watcher loop did not exit")
	}
}

func TestNew_MissingDirectory(t *testing.T) {
	_, err := New([]string{filepath.Join(t.TempDir(), "missing", "f.pb.txt")}, time.Millisecond, func() {})
	assert.Error(t, err)
}
