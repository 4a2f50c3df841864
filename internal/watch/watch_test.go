package watch

import (
	"context"
	"log/slog"
	"os"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelError}))
}

func waitFor(t *testing.T, timeout time.Duration, cond func() bool) bool {
	t.Helper()
	deadline := time.Now().Add(timeout)
	for time.Now().Before(deadline) {
		if cond() {
			return true
		}
		time.Sleep(10 * time.Millisecond)
	}
	return cond()
}

func TestWatchFiresOnWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site-content.json")

	var fired atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	done := make(chan struct{})
	go func() {
		_ = Watch(ctx, path, testLogger(), func() { fired.Add(1) })
		close(done)
	}()

	// Give the watcher time to register.
	time.Sleep(100 * time.Millisecond)

	if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
		t.Fatal(err)
	}

	if !waitFor(t, 2*time.Second, func() bool { return fired.Load() >= 1 }) {
		t.Error("callback never fired after write")
	}

	cancel()
	<-done
}

func TestWatchIgnoresOtherFiles(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site-content.json")

	var fired atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = Watch(ctx, path, testLogger(), func() { fired.Add(1) })
	}()
	time.Sleep(100 * time.Millisecond)

	// Temp files from atomic writes must not trigger the callback.
	if err := os.WriteFile(filepath.Join(dir, ".sitekeeper-tmp-123"), []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	time.Sleep(400 * time.Millisecond)
	if n := fired.Load(); n != 0 {
		t.Errorf("callback fired %d times for an unrelated file", n)
	}
}

func TestWatchCoalescesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "site-content.json")

	var fired atomic.Int32
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	go func() {
		_ = Watch(ctx, path, testLogger(), func() { fired.Add(1) })
	}()
	time.Sleep(100 * time.Millisecond)

	for i := 0; i < 5; i++ {
		if err := os.WriteFile(path, []byte(`{}`), 0o644); err != nil {
			t.Fatal(err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	if !waitFor(t, 2*time.Second, func() bool { return fired.Load() >= 1 }) {
		t.Fatal("callback never fired")
	}
	// Debounce collapses the burst; allow a little slack for slow CI.
	time.Sleep(300 * time.Millisecond)
	if n := fired.Load(); n > 2 {
		t.Errorf("callback fired %d times for one burst, want at most 2", n)
	}
}
