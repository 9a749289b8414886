package watcher

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"
)

const debounce = 50 * time.Millisecond

type recorder struct {
	mu    sync.Mutex
	calls []string
	ch    chan string
}

func newRecorder() *recorder {
	return &recorder{ch: make(chan string, 16)}
}

func (r *recorder) callback(path string) {
	r.mu.Lock()
	r.calls = append(r.calls, path)
	r.mu.Unlock()
	r.ch <- path
}

func (r *recorder) count() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.calls)
}

func (r *recorder) wait(t *testing.T) string {
	t.Helper()
	select {
	case path := <-r.ch:
		return path
	case <-time.After(5 * time.Second):
		t.Fatal("timed out waiting for callback")
		return ""
	}
}

func startWatcher(t *testing.T, files []string, rec *recorder) *FileWatcher {
	t.Helper()
	fw, err := NewFileWatcher(debounce, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	t.Cleanup(func() { _ = fw.Close() })

	if err := fw.Watch(files, rec.callback); err != nil {
		t.Fatalf("Watch failed: %v", err)
	}
	fw.Start()
	return fw
}

func writeFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatalf("write failed: %v", err)
	}
}

func TestWatchReportsWrite(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gochibi.yaml")
	writeFile(t, path, "model:\n  scale: 1\n")

	rec := newRecorder()
	startWatcher(t, []string{path}, rec)

	writeFile(t, path, "model:\n  scale: 2\n")

	got := rec.wait(t)
	abs, _ := filepath.Abs(path)
	if got != abs {
		t.Errorf("expected callback for %s, got %s", abs, got)
	}
}

func TestWatchDebouncesBursts(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gochibi.yaml")
	writeFile(t, path, "a")

	rec := newRecorder()
	startWatcher(t, []string{path}, rec)

	for i := 0; i < 5; i++ {
		writeFile(t, path, "burst")
	}

	rec.wait(t)
	time.Sleep(4 * debounce)
	if n := rec.count(); n != 1 {
		t.Errorf("expected one debounced callback, got %d", n)
	}
}

func TestWatchSeesAtomicReplace(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gochibi.yaml")
	writeFile(t, path, "old")

	rec := newRecorder()
	startWatcher(t, []string{path}, rec)

	tmp := filepath.Join(dir, ".gochibi.yaml.swp")
	writeFile(t, tmp, "new")
	if err := os.Rename(tmp, path); err != nil {
		t.Fatalf("rename failed: %v", err)
	}

	rec.wait(t)
}

func TestWatchIgnoresSiblings(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "gochibi.yaml")
	writeFile(t, path, "a")

	rec := newRecorder()
	startWatcher(t, []string{path}, rec)

	writeFile(t, filepath.Join(dir, "other.yaml"), "b")
	time.Sleep(4 * debounce)

	if n := rec.count(); n != 0 {
		t.Errorf("expected no callbacks for sibling files, got %d", n)
	}
}

func TestRunStopsOnContext(t *testing.T) {
	fw, err := NewFileWatcher(debounce, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- fw.Run(ctx) }()

	cancel()
	select {
	case err := <-done:
		if !errors.Is(err, context.Canceled) {
			t.Errorf("expected context.Canceled, got %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}

func TestWatchMissingDirectory(t *testing.T) {
	fw, err := NewFileWatcher(debounce, nil)
	if err != nil {
		t.Fatalf("NewFileWatcher failed: %v", err)
	}
	defer fw.Close()

	missing := filepath.Join(t.TempDir(), "nope", "gochibi.yaml")
	if err := fw.Watch([]string{missing}, func(string) {}); err == nil {
		t.Error("expected error for a file in a missing directory")
	}
}
