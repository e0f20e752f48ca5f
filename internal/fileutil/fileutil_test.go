package fileutil

import (
	"os"
	"path/filepath"
	"sync"
	"testing"
)

func TestWriteFileAtomicCreatesAndReplaces(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "out.json")

	if err := WriteFileAtomic(target, []byte("first"), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := WriteFileAtomic(target, []byte("second"), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := os.ReadFile(target)
	if err != nil {
		t.Fatal(err)
	}
	if string(got) != "second" {
		t.Fatalf("content mismatch: got %q", got)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only the target file, found %v", names)
	}
}

func TestWriteFileAtomicSetsMode(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.json")
	if err := WriteFileAtomic(target, []byte("{}"), 0o600); err != nil {
		t.Fatal(err)
	}
	info, err := os.Stat(target)
	if err != nil {
		t.Fatal(err)
	}
	if info.Mode().Perm() != 0o600 {
		t.Fatalf("unexpected mode %o", info.Mode().Perm())
	}
}

func TestWriteFileAtomicMissingDirectory(t *testing.T) {
	target := filepath.Join(t.TempDir(), "missing", "out.json")
	if err := WriteFileAtomic(target, []byte("{}"), 0o644); err == nil {
		t.Fatal("expected error for missing parent directory")
	}
}

func TestWithLockSerializesWriters(t *testing.T) {
	target := filepath.Join(t.TempDir(), "out.json")

	var (
		mu      sync.Mutex
		active  int
		overlap bool
		wg      sync.WaitGroup
	)
	for i := 0; i < 4; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			err := WithLock(target, func() error {
				mu.Lock()
				active++
				if active > 1 {
					overlap = true
				}
				mu.Unlock()

				err := WriteFileAtomic(target, []byte("data"), 0o644)

				mu.Lock()
				active--
				mu.Unlock()
				return err
			})
			if err != nil {
				t.Error(err)
			}
		}()
	}
	wg.Wait()

	if overlap {
		t.Fatal("expected lock holders not to overlap")
	}
	if _, err := os.Stat(LockPath(target)); err != nil {
		t.Fatalf("expected lock file to exist: %v", err)
	}
}

func TestLockPathStaysOutsideTargetDirectory(t *testing.T) {
	dir := t.TempDir()
	target := filepath.Join(dir, "posetrack_instances_val.json")

	if err := WithLock(target, func() error {
		return WriteFileAtomic(target, []byte("{}"), 0o644)
	}); err != nil {
		t.Fatal(err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	if len(entries) != 1 || entries[0].Name() != "posetrack_instances_val.json" {
		names := make([]string, 0, len(entries))
		for _, e := range entries {
			names = append(names, e.Name())
		}
		t.Fatalf("expected only the dataset in the target dir, found %v", names)
	}

	if filepath.Dir(LockPath(target)) == dir {
		t.Fatalf("lock %s placed beside target", LockPath(target))
	}
	if LockPath(target) != LockPath(filepath.Join(dir, ".", "posetrack_instances_val.json")) {
		t.Fatal("equivalent target paths must share a lock")
	}
	if LockPath(target) == LockPath(filepath.Join(dir, "posetrack_instances_train.json")) {
		t.Fatal("distinct targets must not share a lock")
	}
}
