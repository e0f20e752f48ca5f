// Package fileutil holds the file replacement and locking helpers shared by
// the converters' writers.
package fileutil

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"os"
	"path/filepath"

	"github.com/gofrs/flock"
)

// WriteFileAtomic writes data to a temp file beside path and renames it into
// place, so readers never observe a partially written file. An existing file
// at path is replaced.
func WriteFileAtomic(path string, data []byte, mode os.FileMode) error {
	dir := filepath.Dir(path)
	tmp, err := os.CreateTemp(dir, "."+filepath.Base(path)+".*.tmp")
	if err != nil {
		return fmt.Errorf("create temp file: %w", err)
	}
	tmpName := tmp.Name()
	defer func() {
		_ = os.Remove(tmpName)
	}()

	if _, err := tmp.Write(data); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("write temp file: %w", err)
	}
	if err := tmp.Chmod(mode); err != nil {
		_ = tmp.Close()
		return fmt.Errorf("chmod temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		return fmt.Errorf("close temp file: %w", err)
	}
	if err := os.Rename(tmpName, path); err != nil {
		return fmt.Errorf("replace %s: %w", path, err)
	}
	return nil
}

// LockPath returns the advisory lock file guarding path. Lock files live in
// the system temp directory, named by a digest of the absolute target path,
// so output directories hold only the files written into them.
func LockPath(path string) string {
	if abs, err := filepath.Abs(path); err == nil {
		path = abs
	}
	sum := sha256.Sum256([]byte(filepath.Clean(path)))
	return filepath.Join(os.TempDir(), "cococonv-"+hex.EncodeToString(sum[:8])+".lock")
}

// WithLock holds an exclusive advisory lock on LockPath(path) while fn runs.
// Concurrent callers targeting the same path wait for each other.
func WithLock(path string, fn func() error) error {
	lock := flock.New(LockPath(path))
	if err := lock.Lock(); err != nil {
		return fmt.Errorf("acquire lock %s: %w", lock.Path(), err)
	}
	defer func() {
		_ = lock.Unlock()
	}()
	return fn()
}
