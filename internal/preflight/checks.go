package preflight

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"golang.org/x/sys/unix"
)

// CheckInputDir verifies that path is a directory that can be listed and read.
func CheckInputDir(name, path string) Result {
	if err := checkDir(path, unix.R_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (read ok)", path)}
}

// CheckOutputDir verifies that path is writable, or that its nearest existing
// ancestor is writable so the directory can be created.
func CheckOutputDir(name, path string) Result {
	err := checkDir(path, unix.W_OK|unix.X_OK)
	if err == nil {
		return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (write ok)", path)}
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}

	ancestor, err := nearestExisting(path)
	if err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: %v)", path, err)}
	}
	if err := checkDir(ancestor, unix.W_OK|unix.X_OK); err != nil {
		return Result{Name: name, Detail: fmt.Sprintf("%s (error: cannot create under %s: %v)", path, ancestor, err)}
	}
	return Result{Name: name, Passed: true, Detail: fmt.Sprintf("%s (will be created)", path)}
}

func checkDir(path string, mode uint32) error {
	info, err := os.Stat(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return fmt.Errorf("does not exist: %w", fs.ErrNotExist)
		}
		return fmt.Errorf("stat: %w", err)
	}
	if !info.IsDir() {
		return errors.New("is not a directory")
	}
	if err := unix.Access(path, mode); err != nil {
		return fmt.Errorf("insufficient permissions: %w", err)
	}
	return nil
}

func nearestExisting(path string) (string, error) {
	dir := filepath.Clean(path)
	for {
		parent := filepath.Dir(dir)
		if parent == dir {
			return "", errors.New("no existing ancestor")
		}
		dir = parent
		if _, err := os.Stat(dir); err == nil {
			return dir, nil
		} else if !errors.Is(err, fs.ErrNotExist) {
			return "", fmt.Errorf("stat %s: %w", dir, err)
		}
	}
}
