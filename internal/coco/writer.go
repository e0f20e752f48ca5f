package coco

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"cococonv/internal/fileutil"
)

// Encode serializes dataset as compact JSON without a trailing newline.
func Encode(dataset *Dataset) ([]byte, error) {
	if dataset == nil {
		return nil, errors.New("encode dataset: nil dataset")
	}
	data, err := json.Marshal(dataset)
	if err != nil {
		return nil, fmt.Errorf("encode dataset: %w", err)
	}
	return data, nil
}

// WriteDataset writes dataset to path, creating parent directories as needed
// and replacing any existing file. The write holds an advisory lock on
// path+".lock" so concurrent writers of the same file take turns.
func WriteDataset(path string, dataset *Dataset) error {
	data, err := Encode(dataset)
	if err != nil {
		return err
	}
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("create output directory %q: %w", dir, err)
	}
	return fileutil.WithLock(path, func() error {
		if err := fileutil.WriteFileAtomic(path, data, 0o644); err != nil {
			return fmt.Errorf("write dataset %s: %w", path, err)
		}
		return nil
	})
}

// ReadDataset loads a dataset previously written by WriteDataset.
func ReadDataset(path string) (*Dataset, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read dataset: %w", err)
	}
	var dataset Dataset
	if err := json.Unmarshal(data, &dataset); err != nil {
		return nil, fmt.Errorf("decode dataset %s: %w", path, err)
	}
	return &dataset, nil
}
