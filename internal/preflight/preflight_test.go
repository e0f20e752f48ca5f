package preflight

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"cococonv/internal/testsupport"
)

func TestCheckInputDir_OK(t *testing.T) {
	result := CheckInputDir("test", t.TempDir())
	if !result.Passed {
		t.Fatalf("expected pass for temp dir, got: %s", result.Detail)
	}
}

func TestCheckInputDir_NotExist(t *testing.T) {
	result := CheckInputDir("test", filepath.Join(t.TempDir(), "nope"))
	if result.Passed {
		t.Fatal("expected failure for missing dir")
	}
	if !strings.Contains(result.Detail, "does not exist") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckInputDir_NotDir(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckInputDir("test", f)
	if result.Passed {
		t.Fatal("expected failure for file path")
	}
}

func TestCheckOutputDir_Creatable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "a", "b", "coco_annotations")
	result := CheckOutputDir("test", path)
	if !result.Passed {
		t.Fatalf("expected pass for creatable dir, got: %s", result.Detail)
	}
	if !strings.Contains(result.Detail, "will be created") {
		t.Fatalf("unexpected detail: %s", result.Detail)
	}
}

func TestCheckOutputDir_UnderFile(t *testing.T) {
	f := filepath.Join(t.TempDir(), "file.txt")
	if err := os.WriteFile(f, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}
	result := CheckOutputDir("test", filepath.Join(f, "out"))
	if result.Passed {
		t.Fatal("expected failure when an ancestor is a file")
	}
}

func TestRunAll_NilConfig(t *testing.T) {
	if results := RunAll(nil); results != nil {
		t.Fatalf("expected nil, got %v", results)
	}
}

func TestRunAll_ReportsEachSplit(t *testing.T) {
	cfg := testsupport.NewConfig(t, testsupport.WithSplits("train", "val"))
	if err := os.MkdirAll(cfg.TrackingFramesPath(), 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.MkdirAll(cfg.PoseTrackAnnotationPath("train"), 0o755); err != nil {
		t.Fatal(err)
	}

	results := RunAll(cfg)
	names := make([]string, 0, len(results))
	for _, r := range results {
		names = append(names, r.Name)
	}
	want := "Tracking frames,Tracking output,PoseTrack train annotations,PoseTrack val annotations,PoseTrack output"
	if got := strings.Join(names, ","); got != want {
		t.Fatalf("unexpected checks: %s", got)
	}

	failed := Failed(results)
	if len(failed) != 1 || failed[0].Name != "PoseTrack val annotations" {
		t.Fatalf("expected only the val split to fail, got %+v", failed)
	}
}
