package imagelist_test

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"

	"cococonv/internal/imagelist"
)

func touch(t *testing.T, root string, names ...string) {
	t.Helper()
	for _, name := range names {
		p := filepath.Join(root, filepath.FromSlash(name))
		if err := os.MkdirAll(filepath.Dir(p), 0o755); err != nil {
			t.Fatalf("mkdir %s: %v", p, err)
		}
		if err := os.WriteFile(p, []byte("x"), 0o644); err != nil {
			t.Fatalf("write %s: %v", p, err)
		}
	}
}

func TestEnumerateSortsLexicographically(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "b.jpg", "a.jpg")

	got, err := imagelist.Enumerate(root, nil)
	if err != nil {
		t.Fatalf("Enumerate returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"a.jpg", "b.jpg"}, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestEnumerateFilesBeforeSubdirectories(t *testing.T) {
	root := t.TempDir()
	touch(t, root,
		"z.png",
		"a/2.jpg",
		"a/1.jpg",
		"a/deep/0.png",
		"b/0.jpg",
		"m.jpg",
	)

	got, err := imagelist.Enumerate(root, []string{".jpg", ".png"})
	if err != nil {
		t.Fatalf("Enumerate returned error: %v", err)
	}
	want := []string{"m.jpg", "z.png", "a/1.jpg", "a/2.jpg", "a/deep/0.png", "b/0.jpg"}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("unexpected order (-want +got):\n%s", diff)
	}
}

func TestEnumerateFiltersExtensionsCaseSensitively(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.jpg", "b.JPG", "c.jpeg", "d.txt", "e.png", "f")

	got, err := imagelist.Enumerate(root, []string{".jpg", ".png"})
	if err != nil {
		t.Fatalf("Enumerate returned error: %v", err)
	}
	if diff := cmp.Diff([]string{"a.jpg", "e.png"}, got); diff != "" {
		t.Fatalf("unexpected files (-want +got):\n%s", diff)
	}
}

func TestEnumerateEmptyDirectory(t *testing.T) {
	got, err := imagelist.Enumerate(t.TempDir(), nil)
	if err != nil {
		t.Fatalf("Enumerate returned error: %v", err)
	}
	if got == nil || len(got) != 0 {
		t.Fatalf("expected empty non-nil slice, got %#v", got)
	}
}

func TestEnumerateMissingRoot(t *testing.T) {
	_, err := imagelist.Enumerate(filepath.Join(t.TempDir(), "missing"), nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestEnumerateRootIsFile(t *testing.T) {
	root := t.TempDir()
	touch(t, root, "a.jpg")
	_, err := imagelist.Enumerate(filepath.Join(root, "a.jpg"), nil)
	if !errors.Is(err, imagelist.ErrNotDirectory) {
		t.Fatalf("expected ErrNotDirectory, got %v", err)
	}
}

func TestEnumerateDoesNotChangeWorkingDirectory(t *testing.T) {
	before, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	root := t.TempDir()
	touch(t, root, "s/a.jpg")
	got, err := imagelist.Enumerate(root, nil)
	if err != nil {
		t.Fatal(err)
	}
	after, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if before != after {
		t.Fatalf("working directory changed from %q to %q", before, after)
	}
	for _, p := range got {
		if filepath.IsAbs(p) || strings.HasPrefix(p, "./") {
			t.Fatalf("expected clean relative path, got %q", p)
		}
	}
}
