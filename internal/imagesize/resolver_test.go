package imagesize_test

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"cococonv/internal/imagesize"
	"cococonv/internal/testsupport"
)

func TestConfigDecoderReadsDimensions(t *testing.T) {
	dir := t.TempDir()
	tests := []struct {
		name   string
		file   string
		width  int
		height int
	}{
		{name: "png", file: "frame.png", width: 64, height: 48},
		{name: "jpeg", file: "frame.jpg", width: 33, height: 17},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			path := filepath.Join(dir, tc.file)
			testsupport.WriteImage(t, path, tc.width, tc.height)

			size, err := imagesize.ConfigDecoder{}.Decode(path)
			if err != nil {
				t.Fatalf("Decode returned error: %v", err)
			}
			if size.Width != tc.width || size.Height != tc.height {
				t.Fatalf("Decode = %+v, want %dx%d", size, tc.width, tc.height)
			}
		})
	}
}

func TestConfigDecoderFailures(t *testing.T) {
	dir := t.TempDir()

	if _, err := (imagesize.ConfigDecoder{}).Decode(filepath.Join(dir, "missing.jpg")); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}

	corrupt := filepath.Join(dir, "corrupt.jpg")
	testsupport.WriteText(t, corrupt, "not an image")
	if _, err := (imagesize.ConfigDecoder{}).Decode(corrupt); err == nil {
		t.Fatal("expected decode error for corrupt file")
	}
}

func TestConfigDecoderReadsHeaderOfTruncatedJPEG(t *testing.T) {
	path := filepath.Join(t.TempDir(), "truncated.jpg")
	testsupport.WriteImage(t, path, 48, 32)
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(data) <= 200 {
		t.Fatalf("fixture unexpectedly small: %d bytes", len(data))
	}
	if err := os.WriteFile(path, data[:200], 0o644); err != nil {
		t.Fatal(err)
	}

	size, err := imagesize.ConfigDecoder{}.Decode(path)
	if err != nil {
		t.Fatalf("Decode returned error: %v", err)
	}
	if size.Width != 48 || size.Height != 32 {
		t.Fatalf("Decode = %+v, want 48x32", size)
	}
}

func TestResolverDecodesOncePerGroup(t *testing.T) {
	calls := map[string]int{}
	decoder := imagesize.DecoderFunc(func(path string) (imagesize.Size, error) {
		calls[path]++
		if filepath.Base(path) == "b1.jpg" {
			return imagesize.Size{Width: 1920, Height: 1080}, nil
		}
		return imagesize.Size{Width: 640, Height: 480}, nil
	})
	r := imagesize.NewResolver(decoder)

	lookups := []struct {
		group string
		path  string
		want  imagesize.Size
	}{
		{"seq-a", "a1.jpg", imagesize.Size{Width: 640, Height: 480}},
		{"seq-a", "a2.jpg", imagesize.Size{Width: 640, Height: 480}},
		{"seq-b", "b1.jpg", imagesize.Size{Width: 1920, Height: 1080}},
		{"seq-b", "b2.jpg", imagesize.Size{Width: 1920, Height: 1080}},
		{"seq-a", "a3.jpg", imagesize.Size{Width: 640, Height: 480}},
	}
	for _, l := range lookups {
		got, err := r.Resolve(l.group, l.path)
		if err != nil {
			t.Fatalf("Resolve(%q, %q) returned error: %v", l.group, l.path, err)
		}
		if got != l.want {
			t.Fatalf("Resolve(%q, %q) = %+v, want %+v", l.group, l.path, got, l.want)
		}
	}

	if r.Decoded() != 2 {
		t.Fatalf("expected 2 decodes, got %d", r.Decoded())
	}
	if calls["a1.jpg"] != 1 || calls["b1.jpg"] != 1 || len(calls) != 2 {
		t.Fatalf("unexpected decode calls: %v", calls)
	}
	if size, ok := r.Cached("seq-b"); !ok || size.Width != 1920 {
		t.Fatalf("expected cached seq-b size, got %+v %v", size, ok)
	}
}

func TestResolverPropagatesDecodeErrors(t *testing.T) {
	boom := errors.New("boom")
	r := imagesize.NewResolver(imagesize.DecoderFunc(func(string) (imagesize.Size, error) {
		return imagesize.Size{}, boom
	}))

	if _, err := r.Resolve("seq", "x.jpg"); !errors.Is(err, boom) {
		t.Fatalf("expected wrapped decode error, got %v", err)
	}
	if _, ok := r.Cached("seq"); ok {
		t.Fatal("failed decode must not be cached")
	}
	if r.Decoded() != 0 {
		t.Fatalf("expected no successful decodes, got %d", r.Decoded())
	}
}

func TestNewResolverDefaultsDecoder(t *testing.T) {
	path := filepath.Join(t.TempDir(), "f.png")
	testsupport.WriteImage(t, path, 5, 7)

	size, err := imagesize.NewResolver(nil).Resolve("all", path)
	if err != nil {
		t.Fatalf("Resolve returned error: %v", err)
	}
	if size.Width != 5 || size.Height != 7 {
		t.Fatalf("unexpected size %+v", size)
	}
}
