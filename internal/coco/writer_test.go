package coco

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestEncodeEmptyDataset(t *testing.T) {
	data, err := Encode(NewDataset())
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := `{"categories":[{"id":1,"name":"person"}],"images":[],"annotations":[]}`
	if string(data) != want {
		t.Fatalf("Encode = %s, want %s", data, want)
	}
}

func TestEncodeAnnotationShape(t *testing.T) {
	ds := NewDataset()
	ds.AddImage(Image{ID: 10001, FileName: "images/a/000001.jpg", Width: 1280, Height: 720})
	ds.AddAnnotation(NewPersonAnnotation(5, 10001, BBox{1, 2, 3.5, 4}))

	data, err := Encode(ds)
	if err != nil {
		t.Fatalf("Encode returned error: %v", err)
	}
	want := `{"categories":[{"id":1,"name":"person"}],` +
		`"images":[{"id":10001,"file_name":"images/a/000001.jpg","width":1280,"height":720}],` +
		`"annotations":[{"id":5,"image_id":10001,"category_id":1,"iscrowd":0,"area":14,` +
		`"bbox":[1,2,3.5,4],"segmentation":[[1,2,1,6,4.5,6,4.5,2]]}]}`
	if string(data) != want {
		t.Fatalf("Encode =\n%s\nwant\n%s", data, want)
	}
}

func TestWriteDatasetCreatesDirectoriesAndOverwrites(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "out", "instances.json")

	first := NewDataset()
	first.AddImage(Image{ID: 1, FileName: "a.jpg", Width: 2, Height: 2})
	if err := WriteDataset(path, first); err != nil {
		t.Fatalf("WriteDataset returned error: %v", err)
	}

	second := NewDataset()
	second.AddImage(Image{ID: 2, FileName: "b.jpg", Width: 4, Height: 4})
	if err := WriteDataset(path, second); err != nil {
		t.Fatalf("WriteDataset (overwrite) returned error: %v", err)
	}

	got, err := ReadDataset(path)
	if err != nil {
		t.Fatalf("ReadDataset returned error: %v", err)
	}
	if diff := cmp.Diff(second, got); diff != "" {
		t.Fatalf("dataset mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDatasetLeavesOnlyTheDataset(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "coco_annotations")
	path := filepath.Join(dir, "posetrack_instances_val.json")
	if err := WriteDataset(path, NewDataset()); err != nil {
		t.Fatalf("WriteDataset returned error: %v", err)
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		t.Fatal(err)
	}
	names := make([]string, 0, len(entries))
	for _, e := range entries {
		names = append(names, e.Name())
	}
	if diff := cmp.Diff([]string{"posetrack_instances_val.json"}, names); diff != "" {
		t.Fatalf("output directory mismatch (-want +got):\n%s", diff)
	}
}

func TestWriteDatasetIsDeterministic(t *testing.T) {
	dir := t.TempDir()
	build := func() *Dataset {
		ds := NewDataset()
		ds.AddImage(Image{ID: 1, FileName: "a.jpg", Width: 2, Height: 2})
		ds.AddAnnotation(NewPersonAnnotation(1, 1, BBox{0, 0, 1, 1}))
		return ds
	}

	first := filepath.Join(dir, "first.json")
	second := filepath.Join(dir, "second.json")
	if err := WriteDataset(first, build()); err != nil {
		t.Fatal(err)
	}
	if err := WriteDataset(second, build()); err != nil {
		t.Fatal(err)
	}

	a, err := os.ReadFile(first)
	if err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(second)
	if err != nil {
		t.Fatal(err)
	}
	if !bytes.Equal(a, b) {
		t.Fatalf("expected byte-identical output:\n%s\n%s", a, b)
	}
}

func TestEncodeNilDataset(t *testing.T) {
	if _, err := Encode(nil); err == nil {
		t.Fatal("expected error for nil dataset")
	}
}
