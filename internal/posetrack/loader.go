package posetrack

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// ErrMissingImages reports a sequence file without an "images" list.
var ErrMissingImages = errors.New(`missing "images"`)

// RawImage is an image record as stored in a sequence file. SeqName is not
// part of the file; the loader fills it in.
type RawImage struct {
	ID       int64  `json:"id"`
	FileName string `json:"file_name"`
	SeqName  string `json:"-"`
}

// RawAnnotation is an annotation record as stored in a sequence file. BBox
// stays raw so an absent key can be told apart from a malformed value.
type RawAnnotation struct {
	ID         int64           `json:"id"`
	ImageID    int64           `json:"image_id"`
	CategoryID int             `json:"category_id"`
	BBox       json.RawMessage `json:"bbox"`
}

// HasBBox reports whether the record carried a bbox key.
func (a RawAnnotation) HasBBox() bool {
	return len(a.BBox) > 0
}

// RawCategory is a category record as stored in a sequence file.
type RawCategory struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// SequenceFile is the top-level shape of one sequence annotation file.
type SequenceFile struct {
	Images      *[]RawImage     `json:"images"`
	Annotations []RawAnnotation `json:"annotations"`
	Categories  []RawCategory   `json:"categories"`
}

// Index merges the sequence files of one split.
type Index struct {
	order       []int64
	images      map[int64]RawImage
	annotations map[int64][]RawAnnotation
	sequences   []string
	categories  map[string][]RawCategory
	rawCount    int
}

func newIndex() *Index {
	return &Index{
		images:      make(map[int64]RawImage),
		annotations: make(map[int64][]RawAnnotation),
		categories:  make(map[string][]RawCategory),
	}
}

// Images returns the merged images in first-seen order. When two records
// share an id the later one wins but keeps the earlier position.
func (x *Index) Images() []RawImage {
	out := make([]RawImage, 0, len(x.order))
	for _, id := range x.order {
		out = append(out, x.images[id])
	}
	return out
}

// AnnotationsFor returns the annotations referencing imageID in file order.
func (x *Index) AnnotationsFor(imageID int64) []RawAnnotation {
	return x.annotations[imageID]
}

// AnnotationCount returns the number of annotation records read.
func (x *Index) AnnotationCount() int {
	return x.rawCount
}

// Sequences returns the loaded sequence names in load order.
func (x *Index) Sequences() []string {
	return append([]string(nil), x.sequences...)
}

// Categories returns the categories declared by sequence seq.
func (x *Index) Categories(seq string) []RawCategory {
	return x.categories[seq]
}

func (x *Index) addImage(img RawImage) {
	if _, ok := x.images[img.ID]; !ok {
		x.order = append(x.order, img.ID)
	}
	x.images[img.ID] = img
}

func (x *Index) addAnnotation(ann RawAnnotation) {
	x.annotations[ann.ImageID] = append(x.annotations[ann.ImageID], ann)
	x.rawCount++
}

// LoadAnnotations reads every *.json sequence file in dir, in file name
// order, and merges them into an Index. The sequence name is the file name
// without its extension.
func LoadAnnotations(dir string) (*Index, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("list annotations: %w", err)
	}

	index := newIndex()
	for _, entry := range entries {
		name := entry.Name()
		if entry.IsDir() || filepath.Ext(name) != ".json" {
			continue
		}
		seq := strings.TrimSuffix(name, filepath.Ext(name))
		file, err := readSequenceFile(filepath.Join(dir, name))
		if err != nil {
			return nil, err
		}

		for _, img := range *file.Images {
			img.SeqName = seq
			index.addImage(img)
		}
		for _, ann := range file.Annotations {
			index.addAnnotation(ann)
		}
		index.sequences = append(index.sequences, seq)
		index.categories[seq] = file.Categories
	}
	return index, nil
}

func readSequenceFile(path string) (*SequenceFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read sequence file: %w", err)
	}
	var file SequenceFile
	if err := json.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse sequence file %s: %w", path, err)
	}
	if file.Images == nil {
		return nil, fmt.Errorf("parse sequence file %s: %w", path, ErrMissingImages)
	}
	return &file, nil
}
