package coco

// PersonCategoryID is the only category id emitted by the converters.
const PersonCategoryID = 1

// PersonCategory is the static category every dataset carries.
var PersonCategory = Category{ID: PersonCategoryID, Name: "person"}

// Category is a COCO category record.
type Category struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// Image is a COCO image record.
type Image struct {
	ID       int64  `json:"id"`
	FileName string `json:"file_name"`
	Width    int    `json:"width"`
	Height   int    `json:"height"`
}

// Annotation is a COCO object annotation. Segmentation holds one polygon per
// region as flat [x1, y1, x2, y2, ...] coordinate lists.
type Annotation struct {
	ID           int64       `json:"id"`
	ImageID      int64       `json:"image_id"`
	CategoryID   int         `json:"category_id"`
	IsCrowd      int         `json:"iscrowd"`
	Area         float64     `json:"area"`
	BBox         BBox        `json:"bbox"`
	Segmentation [][]float64 `json:"segmentation"`
}

// Dataset is the root object written per output file.
type Dataset struct {
	Categories  []Category   `json:"categories"`
	Images      []Image      `json:"images"`
	Annotations []Annotation `json:"annotations"`
}

// Categories returns a fresh category list holding only the person category.
func Categories() []Category {
	return []Category{PersonCategory}
}

// NewDataset returns an empty bundle seeded with the person category. Slices
// are non-nil so empty collections encode as [] rather than null.
func NewDataset() *Dataset {
	return &Dataset{
		Categories:  Categories(),
		Images:      []Image{},
		Annotations: []Annotation{},
	}
}

// AddImage appends an image record.
func (d *Dataset) AddImage(img Image) {
	d.Images = append(d.Images, img)
}

// AddAnnotation appends an annotation record.
func (d *Dataset) AddAnnotation(ann Annotation) {
	d.Annotations = append(d.Annotations, ann)
}

// NewPersonAnnotation builds a non-crowd person annotation whose area and
// segmentation are derived from bbox.
func NewPersonAnnotation(id, imageID int64, bbox BBox) Annotation {
	return Annotation{
		ID:           id,
		ImageID:      imageID,
		CategoryID:   PersonCategoryID,
		IsCrowd:      0,
		Area:         bbox.Area(),
		BBox:         bbox,
		Segmentation: [][]float64{bbox.Polygon()},
	}
}
