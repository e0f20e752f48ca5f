// Package tracking lists the frames of a tracking dataset as a COCO image
// index. Every image under <datadir>/frames gets a 1-based id and the frame
// size of the first image; the annotation list is always empty.
package tracking
