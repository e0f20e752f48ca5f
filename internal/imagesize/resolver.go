package imagesize

import "fmt"

// defaultDecoder is replaced by OpenCVDecoder in opencv builds.
var defaultDecoder Decoder = ConfigDecoder{}

// DefaultDecoder returns the decoder compiled into this build.
func DefaultDecoder() Decoder {
	return defaultDecoder
}

// Resolver caches one Size per group.
type Resolver struct {
	decoder Decoder
	cache   map[string]Size
	decoded int
}

// NewResolver returns a Resolver backed by decoder, or by DefaultDecoder when
// decoder is nil.
func NewResolver(decoder Decoder) *Resolver {
	if decoder == nil {
		decoder = DefaultDecoder()
	}
	return &Resolver{decoder: decoder, cache: make(map[string]Size)}
}

// Resolve returns the cached size for group, decoding path on the first call
// for that group.
func (r *Resolver) Resolve(group, path string) (Size, error) {
	if size, ok := r.cache[group]; ok {
		return size, nil
	}
	size, err := r.decoder.Decode(path)
	if err != nil {
		return Size{}, fmt.Errorf("resolve dimensions for %q: %w", group, err)
	}
	r.decoded++
	r.cache[group] = size
	return size, nil
}

// Cached reports the size stored for group, if any.
func (r *Resolver) Cached(group string) (Size, bool) {
	size, ok := r.cache[group]
	return size, ok
}

// Decoded returns the number of images actually decoded.
func (r *Resolver) Decoded() int {
	return r.decoded
}
