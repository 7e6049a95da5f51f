// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import "image"

// ImageStore resolves the Ref of placed image/symbol/stamp markups to
// decoded images. Hosts fill it from their resource loading; a missing
// ref paints a labeled placeholder box instead of failing the page.
type ImageStore struct {
	images map[string]image.Image
}

// NewImageStore returns an empty store.
func NewImageStore() *ImageStore {
	return &ImageStore{images: map[string]image.Image{}}
}

// Add registers an image under the given ref, replacing any previous
// entry.
func (s *ImageStore) Add(ref string, img image.Image) {
	s.images[ref] = img
}

// Remove drops the ref.
func (s *ImageStore) Remove(ref string) {
	delete(s.images, ref)
}

// Get returns the image for the ref.
func (s *ImageStore) Get(ref string) (image.Image, bool) {
	img, ok := s.images[ref]
	return img, ok
}
