// Copyright 2026 The redline Authors
// SPDX-License-Identifier: BSD-3-Clause

package render

import (
	"fmt"

	"github.com/golang/freetype/truetype"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

// FontBank parses TTF data once and caches faces by family and pixel
// size. The embedded Go fonts (goregular, gomono) are always available;
// hosts can register additional families.
type FontBank struct {
	fonts map[string]*truetype.Font
	faces map[faceKey]font.Face
}

type faceKey struct {
	family string
	sizePx int
}

// Font family names resolved by the bank. An empty or unknown family
// falls back to FamilyRegular.
const (
	FamilyRegular = "go-regular"
	FamilyMono    = "go-mono"
)

// NewFontBank returns a bank preloaded with the embedded Go fonts.
func NewFontBank() (*FontBank, error) {
	b := &FontBank{
		fonts: map[string]*truetype.Font{},
		faces: map[faceKey]font.Face{},
	}
	if err := b.Register(FamilyRegular, goregular.TTF); err != nil {
		return nil, err
	}
	if err := b.Register(FamilyMono, gomono.TTF); err != nil {
		return nil, err
	}
	return b, nil
}

// Register parses TTF data and makes the family available.
func (b *FontBank) Register(family string, ttf []byte) error {
	f, err := truetype.Parse(ttf)
	if err != nil {
		return fmt.Errorf("render: parse font %q: %w", family, err)
	}
	b.fonts[family] = f
	return nil
}

// Face returns a cached face for the family at the given pixel size.
// Unknown families fall back to the regular face.
func (b *FontBank) Face(family string, sizePx float64) font.Face {
	if sizePx < 1 {
		sizePx = 1
	}
	key := faceKey{family: family, sizePx: int(sizePx + 0.5)}
	if f, ok := b.faces[key]; ok {
		return f
	}
	ttf, ok := b.fonts[family]
	if !ok {
		ttf = b.fonts[FamilyRegular]
		key.family = FamilyRegular
		if f, ok := b.faces[key]; ok {
			return f
		}
	}
	f := truetype.NewFace(ttf, &truetype.Options{
		Size:    float64(key.sizePx),
		DPI:     72,
		Hinting: font.HintingFull,
	})
	b.faces[key] = f
	return f
}
