// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package hextile generates pixel art textures from hex strings.

Identical input always produces an identical texture, and small changes
to the input produce unrelated textures.  The input is normalized to
canonical hex (see package seed), hashed to a 32 bit seed, and the seed
selects a pattern mode, a block size and a palette rotation.  Each pixel
is then coloured by the pattern (see package pattern).

	t, err := hextile.Generate("0xdeadbeef", nil)
	if err != nil {
		log.Fatalln(err)
	}
	err = t.EncodePNG(w)

The canonical hex in Texture.Hex identifies the texture: generating
from it again gives the same result.
*/
package hextile // import "github.com/unixdj/hextile"

import (
	"errors"
	"image"
	"image/color"
	"sync"

	"github.com/unixdj/hextile/pattern"
	"github.com/unixdj/hextile/seed"
)

// Defaults.
const (
	DefaultSize  = 128 // canvas width and height
	DefaultScale = 4   // image pixels per texture pixel
	MaxColors    = 256 // longest usable palette
)

// DefaultBlockSizes are the block sizes the seed chooses from.
var DefaultBlockSizes = []int{4, 8, 16}

var (
	ErrArgs       = errors.New("hextile: invalid arguments")
	ErrLargeImage = errors.New("hextile: image too large")
	ErrMode       = errors.New("hextile: unknown pattern mode")
)

// Options control texture generation.  The zero value and nil
// Options use the defaults.
type Options struct {
	Width, Height int           // canvas size; 0 means DefaultSize
	Palette       color.Palette // nil means DefaultPalette
	BlockSizes    []int         // nil means DefaultBlockSizes
	Mode          string        // pattern mode name; "" means seed-derived
	Block         int           // block size; 0 means seed-derived
	Workers       int           // goroutines evaluating rows
}

// A Texture is a grid of palette indices.
// It implements image.Image and PNG, PPM and text encoding.
type Texture struct {
	Hex      string        // canonical hex of the input
	Seed     uint32        // seed derived from Hex
	Mode     pattern.Mode  // pattern mode
	Block    int           // block size in pixels
	Rotation int           // palette rotation
	Width    int           // grid width
	Height   int           // grid height
	Pix      []byte        // palette indices, row by row
	Palette  color.Palette // colours
	Scale    int           // image pixels per grid pixel
	Border   int           // border width in grid pixels, in Palette[0]
}

// params returns the pattern parameters for canonical hex and o,
// and the palette rotation.
func (o *Options) params(hex string) (pattern.Params, pattern.Mode, int, error) {
	if o == nil {
		o = &Options{}
	}
	w, h := o.Width, o.Height
	if w == 0 {
		w = DefaultSize
	}
	if h == 0 {
		h = DefaultSize
	}
	pal := o.palette()
	sizes := o.BlockSizes
	if len(sizes) == 0 {
		sizes = DefaultBlockSizes
	}
	if w < 0 || h < 0 || o.Block < 0 {
		return pattern.Params{}, 0, 0, ErrArgs
	}
	for _, v := range sizes {
		if v < 1 {
			return pattern.Params{}, 0, 0, ErrArgs
		}
	}
	s := seed.Sum(hex)
	p := pattern.Params{
		Seed:   s,
		Block:  o.Block,
		Colors: len(pal),
		Width:  w,
		Height: h,
	}
	if p.Block == 0 {
		p.Block = sizes[seed.Pick(s, seed.BlockOffset, len(sizes))]
	}
	m := pattern.Mode(seed.Pick(s, seed.ModeOffset, pattern.NumModes))
	if o.Mode != "" {
		var ok bool
		if m, ok = pattern.ParseMode(o.Mode); !ok {
			return pattern.Params{}, 0, 0, ErrMode
		}
	}
	return p, m, seed.Pick(s, seed.RotationOffset, len(pal)), nil
}

func (o *Options) palette() color.Palette {
	pal := DefaultPalette
	if o != nil && len(o.Palette) != 0 {
		pal = o.Palette
	}
	return pal[:min(len(pal), MaxColors)]
}

// Generate returns the texture for raw, which is normalized with
// seed.Normalize.
func Generate(raw string, o *Options) (*Texture, error) {
	hex := seed.Normalize(raw)
	p, m, rot, err := o.params(hex)
	if err != nil {
		return nil, err
	}
	t := &Texture{
		Hex:      hex,
		Seed:     p.Seed,
		Mode:     m,
		Block:    p.Block,
		Rotation: rot,
		Width:    p.Width,
		Height:   p.Height,
		Pix:      make([]byte, p.Width*p.Height),
		Palette:  o.palette(),
		Scale:    DefaultScale,
	}
	workers := 1
	if o != nil {
		workers = min(max(o.Workers, 1), p.Height)
	}
	r := pattern.Build(p)
	if workers <= 1 {
		t.fill(r, 0, p.Height)
		return t, nil
	}
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(y0, y1 int) {
			defer wg.Done()
			t.fill(r, y0, y1)
		}(p.Height*i/workers, p.Height*(i+1)/workers)
	}
	wg.Wait()
	return t, nil
}

// fill evaluates rows [y0, y1).
func (t *Texture) fill(r pattern.Registry, y0, y1 int) {
	n := len(t.Palette)
	for y := y0; y < y1; y++ {
		row := t.Pix[y*t.Width : (y+1)*t.Width]
		for x := range row {
			row[x] = byte((r.Index(t.Mode, x, y) + t.Rotation) % n)
		}
	}
}

// At returns the palette index of the grid pixel at (x, y), or -1 if
// (x, y) is outside the grid.
func (t *Texture) At(x, y int) int {
	if x < 0 || x >= t.Width || y < 0 || y >= t.Height {
		return -1
	}
	return int(t.Pix[y*t.Width+x])
}

// isValid reports whether the Texture's fields are consistent.
func (t *Texture) isValid() bool {
	return t != nil && t.Width > 0 && t.Height > 0 &&
		len(t.Pix) == t.Width*t.Height &&
		len(t.Palette) > 0 && len(t.Palette) <= MaxColors &&
		t.Scale > 0 && t.Border >= 0
}

// size returns the dimensions of the encoded image.
func (t *Texture) size() (w, h int) {
	return t.Scale * (t.Width + 2*t.Border),
		t.Scale * (t.Height + 2*t.Border)
}

// pixel returns the palette index at image coordinates (x, y).
// The border is index 0.
func (t *Texture) pixel(x, y int) byte {
	x = x/t.Scale - t.Border
	y = y/t.Scale - t.Border
	if i := t.At(x, y); i > 0 {
		return byte(i)
	}
	return 0
}

// Image returns an Image displaying the texture at t.Scale, with the
// border.  Image returns nil if the Texture is not valid.
func (t *Texture) Image() image.Image {
	if !t.isValid() {
		return nil
	}
	return &textureImage{t}
}

// textureImage implements image.Image
type textureImage struct {
	*Texture
}

func (t *textureImage) Bounds() image.Rectangle {
	w, h := t.size()
	return image.Rect(0, 0, w, h)
}

func (t *textureImage) At(x, y int) color.Color {
	if w, h := t.size(); x < 0 || x >= w || y < 0 || y >= h {
		return color.Transparent
	}
	return t.Palette[t.pixel(x, y)]
}

func (t *textureImage) ColorModel() color.Model {
	return t.Palette
}

// Paletted returns the texture as an image.Paletted at t.Scale, with
// the border, or nil if the Texture is not valid.
func (t *Texture) Paletted() *image.Paletted {
	if !t.isValid() {
		return nil
	}
	w, h := t.size()
	img := image.NewPaletted(image.Rect(0, 0, w, h), t.Palette)
	for y := 0; y < h; y++ {
		row := img.Pix[y*img.Stride : y*img.Stride+w]
		for x := range row {
			row[x] = t.pixel(x, y)
		}
	}
	return img
}
