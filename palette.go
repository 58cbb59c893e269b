// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hextile

import (
	"errors"
	"fmt"
	"image/color"
	"sort"
	"strconv"
	"strings"
)

// DefaultPalette is the palette used when Options.Palette is nil.
var DefaultPalette = color.Palette{
	color.RGBA{0x1a, 0x1c, 0x2c, 0xff},
	color.RGBA{0x5d, 0x27, 0x5d, 0xff},
	color.RGBA{0xb1, 0x3e, 0x53, 0xff},
	color.RGBA{0xef, 0x7d, 0x57, 0xff},
}

// Palettes are the named palettes accepted by ParsePalette.
var Palettes = map[string]color.Palette{
	"default": DefaultPalette,
	"gameboy": {
		color.RGBA{0x0f, 0x38, 0x0f, 0xff},
		color.RGBA{0x30, 0x62, 0x30, 0xff},
		color.RGBA{0x8b, 0xac, 0x0f, 0xff},
		color.RGBA{0x9b, 0xbc, 0x0f, 0xff},
	},
	"pico": {
		color.RGBA{0x1d, 0x2b, 0x53, 0xff},
		color.RGBA{0x7e, 0x25, 0x53, 0xff},
		color.RGBA{0x00, 0x87, 0x51, 0xff},
		color.RGBA{0xab, 0x52, 0x36, 0xff},
		color.RGBA{0xff, 0x00, 0x4d, 0xff},
		color.RGBA{0xff, 0xa3, 0x00, 0xff},
		color.RGBA{0xff, 0xec, 0x27, 0xff},
		color.RGBA{0x29, 0xad, 0xff, 0xff},
	},
	"mono": {
		color.RGBA{0x00, 0x00, 0x00, 0xff},
		color.RGBA{0xff, 0xff, 0xff, 0xff},
	},
}

var ErrColor = errors.New("hextile: bad colour spec")

// PaletteNames returns the names of Palettes, sorted.
func PaletteNames() []string {
	n := make([]string, 0, len(Palettes))
	for k := range Palettes {
		n = append(n, k)
	}
	sort.Strings(n)
	return n
}

// ParseColor parses a colour given as 3, 4, 6 or 8 hex digits (RGB,
// RGBA, RRGGBB or RRGGBBAA), optionally preceded by '#'.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimPrefix(s, "#")
	n, err := strconv.ParseUint(s, 16, 32)
	if err != nil {
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrColor)
	}
	switch len(s) {
	case 3:
		n = n<<4 | 0xf
		fallthrough
	case 4:
		var nn uint64
		for i := 0; i < 4; i++ {
			nn <<= 8
			nn |= n >> 12 & 0xf * 0x11
			n <<= 4
		}
		n = nn
	case 6:
		n = n<<8 | 0xff
	case 8:
	default:
		return color.RGBA{}, fmt.Errorf("%q: %w", s, ErrColor)
	}
	return color.RGBA{uint8(n >> 24), uint8(n >> 16), uint8(n >> 8), uint8(n)}, nil
}

// ParsePalette returns the named palette s, or parses s as a comma
// separated list of colours.
func ParsePalette(s string) (color.Palette, error) {
	if p, ok := Palettes[strings.ToLower(s)]; ok {
		return p, nil
	}
	f := strings.Split(s, ",")
	if len(f) > MaxColors {
		return nil, fmt.Errorf("%d colours: %w", len(f), ErrArgs)
	}
	p := make(color.Palette, len(f))
	for i, v := range f {
		c, err := ParseColor(strings.TrimSpace(v))
		if err != nil {
			return nil, err
		}
		p[i] = c
	}
	return p, nil
}

// FormatColor returns c as 6 hex digits, or 8 if it is not opaque.
func FormatColor(c color.Color) string {
	r, g, b, a := c.RGBA()
	if a == 0xffff {
		return fmt.Sprintf("%02x%02x%02x", r>>8, g>>8, b>>8)
	}
	return fmt.Sprintf("%02x%02x%02x%02x", r>>8, g>>8, b>>8, a>>8)
}
