// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hextile

import (
	"bufio"
	"io"
	"strconv"
)

// EncodePPM writes a binary Portable Pixmap image displaying the
// texture to w, for use with netpbm.  PPM has no alpha channel, so
// EncodePPM disregards the palette's transparency.
func (t *Texture) EncodePPM(w io.Writer) error {
	if !t.isValid() || w == nil {
		return ErrArgs
	}
	width, height := t.size()
	if width > maxSide || height > maxSide {
		return ErrLargeImage
	}
	b := bufio.NewWriter(w)
	if _, err := b.WriteString("P6\n" + strconv.Itoa(width) + " " +
		strconv.Itoa(height) + "\n255\n"); err != nil {
		return err
	}
	var rgb [MaxColors][3]byte
	for i, c := range t.Palette {
		r, g, bl, _ := c.RGBA()
		rgb[i] = [3]byte{byte(r >> 8), byte(g >> 8), byte(bl >> 8)}
	}
	scale := t.Scale
	row := make([]byte, width*3)
	// Border rows are all index 0.
	for i := 0; i < len(row); i += 3 {
		copy(row[i:], rgb[0][:])
	}
	for i := 0; i < scale*t.Border; i++ {
		if _, err := b.Write(row); err != nil {
			return err
		}
	}
	data := row[scale*t.Border*3 : scale*(t.Border+t.Width)*3]
	for y := 0; y < t.Height; y++ {
		src := t.Pix[y*t.Width : (y+1)*t.Width]
		j := 0
		for _, v := range src {
			for k := 0; k < scale; k++ {
				copy(data[j:], rgb[v][:])
				j += 3
			}
		}
		for i := 0; i < scale; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	if t.Border != 0 {
		for i := 0; i < len(data); i += 3 {
			copy(data[i:], rgb[0][:])
		}
		for i := 0; i < scale*t.Border; i++ {
			if _, err := b.Write(row); err != nil {
				return err
			}
		}
	}
	return b.Flush()
}
