// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hextile

import (
	"io"
	"strings"
)

// Shade ramps for text output, from palette index 0 to the last.
const (
	UTF8Ramp  = " ░▒▓█"
	ASCIIRamp = " .:+#"
)

// String returns the texture drawn with UTF8Ramp, two characters per
// pixel, with the border.
func (t *Texture) String() string {
	var b strings.Builder
	t.EncodeText(&b, UTF8Ramp)
	return b.String()
}

// EncodeText writes the texture drawn with characters from ramp, two
// per pixel, with the border.  Palette indices are spread evenly over
// the ramp.  Scale is ignored.
func (t *Texture) EncodeText(w io.Writer, ramp string) error {
	if !t.isValid() || w == nil || ramp == "" {
		return ErrArgs
	}
	r := []rune(ramp)
	n := len(t.Palette)
	shade := make([]string, n)
	for i := range shade {
		j := 0
		if n > 1 {
			j = i * (len(r) - 1) / (n - 1)
		}
		shade[i] = strings.Repeat(string(r[j]), 2)
	}
	var b strings.Builder
	bord := t.Border
	for y := -bord; y < t.Height+bord; y++ {
		for x := -bord; x < t.Width+bord; x++ {
			i := max(t.At(x, y), 0)
			b.WriteString(shade[min(i, n-1)])
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
