// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"io"
	"strings"

	"github.com/unixdj/hextile"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"golang.org/x/text/encoding/unicode"
	"golang.org/x/text/transform"
	"golang.org/x/text/width"
)

var errInput = errors.New("cannot decode input")

// decodeInput converts s from UTF-16 if utf16 is set, and folds
// full-width characters to their ASCII forms if fold is set.
func decodeInput(s string, utf16, fold bool) (string, error) {
	var t []transform.Transformer
	if utf16 {
		t = append(t, unicode.UTF16(unicode.BigEndian,
			unicode.UseBOM).NewDecoder())
	}
	if fold {
		t = append(t, width.Fold)
	}
	if len(t) == 0 {
		return s, nil
	}
	r, _, err := transform.String(transform.Chain(t...), s)
	if err != nil {
		return "", errors.Join(errInput, err)
	}
	if utf16 {
		r, _ = strings.CutSuffix(strings.ReplaceAll(r, "\r\n", "\n"), "\n")
	}
	return r, nil
}

// ansi writes the texture to w as 24-bit colour terminal output, two
// pixels per character cell using the upper half block.
func ansi(t *hextile.Texture, w io.Writer) error {
	if t == nil || len(t.Palette) == 0 || w == nil {
		return hextile.ErrArgs
	}
	r := lipgloss.NewRenderer(w)
	r.SetColorProfile(termenv.TrueColor)
	col := make([]lipgloss.Color, len(t.Palette))
	for i, c := range t.Palette {
		col[i] = lipgloss.Color("#" + hextile.FormatColor(c)[:6])
	}
	// cell caches rendered cells by upper and lower index; lower
	// index -1 is the terminal background.
	cell := map[[2]int]string{}
	var b strings.Builder
	bord := t.Border
	for y := -bord; y < t.Height+bord; y += 2 {
		for x := -bord; x < t.Width+bord; x++ {
			k := [2]int{max(t.At(x, y), 0), -1}
			if y+1 < t.Height+bord {
				k[1] = max(t.At(x, y+1), 0)
			}
			s, ok := cell[k]
			if !ok {
				st := r.NewStyle().Foreground(col[k[0]])
				if k[1] >= 0 {
					st = st.Background(col[k[1]])
				}
				s = st.Render("▀")
				cell[k] = s
			}
			b.WriteString(s)
		}
		b.WriteByte('\n')
	}
	_, err := io.WriteString(w, b.String())
	return err
}
