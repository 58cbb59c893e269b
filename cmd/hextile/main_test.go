// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/unixdj/hextile"
)

func writeConfig(t *testing.T, s string) string {
	t.Helper()
	fn := filepath.Join(t.TempDir(), "hextile.yaml")
	if err := os.WriteFile(fn, []byte(s), 0666); err != nil {
		t.Fatal(err)
	}
	return fn
}

func TestConfig(t *testing.T) {
	fn := writeConfig(t, `width: 64
height: 32
scale: 2
block_sizes: [2, 3]
mode: checker
palette: ink
palettes:
  ink: ["#000", "fff", "808080"]
format: ppm
`)
	c, err := loadConfig(fn)
	if err != nil {
		t.Fatal(err)
	}
	saved := g
	defer func() {
		g = saved
		delete(hextile.Palettes, "ink")
	}()
	if err := c.apply(); err != nil {
		t.Fatal(err)
	}
	if g.opt.Width != 64 || g.opt.Height != 32 || g.scale != 2 ||
		g.opt.Mode != "checker" || g.palette != "ink" ||
		g.format != "ppm" || len(g.opt.BlockSizes) != 2 {
		t.Errorf("config not applied: %+v", g)
	}
	p, err := hextile.ParsePalette("ink")
	if err != nil || len(p) != 3 {
		t.Errorf("palette ink: %v, %v", p, err)
	}
}

func TestConfigErrors(t *testing.T) {
	for _, v := range []struct {
		in  string
		err error
	}{
		{"width: -1\n", errConfig},
		{"block_sizes: [4, 0]\n", errConfig},
		{"format: gif\n", errConfig},
		{"palettes:\n  'a,b': [fff]\n", errConfig},
		{"palettes:\n  bad: [ffff0]\n", hextile.ErrColor},
	} {
		_, err := loadConfig(writeConfig(t, v.in))
		if !errors.Is(err, v.err) {
			t.Errorf("%q: got %v, want %v", v.in, err, v.err)
		}
	}
	for _, in := range []string{"colour: red\n", "width: wide\n"} {
		if _, err := loadConfig(writeConfig(t, in)); err == nil {
			t.Errorf("%q: no error", in)
		}
	}
	if _, err := loadConfig(filepath.Join(t.TempDir(), "none")); err == nil {
		t.Error("missing file: no error")
	}
}

func TestDecodeInput(t *testing.T) {
	for _, v := range []struct {
		in          string
		utf16, fold bool
		out         string
	}{
		{"dead beef\n", false, false, "dead beef\n"},
		{"ｄｅａｄ０ｘ", false, true, "dead0x"},
		{"\xfe\xff\x00d\x00e\x00a\x00d\x00\n", true, false, "dead"},
		{"\xff\xfed\x00e\x00a\x00d\x00\r\x00\n\x00", true, false, "dead"},
		{"\xfe\xff\xff\x41\x00b", true, true, "ab"},
	} {
		out, err := decodeInput(v.in, v.utf16, v.fold)
		if err != nil || out != v.out {
			t.Errorf("decodeInput(%q, %v, %v) = %q, %v; want %q",
				v.in, v.utf16, v.fold, out, err, v.out)
		}
	}
}

func TestANSI(t *testing.T) {
	tx, err := hextile.Generate("deadbeef", &hextile.Options{
		Width:   4,
		Height:  3,
		Palette: hextile.Palettes["mono"],
	})
	if err != nil {
		t.Fatal(err)
	}
	tx.Border = 1
	var b bytes.Buffer
	if err := ansi(tx, &b); err != nil {
		t.Fatal(err)
	}
	out := b.String()
	lines := strings.Split(strings.TrimSuffix(out, "\n"), "\n")
	if len(lines) != 3 {
		t.Errorf("%d lines, want 3", len(lines))
	}
	if n := strings.Count(out, "▀"); n != 6*3 {
		t.Errorf("%d cells, want 18", n)
	}
	// The top border row is black.
	if !strings.HasPrefix(out, "\x1b[") || !strings.Contains(out, "38;2;0;0;0") {
		t.Errorf("no true colour sequences in %q", out)
	}
	if err := ansi(&hextile.Texture{}, &b); err == nil {
		t.Error("invalid texture: no error")
	}
}

func TestEncoders(t *testing.T) {
	tx, err := hextile.Generate("c0ffee", &hextile.Options{Width: 8, Height: 8})
	if err != nil {
		t.Fatal(err)
	}
	tx.Scale = 1
	for _, f := range formats {
		var b bytes.Buffer
		if err := encoders[f](tx, &b); err != nil || b.Len() == 0 {
			t.Errorf("%s: %d bytes, %v", f, b.Len(), err)
		}
	}
}
