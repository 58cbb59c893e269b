// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"testing"

	"github.com/unixdj/hextile/seed"
)

var testSeeds = []uint32{0, 1, seed.Offset, 0x045d4bb3, 0xffffffff}

func TestModeNames(t *testing.T) {
	seen := make(map[string]bool)
	for _, m := range Modes() {
		s := m.String()
		if s == "" || seen[s] {
			t.Errorf("mode %d: bad or duplicate name %q", int(m), s)
		}
		seen[s] = true
		if mm, ok := ParseMode(s); !ok || mm != m {
			t.Errorf("ParseMode(%q) = %v, %v", s, mm, ok)
		}
	}
	if len(seen) != NumModes || NumModes != 32 {
		t.Errorf("%d modes, %d names", NumModes, len(seen))
	}
	if _, ok := ParseMode("plaid"); ok {
		t.Error("ParseMode accepted an unknown name")
	}
	if s := Mode(NumModes).String(); s != "mode(32)" {
		t.Errorf("Mode(NumModes).String() = %q", s)
	}
	if Mode(-1).Valid() || Mode(NumModes).Valid() {
		t.Error("out of range mode is valid")
	}
}

// TestRange checks every mode on a 128×128 canvas over
// [-256, 256)², negative coordinates included.
func TestRange(t *testing.T) {
	const w, h = 128, 128
	for _, blk := range []int{4, 8, 16} {
		r := Build(Params{Seed: 0x045d4bb3, Block: blk, Colors: 4,
			Width: w, Height: h})
		for _, m := range Modes() {
			for y := -2 * h; y < 2*h; y++ {
				for x := -2 * w; x < 2*w; x++ {
					if i := r.Index(m, x, y); i < 0 || i >= 4 {
						t.Fatalf("%v block %d (%d,%d): index %d",
							m, blk, x, y, i)
					}
				}
			}
		}
	}
}

func TestRangeColors(t *testing.T) {
	const w, h = 16, 12
	for _, s := range testSeeds {
		for _, c := range []int{1, 2, 3, 5, 256} {
			for _, blk := range []int{1, 2, 3, 7} {
				r := Build(Params{s, blk, c, w, h})
				for _, m := range Modes() {
					for y := -2 * h; y < 2*h; y++ {
						for x := -2 * w; x < 2*w; x++ {
							if i := r.Index(m, x, y); i < 0 || i >= c {
								t.Fatalf("%v seed %#x colours %d block %d (%d,%d): index %d",
									m, s, c, blk, x, y, i)
							}
						}
					}
				}
			}
		}
	}
}

func TestDegenerateParams(t *testing.T) {
	for _, p := range []Params{
		{},
		{Seed: 7, Block: -3, Colors: -1, Width: -5, Height: 0},
		{Seed: 7, Block: 0, Colors: 0, Width: 1, Height: 1},
	} {
		for _, m := range Modes() {
			if i := p.Index(m, -1, 3); i != 0 {
				t.Errorf("%v %+v: index %d, want 0", m, p, i)
			}
		}
	}
	r := Build(Params{Block: -1, Colors: 0})
	if q := r.Params(); q.Block != 1 || q.Colors != 1 {
		t.Errorf("Build did not clamp: %+v", q)
	}
}

func TestModeWrap(t *testing.T) {
	r := Build(Params{Seed: 99, Block: 4, Colors: 4, Width: 32, Height: 32})
	for y := 0; y < 32; y++ {
		for x := 0; x < 32; x++ {
			if r.Index(Mode(NumModes+3), x, y) != r.Index(Diagonal, x, y) ||
				r.Index(-1, x, y) != r.Index(GridRings, x, y) {
				t.Fatalf("(%d,%d): out of range mode does not wrap", x, y)
			}
		}
	}
}

func TestDeterminism(t *testing.T) {
	p := Params{Seed: 0xdeadbeef, Block: 8, Colors: 4, Width: 128, Height: 128}
	a, b := Build(p), Build(p)
	for _, m := range Modes() {
		f := a.Indexer(m)
		for y := 0; y < 128; y += 3 {
			for x := 0; x < 128; x += 3 {
				i := f(x, y)
				if j := b.Index(m, x, y); i != j {
					t.Fatalf("%v (%d,%d): %d != %d", m, x, y, i, j)
				}
				if j := p.Index(m, x, y); i != j {
					t.Fatalf("%v (%d,%d): Params.Index %d != %d",
						m, x, y, j, i)
				}
			}
		}
	}
}

// symmetric checks that f(x, y) == f(g(x, y)) on the canvas.
func symmetric(t *testing.T, r Registry, m Mode, name string,
	g func(x, y int) (int, int)) {
	t.Helper()
	p := r.Params()
	for y := 0; y < p.Height; y++ {
		for x := 0; x < p.Width; x++ {
			gx, gy := g(x, y)
			if i, j := r.Index(m, x, y), r.Index(m, gx, gy); i != j {
				t.Fatalf("%v seed %#x %s: (%d,%d)=%d, (%d,%d)=%d",
					m, p.Seed, name, x, y, i, gx, gy, j)
			}
		}
	}
}

func TestSymmetry(t *testing.T) {
	for _, s := range testSeeds {
		for _, sz := range []int{128, 37} {
			n := sz - 1
			r := Build(Params{Seed: s, Block: 8, Colors: 4,
				Width: sz, Height: sz})
			vflip := func(x, y int) (int, int) { return n - x, y }
			hflip := func(x, y int) (int, int) { return x, n - y }
			rot := func(x, y int) (int, int) { return n - y, x }
			diag := func(x, y int) (int, int) { return y, x }
			anti := func(x, y int) (int, int) { return n - y, n - x }

			symmetric(t, r, MirrorV, "vertical mirror", vflip)
			symmetric(t, r, MirrorH, "horizontal mirror", hflip)
			symmetric(t, r, QuadMirror, "vertical mirror", vflip)
			symmetric(t, r, QuadMirror, "horizontal mirror", hflip)
			symmetric(t, r, Diagonal, "diagonal", diag)
			symmetric(t, r, AntiDiagonal, "anti-diagonal", anti)
			symmetric(t, r, Rotational, "quarter turn", rot)
			symmetric(t, r, Kaleidoscope, "vertical mirror", vflip)
			symmetric(t, r, Kaleidoscope, "diagonal", diag)
			symmetric(t, r, Kaleidoscope, "quarter turn", rot)
			symmetric(t, r, Rings, "quarter turn", rot)
			symmetric(t, r, Squares, "diagonal", diag)
			symmetric(t, r, Diamonds, "quarter turn", rot)
		}
	}
}

func TestRotationalOrbit(t *testing.T) {
	const n = 127
	r := Build(Params{Seed: 12345, Block: 4, Colors: 4, Width: n + 1, Height: n + 1})
	for y := 0; y <= n; y++ {
		for x := 0; x <= n; x++ {
			i := r.Index(Rotational, x, y)
			if r.Index(Rotational, n-x, n-y) != i ||
				r.Index(Rotational, y, n-x) != i {
				t.Fatalf("(%d,%d): rotated images differ", x, y)
			}
		}
	}
}

func TestChecker(t *testing.T) {
	for _, s := range testSeeds {
		r := Build(Params{Seed: s, Block: 8, Colors: 4, Width: 64, Height: 64})
		for y := 0; y < 64; y += 8 {
			for x := 0; x < 64; x += 8 {
				i := r.Index(Checker, x, y)
				if j := r.Index(Checker, x+8, y); i == j {
					t.Errorf("seed %#x: blocks at (%d,%d) and (%d,%d) both %d",
						s, x, y, x+8, y, i)
				}
				if j := r.Index(Checker, x+7, y+7); i != j {
					t.Errorf("seed %#x: block at (%d,%d) not uniform", s, x, y)
				}
			}
		}
	}
}

func TestHexTiles(t *testing.T) {
	r := Build(Params{Seed: 5, Block: 10, Colors: 256, Width: 128, Height: 128})
	// Pixels near a hexagon's centre share its tile.
	if a, b := r.Index(HexTiles, 0, 0), r.Index(HexTiles, 1, 1); a != b {
		t.Errorf("(0,0) and (1,1) in different tiles: %d, %d", a, b)
	}
	// The centre of axial hex (1, 0) is at (√3·10, 0).
	c := r.Index(HexTiles, 17, 0)
	if want := int(seed.Hash2D(5, 1, 0) % 256); c != want {
		t.Errorf("(17,0): %d, want %d", c, want)
	}
	if a := r.Index(HexTiles, 0, 0); a != int(seed.Hash2D(5, 0, 0)%256) {
		t.Errorf("(0,0): %d", a)
	}
}

func TestValueNoiseCorners(t *testing.T) {
	// At lattice points value noise equals the quantized corner hash.
	p := Params{Seed: 77, Block: 4, Colors: 8, Width: 64, Height: 64}
	r := Build(p)
	for gy := -2; gy < 8; gy++ {
		for gx := -2; gx < 8; gx++ {
			want := int(unit(seed.Hash2D(77, int32(gx), int32(gy))) * 8)
			if i := r.Index(ValueNoise, gx*8, gy*8); i != want {
				t.Errorf("lattice (%d,%d): %d, want %d", gx, gy, i, want)
			}
		}
	}
}

func TestVoronoiSites(t *testing.T) {
	// A pixel on a site takes that site's colour.
	p := Params{Seed: 3, Block: 8, Colors: 4, Width: 128, Height: 128}
	r := Build(p)
	for cy := 0; cy < 8; cy++ {
		for cx := 0; cx < 8; cx++ {
			sx, sy, h := p.site(cx, cy, 16)
			if i, want := r.Index(Voronoi, sx, sy), int(h>>16&0xff)%4; i != want {
				t.Errorf("site (%d,%d): %d, want %d", sx, sy, i, want)
			}
		}
	}
}

func TestHelpers(t *testing.T) {
	for _, v := range []struct{ a, b, div, mod int }{
		{7, 2, 3, 1},
		{-7, 2, -4, 1},
		{-8, 2, -4, 0},
		{0, 5, 0, 0},
		{-1, 16, -1, 15},
	} {
		if d := fdiv(v.a, v.b); d != v.div {
			t.Errorf("fdiv(%d, %d) = %d, want %d", v.a, v.b, d, v.div)
		}
		if m := mod(v.a, v.b); m != v.mod {
			t.Errorf("mod(%d, %d) = %d, want %d", v.a, v.b, m, v.mod)
		}
	}
	for n := 0; n < 5000; n++ {
		r := isqrt(n)
		if r*r > n || (r+1)*(r+1) <= n {
			t.Fatalf("isqrt(%d) = %d", n, r)
		}
	}
}
