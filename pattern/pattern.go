// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package pattern maps pixel coordinates to palette indices.

Each Mode is a procedural construction driven by a 32 bit seed:
symmetry folds, radial and polar bands, lattices and tilings, and
stochastic fields built from jittered per-cell sites.  Evaluation is
pure: the index of a pixel depends only on the Params, the Mode and the
coordinates, never on evaluation order, so a grid may be evaluated by
any number of goroutines with identical results.

Any coordinates are accepted, including negative ones and ones outside
the canvas.  The returned index is always in [0, Params.Colors).
*/
package pattern // import "github.com/unixdj/hextile/pattern"

import (
	"fmt"

	"github.com/unixdj/hextile/seed"
)

// A Mode selects a pattern.
type Mode int

// Symmetry folds.
const (
	MirrorV      Mode = iota // left-right mirror
	MirrorH                  // top-bottom mirror
	QuadMirror               // both mirrors
	Diagonal                 // mirror across the main diagonal
	AntiDiagonal             // mirror across the anti-diagonal
	Rotational               // 4-fold rotation about the centre
	Kaleidoscope             // 8-fold: both mirrors and the diagonal
)

// Radial and polar bands.
const (
	Rings    Mode = iota + Kaleidoscope + 1 // Euclidean distance bands
	Sectors                                 // angular wedges
	Diamonds                                // Manhattan distance bands
	Squares                                 // Chebyshev distance bands
	Spiral                                  // Archimedean spiral arms
	Spokes                                  // alternating wedges with a hub
	Bullseye                                // alternating Euclidean bands
	Chevron                                 // nested V shapes
)

// Grids, lattices and tilings.
const (
	Blocks      Mode = iota + Chevron + 1 // hashed square blocks
	Stripes                               // horizontal or vertical stripes
	DiagStripes                           // diagonal stripes
	Zigzag                                // stripes displaced by a triangle wave
	Checker                               // two-colour checkerboard
	Bricks                                // running bond with mortar
	Weave                                 // over-under threads
	Crosshatch                            // diagonal lines over blocks
	RotChecker                            // checkerboard rotated 45°
	Maze                                  // binary tree maze walls
	Triangles                             // blocks split on the diagonal
	IsoCubes                              // shaded isometric cubes
	HexTiles                              // pointy-top hexagons
)

// Stochastic fields.
const (
	Voronoi    Mode = iota + HexTiles + 1 // nearest jittered site
	ValueNoise                            // smoothed lattice noise
	DotsGrid                              // jittered dots on a background
	GridRings                             // rings around jittered centres

	NumModes = int(iota + HexTiles + 1) // number of modes
)

var modeNames = [NumModes]string{
	MirrorV:      "mirror",
	MirrorH:      "mirror-h",
	QuadMirror:   "quad-mirror",
	Diagonal:     "diag",
	AntiDiagonal: "anti-diag",
	Rotational:   "rot4",
	Kaleidoscope: "kaleidoscope",
	Rings:        "rings",
	Sectors:      "sectors",
	Diamonds:     "diamonds",
	Squares:      "squares",
	Spiral:       "spiral",
	Spokes:       "spokes",
	Bullseye:     "bullseye",
	Chevron:      "chevron",
	Blocks:       "blocks",
	Stripes:      "stripes",
	DiagStripes:  "diag-stripes",
	Zigzag:       "zigzag",
	Checker:      "checker",
	Bricks:       "bricks",
	Weave:        "weave",
	Crosshatch:   "crosshatch",
	RotChecker:   "rot-checker",
	Maze:         "maze",
	Triangles:    "triangles",
	IsoCubes:     "iso-cubes",
	HexTiles:     "hex-tiles",
	Voronoi:      "voronoi",
	ValueNoise:   "value-noise",
	DotsGrid:     "dots-grid",
	GridRings:    "grid-rings",
}

func (m Mode) String() string {
	if m.Valid() {
		return modeNames[m]
	}
	return fmt.Sprintf("mode(%d)", int(m))
}

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return 0 <= m && int(m) < NumModes
}

// ParseMode returns the Mode named s.
func ParseMode(s string) (Mode, bool) {
	for i, v := range modeNames {
		if v == s {
			return Mode(i), true
		}
	}
	return -1, false
}

// Modes returns all modes in order.
func Modes() []Mode {
	m := make([]Mode, NumModes)
	for i := range m {
		m[i] = Mode(i)
	}
	return m
}

// Params are the inputs shared by all modes.
type Params struct {
	Seed   uint32 // sole source of variation
	Block  int    // cell size in pixels; values below 1 mean 1
	Colors int    // palette length; values below 1 mean 1
	Width  int    // canvas width
	Height int    // canvas height
}

// An Indexer returns the palette index for the pixel at (x, y).
type Indexer func(x, y int) int

// A Registry evaluates every Mode for fixed Params.
type Registry struct {
	p Params
}

// Build returns a Registry for p.
func Build(p Params) Registry {
	if p.Block < 1 {
		p.Block = 1
	}
	if p.Colors < 1 {
		p.Colors = 1
	}
	return Registry{p}
}

// Params returns the Registry's parameters, with Block and Colors
// clamped to at least 1.
func (r Registry) Params() Params { return r.p }

// Len returns the number of modes.
func (r Registry) Len() int { return NumModes }

// Index returns the palette index for the pixel at (x, y) in mode m.
// Modes outside [0, NumModes) wrap around.
func (r Registry) Index(m Mode, x, y int) int {
	return mod(eval[mod(int(m), NumModes)](&r.p, x, y), r.p.Colors)
}

// Indexer returns the Indexer for mode m.
func (r Registry) Indexer(m Mode) Indexer {
	return func(x, y int) int { return r.Index(m, x, y) }
}

// Index is shorthand for Build(p).Index(m, x, y).
func (p Params) Index(m Mode, x, y int) int {
	return Build(p).Index(m, x, y)
}

// eval holds the constructions.  Results may be any int; Index reduces
// them modulo Colors.
var eval = [NumModes]func(p *Params, x, y int) int{
	MirrorV:      mirrorV,
	MirrorH:      mirrorH,
	QuadMirror:   quadMirror,
	Diagonal:     diagonal,
	AntiDiagonal: antiDiagonal,
	Rotational:   rotational,
	Kaleidoscope: kaleidoscope,
	Rings:        rings,
	Sectors:      sectors,
	Diamonds:     diamonds,
	Squares:      squares,
	Spiral:       spiral,
	Spokes:       spokes,
	Bullseye:     bullseye,
	Chevron:      chevron,
	Blocks:       blocks,
	Stripes:      stripes,
	DiagStripes:  diagStripes,
	Zigzag:       zigzag,
	Checker:      checker,
	Bricks:       bricks,
	Weave:        weave,
	Crosshatch:   crosshatch,
	RotChecker:   rotChecker,
	Maze:         maze,
	Triangles:    triangles,
	IsoCubes:     isoCubes,
	HexTiles:     hexTiles,
	Voronoi:      voronoi,
	ValueNoise:   valueNoise,
	DotsGrid:     dotsGrid,
	GridRings:    gridRings,
}

// Helpers shared by the constructions.

// mod returns a mod m in [0, m).
func mod(a, m int) int {
	a %= m
	if a < 0 {
		a += m
	}
	return a
}

// fdiv returns ⌊a/b⌋.
func fdiv(a, b int) int {
	q := a / b
	if a%b != 0 && (a < 0) != (b < 0) {
		q--
	}
	return q
}

func abs(a int) int {
	if a < 0 {
		return -a
	}
	return a
}

// pick reduces a hash to a palette index.
func (p *Params) pick(h uint32) int {
	return int(h % uint32(p.Colors))
}

// band returns a palette index for band n, salted.
func (p *Params) band(n int, salt uint32) int {
	return p.pick(seed.Fmix(p.Seed + uint32(n)*seed.Golden ^ salt))
}

// colour returns a fixed palette index for salt.
func (p *Params) colour(salt uint32) int {
	return p.pick(seed.Fmix(p.Seed ^ salt))
}

// other returns a palette index different from c, if there are at
// least two colours.
func (p *Params) other(c int, salt uint32) int {
	if p.Colors < 2 {
		return 0
	}
	n := uint32(p.Colors - 1)
	return (c + 1 + int(seed.Fmix(p.Seed+salt)%n)) % p.Colors
}

// cell hashes the block containing (x, y).
func (p *Params) cell(x, y int) uint32 {
	return p.hash(fdiv(x, p.Block), fdiv(y, p.Block))
}

func (p *Params) hash(x, y int) uint32 {
	return seed.Hash2D(p.Seed, int32(x), int32(y))
}

// thickness returns the width of walls, threads and mortar.
func (p *Params) thickness() int {
	return max(1, p.Block/4)
}
