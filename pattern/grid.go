// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import "math"

func blocks(p *Params, x, y int) int {
	return p.pick(p.cell(x, y))
}

func stripes(p *Params, x, y int) int {
	v := y
	if p.Seed>>1&1 != 0 {
		v = x
	}
	return p.band(fdiv(v, p.Block), 0x57e1)
}

func diagStripes(p *Params, x, y int) int {
	v := x + y
	if p.Seed>>2&1 != 0 {
		v = x - y
	}
	return p.band(fdiv(v, p.Block), 0xd1a9)
}

// zigzag displaces horizontal stripes by a triangle wave of period
// 2·Block and amplitude Block.
func zigzag(p *Params, x, y int) int {
	b := p.Block
	tri := abs(mod(x, 2*b) - b)
	return p.band(fdiv(y+tri, b), 0x2192)
}

func checker(p *Params, x, y int) int {
	c := p.colour(0xc4ec)
	if (fdiv(x, p.Block)+fdiv(y, p.Block))&1 != 0 {
		return p.other(c, 0xc4ec)
	}
	return c
}

func rotChecker(p *Params, x, y int) int {
	c := p.colour(0x7c4e)
	if (fdiv(x+y, p.Block)+fdiv(x-y, p.Block))&1 != 0 {
		return p.other(c, 0x7c4e)
	}
	return c
}

// bricks lays bricks of 2·Block by Block, every other row shifted by
// half a brick, separated by mortar.
func bricks(p *Params, x, y int) int {
	b := p.Block
	t := p.thickness()
	row := fdiv(y, b)
	sx := x + (row&1)*b
	if mod(y, b) < t || mod(sx, 2*b) < t {
		return p.colour(0x3047)
	}
	return p.pick(p.hash(fdiv(sx, 2*b), row))
}

// Weave, crosshatch and maze reserve a band of p.thickness() pixels
// along the top and left edges of each block for threads or walls
// coloured by block parity.  The rest of the block is hashed.

func weave(p *Params, x, y int) int {
	b, t := p.Block, p.thickness()
	cx, cy := fdiv(x, b), fdiv(y, b)
	lx, ly := mod(x, b), mod(y, b)
	if lx >= t && ly >= t {
		return p.pick(p.hash(cx, cy))
	}
	warp := p.colour(0x3ea7)
	weft := p.other(warp, 0x3ea7)
	// The thread on top alternates between blocks.
	if (cx+cy)&1 == 0 {
		if ly < t {
			return weft
		}
		return warp
	}
	if lx < t {
		return warp
	}
	return weft
}

func crosshatch(p *Params, x, y int) int {
	b, t := p.Block, p.thickness()
	if mod(x+y, b) >= t && mod(x-y, b) >= t {
		return p.pick(p.cell(x, y))
	}
	c := p.colour(0xc405)
	if (fdiv(x, b)+fdiv(y, b))&1 != 0 {
		return p.other(c, 0xc405)
	}
	return c
}

// maze draws a binary tree maze: each block has a wall on its left or
// top edge, chosen by its hash, and a post in its top left corner.
func maze(p *Params, x, y int) int {
	b, t := p.Block, p.thickness()
	cx, cy := fdiv(x, b), fdiv(y, b)
	lx, ly := mod(x, b), mod(y, b)
	h := p.hash(cx, cy)
	left := h&1 == 0
	if lx < t && ly < t || left && lx < t || !left && ly < t {
		w := p.colour(0x3a2e)
		if (cx+cy)&1 != 0 {
			return p.other(w, 0x3a2e)
		}
		return w
	}
	return p.pick(h >> 8)
}

// triangles splits each block into two triangles along the diagonal
// or, if the block's hash says so, the anti-diagonal.
func triangles(p *Params, x, y int) int {
	b := p.Block
	cx, cy := fdiv(x, b), fdiv(y, b)
	lx, ly := mod(x, b), mod(y, b)
	var half int
	if p.hash(cx, cy)&1 == 0 {
		if lx > ly {
			half = 1
		}
	} else if lx+ly >= b {
		half = 1
	}
	return p.pick(p.hash(2*cx+half, cy))
}

// isoCubes stacks columns of rhombi, each shifted by half a block from
// its neighbour, and shades the faces of a cube by offsetting the
// column's colour.
func isoCubes(p *Params, x, y int) int {
	b := p.Block
	col := fdiv(x, b)
	lx := mod(x, b)
	yy := 2*y + col*b
	row := fdiv(yy, 2*b)
	ly := mod(yy, 2*b)
	face := 0
	if ly >= b-lx && ly < 2*b-lx {
		face = 1 + col&1
	} else if ly >= 2*b-lx {
		face = 2 - col&1
	}
	return p.pick(p.hash(col, row)) + face
}

var sqrt3 = math.Sqrt(3)

// round rounds half up.
func round(v float64) float64 {
	return math.Floor(v + 0.5)
}

// hexTiles covers the plane with pointy-top hexagons of radius Block.
// Pixels are converted to fractional axial coordinates and rounded in
// cube coordinates, resetting the component with the largest rounding
// error so that the three still sum to zero.
func hexTiles(p *Params, x, y int) int {
	r := float64(p.Block)
	// Explicit conversion prevents a fused multiply-add.
	q := (float64(sqrt3/3*float64(x)) - float64(y)/3) / r
	s := 2 * float64(y) / 3 / r
	cx, cz := q, s
	cy := -cx - cz
	rx, ry, rz := round(cx), round(cy), round(cz)
	dx, dy, dz := math.Abs(rx-cx), math.Abs(ry-cy), math.Abs(rz-cz)
	switch {
	case dx > dy && dx > dz:
		rx = -ry - rz
	case dy <= dz:
		rz = -rx - ry
	}
	return p.pick(p.hash(int(rx), int(rz)))
}
