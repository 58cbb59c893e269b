// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

// Symmetry folds map (x, y) to a canonical representative of its
// orbit under a symmetry group of the canvas, then hash the block
// containing the representative.

func mirrorV(p *Params, x, y int) int {
	return p.pick(p.cell(min(x, p.Width-1-x), y))
}

func mirrorH(p *Params, x, y int) int {
	return p.pick(p.cell(x, min(y, p.Height-1-y)))
}

func quadMirror(p *Params, x, y int) int {
	return p.pick(p.cell(min(x, p.Width-1-x), min(y, p.Height-1-y)))
}

func diagonal(p *Params, x, y int) int {
	if y < x {
		x, y = y, x
	}
	return p.pick(p.cell(x, y))
}

// less orders points lexicographically.
func less(x0, y0, x1, y1 int) bool {
	return x0 < x1 || x0 == x1 && y0 < y1
}

// antiDiagonal folds across the line from the top right to the bottom
// left corner of a square canvas.
func antiDiagonal(p *Params, x, y int) int {
	if rx, ry := p.Width-1-y, p.Height-1-x; less(rx, ry, x, y) {
		x, y = rx, ry
	}
	return p.pick(p.cell(x, y))
}

// rotational picks the least of the four images of (x, y) under
// quarter turns about the centre of the Width×Width square.
func rotational(p *Params, x, y int) int {
	n := p.Width - 1
	bx, by := x, y
	for i := 0; i < 3; i++ {
		x, y = n-y, x
		if less(x, y, bx, by) {
			bx, by = x, y
		}
	}
	return p.pick(p.cell(bx, by))
}

// kaleidoscope folds into one octant using doubled offsets from the
// centre, which are integers for any canvas size.
func kaleidoscope(p *Params, x, y int) int {
	dx, dy := p.offset(x, y)
	dx, dy = abs(dx), abs(dy)
	if dy > dx {
		dx, dy = dy, dx
	}
	b := 2 * p.Block
	return p.pick(p.hash(dx/b, dy/b))
}
