// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

// Stochastic fields place one site per cell of side 2·Block, jittered
// within the cell by the cell's hash.

// site returns the jittered site of cell (cx, cy) of side s and the
// cell's hash.  The low two bytes of the hash are the site's offset.
func (p *Params) site(cx, cy, s int) (sx, sy int, h uint32) {
	h = p.hash(cx, cy)
	sx = cx*s + int(h&0xff)*s/256
	sy = cy*s + int(h>>8&0xff)*s/256
	return
}

// voronoi colours each pixel by the third byte of the hash of the
// nearest site among the 3×3 cells around it.
func voronoi(p *Params, x, y int) int {
	s := 2 * p.Block
	cx, cy := fdiv(x, s), fdiv(y, s)
	best, bestD := uint32(0), -1
	for j := -1; j <= 1; j++ {
		for i := -1; i <= 1; i++ {
			sx, sy, h := p.site(cx+i, cy+j, s)
			dx, dy := x-sx, y-sy
			if d := dx*dx + dy*dy; bestD < 0 || d < bestD {
				best, bestD = h, d
			}
		}
	}
	return int(best >> 16 & 0xff)
}

// unit maps a hash to [0, 1).
func unit(h uint32) float64 {
	return float64(h) / (1 << 32)
}

// smooth is the smoothstep curve t²(3-2t).
func smooth(t float64) float64 {
	return t * t * (3 - 2*t)
}

func lerp(a, b, t float64) float64 {
	// Explicit conversion prevents a fused multiply-add.
	return a + float64((b-a)*t)
}

// valueNoise interpolates lattice values at the corners of the cell
// of side 2·Block and quantizes the result into Colors bins.
func valueNoise(p *Params, x, y int) int {
	s := 2 * p.Block
	gx, gy := fdiv(x, s), fdiv(y, s)
	tx := smooth(float64(mod(x, s)) / float64(s))
	ty := smooth(float64(mod(y, s)) / float64(s))
	v00 := unit(p.hash(gx, gy))
	v10 := unit(p.hash(gx+1, gy))
	v01 := unit(p.hash(gx, gy+1))
	v11 := unit(p.hash(gx+1, gy+1))
	v := lerp(lerp(v00, v10, tx), lerp(v01, v11, tx), ty)
	return min(int(v*float64(p.Colors)), p.Colors-1)
}

// dotsGrid draws a round dot near the centre of each cell.
func dotsGrid(p *Params, x, y int) int {
	s := 2 * p.Block
	cx, cy := fdiv(x, s), fdiv(y, s)
	h := p.hash(cx, cy)
	q := max(1, p.Block/2)
	ox := cx*s + p.Block + int(h&0xff)%q - q/2
	oy := cy*s + p.Block + int(h>>8&0xff)%q - q/2
	r := p.Block/2 + int(h>>24)%(p.Block/4+1)
	bg := p.colour(0xd075)
	if dx, dy := x-ox, y-oy; dx*dx+dy*dy <= r*r {
		return p.other(bg, h)
	}
	return bg
}

// gridRings draws concentric rings around each cell's site.
func gridRings(p *Params, x, y int) int {
	s := 2 * p.Block
	sx, sy, h := p.site(fdiv(x, s), fdiv(y, s), s)
	dx, dy := x-sx, y-sy
	w := max(1, p.Block/2)
	return p.pick(h>>16) + isqrt(dx*dx+dy*dy)/w
}
