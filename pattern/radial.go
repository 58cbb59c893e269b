// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package pattern

import (
	"math"

	"github.com/unixdj/hextile/seed"
)

// Radial modes measure (x, y) from the canvas centre.  Offsets are
// doubled so that the centre of an even-sized canvas, which falls
// between pixels, is still an integer point.  Distances are quantized
// in units of 2·Block.

// offset returns the doubled offset of (x, y) from the centre.
func (p *Params) offset(x, y int) (dx, dy int) {
	return 2*x - (p.Width - 1), 2*y - (p.Height - 1)
}

// isqrt returns ⌊√n⌋ for n ≥ 0.
func isqrt(n int) int {
	r := int(math.Sqrt(float64(n)))
	for r > 0 && r*r > n {
		r--
	}
	for (r+1)*(r+1) <= n {
		r++
	}
	return r
}

// angle returns the angle of (dx, dy) in [0, 2π).
func angle(dx, dy int) float64 {
	a := math.Atan2(float64(dy), float64(dx))
	if a < 0 {
		a += 2 * math.Pi
	}
	return a
}

// wedge returns which of n equal wedges contains (dx, dy).
func wedge(dx, dy, n int) int {
	return min(int(angle(dx, dy)*float64(n)/(2*math.Pi)), n-1)
}

func rings(p *Params, x, y int) int {
	dx, dy := p.offset(x, y)
	return p.band(isqrt(dx*dx+dy*dy)/(2*p.Block), 0)
}

func bullseye(p *Params, x, y int) int {
	dx, dy := p.offset(x, y)
	n := isqrt(dx*dx+dy*dy) / (2 * p.Block)
	if n&1 == 0 {
		return p.colour(0xb011)
	}
	return p.band(n, 0xb011)
}

// diamonds mixes the band with XOR-multiply and takes the high bits.
func diamonds(p *Params, x, y int) int {
	dx, dy := p.offset(x, y)
	n := uint32((abs(dx) + abs(dy)) / (2 * p.Block))
	return p.pick((p.Seed ^ n*0x9e3779b1) * 0x85ebca6b >> 16)
}

func squares(p *Params, x, y int) int {
	dx, dy := p.offset(x, y)
	return p.band(max(abs(dx), abs(dy))/(2*p.Block), 0x5a5a)
}

func sectors(p *Params, x, y int) int {
	dx, dy := p.offset(x, y)
	n := 3 + seed.Pick(p.Seed, 0x5ec7, 10)
	return p.band(wedge(dx, dy, n), 0x5ec7)
}

// spiral winds arms around the centre; the band index grows by arms
// per turn.
func spiral(p *Params, x, y int) int {
	dx, dy := p.offset(x, y)
	arms := 1 + seed.Pick(p.Seed, 0x5b1a, 4)
	r := math.Sqrt(float64(dx*dx+dy*dy)) / float64(2*p.Block)
	t := r + angle(dx, dy)*float64(arms)/(2*math.Pi)
	return p.band(int(math.Floor(t)), 0x5b1a)
}

func spokes(p *Params, x, y int) int {
	dx, dy := p.offset(x, y)
	if isqrt(dx*dx+dy*dy) < 2*p.Block {
		return p.colour(0x4b0b)
	}
	n := 4 + 2*seed.Pick(p.Seed, 0x5b0c, 6)
	c := p.colour(0x5b0c)
	if wedge(dx, dy, n)&1 != 0 {
		return p.other(c, 0x5b0c)
	}
	return c
}

// chevron draws V shapes pointing up or down, depending on the seed.
func chevron(p *Params, x, y int) int {
	dx, dy := p.offset(x, y)
	if p.Seed&1 != 0 {
		dy = -dy
	}
	return p.band(fdiv(dy+abs(dx), 2*p.Block), 0xc4e7)
}
