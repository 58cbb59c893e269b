// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

/*
Package seed turns arbitrary text into canonical hex and a 32 bit seed,
and provides the integer mixing functions the pattern generators are
built on.

All functions are pure and total: they never fail and never panic,
whatever the input.  Arithmetic is modulo 2³², so results are identical
on every platform.

	raw text -> Normalize -> canonical hex -> Sum -> seed

Hex longer than MaxHexLen is folded to CompressedWords 32 bit words by
Compress before it is hashed.
*/
package seed // import "github.com/unixdj/hextile/seed"

// Hash constants.
const (
	Offset = 0x811c9dc5 // FNV-1a 32 bit offset basis
	Prime  = 0x01000193 // FNV-1a 32 bit prime
	Golden = 0x9e3779b9 // 2³²/φ

	m1 = 0x85ebca6b // Murmur3 fmix multipliers
	m2 = 0xc2b2ae35
)

// Offsets for Pick.  Changing them changes every generated texture.
const (
	BlockOffset    = 0xbeef // block size
	ModeOffset     = 0x1234 // pattern mode
	RotationOffset = 0xc0de // palette rotation
)

// nibble maps an ASCII hex digit to its value.  Other bytes map to 0.
var nibble = func() (t [256]byte) {
	for c := '0'; c <= '9'; c++ {
		t[c] = byte(c - '0')
	}
	for c := 'a'; c <= 'f'; c++ {
		t[c] = byte(c-'a') + 10
		t[c-'a'+'A'] = byte(c-'a') + 10
	}
	return
}()

// Sum returns the FNV-1a hash of the bytes encoded in hex.  Odd length
// hex is read as if it had a leading '0'.  Sum("") is Offset.
func Sum(hex string) uint32 {
	h := uint32(Offset)
	i := 0
	if len(hex)&1 != 0 {
		h ^= uint32(nibble[hex[0]])
		h *= Prime
		i = 1
	}
	for ; i+1 < len(hex); i += 2 {
		h ^= uint32(nibble[hex[i]]<<4 | nibble[hex[i+1]])
		h *= Prime
	}
	return h
}

// Fmix is the MurmurHash3 32 bit finalizer.
func Fmix(a uint32) uint32 {
	a ^= a >> 16
	a *= m1
	a ^= a >> 13
	a *= m2
	a ^= a >> 16
	return a
}

// Hash2D hashes the coordinates (x, y) under seed.
func Hash2D(seed uint32, x, y int32) uint32 {
	n := seed + (uint32(x)+Golden)*m1
	n ^= (uint32(y) + Golden) * m2
	return Fmix(n)
}

// Pick returns Fmix(seed+offset) mod n, a choice among n options
// derived from seed.  Pick returns 0 if n < 1.
func Pick(seed, offset uint32, n int) int {
	if n < 1 {
		return 0
	}
	return int(Fmix(seed+offset) % uint32(n))
}
