// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seed

const lanes = 4

/*
Compress folds hex into the given number of 32 bit words.

Four FNV-1a lanes take turns consuming the bytes encoded in hex, byte i
going to lane i mod 4.  After each step the lane's new state is stirred
into the next lane, so no lane evolves independently of its neighbour.
If hex has odd length, its last character is read as the byte "0"+c.

The finalized lanes are cycled to produce the output, word i being
Fmix(lane[i mod 4] + (i+1)·Golden).  Compress returns nil if words < 1.
*/
func Compress(hex string, words int) []uint32 {
	if words < 1 {
		return nil
	}
	var h [lanes]uint32
	for i := range h {
		h[i] = Offset ^ uint32(i+1)
	}
	for i, lane := 0, 0; i < len(hex); i, lane = i+2, (lane+1)%lanes {
		var b byte
		if i+1 < len(hex) {
			b = nibble[hex[i]]<<4 | nibble[hex[i+1]]
		} else {
			b = nibble[hex[i]]
		}
		h[lane] ^= uint32(b)
		h[lane] *= Prime
		v := h[lane]
		h[(lane+1)%lanes] ^= v>>17 ^ v*0x9e3779b1
	}
	for i := range h {
		h[i] = Fmix(h[i])
	}
	out := make([]uint32, words)
	for i := range out {
		out[i] = Fmix(h[i%lanes] + uint32(i+1)*Golden)
	}
	return out
}

const hexDigits = "0123456789abcdef"

// CompressHex returns Compress(hex, words) as lowercase hex, eight
// digits per word.
func CompressHex(hex string, words int) string {
	w := Compress(hex, words)
	b := make([]byte, 0, len(w)*8)
	for _, v := range w {
		for s := 28; s >= 0; s -= 4 {
			b = append(b, hexDigits[v>>s&0xf])
		}
	}
	return string(b)
}
