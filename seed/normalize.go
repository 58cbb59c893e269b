// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package seed

import (
	"crypto/rand"
	"encoding/hex"
)

// Normalization limits.
const (
	MaxHexLen       = 128 // longest hex kept as is
	CompressedWords = 8   // words Normalize compresses longer hex to
)

// Normalize returns the canonical hex for raw: lowercase, even length,
// at most MaxHexLen digits.
//
// One leading "0x" or "0X" is stripped and every character that is not
// a hex digit is dropped.  If more than MaxHexLen digits remain, they
// are replaced by CompressHex(digits, CompressedWords).  An odd number
// of digits gets a leading '0'.  Normalize returns "" if raw contains
// no hex digits.
func Normalize(raw string) string {
	if len(raw) >= 2 && raw[0] == '0' && (raw[1] == 'x' || raw[1] == 'X') {
		raw = raw[2:]
	}
	b := make([]byte, 1, len(raw)+1)
	b[0] = '0'
	for i := 0; i < len(raw); i++ {
		switch c := raw[i]; {
		case '0' <= c && c <= '9', 'a' <= c && c <= 'f':
			b = append(b, c)
		case 'A' <= c && c <= 'F':
			b = append(b, c+'a'-'A')
		}
	}
	digits := b[1:]
	switch {
	case len(digits) == 0:
		return ""
	case len(digits) > MaxHexLen:
		return CompressHex(string(digits), CompressedWords)
	case len(digits)&1 != 0:
		return string(b)
	}
	return string(digits)
}

// NormalizeBytes is like Normalize, but takes a byte slice.
func NormalizeBytes(raw []byte) string {
	return Normalize(string(raw))
}

// Random returns n random bytes as canonical hex, for use when no
// input is given.  Random returns "" if n < 1.
func Random(n int) (string, error) {
	if n < 1 {
		return "", nil
	}
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		return "", err
	}
	return Normalize(hex.EncodeToString(b)), nil
}
