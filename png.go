// Copyright 2011 The Go Authors.  All rights reserved.
// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package hextile

/*
Paletted PNG Encoder

Textures are palette indexed, so the encoder writes an indexed colour
PNG at the smallest bit depth that holds the palette (1, 2, 4 or 8
bits).  Each texture row is repeated Scale times in the image; the
first copy is written unfiltered and the repeats with the Up filter,
which turns them into runs of zero bytes that DEFLATE reduces to a few
repeat codes.
*/

import (
	"bytes"
	"encoding/binary"
	"hash/crc32"
	"image/color"
	"io"

	"github.com/klauspost/compress/zlib"
)

const (
	chunkSize = 0x8000     // IDAT chunks split after 32 KB
	maxSide   = 32767 * 8 // largest image side
)

// PNG returns a PNG image displaying the texture, or nil if the
// Texture is not valid or the image would be too large.
func (t *Texture) PNG() []byte {
	if w, err := encodePNG(nil, t); err == nil {
		return w.buf.Bytes()
	}
	return nil
}

// EncodePNG writes a PNG image displaying the texture to w.
func (t *Texture) EncodePNG(w io.Writer) error {
	if w == nil {
		return ErrArgs
	}
	_, err := encodePNG(w, t)
	return err
}

// A pngWriter is a writer for PNG chunks.
type pngWriter struct {
	buf   bytes.Buffer
	tmp   [3 * MaxColors]byte
	start int
}

const pngHeader = "\x89PNG\r\n\x1a\n"

// depth returns the PNG bit depth for n palette entries.
func depth(n int) int {
	switch {
	case n <= 2:
		return 1
	case n <= 4:
		return 2
	case n <= 16:
		return 4
	}
	return 8
}

func encodePNG(ww io.Writer, t *Texture) (*pngWriter, error) {
	if !t.isValid() {
		return nil, ErrArgs
	}
	width, height := t.size()
	if width > maxSide || height > maxSide {
		return nil, ErrLargeImage
	}
	var w pngWriter
	bits := depth(len(t.Palette))

	// Header
	w.buf.WriteString(pngHeader)

	// Header block
	binary.BigEndian.PutUint32(w.tmp[0:4], uint32(width))
	binary.BigEndian.PutUint32(w.tmp[4:8], uint32(height))
	w.tmp[8] = byte(bits)
	w.tmp[9] = 3  // palette
	w.tmp[10] = 0 // deflate
	w.tmp[11] = 0 // adaptive filtering
	w.tmp[12] = 0 // no interlace
	w.writeChunk("IHDR", w.tmp[:13])

	// Palette and transparency
	// PNG colours are not alpha-premultiplied.
	var alpha [MaxColors]byte
	trns := 0
	for i, c := range t.Palette {
		n := color.NRGBAModel.Convert(c).(color.NRGBA)
		if n.A != 0xff {
			trns = i + 1
		}
		w.tmp[i*3] = n.R
		w.tmp[i*3+1] = n.G
		w.tmp[i*3+2] = n.B
		alpha[i] = n.A
	}
	w.writeChunk("PLTE", w.tmp[:len(t.Palette)*3])
	if trns != 0 {
		w.writeChunk("tRNS", alpha[:trns])
	}

	// Data
	var z bytes.Buffer
	if err := t.writeRows(&z, bits); err != nil {
		return nil, err
	}
	for d := z.Bytes(); len(d) != 0; {
		n := min(len(d), chunkSize)
		w.writeChunk("IDAT", d[:n])
		d = d[n:]
	}

	// End
	w.writeChunk("IEND", nil)

	if ww != nil {
		if _, err := w.buf.WriteTo(ww); err != nil {
			return nil, err
		}
	}
	return &w, nil
}

// writeRows writes the zlib compressed, filtered image rows to z.
func (t *Texture) writeRows(z io.Writer, bits int) error {
	zw, err := zlib.NewWriterLevel(z, zlib.BestCompression)
	if err != nil {
		return err
	}
	width, height := t.size()
	stride := (width*bits + 7) / 8
	row := make([]byte, 1+stride)  // filter None
	same := make([]byte, 1+stride) // filter Up, all zero
	same[0] = 2
	for y := 0; y < height; y += t.Scale {
		clear(row[1:])
		for x := 0; x < width; x++ {
			v := t.pixel(x, y)
			bit := x * bits
			row[1+bit/8] |= v << (8 - bits - bit&7)
		}
		if _, err := zw.Write(row); err != nil {
			return err
		}
		for i := 1; i < t.Scale; i++ {
			if _, err := zw.Write(same); err != nil {
				return err
			}
		}
	}
	return zw.Close()
}

func (w *pngWriter) writeChunk(name string, data []byte) {
	w.startChunk(name)
	w.buf.Write(data)
	w.endChunk()
}

func (w *pngWriter) startChunk(name string) {
	w.start = w.buf.Len()
	w.buf.WriteString(name) // length placeholder
	w.buf.WriteString(name)
}

func (w *pngWriter) endChunk() {
	b := w.buf.Bytes()[w.start:]
	binary.BigEndian.PutUint32(b, uint32(len(b)-8))
	var sum [4]byte
	binary.BigEndian.PutUint32(sum[:], crc32.ChecksumIEEE(b[4:]))
	w.buf.Write(sum[:])
}
