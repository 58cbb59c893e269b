// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"bytes"
	"fmt"
	"image/png"
	"io"
	"log"
	"os"
	"strings"
	"syscall"

	"github.com/unixdj/hextile"
	"github.com/unixdj/hextile/pattern"
	"github.com/unixdj/hextile/seed"

	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
)

var g = struct {
	opt     hextile.Options // generation options
	scale   int             // scale
	border  int             // border
	fn      string          // filename
	format  string          // output file format
	conf    string          // config file
	random  bool            // random input
	info    bool            // print parameters only
	fold    bool            // fold full-width characters
	utf16   bool            // UTF-16 input
	palette string          // palette name or colours
}{}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	prog := cl.Program()
	ul := make([]string, 1, 4)
	ul[0] = cl.UsageLine() + " [string ...]"
	ml := max(70-len("Usage: ")-1-len(prog), 0)
	for i := 0; len(ul[i]) > ml; i++ {
		s := ul[i]
		n := ml - 1
		for n > 0 && (s[n] != ' ' || s[n+1] != '[') {
			n--
		}
		ul = append(ul, s[n+1:])
		ul[i] = s[:max(n, 0)]
		ml = 60
	}
	fmt.Fprint(w, "Hex string texture generator\nUsage: ", prog, " ",
		strings.Join(ul, "\n          "), `
If no string is given, input is read from standard input and the final
newline is stripped.  Non-hex characters are ignored; input longer than
128 hex digits is compressed.  Pattern mode, block size and palette
rotation are derived from the input unless given.

`)
	cl.PrintOptions(w)
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`hextile version 0.3.0
Copyright (c) 2025 Vadim Vygonets`)
	os.Exit(0)
}

func list() {
	fmt.Println("modes:")
	for _, m := range pattern.Modes() {
		fmt.Printf("  %2d %s\n", int(m), m)
	}
	fmt.Println("palettes:")
	for _, n := range hextile.PaletteNames() {
		fmt.Printf("  %-8s", n)
		for _, c := range hextile.Palettes[n] {
			fmt.Print(" ", hextile.FormatColor(c))
		}
		fmt.Println()
	}
	os.Exit(0)
}

var formats = []string{"png", "PNG", "ppm", "utf8", "ascii", "ansi"}

var encoders = map[string]func(*hextile.Texture, io.Writer) error{
	"png": (*hextile.Texture).EncodePNG,
	"PNG": func(t *hextile.Texture, w io.Writer) error {
		return png.Encode(w, t.Paletted())
	},
	"ppm": (*hextile.Texture).EncodePPM,
	"utf8": func(t *hextile.Texture, w io.Writer) error {
		return t.EncodeText(w, hextile.UTF8Ramp)
	},
	"ascii": func(t *hextile.Texture, w io.Writer) error {
		return t.EncodeText(w, hextile.ASCIIRamp)
	},
	"ansi": ansi,
}

func parseFlags() {
	getopt.SetUsage(usage)
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.Flag(opt(list), 'l', "list pattern modes and palettes").SetFlag()
	getopt.Flag(&g.conf, 'c', "YAML configuration file; "+
		"options override its settings", "file")
	fno := getopt.Flag(&g.fn, 'o', `output file, or "-" for `+
		`standard output`, "file")
	getopt.Flag(&g.opt.Mode, 'M', "pattern mode; see -l", "mode")
	getopt.Flag(&g.palette, 'p', "palette name (see -l) or "+
		"comma separated colours as 3, 4, 6 or 8 hex digits",
		"name|RGB[A],...")
	getopt.Flag(&g.random, 'r', "generate from random input; "+
		"print the input to standard error")
	getopt.Flag(&g.info, 'n', "print canonical hex, seed, mode, "+
		"block size and palette rotation instead of an image")
	getopt.Flag(&g.fold, 'w', "fold full-width characters to ASCII")
	getopt.Flag(&g.utf16, 'u', "UTF-16 input, big endian unless "+
		"preceded by a byte order mark")
	width := getopt.Unsigned('W', hextile.DefaultSize,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 15}, "texture width", "width")
	height := getopt.Unsigned('H', hextile.DefaultSize,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 15}, "texture height", "height")
	block := getopt.Unsigned('b', 0,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: 1 << 15},
		"block size; 0 derives it from the input", "size")
	scale := getopt.Unsigned('s', hextile.DefaultScale,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 12},
		`image pixels per texture pixel; `+
			`ignored for types utf8, ascii and ansi`, "scale")
	border := getopt.Unsigned('m', 0,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 0, Max: 1 << 12},
		"border width in texture pixels, in the first palette colour",
		"margin")
	workers := getopt.Unsigned('j', 1,
		&getopt.UnsignedLimit{Base: 0, Bits: 16, Min: 1, Max: 1 << 10},
		"number of goroutines evaluating the texture", "jobs")
	ff := getopt.Enum('t', formats, "", `output format, one of: `+
		strings.Join(formats, ", ")+
		`; "png" uses a bespoke paletted encoder, `+
		`"PNG" the standard Go encoder; `+
		`if no -o is given and standard output is a TTY, `+
		`default is utf8, otherwise png`, "type")

	getopt.Parse()

	if g.conf != "" {
		c, err := loadConfig(g.conf)
		if err != nil {
			log.Fatalln(err)
		}
		if err := c.apply(); err != nil {
			log.Fatalln(err)
		}
	}
	for _, v := range []struct {
		name rune
		val  *uint64
		dst  *int
	}{
		{'W', width, &g.opt.Width},
		{'H', height, &g.opt.Height},
		{'b', block, &g.opt.Block},
		{'s', scale, &g.scale},
		{'m', border, &g.border},
		{'j', workers, &g.opt.Workers},
	} {
		if getopt.IsSet(v.name) || *v.dst == 0 {
			*v.dst = int(*v.val)
		}
	}
	if g.palette != "" {
		p, err := hextile.ParsePalette(g.palette)
		if err != nil {
			log.Fatalln(err)
		}
		g.opt.Palette = p
	}
	if *ff != "" {
		g.format = *ff
	}
	if g.format == "" {
		if !fno.Seen() && isatty.IsTerminal(uintptr(syscall.Stdout)) {
			g.format = "utf8"
		} else {
			g.format = "png"
		}
	}
	if encoders[g.format] == nil {
		fmt.Fprintf(os.Stderr, "%q: unknown output format\n", g.format)
		usage()
	}
	if g.fn == "-" {
		g.fn = ""
	}
}

func main() {
	log.SetFlags(0)
	parseFlags()

	var s string
	switch args := getopt.Args(); {
	case g.random:
		var err error
		if s, err = seed.Random(16); err != nil {
			log.Fatalln(err)
		}
		fmt.Fprintln(os.Stderr, s)
	case len(args) != 0:
		s = strings.Join(args, " ")
	default:
		var b bytes.Buffer
		if _, err := io.Copy(&b, os.Stdin); err != nil {
			log.Fatalln(err)
		}
		s = b.String()
		if !g.utf16 {
			s, _ = strings.CutSuffix(
				strings.ReplaceAll(s, "\r\n", "\n"), "\n")
		}
	}
	s, err := decodeInput(s, g.utf16, g.fold)
	if err != nil {
		log.Fatalln(err)
	}

	t, err := hextile.Generate(s, &g.opt)
	if err != nil {
		log.Fatalln(err)
	}
	if g.info {
		fmt.Printf("hex %s\nseed %#08x\nmode %v\nblock %d\nrotation %d\n",
			t.Hex, t.Seed, t.Mode, t.Block, t.Rotation)
		return
	}
	t.Scale = g.scale
	t.Border = g.border
	write(t)
}

func write(t *hextile.Texture) {
	var w = os.Stdout
	if g.fn != "" {
		var err error
		if w, err = os.OpenFile(g.fn, os.O_WRONLY|os.O_CREATE|os.O_TRUNC,
			0666); err != nil {
			log.Fatalln(err)
		}
	}
	err := encoders[g.format](t, w)
	if g.fn != "" && err == nil {
		err = w.Close()
	}
	if err != nil {
		log.Fatalln(err)
	}
}
