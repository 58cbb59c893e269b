// Copyright 2025 Vadim Vygonets.  All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package main

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strings"

	"github.com/unixdj/hextile"

	"github.com/pborman/getopt/v2"
	"gopkg.in/yaml.v3"
)

// config is the YAML configuration file.  Zero values leave the
// defaults alone.
type config struct {
	Width    int                 `yaml:"width"`
	Height   int                 `yaml:"height"`
	Scale    int                 `yaml:"scale"`
	Border   int                 `yaml:"border"`
	Workers  int                 `yaml:"workers"`
	Block    int                 `yaml:"block"`
	Blocks   []int               `yaml:"block_sizes"`
	Mode     string              `yaml:"mode"`
	Palette  string              `yaml:"palette"`
	Palettes map[string][]string `yaml:"palettes"`
	Format   string              `yaml:"format"`
}

var errConfig = errors.New("invalid configuration")

// loadConfig reads and checks the configuration file fn.
func loadConfig(fn string) (*config, error) {
	f, err := os.Open(fn)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	var c config
	d := yaml.NewDecoder(f)
	d.KnownFields(true)
	if err := d.Decode(&c); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	if err := c.check(); err != nil {
		return nil, fmt.Errorf("%s: %w", fn, err)
	}
	return &c, nil
}

func (c *config) check() error {
	for _, v := range []struct {
		name string
		val  int
	}{
		{"width", c.Width},
		{"height", c.Height},
		{"scale", c.Scale},
		{"border", c.Border},
		{"workers", c.Workers},
		{"block", c.Block},
	} {
		if v.val < 0 {
			return fmt.Errorf("%w: negative %s", errConfig, v.name)
		}
	}
	for _, b := range c.Blocks {
		if b < 1 {
			return fmt.Errorf("%w: block size %d", errConfig, b)
		}
	}
	if c.Format != "" && !slices.Contains(formats, c.Format) {
		return fmt.Errorf("%w: format %q", errConfig, c.Format)
	}
	// Named palettes are added to hextile.Palettes by apply.
	for name, cols := range c.Palettes {
		if name == "" || strings.ContainsRune(name, ',') {
			return fmt.Errorf("%w: palette name %q", errConfig, name)
		}
		if _, err := hextile.ParsePalette(strings.Join(cols, ",")); err != nil {
			return fmt.Errorf("palette %s: %w", name, err)
		}
	}
	return nil
}

// apply stores the configuration in g, except for settings given on
// the command line.
func (c *config) apply() error {
	for name, cols := range c.Palettes {
		p, err := hextile.ParsePalette(strings.Join(cols, ","))
		if err != nil {
			return err
		}
		hextile.Palettes[name] = p
	}
	g.opt.Width = c.Width
	g.opt.Height = c.Height
	g.opt.Block = c.Block
	g.opt.Workers = c.Workers
	g.scale = c.Scale
	g.border = c.Border
	if len(c.Blocks) != 0 {
		g.opt.BlockSizes = c.Blocks
	}
	for _, v := range []struct {
		name rune
		val  string
		dst  *string
	}{
		{'M', c.Mode, &g.opt.Mode},
		{'p', c.Palette, &g.palette},
		{'t', c.Format, &g.format},
	} {
		if v.val != "" && !getopt.IsSet(v.name) {
			*v.dst = v.val
		}
	}
	return nil
}
