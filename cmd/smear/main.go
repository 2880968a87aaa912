/*
Command smear paints trails of procedural brush strokes behind the mouse
cursor in a desktop window.

Parameters are read by package config; the most common ones may be given as
flags:

	smear --variant=wave --fps=30

Press Escape to quit.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smear/config"
	"github.com/spf13/pflag"
)

// tracer writes to trace with key 'smear'
func tracer() tracing.Trace {
	return tracing.Select("smear")
}

func main() {
	cfg, err := config.Load("")
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %s\n", err)
		os.Exit(1)
	}
	if err := cfg.BindFlags(pflag.CommandLine); err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", err)
		os.Exit(1)
	}
	pflag.Parse()
	g, err := NewGame(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to set up: %s\n", err)
		os.Exit(1)
	}
	defer g.Close()
	if err := g.Run(); err != nil && !errors.Is(err, ebiten.Termination) {
		tracer().Errorf("error running smear: %v", err)
		os.Exit(1)
	}
}
