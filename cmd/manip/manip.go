// Copyright (c) 2025, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Command manip plays a scripted session of pointer input through the
// transform gizmo and selection of a scene, and prints the final
// transforms of the scene nodes as TOML.
package main

import (
	"fmt"
	"log/slog"

	"cogentcore.org/core/cli"
)

//go:generate core generate

// Config is the configuration information for the manip cli.
type Config struct {

	// Session is the TOML session file to play.
	Session string `posarg:"0" required:"-"`

	// Steps are more steps to play after those of the session,
	// as TOML [[Steps]] tables.
	Steps string `flag:"s,steps"`

	// Debug logs every step and event.
	Debug bool `flag:"d,debug"`
}

func main() {
	opts := cli.DefaultOptions("manip", "Plays scripted pointer input through a transform gizmo and prints the resulting transforms.")
	cli.Run(opts, &Config{}, Run)
}

// Run plays the session and prints the result.
func Run(c *Config) error { //cli:cmd -root
	if c.Debug {
		slog.SetLogLoggerLevel(slog.LevelDebug)
	}
	s := NewSession()
	if c.Session != "" {
		var err error
		s, err = OpenSession(c.Session)
		if err != nil {
			return err
		}
	}
	if c.Steps != "" {
		if err := s.AddSteps(c.Steps); err != nil {
			return err
		}
	}
	pl, err := NewPlayer(s)
	if err != nil {
		return err
	}
	if err := pl.Play(); err != nil {
		return err
	}
	b, err := pl.Result().Marshal()
	if err != nil {
		return err
	}
	fmt.Print(string(b))
	return nil
}
