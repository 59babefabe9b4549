// seehuhn.de/go/coverage - analytic coverage rasterization
// Copyright (C) 2026  Jochen Voss <voss@seehuhn.de>
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU General Public License for more details.
//
// You should have received a copy of the GNU General Public License
// along with this program.  If not, see <https://www.gnu.org/licenses/>.

// Command render runs a rendering job and writes the resulting images.
//
// Usage:
//
//	render [-job job.yaml] [-list] [scene ...]
//
// Without a job file, the default settings are used.  Scene names given
// on the command line replace the scene list of the job.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"seehuhn.de/go/coverage"
	"seehuhn.de/go/coverage/job"
	"seehuhn.de/go/coverage/scenes"
)

func main() {
	jobFile := flag.String("job", "", "job description (YAML)")
	list := flag.Bool("list", false, "list the available scenes and exit")
	flag.Parse()

	if *list {
		for _, name := range scenes.Names() {
			fmt.Println(name)
		}
		return
	}

	if err := run(*jobFile, flag.Args()); err != nil {
		fmt.Fprintln(os.Stderr, "render:", err)
		os.Exit(1)
	}
}

func run(jobFile string, names []string) error {
	cfg := job.Defaults()
	if jobFile != "" {
		var err error
		cfg, err = job.Load(jobFile)
		if err != nil {
			return err
		}
	}
	if len(names) > 0 {
		cfg.Scenes = names
	}

	log, closeLog, err := cfg.Logging.NewLogger(os.Stderr)
	if err != nil {
		return err
	}
	defer closeLog()
	coverage.SetLogger(log)

	j, err := cfg.Build()
	if err != nil {
		return err
	}
	j.Log = log

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	files, err := j.Run(ctx)
	if err != nil {
		return err
	}
	log.Info("done", slog.Int("images", len(files)), slog.String("output", cfg.Output))
	return nil
}
