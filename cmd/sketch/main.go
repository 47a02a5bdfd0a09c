// Command sketch lists the blog sketches and runs one into a fresh scene.
//
// Usage:
//
//	sketch -list
//	sketch -run 2024-11-10/sketch-2 [-format yaml|text] [-repeat n] [-config sketch.yaml]
//
// Configuration is read from the optional -config YAML file and SKETCH_*
// environment variables; -format overrides both.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/sghaida/sketchbook/blog"
	"github.com/sghaida/sketchbook/config"
	"github.com/sghaida/sketchbook/renderer"
	"github.com/sghaida/sketchbook/scene"
)

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("sketch", flag.ContinueOnError)
	fs.SetOutput(stderr)

	cfgPath := fs.String("config", "", "path to YAML config file")
	list := fs.Bool("list", false, "list registered sketches")
	name := fs.String("run", "", "name of the sketch to run")
	format := fs.String("format", "", "output format: yaml or text (overrides config)")
	repeat := fs.Int("repeat", 1, "number of times to invoke the sketch setup on the same scene")

	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load(*cfgPath)
	if err != nil {
		return err
	}
	if strings.TrimSpace(*format) != "" {
		cfg.Format = strings.ToLower(*format)
		if err := cfg.Validate(); err != nil {
			return err
		}
	}

	cat := blog.Catalog()

	switch {
	case *list && *name != "":
		return errors.New("use only one of -list or -run")
	case *list:
		for _, n := range cat.Names() {
			if _, err := fmt.Fprintln(stdout, n); err != nil {
				return err
			}
		}
		return nil
	case *name != "":
		sk, err := cat.Resolve(*name)
		if err != nil {
			return err
		}
		logOut := stderr
		if cfg.Quiet {
			logOut = io.Discard
		}
		logger := log.New(logOut, cfg.LogPrefix, 0)
		logger.Printf("env %s: running %q", cfg.Env, *name)

		s, err := sk.Run(ctx, *name, renderer.WithLogger(logger), renderer.WithRepeat(*repeat))
		if err != nil {
			return err
		}
		return write(stdout, s, cfg.Format)
	default:
		return errors.New("missing -list or -run")
	}
}

func write(w io.Writer, s *scene.Scene, format string) error {
	snap := s.Snapshot()
	switch format {
	case config.FormatText:
		_, err := io.WriteString(w, snap.Text())
		return err
	default:
		out, err := snap.YAML()
		if err != nil {
			return err
		}
		_, err = w.Write(out)
		return err
	}
}

func main() {
	if err := run(context.Background(), os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return
		}
		log.Fatal(err)
	}
}
