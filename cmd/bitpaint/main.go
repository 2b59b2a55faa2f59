// Command bitpaint generates monochrome guide images and combines them.
//
// Usage:
//
//	bitpaint [-config file] [-v] <command> [flags] [args]
//
// Commands:
//
//	pattern  rect | ellipse | bullseye | rbullseye | checker
//	shape    ngon | rect | star, optionally laid out on a grid or copied
//	op       and | or | xor | invert | edge | resize | crop | expand | rotate | paste
//	label    draw a text label onto an image
//	info     print size and pixel count of images
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/gogpu/bitpaint"
	"github.com/gogpu/bitpaint/config"
	"github.com/gogpu/bitpaint/convert"
)

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintln(os.Stderr, "bitpaint:", err)
		}
		os.Exit(1)
	}
}

// env carries what every command needs.
type env struct {
	cfg    config.Config
	stdout io.Writer
}

type command func(e *env, args []string) error

var commands = map[string]command{
	"pattern": runPattern,
	"shape":   runShape,
	"op":      runOp,
	"label":   runLabel,
	"info":    runInfo,
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("bitpaint", flag.ContinueOnError)
	fs.SetOutput(stderr)
	cfgPath := fs.String("config", "", "configuration file (.toml, .yaml); created with defaults if missing")
	verbose := fs.Bool("v", false, "log debug diagnostics")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: bitpaint [-config file] [-v] <pattern|shape|op|label|info> [flags] [args]")
		fs.PrintDefaults()
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.LoadOrCreate(*cfgPath); err != nil {
			return err
		}
	}

	level := slog.LevelInfo
	if *verbose || cfg.Debug {
		level = slog.LevelDebug
	}
	bitpaint.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
	defer bitpaint.SetLogger(nil)

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}
	cmd, ok := commands[fs.Arg(0)]
	if !ok {
		fs.Usage()
		return fmt.Errorf("unknown command %q", fs.Arg(0))
	}
	return cmd(&env{cfg: cfg, stdout: stdout}, fs.Args()[1:])
}

// newFlagSet returns a flag set for a sub command with -o registered.
func newFlagSet(name string) (*flag.FlagSet, *string) {
	fs := flag.NewFlagSet("bitpaint "+name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	out := fs.String("o", "", "output file; defaults to <output dir>/<name>.png")
	return fs, out
}

// parse parses args, reporting flag errors with the command name.
func parse(fs *flag.FlagSet, args []string) error {
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%s: %w", fs.Name(), err)
	}
	return nil
}

// outputPath resolves the -o flag against the configured output directory.
func (e *env) outputPath(out, name string) string {
	if out != "" {
		return out
	}
	return filepath.Join(e.cfg.Paths.Output, strings.ReplaceAll(name, " ", "-")+".png")
}

// save writes bm with the configured palette and reports the path.
func (e *env) save(path string, bm *bitpaint.Bitmap) error {
	p, err := e.cfg.Palette()
	if err != nil {
		return err
	}
	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	if err := convert.Save(path, bm, p, nil); err != nil {
		return err
	}
	fmt.Fprintf(e.stdout, "%s %dx%d\n", path, bm.Width(), bm.Height())
	return nil
}

// load reads an image file, resolving relative paths that do not exist
// against the configured input directory.
func (e *env) load(path string) (*bitpaint.Bitmap, error) {
	if _, err := os.Stat(path); err != nil && !filepath.IsAbs(path) {
		if alt := filepath.Join(e.cfg.Paths.Input, path); fileExists(alt) {
			path = alt
		}
	}
	bm, _, err := convert.Load(path, e.cfg.Render.Threshold)
	return bm, err
}

func fileExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

func runInfo(e *env, args []string) error {
	if len(args) == 0 {
		return errors.New("info: no input files")
	}
	for _, path := range args {
		bm, err := e.load(path)
		if err != nil {
			return err
		}
		total := bm.Width() * bm.Height()
		fmt.Fprintf(e.stdout, "%s %dx%d on=%d (%.1f%%)\n",
			path, bm.Width(), bm.Height(), bm.Count(), 100*float64(bm.Count())/float64(total))
	}
	return nil
}

func runLabel(e *env, args []string) error {
	fs, out := newFlagSet("label")
	text := fs.String("text", "", "label text")
	x := fs.Float64("x", 4, "baseline origin x in pixels")
	y := fs.Float64("y", 0, "baseline origin y in pixels; 0 places the text at the top")
	black := fs.Bool("black", false, "draw in Black instead of White")
	if err := parse(fs, args); err != nil {
		return err
	}
	if fs.NArg() != 1 || *text == "" {
		return errors.New("label: want -text and one input file")
	}
	bm, err := e.load(fs.Arg(0))
	if err != nil {
		return err
	}

	c := bm.Canvas()
	c.SetColorBool(!*black)
	oy := *y
	if oy == 0 {
		_, h := bitpaint.TextBounds(*text)
		oy = float64(h)
	}
	c.Text(bitpaint.V2(*x, oy), *text)

	name := strings.TrimSuffix(filepath.Base(fs.Arg(0)), filepath.Ext(fs.Arg(0))) + "-label"
	return e.save(e.outputPath(*out, name), c.Bitmap())
}
