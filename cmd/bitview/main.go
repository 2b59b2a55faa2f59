// Command bitview previews monochrome guide images in the terminal.
//
// Usage:
//
//	bitview [-config bitpaint.toml] [image-or-directory]
package main

import (
	"flag"
	"log"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/gogpu/bitpaint/config"
	"github.com/gogpu/bitpaint/internal/preview"
)

func main() {
	cfgPath := flag.String("config", "", "configuration file (.toml, .yaml); created with defaults if missing")
	flag.Parse()

	cfg := config.Default()
	if *cfgPath != "" {
		var err error
		if cfg, err = config.LoadOrCreate(*cfgPath); err != nil {
			log.Fatal(err)
		}
	}

	var m tea.Model
	switch arg := flag.Arg(0); {
	case arg == "":
		m = preview.New(cfg, cfg.Paths.Input)
	case isDir(arg):
		m = preview.New(cfg, arg)
	default:
		m = preview.NewWithPath(cfg, arg)
	}
	if _, err := tea.NewProgram(m, tea.WithAltScreen()).Run(); err != nil {
		log.Fatal(err)
	}
}

func isDir(path string) bool {
	fi, err := os.Stat(path)
	return err == nil && fi.IsDir()
}
