package main

import (
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/ovidel/marquee/pkg/carousel"
	"github.com/ovidel/marquee/pkg/config"
)

const defaultConfigFile = "marquee.yaml"

func main() {
	// Handle subcommands before flag parsing.
	if len(os.Args) > 1 && os.Args[1] == "init" {
		initCmd := flag.NewFlagSet("init", flag.ExitOnError)
		initCmd.Usage = func() {
			fmt.Fprintf(os.Stderr, "Usage: marquee init [flags]\n\nCreate a marquee.yaml interactively.\n\nFlags:\n")
			initCmd.PrintDefaults()
		}
		out := initCmd.String("config", defaultConfigFile, "path to write the configuration to")
		_ = initCmd.Parse(os.Args[2:])

		if err := runInit(*out); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v\n", err)
			os.Exit(1)
		}

		return
	}

	flag.Usage = func() {
		fmt.Fprintf(os.Stderr, "Usage: marquee [flags] [image...]\n       marquee <command> [flags]\n\nFlags:\n")
		flag.PrintDefaults()
		fmt.Fprintf(os.Stderr, "\nCommands:\n  init    Create a marquee.yaml interactively\n")
	}

	configPath := flag.String("config", "", "path to configuration file (default: marquee.yaml)")
	envFile := flag.String("env", ".env", "path to .env file (ignored if missing)")
	cycleMS := flag.Int("cycle", 0, "autoplay interval in milliseconds (overrides the config)")
	flag.Parse()

	if err := loadDotEnv(*envFile); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}

	if err := run(*configPath, *cycleMS, flag.Args()); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, cycleMS int, srcs []string) error {
	cfg, err := resolveConfig(configPath, srcs)
	if err != nil {
		return err
	}

	if cycleMS > 0 {
		cfg.CycleMS = cycleMS
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	slides := make([]carousel.Slide, 0, len(cfg.Images))
	for _, img := range cfg.Images {
		slides = append(slides, carousel.NewSlide(img.Src, img.Title, img.Caption))
	}

	car := carousel.New(carousel.Options{Slides: slides, Cycle: cfg.Cycle()})
	model := newAppModel(car, newTheme(cfg.Style))

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err = p.Run()
	return err
}

// resolveConfig picks the configuration source. Priority: images given
// on the command line, then the explicit --config flag, then
// marquee.yaml in the working directory.
func resolveConfig(explicit string, srcs []string) (config.Config, error) {
	if len(srcs) > 0 {
		cfg := config.FromSources(srcs)
		// Command-line images still pick up styling from a config file
		// when one is around.
		if path := configFileAt(explicit); path != "" {
			if fileCfg, err := config.Load(path); err == nil {
				cfg.Style = fileCfg.Style
				cfg.CycleMS = fileCfg.CycleMS
			}
		}
		return cfg, nil
	}

	path := configFileAt(explicit)
	if path == "" {
		return config.Config{}, fmt.Errorf("no images: pass image files or create %s (marquee init)", defaultConfigFile)
	}

	return config.Load(path)
}

func configFileAt(explicit string) string {
	if explicit != "" {
		return explicit
	}
	if _, err := os.Stat(defaultConfigFile); err == nil {
		return defaultConfigFile
	}
	return ""
}
