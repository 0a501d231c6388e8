package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/charmbracelet/huh"
	"gopkg.in/yaml.v3"

	"github.com/ovidel/marquee/pkg/config"
)

// wizardAnswers collects the raw form input before it is shaped into a
// config.Config.
type wizardAnswers struct {
	Images     string // one path per line
	CycleMS    string // empty = default
	ThemeColor string
	Radius     bool
}

// runInit runs the interactive wizard and writes the result to outPath.
// An existing file is never overwritten.
func runInit(outPath string) error {
	if _, err := os.Stat(outPath); err == nil {
		return fmt.Errorf("%s already exists, remove it first or pass --config", outPath)
	}

	cfg, err := runWizard()
	if err != nil {
		return err
	}

	data, err := marshalWizardConfig(cfg)
	if err != nil {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil { //nolint:gosec // plain configuration, not a secret
		return fmt.Errorf("write %s: %w", outPath, err)
	}

	fmt.Printf("Wrote %s\n", outPath)

	return nil
}

func runWizard() (config.Config, error) {
	answers := wizardAnswers{ThemeColor: defaultThemeColor, Radius: true}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewText().
				Title("Image files").
				Description("One path per line.").
				Value(&answers.Images),
		),
		huh.NewGroup(
			huh.NewInput().
				Title(fmt.Sprintf("Autoplay interval in milliseconds (empty = %d)", config.DefaultCycleMS)).
				Value(&answers.CycleMS).
				Validate(validateOptionalPositiveInt),
			huh.NewInput().
				Title("Theme color (hex or ANSI index)").
				Value(&answers.ThemeColor),
			huh.NewConfirm().
				Title("Rounded frame corners?").
				Value(&answers.Radius),
		),
	)

	if err := form.Run(); err != nil {
		return config.Config{}, err
	}

	return answersToConfig(answers), nil
}

func answersToConfig(a wizardAnswers) config.Config {
	cfg := config.FromSources(splitImageLines(a.Images))

	if a.CycleMS != "" {
		cfg.CycleMS, _ = strconv.Atoi(a.CycleMS) // validated by the form
	}

	cfg.Style = config.StyleConfig{
		Radius:     a.Radius,
		ThemeColor: a.ThemeColor,
	}

	return cfg
}

// splitImageLines turns the multiline form field into a path list,
// dropping blank lines and surrounding whitespace.
func splitImageLines(s string) []string {
	var srcs []string
	for _, line := range strings.Split(s, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			srcs = append(srcs, line)
		}
	}
	return srcs
}

func validateOptionalPositiveInt(s string) error {
	if s == "" {
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil || n <= 0 {
		return fmt.Errorf("enter a positive whole number")
	}
	return nil
}

func marshalWizardConfig(cfg config.Config) ([]byte, error) {
	data, err := yaml.Marshal(cfg)
	if err != nil {
		return nil, fmt.Errorf("marshal config: %w", err)
	}
	return data, nil
}
