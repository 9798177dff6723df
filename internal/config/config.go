// Package config loads rotladder settings from a TOML file.
//
// Defaults are applied before decoding, so a file only needs the keys it
// changes. Unknown keys are rejected.
//
//	nodes = 5
//	period_ms = 50
//	mode = "chain"
//
//	[window]
//	title = "Rot Ladder"
//	width = 480
//	height = 640
//	show_fps = false
//
//	[style]
//	fore = "#388E3C"
//	back = "#212121"
//	stroke_factor = 90
//	size_factor = 3
//	ease = "linear"
package config

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/tanema/gween/ease"

	"github.com/phanxgames/rotladder"
)

// Config is the decoded configuration file.
type Config struct {
	Nodes    int    `toml:"nodes"`
	PeriodMS int    `toml:"period_ms"`
	Mode     string `toml:"mode"`
	Window   Window `toml:"window"`
	Style    Style  `toml:"style"`
}

// Window holds the ebiten window settings.
type Window struct {
	Title   string `toml:"title"`
	Width   int    `toml:"width"`
	Height  int    `toml:"height"`
	ShowFPS bool   `toml:"show_fps"`
}

// Style holds glyph colors and proportions.
type Style struct {
	Fore         string  `toml:"fore"`
	Back         string  `toml:"back"`
	StrokeFactor float64 `toml:"stroke_factor"`
	SizeFactor   float64 `toml:"size_factor"`
	Ease         string  `toml:"ease"`
}

// easings maps config names to gween easing functions.
var easings = map[string]ease.TweenFunc{
	"linear":       ease.Linear,
	"in-quad":      ease.InQuad,
	"out-quad":     ease.OutQuad,
	"in-out-quad":  ease.InOutQuad,
	"in-out-cubic": ease.InOutCubic,
	"in-out-sine":  ease.InOutSine,
	"out-bounce":   ease.OutBounce,
	"out-elastic":  ease.OutElastic,
	"out-back":     ease.OutBack,
}

// EaseNames returns the accepted style.ease values, sorted.
func EaseNames() []string {
	names := make([]string, 0, len(easings))
	for name := range easings {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Nodes:    rotladder.DefaultNodes,
		PeriodMS: int(rotladder.DefaultPeriod / time.Millisecond),
		Mode:     rotladder.SweepChain.String(),
		Window: Window{
			Title:  "Rot Ladder",
			Width:  480,
			Height: 640,
		},
		Style: Style{
			Fore:         "#388E3C",
			Back:         "#212121",
			StrokeFactor: rotladder.DefaultStyle.StrokeFactor,
			SizeFactor:   rotladder.DefaultStyle.SizeFactor,
			Ease:         "linear",
		},
	}
}

// Load reads path on top of Default and validates the result.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return Config{}, fmt.Errorf("load config %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("load config %s: %w", path, err)
	}
	return cfg, nil
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	if c.Nodes < 1 {
		return fmt.Errorf("nodes must be at least 1, got %d", c.Nodes)
	}
	if c.PeriodMS < 1 {
		return fmt.Errorf("period_ms must be positive, got %d", c.PeriodMS)
	}
	if _, err := rotladder.ParseSweepMode(c.Mode); err != nil {
		return err
	}
	if c.Window.Width < 0 || c.Window.Height < 0 {
		return fmt.Errorf("window size must not be negative, got %dx%d", c.Window.Width, c.Window.Height)
	}
	if c.Style.StrokeFactor <= 0 || c.Style.SizeFactor <= 0 {
		return fmt.Errorf("style factors must be positive")
	}
	if _, ok := easings[strings.ToLower(c.Style.Ease)]; !ok && c.Style.Ease != "" {
		return fmt.Errorf("unknown ease %q (want one of %s)", c.Style.Ease, strings.Join(EaseNames(), ", "))
	}
	if _, err := rotladder.ParseHexColor(c.Style.Fore); err != nil {
		return fmt.Errorf("style.fore: %w", err)
	}
	if _, err := rotladder.ParseHexColor(c.Style.Back); err != nil {
		return fmt.Errorf("style.back: %w", err)
	}
	return nil
}

// Options converts the config to renderer options. The config must be valid.
func (c Config) Options() rotladder.Options {
	mode, _ := rotladder.ParseSweepMode(c.Mode)
	return rotladder.Options{
		Nodes:  c.Nodes,
		Period: time.Duration(c.PeriodMS) * time.Millisecond,
		Mode:   mode,
	}
}

// RunConfig converts the config to window settings.
func (c Config) RunConfig() (rotladder.RunConfig, error) {
	fore, err := rotladder.ParseHexColor(c.Style.Fore)
	if err != nil {
		return rotladder.RunConfig{}, fmt.Errorf("style.fore: %w", err)
	}
	back, err := rotladder.ParseHexColor(c.Style.Back)
	if err != nil {
		return rotladder.RunConfig{}, fmt.Errorf("style.back: %w", err)
	}
	return rotladder.RunConfig{
		Title:   c.Window.Title,
		Width:   c.Window.Width,
		Height:  c.Window.Height,
		ShowFPS: c.Window.ShowFPS,
		Style: rotladder.Style{
			Fore:         fore,
			Back:         back,
			StrokeFactor: c.Style.StrokeFactor,
			SizeFactor:   c.Style.SizeFactor,
			Ease:         easings[strings.ToLower(c.Style.Ease)],
		},
	}, nil
}
