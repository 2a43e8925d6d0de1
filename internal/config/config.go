// Package config reads the optional YAML file that overrides a lab's built-in settings.
package config

import (
	"errors"
	"fmt"
	"image/color"
	"io/fs"
	"os"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
	"gopkg.in/yaml.v3"

	"github.com/paperboard/labs3d/internal/input"
)

// Config is everything a lab lets a user change without recompiling.
type Config struct {
	Window  Window            `yaml:"window"`
	Assets  string            `yaml:"assets"`
	Camera  Camera            `yaml:"camera"`
	Keys    map[string]string `yaml:"keys"`
	Models  map[string]string `yaml:"models"`
	Texture string            `yaml:"texture"`
}

type Window struct {
	Title      string `yaml:"title"`
	Width      int    `yaml:"width"`
	Height     int    `yaml:"height"`
	VSync      bool   `yaml:"vsync"`
	ClearColor Color  `yaml:"clear_color"`
}

type Camera struct {
	MoveStep float32 `yaml:"move_step"`
	TurnStep float32 `yaml:"turn_step"`
	Near     float32 `yaml:"near"`
	Far      float32 `yaml:"far"`
}

// Load reads path over defaults. An empty path or a missing file yields the
// defaults unchanged.
func Load(path string, defaults Config) (Config, error) {
	if path == "" {
		return defaults, defaults.Validate()
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return defaults, defaults.Validate()
	}
	if err != nil {
		return Config{}, fmt.Errorf("read config: %w", err)
	}
	return Parse(data, defaults)
}

// Parse decodes YAML over a copy of defaults.
func Parse(data []byte, defaults Config) (Config, error) {
	cfg := defaults.clone()
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("parse config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Validate rejects settings no lab can run with.
func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return fmt.Errorf("config: window size %dx%d must be positive", c.Window.Width, c.Window.Height)
	}
	if c.Camera.Near <= 0 || c.Camera.Far <= c.Camera.Near {
		return fmt.Errorf("config: camera near %v / far %v must satisfy 0 < near < far", c.Camera.Near, c.Camera.Far)
	}
	if _, err := c.Keymap(input.Keymap{}); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Keymap applies the key overrides to a copy of base.
func (c Config) Keymap(base input.Keymap) (input.Keymap, error) {
	k := base.Clone()
	if err := k.Override(c.Keys); err != nil {
		return nil, err
	}
	return k, nil
}

// Model returns the configured path for a named model, or def.
func (c Config) Model(name, def string) string {
	if p, ok := c.Models[name]; ok && p != "" {
		return p
	}
	return def
}

func (c Config) clone() Config {
	out := c
	out.Keys = cloneMap(c.Keys)
	out.Models = cloneMap(c.Models)
	return out
}

func cloneMap(m map[string]string) map[string]string {
	if m == nil {
		return nil
	}
	out := make(map[string]string, len(m))
	for k, v := range m {
		out[k] = v
	}
	return out
}

// Color is an opaque clear colour written as "#rrggbb" or one of the named
// colours the labs use.
type Color struct {
	colorful.Color
}

var named = map[string]string{
	"gold":        "#ffd700",
	"cadetblue":   "#5f9ea0",
	"dodgerblue":  "#1e90ff",
	"forestgreen": "#228b22",
	"sienna":      "#a0522d",
	"gray":        "#808080",
	"black":       "#000000",
	"white":       "#ffffff",
}

// ParseColor accepts a hex triplet or a named colour.
func ParseColor(s string) (Color, error) {
	key := strings.ToLower(strings.TrimSpace(s))
	if hex, ok := named[key]; ok {
		key = hex
	}
	c, err := colorful.Hex(key)
	if err != nil {
		return Color{}, fmt.Errorf("colour %q: %w", s, err)
	}
	return Color{c}, nil
}

// MustColor is ParseColor for compile-time constants.
func MustColor(s string) Color {
	c, err := ParseColor(s)
	if err != nil {
		panic(err)
	}
	return c
}

func (c *Color) UnmarshalYAML(n *yaml.Node) error {
	var s string
	if err := n.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return err
	}
	*c = parsed
	return nil
}

func (c Color) MarshalYAML() (any, error) { return c.Hex(), nil }

// Floats returns the colour as GL clear-colour floats with full alpha.
func (c Color) Floats() [4]float32 {
	return [4]float32{float32(c.R), float32(c.G), float32(c.B), 1}
}

// NRGBA converts to an 8-bit colour.
func (c Color) NRGBA() color.NRGBA {
	r, g, b := c.Clamped().RGB255()
	return color.NRGBA{r, g, b, 255}
}
