// Package config loads the glmesh demo configuration from a TOML file.
//
// Example file:
//
//	[window]
//	width = 800
//	height = 800
//	title = "glmesh"
//	vsync = true
//
//	[render]
//	clear_color = [0.07, 0.13, 0.17, 1.0]
//	frames = 0
//
//	[shaders]
//	vertex = "shaders/default.vert"
//	fragment = "shaders/default.frag"
//	# or: wgsl = "shaders/default.wgsl"
package config

import (
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/gogpu/gputypes"
)

// ErrInvalid is wrapped by every validation error.
var ErrInvalid = errors.New("config: invalid configuration")

// Config is the demo configuration.
type Config struct {
	Window  Window  `toml:"window"`
	Render  Render  `toml:"render"`
	Shaders Shaders `toml:"shaders"`
}

// Window describes the window the demo opens.
type Window struct {
	Width  int    `toml:"width"`
	Height int    `toml:"height"`
	Title  string `toml:"title"`
	VSync  bool   `toml:"vsync"`
}

// Render holds per-frame settings.
type Render struct {
	// ClearColor is RGBA, each component in [0, 1].
	ClearColor [4]float64 `toml:"clear_color"`
	// Frames stops the loop after that many frames. Zero runs until the
	// window is closed.
	Frames int `toml:"frames"`
}

// Shaders selects the shader sources. Empty fields use the embedded
// defaults. Vertex and Fragment go together; WGSL replaces both.
type Shaders struct {
	Vertex   string `toml:"vertex"`
	Fragment string `toml:"fragment"`
	WGSL     string `toml:"wgsl"`
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Window: Window{
			Width:  800,
			Height: 800,
			Title:  "glmesh",
			VSync:  true,
		},
		Render: Render{
			ClearColor: [4]float64{0.07, 0.13, 0.17, 1.0},
		},
	}
}

// Load reads the file at path over the defaults and validates the result.
// Unknown keys are an error.
func Load(path string) (Config, error) {
	cfg := Default()
	md, err := toml.DecodeFile(path, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Parse is Load for TOML text already in memory.
func Parse(data string) (Config, error) {
	cfg := Default()
	md, err := toml.Decode(data, &cfg)
	if err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := checkUndecoded(md); err != nil {
		return Config{}, fmt.Errorf("config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

func checkUndecoded(md toml.MetaData) error {
	undecoded := md.Undecoded()
	if len(undecoded) == 0 {
		return nil
	}
	keys := make([]string, len(undecoded))
	for i, k := range undecoded {
		keys[i] = k.String()
	}
	sort.Strings(keys)
	return fmt.Errorf("%w: unknown keys %s", ErrInvalid, strings.Join(keys, ", "))
}

// Validate reports the first invalid setting.
func (c Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Render.Frames < 0:
		return fmt.Errorf("%w: negative frame count %d", ErrInvalid, c.Render.Frames)
	case (c.Shaders.Vertex == "") != (c.Shaders.Fragment == ""):
		return fmt.Errorf("%w: shaders.vertex and shaders.fragment must be set together", ErrInvalid)
	case c.Shaders.WGSL != "" && c.Shaders.Vertex != "":
		return fmt.Errorf("%w: shaders.wgsl excludes shaders.vertex and shaders.fragment", ErrInvalid)
	}
	for i, v := range c.Render.ClearColor {
		if v < 0 || v > 1 {
			return fmt.Errorf("%w: clear_color[%d] = %v outside [0, 1]", ErrInvalid, i, v)
		}
	}
	return nil
}

// ClearColor returns the configured clear color.
func (c Config) ClearColor() gputypes.Color {
	rgba := c.Render.ClearColor
	return gputypes.Color{R: rgba[0], G: rgba[1], B: rgba[2], A: rgba[3]}
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}
