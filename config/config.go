/*
Package config loads the parameters of smear hosts.

Values are looked up in this order: command line flags bound with BindFlags,
environment variables prefixed with SMEAR_ (dots in keys become underscores,
e.g. SMEAR_STROKE_STEPS), the file config/config.<env>.yaml below the project
root, and built-in defaults.

BSD License

Copyright (c) Norbert Pillmayer

All rights reserved.

Please refer to the license file for more information.
*/
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/smear/render"
	"github.com/npillmayer/smear/scene"
	"github.com/npillmayer/smear/stroke"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

// tracer writes to trace with key 'config'
func tracer() tracing.Trace {
	return tracing.Select("config")
}

const keyEnv = "ENV"
const envLocal = "local"
const envPrefix = "SMEAR"

// ErrBadOption indicates a configuration value which is out of range or
// cannot be parsed.
var ErrBadOption = errors.New("invalid configuration value")

// Configuration keys.
const (
	KeyWidth            = "window.width"
	KeyHeight           = "window.height"
	KeyTitle            = "window.title"
	KeyVariant          = "stroke.variant"
	KeySize             = "stroke.size"
	KeyDuration         = "stroke.duration"
	KeySteps            = "stroke.steps"
	KeyBulge            = "stroke.bulge"
	KeyCurve            = "stroke.curve"
	KeyColorPolicy      = "stroke.colors"
	KeyFPS              = "scene.fps"
	KeyHistory          = "scene.history"
	KeyInterval         = "scene.interval"
	KeyMaxPerTick       = "scene.max_per_tick"
	KeySeed             = "scene.seed"
	KeyCrinkleFrequency = "crinkle.frequency"
	KeyCrinkleAmplitude = "crinkle.amplitude"
	KeyBackground       = "colors.background"
	KeyPalette          = "colors.palette"
)

func setDefaults(v *viper.Viper) {
	v.SetDefault(KeyWidth, 800)
	v.SetDefault(KeyHeight, 600)
	v.SetDefault(KeyTitle, "smear")
	v.SetDefault(KeyVariant, "fan")
	v.SetDefault(KeySize, 2.0)
	v.SetDefault(KeyDuration, 0.35)
	v.SetDefault(KeySteps, 10)
	v.SetDefault(KeyBulge, 0.01)
	v.SetDefault(KeyCurve, 20.0)
	v.SetDefault(KeyColorPolicy, "random")
	v.SetDefault(KeyFPS, 10)
	v.SetDefault(KeyHistory, 20)
	v.SetDefault(KeyInterval, 20*time.Millisecond)
	v.SetDefault(KeyMaxPerTick, 5)
	v.SetDefault(KeySeed, 0)
	v.SetDefault(KeyCrinkleFrequency, 0.1)
	v.SetDefault(KeyCrinkleAmplitude, 5.0)
	v.SetDefault(KeyBackground, stroke.Background)
	v.SetDefault(KeyPalette, stroke.DefaultColors)
}

// Config holds the parameters of a host.
type Config struct {
	config *viper.Viper
}

// Load reads the configuration for environment env. If env is empty, it is
// taken from $ENV, defaulting to "local". A missing configuration file is not
// an error; defaults and the environment are used instead.
func Load(env string) (*Config, error) {
	if len(env) == 0 {
		if env = os.Getenv(keyEnv); len(env) == 0 {
			env = envLocal
		}
	}
	v := viper.New()
	setDefaults(v)
	if configPath, err := getConfigPath(env); err == nil {
		v.SetConfigFile(configPath)
		if err := v.ReadInConfig(); err != nil {
			return nil, fmt.Errorf("config: reading %s: %w", configPath, err)
		}
		tracer().Infof("config: using %s", configPath)
	} else {
		tracer().Infof("config: %v, using defaults and environment", err)
	}
	v.SetEnvPrefix(envPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()
	return &Config{config: v}, nil
}

// BindFlags defines command line flags for the most common parameters and
// binds them, so that flags given on the command line take precedence.
func (c *Config) BindFlags(fs *pflag.FlagSet) error {
	fs.Int("width", c.config.GetInt(KeyWidth), "width of the canvas")
	fs.Int("height", c.config.GetInt(KeyHeight), "height of the canvas")
	fs.String("variant", c.config.GetString(KeyVariant), "stroke variant (fan|wave)")
	fs.Int("steps", c.config.GetInt(KeySteps), "samples per stroke")
	fs.Float64("size", c.config.GetFloat64(KeySize), "stroke size")
	fs.Int("fps", c.config.GetInt(KeyFPS), "ticks per second")
	fs.Uint64("seed", c.config.GetUint64(KeySeed), "random seed, 0 for a random seed")
	for flag, key := range map[string]string{
		"width":   KeyWidth,
		"height":  KeyHeight,
		"variant": KeyVariant,
		"steps":   KeySteps,
		"size":    KeySize,
		"fps":     KeyFPS,
		"seed":    KeySeed,
	} {
		if err := c.config.BindPFlag(key, fs.Lookup(flag)); err != nil {
			return fmt.Errorf("config: binding flag %s: %w", flag, err)
		}
	}
	return nil
}

// Set overrides a value.
func (c *Config) Set(key string, value any) {
	c.config.Set(key, value)
}

func (c *Config) GetWindowWidth() int {
	return c.config.GetInt(KeyWidth)
}

func (c *Config) GetWindowHeight() int {
	return c.config.GetInt(KeyHeight)
}

func (c *Config) GetWindowTitle() string {
	return c.config.GetString(KeyTitle)
}

func (c *Config) GetFPS() int {
	return c.config.GetInt(KeyFPS)
}

// GetSeed returns the configured random seed. A seed of 0 is replaced by the
// current time.
func (c *Config) GetSeed() uint64 {
	if seed := c.config.GetUint64(KeySeed); seed != 0 {
		return seed
	}
	return uint64(time.Now().UnixNano())
}

// GetDuration returns the duration of a single animation phase.
func (c *Config) GetDuration() time.Duration {
	return time.Duration(c.config.GetFloat64(KeyDuration) * float64(time.Second))
}

func (c *Config) GetVariant() (stroke.Variant, error) {
	switch strings.ToLower(c.config.GetString(KeyVariant)) {
	case "fan", "":
		return stroke.Fan, nil
	case "wave":
		return stroke.Wave, nil
	}
	return stroke.Fan, fmt.Errorf("%w: variant %q", ErrBadOption, c.config.GetString(KeyVariant))
}

func (c *Config) GetColorPolicy() (stroke.ColorPolicy, error) {
	switch strings.ToLower(c.config.GetString(KeyColorPolicy)) {
	case "random", "":
		return stroke.RandomColor, nil
	case "roundrobin", "round-robin":
		return stroke.RoundRobin, nil
	}
	return stroke.RandomColor, fmt.Errorf("%w: color policy %q", ErrBadOption, c.config.GetString(KeyColorPolicy))
}

// GetPalette parses the palette. In the environment, colors are separated
// by semicolons.
func (c *Config) GetPalette() (stroke.Palette, error) {
	var raw []string
	if s, ok := c.config.Get(KeyPalette).(string); ok {
		raw = strings.Split(s, ";")
	} else {
		raw = c.config.GetStringSlice(KeyPalette)
	}
	var specs []string
	for _, part := range raw {
		if part = strings.TrimSpace(part); part != "" {
			specs = append(specs, part)
		}
	}
	p, err := stroke.ParsePalette(specs...)
	if err != nil {
		return nil, fmt.Errorf("config: palette: %w", err)
	}
	return p, nil
}

// SceneOptions assembles the options of a scene from the configuration.
func (c *Config) SceneOptions() (scene.Options, error) {
	opts := scene.DefaultOptions()
	var err error
	if opts.Stroke.Variant, err = c.GetVariant(); err != nil {
		return opts, err
	}
	if opts.Stroke.Colors, err = c.GetColorPolicy(); err != nil {
		return opts, err
	}
	if opts.Stroke.Palette, err = c.GetPalette(); err != nil {
		return opts, err
	}
	steps := c.config.GetInt(KeySteps)
	size := c.config.GetFloat64(KeySize)
	fps := c.config.GetInt(KeyFPS)
	d := c.GetDuration()
	switch {
	case steps < 1:
		return opts, fmt.Errorf("%w: steps %d", ErrBadOption, steps)
	case size <= 0:
		return opts, fmt.Errorf("%w: size %g", ErrBadOption, size)
	case fps < 1:
		return opts, fmt.Errorf("%w: fps %d", ErrBadOption, fps)
	case d <= 0:
		return opts, fmt.Errorf("%w: duration %s", ErrBadOption, d)
	}
	opts.Stroke.Steps = steps
	opts.Stroke.Size = size
	opts.Stroke.Bulge = c.config.GetFloat64(KeyBulge)
	opts.Stroke.Curve = c.config.GetFloat64(KeyCurve)
	opts.Stroke.Grow, opts.Stroke.Fade, opts.Stroke.Stagger = d, d, d
	opts.Outline.Size = size
	opts.FPS = fps
	opts.HistorySize = c.config.GetInt(KeyHistory)
	opts.GenerateInterval = c.config.GetDuration(KeyInterval)
	opts.MaxPerTick = c.config.GetInt(KeyMaxPerTick)
	return opts, nil
}

// RenderOptions assembles the options of the render sinks.
func (c *Config) RenderOptions() (render.Options, error) {
	opts := render.DefaultOptions(c.GetWindowWidth(), c.GetWindowHeight())
	bg, err := stroke.ParseColor(c.config.GetString(KeyBackground))
	if err != nil {
		return opts, fmt.Errorf("config: background: %w", err)
	}
	opts.Background = bg
	opts.CrinkleFrequency = c.config.GetFloat64(KeyCrinkleFrequency)
	opts.CrinkleAmplitude = c.config.GetFloat64(KeyCrinkleAmplitude)
	return opts, nil
}

func getProjectRoot() (string, error) {
	currentDir, err := os.Getwd()
	if err != nil {
		return "", fmt.Errorf("failed to get current working directory: %w", err)
	}
	for {
		configDir := filepath.Join(currentDir, "config")
		if info, err := os.Stat(configDir); err == nil && info.IsDir() {
			return currentDir, nil
		}
		parent := filepath.Dir(currentDir)
		if parent == currentDir {
			break
		}
		currentDir = parent
	}
	return "", fmt.Errorf("could not find project root (directory containing 'config' folder)")
}

func getConfigPath(env string) (string, error) {
	configFile := fmt.Sprintf("config.%s.yaml", env)
	projectRoot, err := getProjectRoot()
	if err != nil {
		return "", err
	}
	configPath := filepath.Join(projectRoot, "config", configFile)
	if _, err := os.Stat(configPath); err != nil {
		return "", fmt.Errorf("config file does not exist: %s", configPath)
	}
	return configPath, nil
}
