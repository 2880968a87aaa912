package config

import (
	"testing"
	"time"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smear/stroke"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefaults(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg, err := Load("nonexistent")
	require.NoError(t, err)
	assert.Equal(t, 800, cfg.GetWindowWidth())
	assert.Equal(t, 10, cfg.GetFPS())
	assert.Equal(t, 350*time.Millisecond, cfg.GetDuration())
	opts, err := cfg.SceneOptions()
	require.NoError(t, err)
	assert.Equal(t, 10, opts.Stroke.Steps)
	assert.Equal(t, stroke.Fan, opts.Stroke.Variant)
	assert.Equal(t, 0.01, opts.Stroke.Bulge)
	assert.Equal(t, 2.0, opts.Outline.Size)
	assert.Equal(t, 20*time.Millisecond, opts.GenerateInterval)
	assert.Equal(t, 20, opts.HistorySize)
	assert.Len(t, opts.Stroke.Palette, 5)
	assert.Equal(t, stroke.DefaultPalette(), opts.Stroke.Palette)
	ropts, err := cfg.RenderOptions()
	require.NoError(t, err)
	assert.Equal(t, 5.0, ropts.CrinkleAmplitude)
	assert.Equal(t, 600, ropts.Height)
}

func TestLocalFile(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg, err := Load("local")
	require.NoError(t, err)
	assert.Equal(t, "smear", cfg.GetWindowTitle())
	opts, err := cfg.SceneOptions()
	require.NoError(t, err)
	assert.Equal(t, 20*time.Millisecond, opts.GenerateInterval)
	assert.Equal(t, 5, opts.MaxPerTick)
}

func TestEnvironment(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	t.Setenv("SMEAR_STROKE_STEPS", "7")
	t.Setenv("SMEAR_STROKE_VARIANT", "wave")
	t.Setenv("SMEAR_COLORS_PALETTE", "#ff0000; hsl(120, 100%, 50%)")
	cfg, err := Load("nonexistent")
	require.NoError(t, err)
	opts, err := cfg.SceneOptions()
	require.NoError(t, err)
	assert.Equal(t, 7, opts.Stroke.Steps)
	assert.Equal(t, stroke.Wave, opts.Stroke.Variant)
	require.Len(t, opts.Stroke.Palette, 2)
	assert.Equal(t, "#ff0000", stroke.Hex(opts.Stroke.Palette[0]))
	assert.Equal(t, "#00ff00", stroke.Hex(opts.Stroke.Palette[1]))
}

func TestFlags(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg, err := Load("nonexistent")
	require.NoError(t, err)
	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	require.NoError(t, cfg.BindFlags(fs))
	require.NoError(t, fs.Parse([]string{"--steps=3", "--seed=99", "--width=320"}))
	assert.Equal(t, uint64(99), cfg.GetSeed())
	assert.Equal(t, 320, cfg.GetWindowWidth())
	opts, err := cfg.SceneOptions()
	require.NoError(t, err)
	assert.Equal(t, 3, opts.Stroke.Steps)
}

func TestBadValues(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	cfg, err := Load("nonexistent")
	require.NoError(t, err)
	cfg.Set(KeyVariant, "spiral")
	_, err = cfg.SceneOptions()
	assert.ErrorIs(t, err, ErrBadOption)
	cfg.Set(KeyVariant, "fan")
	cfg.Set(KeyPalette, []string{"chartreuse"})
	_, err = cfg.SceneOptions()
	assert.ErrorIs(t, err, stroke.ErrBadColor)
	cfg.Set(KeyPalette, []string{})
	_, err = cfg.SceneOptions()
	assert.ErrorIs(t, err, stroke.ErrEmptyPalette)
	cfg.Set(KeyPalette, stroke.DefaultColors)
	cfg.Set(KeySteps, 0)
	_, err = cfg.SceneOptions()
	assert.ErrorIs(t, err, ErrBadOption)
	cfg.Set(KeyBackground, "nope")
	_, err = cfg.RenderOptions()
	assert.ErrorIs(t, err, stroke.ErrBadColor)
}
