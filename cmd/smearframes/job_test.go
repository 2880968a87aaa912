package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/npillmayer/smear/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLissajousStaysOnCanvas(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	p := Lissajous(200, 100, 50)
	for i := 0; i < 120; i++ {
		v, ok := p.Position()
		require.True(t, ok)
		assert.True(t, v.X >= 0 && v.X <= 200, "x=%g", v.X)
		assert.True(t, v.Y >= 0 && v.Y <= 100, "y=%g", v.Y)
	}
}

func testConfig(t *testing.T) *config.Config {
	cfg, err := config.Load("nonexistent")
	require.NoError(t, err)
	cfg.Set(config.KeyWidth, 120)
	cfg.Set(config.KeyHeight, 90)
	cfg.Set(config.KeySeed, 7)
	return cfg
}

func TestJobWritesFrames(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	for _, format := range []string{"svg", "png"} {
		dir := t.TempDir()
		job := Job{Frames: 4, Format: format, Dir: dir}
		require.NoError(t, job.Run(testConfig(t)))
		files, err := filepath.Glob(filepath.Join(dir, "frame*."+format))
		require.NoError(t, err)
		assert.Len(t, files, 4)
	}
}

func TestJobWritesPDF(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	dir := t.TempDir()
	job := Job{Frames: 3, Format: "pdf", Dir: dir}
	require.NoError(t, job.Run(testConfig(t)))
	info, err := os.Stat(filepath.Join(dir, "frames.pdf"))
	require.NoError(t, err)
	assert.Greater(t, info.Size(), int64(0))
}

func TestJobUnknownFormat(t *testing.T) {
	teardown := gotestingadapter.RedirectTracing(t)
	defer teardown()
	job := Job{Frames: 1, Format: "gif", Dir: t.TempDir()}
	assert.ErrorIs(t, job.Run(testConfig(t)), ErrUnknownFormat)
}
