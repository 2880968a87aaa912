package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/npillmayer/smear"
	"github.com/npillmayer/smear/config"
	"github.com/npillmayer/smear/input"
	"github.com/npillmayer/smear/render"
	"github.com/npillmayer/smear/scene"
	"github.com/npillmayer/smear/stroke"
)

// ErrUnknownFormat is returned for output formats other than svg, png or pdf.
var ErrUnknownFormat = errors.New("unknown output format")

// Job renders a number of frames to a directory.
type Job struct {
	Frames int
	Format string
	Dir    string
}

// Lissajous returns a pointer moving along a Lissajous figure inside a canvas
// of the given size, advancing by one step per sample.
func Lissajous(width, height, steps int) input.Pointer {
	if steps < 1 {
		steps = 1
	}
	c := smear.V(float64(width)/2, float64(height)/2)
	r := c.Scale(0.8)
	i := 0
	return input.PointerFunc(func() (smear.Vector, bool) {
		t := float64(i) / float64(steps)
		i++
		return c.Add(smear.V(r.X*smear.TauSin(3*t), r.Y*smear.TauSin(2*t))), true
	})
}

// Run renders the frames of a scene configured by cfg.
func (job Job) Run(cfg *config.Config) error {
	sopts, err := cfg.SceneOptions()
	if err != nil {
		return err
	}
	ropts, err := cfg.RenderOptions()
	if err != nil {
		return err
	}
	if job.Format != "svg" && job.Format != "png" && job.Format != "pdf" {
		return fmt.Errorf("%w: %q", ErrUnknownFormat, job.Format)
	}
	if err := os.MkdirAll(job.Dir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	sc := scene.New(sopts, stroke.NewSeeded(cfg.GetSeed()))
	defer sc.Close()
	pointer := Lissajous(ropts.Width, ropts.Height, 100)
	dt := sopts.TickDuration()
	var pages []scene.Frame
	for n := 0; n < job.Frames; n++ {
		sc.Tick(dt, pointer)
		f := sc.Frame()
		if job.Format == "pdf" {
			pages = append(pages, f)
			continue
		}
		name := filepath.Join(job.Dir, fmt.Sprintf("frame%04d.%s", f.Tick, job.Format))
		err := writeFile(name, func(w io.Writer) error {
			if job.Format == "png" {
				return render.PNG(w, f, ropts)
			}
			return render.SVG(w, f, ropts)
		})
		if err != nil {
			return err
		}
	}
	if job.Format == "pdf" && len(pages) > 0 {
		name := filepath.Join(job.Dir, "frames.pdf")
		if err := writeFile(name, func(w io.Writer) error {
			return render.PDF(w, ropts, pages...)
		}); err != nil {
			return err
		}
	}
	tracer().Infof("smearframes: wrote %d frames to %s", job.Frames, job.Dir)
	return nil
}

func writeFile(name string, write func(io.Writer) error) (err error) {
	f, err := os.Create(name)
	if err != nil {
		return fmt.Errorf("creating %s: %w", name, err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("closing %s: %w", name, cerr)
		}
	}()
	return write(f)
}
