// Package compose turns a trait vector into a 40x52 lobster.
//
// Compose records the picture as pixel-level drawing commands in three
// passes (scene, body with both claws, overlay). The same Recording is
// played back to the raster backend for PNG/pixel output and to the SVG
// backend for vector output, so both always show the same image.
//
// Every function here is pure: the output depends only on the traits.
// Colour arithmetic and rounding follow the canonical renderer exactly and
// are pinned by golden checksums in the tests.
package compose

import (
	"context"
	"fmt"
	"io"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/internal/parallel"
	"github.com/gogpu/lobster/recording"
	"github.com/gogpu/lobster/recording/backends/raster"
	"github.com/gogpu/lobster/recording/backends/svg"
	"github.com/gogpu/lobster/traits"
)

// Compose records the full picture for t onto rec.
// rec must be lobster.Width x lobster.Height. Compose panics if any field
// of t is out of range.
func Compose(rec *recording.Recorder, t traits.Traits) {
	if !t.Valid() {
		panic(fmt.Sprintf("compose: invalid traits %+v", t))
	}
	sc := traits.SceneAt(t.Scene)
	sh := newShell(traits.MutationAt(t.Mutation))

	paintScene(rec, sc)
	paintBody(rec, t, sh)
	paintOverlay(rec, t, sh, sc.Floor)
}

// Record composes t into a new Recording.
func Record(t traits.Traits) *recording.Recording {
	rec := recording.NewRecorder(lobster.Width, lobster.Height)
	Compose(rec, t)
	return rec.FinishRecording()
}

// Render rasterizes t into a fresh Pixmap owned by the caller.
func Render(t traits.Traits) *lobster.Pixmap {
	b := raster.NewBackend()
	mustPlay(Record(t), b)
	return b.Pixmap()
}

// RenderSeed decodes seed and renders it.
func RenderSeed(seed uint64) (traits.Traits, *lobster.Pixmap) {
	t := traits.Decode(seed)
	return t, Render(t)
}

// RenderSVG encodes t as SVG with each grid pixel scale units wide.
// The document title is the trait summary.
func RenderSVG(t traits.Traits, scale int) []byte {
	b := svg.NewBackend(svg.WithScale(scale), svg.WithTitle(traits.Display(t).Title()))
	mustPlay(Record(t), b)
	return b.Bytes()
}

// RenderWith plays t to a fresh backend for the named format from the
// recording registry and returns it for output. An empty opts.Title is
// filled with the trait summary.
func RenderWith(t traits.Traits, format string, opts recording.Options) (recording.Backend, error) {
	if opts.Title == "" {
		opts.Title = traits.Display(t).Title()
	}
	b, err := recording.NewBackend(format, opts)
	if err != nil {
		return nil, err
	}
	if err := Record(t).Playback(b); err != nil {
		return nil, fmt.Errorf("compose: %s: %w", format, err)
	}
	return b, nil
}

// Encode writes t to w in the named format at the given scale (0 for the
// format default).
func Encode(w io.Writer, t traits.Traits, format string, scale int) error {
	b, err := RenderWith(t, format, recording.Options{Scale: scale})
	if err != nil {
		return err
	}
	wb, ok := b.(recording.WriterBackend)
	if !ok {
		return fmt.Errorf("compose: %s backend has no byte output", format)
	}
	if _, err := wb.WriteTo(w); err != nil {
		return fmt.Errorf("compose: write %s: %w", format, err)
	}
	return nil
}

// mustPlay plays r to b. The canvas size is fixed, so a failure here is a
// programming error.
func mustPlay(r *recording.Recording, b recording.Backend) {
	if err := r.Playback(b); err != nil {
		panic(fmt.Sprintf("compose: playback: %v", err))
	}
}

// Result is one rendered seed of a batch.
type Result struct {
	Seed   uint64
	Traits traits.Traits
	Pixmap *lobster.Pixmap
}

// RenderBatch renders seeds concurrently on a pool of workers (0 means
// GOMAXPROCS) and returns the results in input order. If ctx is cancelled
// the seeds not yet started are left as zero Results and ctx.Err() is
// returned.
func RenderBatch(ctx context.Context, seeds []uint64, workers int) ([]Result, error) {
	pool := parallel.NewWorkerPool(workers)
	defer pool.Close()

	results, err := parallel.Map(ctx, pool, seeds, func(_ int, seed uint64) Result {
		t, pm := RenderSeed(seed)
		return Result{Seed: seed, Traits: t, Pixmap: pm}
	})
	lobster.Logger().Debug("batch rendered", "seeds", len(seeds), "workers", pool.Workers())
	return results, err
}
