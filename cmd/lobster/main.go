// Command lobster renders creatures from seeds.
//
// Usage:
//
//	lobster render   [-seed S | -preset NAME] [-format png|svg|card] [-scale N] [-o FILE]
//	lobster traits   [-seed S | -preset NAME]
//	lobster random   [-n N]
//	lobster gallery  [-n N] [-random] [-dir DIR] [-format png|svg] [-workers N]
//	lobster find     [-start S] [-limit N] category=name ...
//	lobster backends
//
// Seeds are decimal or 0x-prefixed hex. "-o -" writes to stdout.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/compose"
	"github.com/gogpu/lobster/internal/card"
	"github.com/gogpu/lobster/recording"
	_ "github.com/gogpu/lobster/recording/backends/raster"
	_ "github.com/gogpu/lobster/recording/backends/svg"
	"github.com/gogpu/lobster/traits"
)

var errUsage = errors.New("usage: lobster render|traits|random|gallery|find|backends [flags]")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "lobster:", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	if len(args) == 0 {
		return errUsage
	}
	cmd, args := args[0], args[1:]
	switch cmd {
	case "render":
		return runRender(args, stdout, stderr)
	case "traits":
		return runTraits(args, stdout, stderr)
	case "random":
		return runRandom(args, stdout, stderr)
	case "gallery":
		return runGallery(ctx, args, stdout, stderr)
	case "find":
		return runFind(args, stdout, stderr)
	case "backends":
		for _, f := range recording.Formats() {
			fmt.Fprintln(stdout, f.Name)
		}
		return nil
	}
	return fmt.Errorf("unknown command %q\n%w", cmd, errUsage)
}

func newFlagSet(name string, stderr io.Writer) (*flag.FlagSet, *bool) {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(stderr)
	verbose := fs.Bool("v", false, "debug logging to stderr")
	return fs, verbose
}

func setupLogging(verbose bool, stderr io.Writer) {
	if !verbose {
		return
	}
	lobster.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})))
}

// seedFlags are the flags shared by commands that take one creature.
type seedFlags struct {
	seed   *string
	preset *string
}

func addSeedFlags(fs *flag.FlagSet) seedFlags {
	return seedFlags{
		seed:   fs.String("seed", "", "seed (decimal or 0x hex); random if empty"),
		preset: fs.String("preset", "", "preset name instead of a seed"),
	}
}

// resolve returns the traits to render and the seed they came from. For
// -preset the seed is 0 and the preset is returned as well.
func (f seedFlags) resolve() (traits.Traits, uint64, *traits.Preset, error) {
	if *f.preset != "" {
		p, ok := traits.PresetByLabel(*f.preset)
		if !ok {
			return traits.Traits{}, 0, nil, fmt.Errorf("unknown preset %q", *f.preset)
		}
		return p.Traits, 0, &p, nil
	}
	seed := traits.RandomSeed()
	if *f.seed != "" {
		v, err := strconv.ParseUint(*f.seed, 0, 64)
		if err != nil {
			return traits.Traits{}, 0, nil, fmt.Errorf("invalid seed %q", *f.seed)
		}
		seed = v
	}
	return traits.Decode(seed), seed, nil, nil
}

// defaultPath names render output after the preset label or the seed.
func defaultPath(seed uint64, p *traits.Preset, suffix string) string {
	if p != nil {
		return "lobster-" + strings.ReplaceAll(strings.ToLower(p.Label), " ", "-") + suffix
	}
	return fmt.Sprintf("lobster-%016x%s", seed, suffix)
}

func runRender(args []string, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("render", stderr)
	sf := addSeedFlags(fs)
	format := fs.String("format", "png", "output format: card or a registered backend (see lobster backends)")
	scale := fs.Int("scale", 10, "pixels per grid cell (png, svg)")
	out := fs.String("o", "", "output file (default lobster-<seed|preset>.<ext>, - for stdout)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose, stderr)

	t, seed, preset, err := sf.resolve()
	if err != nil {
		return err
	}

	if *format == "card" {
		c := card.ForSeed(seed)
		if preset != nil {
			c = card.ForPreset(*preset)
		}
		path := *out
		if path == "" {
			path = defaultPath(seed, preset, "-card.png")
		}
		return writeOutput(path, stdout, func(w io.Writer) error {
			return card.Encode(w, c)
		})
	}

	f, ok := recording.Lookup(*format)
	if !ok {
		return fmt.Errorf("unknown format %q", *format)
	}
	path := *out
	if path == "" {
		path = defaultPath(seed, preset, "."+f.Name)
	}
	err = writeOutput(path, stdout, func(w io.Writer) error {
		return compose.Encode(w, t, f.Name, *scale)
	})
	if err == nil && path != "-" {
		fmt.Fprintf(stderr, "%s: %s\n", path, traits.Display(t).Title())
	}
	return err
}

// writeOutput runs write against stdout for "-" and a new file otherwise.
func writeOutput(path string, stdout io.Writer, write func(io.Writer) error) error {
	if path == "-" {
		return write(stdout)
	}
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err := write(f); err != nil {
		f.Close()
		return fmt.Errorf("write %s: %w", path, err)
	}
	return f.Close()
}

type traitsOutput struct {
	Seed   string        `json:"seed,omitempty"`
	Title  string        `json:"title"`
	Traits traits.Traits `json:"traits"`
	Names  traits.Names  `json:"names"`
}

func runTraits(args []string, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("traits", stderr)
	sf := addSeedFlags(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose, stderr)

	t, seed, preset, err := sf.resolve()
	if err != nil {
		return err
	}
	n := traits.Display(t)
	o := traitsOutput{Title: n.Title(), Traits: t, Names: n}
	if preset == nil {
		o.Seed = fmt.Sprintf("0x%016x", seed)
	}
	enc := json.NewEncoder(stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(o)
}

func runRandom(args []string, stdout, stderr io.Writer) error {
	fs, _ := newFlagSet("random", stderr)
	n := fs.Int("n", 1, "number of seeds")
	if err := fs.Parse(args); err != nil {
		return err
	}
	for range *n {
		fmt.Fprintf(stdout, "0x%016x\n", traits.RandomSeed())
	}
	return nil
}

func runGallery(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("gallery", stderr)
	n := fs.Int("n", len(traits.PresetSeeds), "number of creatures")
	random := fs.Bool("random", false, "use random seeds instead of the preset gallery")
	dir := fs.String("dir", "gallery", "output directory")
	format := fs.String("format", "png", "output format: a registered backend")
	scale := fs.Int("scale", 10, "pixels per grid cell")
	workers := fs.Int("workers", 0, "render workers (0 = GOMAXPROCS)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose, stderr)
	f, ok := recording.Lookup(*format)
	if !ok {
		return fmt.Errorf("unknown format %q", *format)
	}

	var seeds []uint64
	if *random {
		seeds = make([]uint64, *n)
		for i := range seeds {
			seeds[i] = traits.RandomSeed()
		}
	} else {
		seeds = traits.PresetSeeds[:min(*n, len(traits.PresetSeeds))]
	}

	results, err := compose.RenderBatch(ctx, seeds, *workers)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(*dir, 0o755); err != nil {
		return err
	}

	for i, r := range results {
		path := filepath.Join(*dir, fmt.Sprintf("%03d-%016x.%s", i+1, r.Seed, f.Name))
		// Scaled output replays the recording.
		b, err := compose.RenderWith(r.Traits, f.Name, recording.Options{Scale: *scale})
		if err != nil {
			return err
		}
		fb, ok := b.(recording.FileBackend)
		if !ok {
			return fmt.Errorf("%s backend cannot save files", f.Name)
		}
		if err := fb.SaveToFile(path); err != nil {
			return err
		}
		fmt.Fprintf(stdout, "%s\t%016x\t%s\n", path, r.Pixmap.Checksum(), traits.Display(r.Traits).Title())
	}
	return nil
}

func runFind(args []string, stdout, stderr io.Writer) error {
	fs, verbose := newFlagSet("find", stderr)
	start := fs.Uint64("start", 0, "search start (0 = random)")
	limit := fs.Int("limit", 1_000_000, "seeds to try")
	if err := fs.Parse(args); err != nil {
		return err
	}
	setupLogging(*verbose, stderr)
	if fs.NArg() == 0 {
		return errors.New("find: need at least one category=name")
	}

	filter := traits.Filter{}
	for _, arg := range fs.Args() {
		cat, name, ok := strings.Cut(arg, "=")
		if !ok {
			return fmt.Errorf("find: %q is not category=name", arg)
		}
		c, err := traits.ParseCategory(cat)
		if err != nil {
			return err
		}
		v, err := traits.Lookup(c, name)
		if err != nil {
			return err
		}
		filter[c] = v
	}

	from := *start
	if from == 0 {
		from = traits.RandomSeed()
	}
	seed, t, ok := traits.FindSeed(filter, from, *limit)
	if !ok {
		return fmt.Errorf("find: no match in %d seeds", *limit)
	}
	fmt.Fprintf(stdout, "0x%016x\t%s\n", seed, traits.Display(t).Title())
	return nil
}
