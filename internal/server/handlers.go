package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/gogpu/lobster"
	"github.com/gogpu/lobster/compose"
	"github.com/gogpu/lobster/internal/cache"
	"github.com/gogpu/lobster/internal/card"
	"github.com/gogpu/lobster/internal/seedstore"
	"github.com/gogpu/lobster/recording"
	"github.com/gogpu/lobster/recording/backends/raster"
	"github.com/gogpu/lobster/traits"
)

// TraitsResponse is the body of GET /traits/{seed}.
type TraitsResponse struct {
	Seed   string        `json:"seed"`
	Title  string        `json:"title"`
	Traits traits.Traits `json:"traits"`
	Names  traits.Names  `json:"names"`
}

// GalleryEntry is one item of GET /gallery.
type GalleryEntry struct {
	Token    int64  `json:"token,omitempty"`
	Seed     string `json:"seed"`
	Title    string `json:"title"`
	Checksum string `json:"checksum"`
}

type seedBody struct {
	Seed string `json:"seed"`
}

// ParseSeed parses a decimal or 0x-prefixed hexadecimal seed.
func ParseSeed(s string) (uint64, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid seed %q", s)
	}
	return v, nil
}

// FormatSeed is the canonical text form of a seed.
func FormatSeed(seed uint64) string {
	return fmt.Sprintf("0x%016x", seed)
}

func parseTokenID(s string) (int64, error) {
	id, err := strconv.ParseInt(s, 10, 64)
	if err != nil || id < 1 {
		return 0, fmt.Errorf("invalid token id %q", s)
	}
	return id, nil
}

// splitExt splits "name.ext" into its parts.
func splitExt(file string) (name, ext string) {
	i := strings.LastIndexByte(file, '.')
	if i < 0 {
		return file, ""
	}
	return file[:i], file[i+1:]
}

func (s *Server) scale(r *http.Request, def int) (int, error) {
	q := r.URL.Query().Get("scale")
	if q == "" {
		return def, nil
	}
	v, err := strconv.Atoi(q)
	if err != nil || v < 1 || v > raster.MaxScale {
		return 0, fmt.Errorf("scale must be 1..%d", raster.MaxScale)
	}
	return v, nil
}

func badRequest(w http.ResponseWriter, r *http.Request, err error) {
	lobster.Logger().Warn("rejected request", "path", r.URL.Path, "error", err)
	http.Error(w, err.Error(), http.StatusBadRequest)
}

func writeJSON(w http.ResponseWriter, status int, cacheControl string, v any) {
	w.Header().Set("Content-Type", "application/json")
	if cacheControl != "" {
		w.Header().Set("Cache-Control", cacheControl)
	}
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func (s *Server) handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = io.WriteString(w, "ok\n")
}

func (s *Server) handleTraits(w http.ResponseWriter, r *http.Request) {
	seed, err := ParseSeed(chi.URLParam(r, "seed"))
	if err != nil {
		badRequest(w, r, err)
		return
	}
	t := traits.Decode(seed)
	n := traits.Display(t)
	writeJSON(w, http.StatusOK, immutableCache, TraitsResponse{
		Seed:   FormatSeed(seed),
		Title:  n.Title(),
		Traits: t,
		Names:  n,
	})
}

func (s *Server) handleRender(w http.ResponseWriter, r *http.Request) {
	name, ext := splitExt(chi.URLParam(r, "file"))
	seed, err := ParseSeed(name)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	s.writeRender(w, r, seed, ext)
}

// writeRender serves seed in the registered format named by ext.
func (s *Server) writeRender(w http.ResponseWriter, r *http.Request, seed uint64, ext string) {
	f, ok := recording.Lookup(ext)
	if !ok {
		http.NotFound(w, r)
		return
	}
	def := s.cfg.Render.PNGScale
	if f.Name == "svg" {
		def = s.cfg.Render.SVGScale
	}
	scale, err := s.scale(r, def)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	key := cache.Key{Seed: seed, Format: f.Name, Scale: scale}
	s.writeCached(w, key, f.ContentType, func() ([]byte, error) {
		var buf bytes.Buffer
		if err := compose.Encode(&buf, traits.Decode(seed), f.Name, scale); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

// writeCached serves the encoded render for key, encoding it on a miss.
func (s *Server) writeCached(w http.ResponseWriter, key cache.Key, ctype string, encode func() ([]byte, error)) {
	data, err := s.cache.GetOrCreate(key, encode)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", ctype)
	w.Header().Set("Cache-Control", immutableCache)
	_, _ = w.Write(data)
}

func (s *Server) handleCard(w http.ResponseWriter, r *http.Request) {
	name, ext := splitExt(chi.URLParam(r, "file"))
	if ext != "png" {
		http.NotFound(w, r)
		return
	}
	seed, err := ParseSeed(name)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	s.writeCard(w, cache.Key{Seed: seed, Format: "card"}, card.ForSeed(seed))
}

func (s *Server) writeCard(w http.ResponseWriter, key cache.Key, c card.Card) {
	s.writeCached(w, key, "image/png", func() ([]byte, error) {
		var buf bytes.Buffer
		if err := card.Encode(&buf, c); err != nil {
			return nil, err
		}
		return buf.Bytes(), nil
	})
}

func (s *Server) handleTokenRender(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	name, ext := splitExt(chi.URLParam(r, "id"))
	name, isCard := strings.CutSuffix(name, ".card")
	id, err := parseTokenID(name)
	if err != nil {
		badRequest(w, r, err)
		return
	}
	if isCard && ext != "png" {
		http.NotFound(w, r)
		return
	}
	seed, err := s.store.Seed(r.Context(), id)
	if errors.Is(err, seedstore.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	switch {
	case isCard:
		s.writeCard(w, cache.Key{Seed: seed, Token: id, Format: "card"}, card.ForToken(id, seed))
	case ext == "html":
		s.writePage(w, id, seed)
	default:
		s.writeRender(w, r, seed, ext)
	}
}

func (s *Server) handleTokenPut(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	id, err := parseTokenID(chi.URLParam(r, "id"))
	if err != nil {
		badRequest(w, r, err)
		return
	}
	var body seedBody
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<10)).Decode(&body); err != nil {
		badRequest(w, r, fmt.Errorf("invalid body: %w", err))
		return
	}
	seed, err := ParseSeed(body.Seed)
	if err != nil {
		badRequest(w, r, err)
		return
	}

	err = s.store.PutSeed(r.Context(), id, seed)
	switch {
	case errors.Is(err, seedstore.ErrConflict):
		http.Error(w, err.Error(), http.StatusConflict)
	case err != nil:
		http.Error(w, err.Error(), http.StatusInternalServerError)
	default:
		w.WriteHeader(http.StatusNoContent)
	}
}

// handleGallery lists stored tokens when the minted total is cached, and
// the preset preview seeds otherwise.
func (s *Server) handleGallery(w http.ResponseWriter, r *http.Request) {
	n := s.cfg.Render.PreviewSeeds
	if q := r.URL.Query().Get("n"); q != "" {
		v, err := strconv.Atoi(q)
		if err != nil || v < 1 {
			badRequest(w, r, fmt.Errorf("invalid n %q", q))
			return
		}
		n = v
	}
	n = min(n, s.cfg.Render.MaxGallery)

	var (
		ids   []int64
		seeds []uint64
	)
	if s.store != nil {
		if total, err := s.store.Total(r.Context()); err == nil {
			cached, err := s.store.Seeds(r.Context(), min(total, n))
			if err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			for id := int64(1); id <= int64(min(total, n)); id++ {
				if seed, ok := cached[id]; ok {
					ids = append(ids, id)
					seeds = append(seeds, seed)
				}
			}
		} else if !errors.Is(err, seedstore.ErrNotFound) {
			lobster.Logger().Warn("gallery: total unavailable, using presets", "error", err)
		}
	}
	if ids == nil {
		seeds = traits.PresetSeeds[:min(n, len(traits.PresetSeeds))]
	}

	results, err := compose.RenderBatch(r.Context(), seeds, s.cfg.Render.Workers)
	if err != nil {
		http.Error(w, err.Error(), http.StatusServiceUnavailable)
		return
	}
	entries := make([]GalleryEntry, len(results))
	for i, res := range results {
		entries[i] = GalleryEntry{
			Seed:     FormatSeed(res.Seed),
			Title:    traits.Display(res.Traits).Title(),
			Checksum: fmt.Sprintf("%016x", res.Pixmap.Checksum()),
		}
		if ids != nil {
			entries[i].Token = ids[i]
		}
	}
	writeJSON(w, http.StatusOK, galleryCache, entries)
}
