package server

import (
	"bytes"
	"encoding/base64"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"io"
	"net/http"

	"github.com/gogpu/lobster/compose"
	"github.com/gogpu/lobster/internal/cache"
	"github.com/gogpu/lobster/internal/seedstore"
	"github.com/gogpu/lobster/traits"
)

// TotalBody is the body of GET and PUT /total.
type TotalBody struct {
	Total int `json:"total"`
}

// MissingResponse is the body of GET /token/missing.
type MissingResponse struct {
	Total   int     `json:"total"`
	Missing []int64 `json:"missing"`
}

// SeedsBody is the body of PUT /token: seeds keyed by token ID.
type SeedsBody struct {
	Seeds map[int64]string `json:"seeds"`
}

// requireStore answers 503 and returns false when running without a store.
func (s *Server) requireStore(w http.ResponseWriter) bool {
	if s.store == nil {
		http.Error(w, "token store unavailable", http.StatusServiceUnavailable)
		return false
	}
	return true
}

func (s *Server) handleTotalGet(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	total, err := s.store.Total(r.Context())
	if errors.Is(err, seedstore.ErrNotFound) {
		http.NotFound(w, r)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	writeJSON(w, http.StatusOK, "no-store", TotalBody{Total: total})
}

// handleTotalPut caches the minted total pushed by the indexer.
func (s *Server) handleTotalPut(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var body TotalBody
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<10)).Decode(&body); err != nil {
		badRequest(w, r, fmt.Errorf("invalid body: %w", err))
		return
	}
	if body.Total < 0 {
		badRequest(w, r, fmt.Errorf("invalid total %d", body.Total))
		return
	}
	if err := s.store.SetTotal(r.Context(), body.Total); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

func (s *Server) handleTotalDelete(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	if err := s.store.InvalidateTotal(r.Context()); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleMissing lists the token IDs up to the cached total that still
// need a seed, so a filler knows what to PUT.
func (s *Server) handleMissing(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	total, err := s.store.Total(r.Context())
	if errors.Is(err, seedstore.ErrNotFound) {
		http.Error(w, "total unknown; PUT /total first", http.StatusConflict)
		return
	}
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	missing, err := s.store.Missing(r.Context(), total)
	if err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	if missing == nil {
		missing = []int64{}
	}
	writeJSON(w, http.StatusOK, "no-store", MissingResponse{Total: total, Missing: missing})
}

// handleSeedsPut stores many token seeds in one transaction. Tokens that
// already have a seed keep it.
func (s *Server) handleSeedsPut(w http.ResponseWriter, r *http.Request) {
	if !s.requireStore(w) {
		return
	}
	var body SeedsBody
	if err := json.NewDecoder(io.LimitReader(r.Body, 1<<20)).Decode(&body); err != nil {
		badRequest(w, r, fmt.Errorf("invalid body: %w", err))
		return
	}
	seeds := make(map[int64]uint64, len(body.Seeds))
	for id, v := range body.Seeds {
		if id < 1 {
			badRequest(w, r, fmt.Errorf("invalid token id %d", id))
			return
		}
		seed, err := ParseSeed(v)
		if err != nil {
			badRequest(w, r, fmt.Errorf("token %d: %w", id, err))
			return
		}
		seeds[id] = seed
	}
	if err := s.store.PutSeeds(r.Context(), seeds); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// pageScale is the SVG scale inlined into the token page.
const pageScale = 10

var tokenPage = template.Must(template.New("token").Parse(`<!DOCTYPE html>
<html><head><meta charset="utf-8"><title>{{.Title}}</title><style>
*{margin:0;padding:0}
body{background:#050509;display:flex;align-items:center;justify-content:center;width:100vw;height:100vh;overflow:hidden}
img{max-width:100%;max-height:100%;image-rendering:pixelated;image-rendering:crisp-edges}
</style></head>
<body><img src="{{.Src}}" alt="{{.Alt}}"/></body>
</html>
`))

type pageData struct {
	Title string
	Alt   string
	Src   template.URL
}

// writePage serves the standalone viewer page for a token: its SVG inlined
// as a data URI and scaled with hard pixel edges.
func (s *Server) writePage(w http.ResponseWriter, id int64, seed uint64) {
	key := cache.Key{Seed: seed, Token: id, Format: "html", Scale: pageScale}
	s.writeCached(w, key, "text/html; charset=utf-8", func() ([]byte, error) {
		t := traits.Decode(seed)
		doc := compose.RenderSVG(t, pageScale)
		var buf bytes.Buffer
		err := tokenPage.Execute(&buf, pageData{
			Title: traits.Display(t).Title(),
			Alt:   fmt.Sprintf("Onchain Lobster #%d", id),
			Src:   template.URL("data:image/svg+xml;base64," + base64.StdEncoding.EncodeToString(doc)),
		})
		if err != nil {
			return nil, fmt.Errorf("server: token page: %w", err)
		}
		return buf.Bytes(), nil
	})
}
