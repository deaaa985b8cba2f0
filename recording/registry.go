package recording

import (
	"errors"
	"fmt"
	"slices"
	"strings"
	"sync"
)

// ErrUnknownBackend is returned (wrapped) by NewBackend for formats that
// were never registered.
var ErrUnknownBackend = errors.New("recording: unknown backend")

// Options configures a backend created through the registry.
type Options struct {
	// Scale is the number of output units per grid pixel. 0 selects the
	// backend default.
	Scale int
	// Title labels the document where the format has room for one.
	Title string
}

// Format is a registered output format. Name doubles as the file
// extension, so "png" is served as lobster.png and image/png.
type Format struct {
	Name        string
	ContentType string
	New         func(Options) Backend
}

var (
	registryMu sync.RWMutex
	formats    = make(map[string]Format)
)

// Register makes a format available by name. Backend packages call it
// from init, the way database/sql drivers register:
//
//	func init() {
//		recording.Register(recording.Format{
//			Name:        "png",
//			ContentType: "image/png",
//			New:         func(o recording.Options) recording.Backend { return NewBackend(WithScale(o.Scale)) },
//		})
//	}
//
// Register panics if New is nil, the name is empty or already taken.
func Register(f Format) {
	registryMu.Lock()
	defer registryMu.Unlock()

	if f.New == nil {
		panic("recording: Register with nil New for " + f.Name)
	}
	if f.Name == "" {
		panic("recording: Register with empty name")
	}
	if _, dup := formats[f.Name]; dup {
		panic("recording: Register called twice for " + f.Name)
	}
	formats[f.Name] = f
}

// Lookup returns the format registered under name, ignoring case.
func Lookup(name string) (Format, bool) {
	registryMu.RLock()
	defer registryMu.RUnlock()
	f, ok := formats[strings.ToLower(name)]
	return f, ok
}

// NewBackend creates a backend for the named format.
func NewBackend(name string, opts Options) (Backend, error) {
	f, ok := Lookup(name)
	if !ok {
		return nil, fmt.Errorf("%w %q (forgotten import?)", ErrUnknownBackend, name)
	}
	return f.New(opts), nil
}

// Formats returns the registered formats sorted by name.
func Formats() []Format {
	registryMu.RLock()
	defer registryMu.RUnlock()

	out := make([]Format, 0, len(formats))
	for _, f := range formats {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b Format) int { return strings.Compare(a.Name, b.Name) })
	return out
}
