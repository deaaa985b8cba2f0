package traits

import (
	"errors"
	"fmt"
	"math/rand/v2"
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// ErrUnknownName is returned (wrapped) when a trait or category name
// matches nothing in the catalogs.
var ErrUnknownName = errors.New("traits: unknown name")

// Category identifies one field of a trait vector.
type Category int

// Trait categories.
const (
	CategoryMutation Category = iota
	CategoryScene
	CategoryMarking
	CategoryClaws
	CategoryEyes
	CategoryAccessory
	CategoryTail
	CategoryAntenna
	CategorySpecial
)

var categoryNames = [...]string{
	CategoryMutation:  "mutation",
	CategoryScene:     "scene",
	CategoryMarking:   "marking",
	CategoryClaws:     "claws",
	CategoryEyes:      "eyes",
	CategoryAccessory: "accessory",
	CategoryTail:      "tail",
	CategoryAntenna:   "antenna",
	CategorySpecial:   "special",
}

// String returns the lower-case category name.
func (c Category) String() string {
	if c >= 0 && int(c) < len(categoryNames) {
		return categoryNames[c]
	}
	return "Unknown"
}

// ParseCategory resolves a category name, case-insensitively.
func ParseCategory(s string) (Category, error) {
	for i, n := range categoryNames {
		if strings.EqualFold(s, n) {
			return Category(i), nil
		}
	}
	return 0, fmt.Errorf("%w: category %q", ErrUnknownName, s)
}

// Names returns a fresh copy of the display names of category c.
// Tail variants and antenna states have synthetic names.
func (c Category) Names() []string {
	switch c {
	case CategoryMutation:
		out := make([]string, len(mutations))
		for i, m := range mutations {
			out[i] = m.Name
		}
		return out
	case CategoryScene:
		out := make([]string, len(scenes))
		for i, s := range scenes {
			out[i] = s.Name
		}
		return out
	case CategoryMarking:
		return append([]string(nil), markingNames[:]...)
	case CategoryClaws:
		return append([]string(nil), clawNames[:]...)
	case CategoryEyes:
		return append([]string(nil), eyeNames[:]...)
	case CategoryAccessory:
		return append([]string(nil), accessoryNames[:]...)
	case CategoryTail:
		out := make([]string, len(tailWeights))
		for i := range out {
			out[i] = fmt.Sprintf("Tail %d", i)
		}
		return out
	case CategoryAntenna:
		return []string{"Intact", "Broken"}
	case CategorySpecial:
		out := append([]string(nil), specialNames[:]...)
		out[SpecialNone] = "None"
		return out
	}
	return nil
}

// Value returns the index of category c in t. Antenna reads as 0 or 1.
func (t Traits) Value(c Category) int {
	switch c {
	case CategoryMutation:
		return t.Mutation
	case CategoryScene:
		return t.Scene
	case CategoryMarking:
		return t.Marking
	case CategoryClaws:
		return t.Claws
	case CategoryEyes:
		return t.Eyes
	case CategoryAccessory:
		return t.Accessory
	case CategoryTail:
		return t.TailVariant
	case CategoryAntenna:
		if t.BrokenAntenna {
			return 1
		}
		return 0
	case CategorySpecial:
		return t.Special
	}
	panic(fmt.Sprintf("traits: unknown category %d", c))
}

// UnknownNameError reports a failed Lookup with the closest candidates.
type UnknownNameError struct {
	Category    Category
	Name        string
	Suggestions []string
}

func (e *UnknownNameError) Error() string {
	msg := fmt.Sprintf("traits: no %s named %q", e.Category, e.Name)
	if len(e.Suggestions) > 0 {
		msg += " (did you mean " + strings.Join(e.Suggestions, ", ") + "?)"
	}
	return msg
}

// Unwrap lets errors.Is match ErrUnknownName.
func (e *UnknownNameError) Unwrap() error { return ErrUnknownName }

// Lookup resolves a display name within category c to its index.
// Exact matches ignore case. Otherwise the unique closest name within a
// length-dependent edit distance is accepted, so "Kelp Forrest" finds
// "Kelp Forest". Failures return an *UnknownNameError.
func Lookup(c Category, name string) (int, error) {
	names := c.Names()
	if names == nil {
		return 0, fmt.Errorf("%w: category %d", ErrUnknownName, int(c))
	}
	query := strings.ToLower(strings.TrimSpace(name))
	for i, n := range names {
		if strings.ToLower(n) == query {
			return i, nil
		}
	}

	type candidate struct {
		index int
		dist  int
	}
	var cands []candidate
	for i, n := range names {
		cand := strings.ToLower(n)
		dist := levenshtein.ComputeDistance(query, cand)
		if dist > levenshteinLimit(len(cand)) {
			continue
		}
		cands = append(cands, candidate{index: i, dist: dist})
	}
	sort.SliceStable(cands, func(i, j int) bool { return cands[i].dist < cands[j].dist })

	if len(cands) == 1 || (len(cands) > 1 && cands[0].dist < cands[1].dist) {
		return cands[0].index, nil
	}
	err := &UnknownNameError{Category: c, Name: name}
	for _, cd := range cands {
		err.Suggestions = append(err.Suggestions, names[cd.index])
	}
	return 0, err
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

// Filter selects trait vectors by category value. An empty filter matches
// everything.
type Filter map[Category]int

// Match reports whether t has every value in f.
func (f Filter) Match(t Traits) bool {
	for c, v := range f {
		if t.Value(c) != v {
			return false
		}
	}
	return true
}

// FindSeed searches up to limit pseudo-random seeds, derived from start,
// for one whose traits match f. The search sequence is deterministic for a
// given start so results are reproducible.
func FindSeed(f Filter, start uint64, limit int) (uint64, Traits, bool) {
	src := rand.New(rand.NewPCG(start, start^0x9E3779B97F4A7C15))
	for range limit {
		seed := src.Uint64()
		t := Decode(seed)
		if f.Match(t) {
			return seed, t, true
		}
	}
	return 0, Traits{}, false
}

// RandomSeed returns a preview seed drawn from the full 64-bit range.
func RandomSeed() uint64 {
	return rand.Uint64()
}
