package traits

import (
	"encoding/json"
	"strings"
	"testing"
)

func TestCatalogSizes(t *testing.T) {
	tests := []struct {
		c    Category
		want int
	}{
		{CategoryMutation, 8},
		{CategoryScene, 8},
		{CategoryMarking, 8},
		{CategoryClaws, 6},
		{CategoryEyes, 7},
		{CategoryAccessory, 11},
		{CategoryTail, 5},
		{CategoryAntenna, 2},
		{CategorySpecial, 6},
	}
	for _, tt := range tests {
		if got := len(tt.c.Names()); got != tt.want {
			t.Errorf("len(%s.Names()) = %d, want %d", tt.c, got, tt.want)
		}
	}
}

func TestCatalogAccessors(t *testing.T) {
	if got := MutationAt(5); !got.Split || got.Name != "Calico" {
		t.Errorf("MutationAt(5) = %+v, want split Calico", got)
	}
	if got := SceneAt(4); got.Pattern != PatternPlanks || !got.Grain {
		t.Errorf("SceneAt(4) = %+v, want grained planks", got)
	}
	if got := SpecialName(SpecialNone); got != "" {
		t.Errorf("SpecialName(0) = %q, want empty", got)
	}
	if l, r := ClawScales(4); l != 2.0 || r != 0.8 {
		t.Errorf("ClawScales(4) = %v, %v, want 2, 0.8", l, r)
	}
	if got := PatternRocks.String(); got != "rocks" {
		t.Errorf("PatternRocks.String() = %q", got)
	}
	if got := Pattern(42).String(); got != "Unknown" {
		t.Errorf("Pattern(42).String() = %q", got)
	}
}

func TestCatalogAccessorsPanic(t *testing.T) {
	tests := []struct {
		name string
		fn   func()
	}{
		{"MutationAt", func() { MutationAt(8) }},
		{"SceneAt", func() { SceneAt(-1) }},
		{"MarkingName", func() { MarkingName(8) }},
		{"EyeName", func() { EyeName(7) }},
		{"ClawName", func() { ClawName(6) }},
		{"AccessoryName", func() { AccessoryName(11) }},
		{"SpecialName", func() { SpecialName(6) }},
		{"ClawScales", func() { ClawScales(6) }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				r := recover()
				if r == nil {
					t.Fatal("did not panic")
				}
				if msg, ok := r.(string); !ok || !strings.Contains(msg, "out of range") {
					t.Errorf("panic = %v, want out of range message", r)
				}
			}()
			tt.fn()
		})
	}
}

func TestDisplay(t *testing.T) {
	n := Display(Decode(0x1A2B3C4D5E6F7089))
	want := Names{
		Special:       "Infernal",
		Mutation:      "Melanistic",
		Scene:         "Volcanic Vent",
		Marking:       "Spotted",
		Claws:         "Left Crusher",
		Eyes:          "Laser",
		Accessory:     "Admiral Hat",
		BrokenAntenna: true,
	}
	if n != want {
		t.Errorf("Display() = %+v, want %+v", n, want)
	}
	if got := n.Title(); got != "Infernal Melanistic in Volcanic Vent" {
		t.Errorf("Title() = %q", got)
	}

	plain := Display(Traits{Scene: 1})
	if got := plain.Title(); got != "Classic Red in Kelp Forest" {
		t.Errorf("Title() = %q", got)
	}
	b, err := json.Marshal(plain)
	if err != nil {
		t.Fatal(err)
	}
	if strings.Contains(string(b), "special") {
		t.Errorf("json %s should omit an empty special", b)
	}
}

func TestPresets(t *testing.T) {
	if len(Presets) != 12 {
		t.Errorf("len(Presets) = %d, want 12", len(Presets))
	}
	for _, p := range Presets {
		if !p.Traits.Valid() {
			t.Errorf("preset %q is not valid: %+v", p.Label, p.Traits)
		}
	}
	p, ok := PresetByLabel("Laser Ghost")
	if !ok || p.Traits.Eyes != 5 || p.Traits.Scene != 7 {
		t.Errorf("PresetByLabel(Laser Ghost) = %+v, %v", p, ok)
	}
	if _, ok := PresetByLabel("Nope"); ok {
		t.Error("PresetByLabel(Nope) found a preset")
	}

	if len(PresetSeeds) != 60 {
		t.Errorf("len(PresetSeeds) = %d, want 60", len(PresetSeeds))
	}
	seen := make(map[uint64]bool)
	for _, s := range PresetSeeds {
		if seen[s] {
			t.Errorf("duplicate preset seed %#x", s)
		}
		seen[s] = true
	}
}
