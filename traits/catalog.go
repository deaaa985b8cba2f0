package traits

import (
	"fmt"

	"github.com/gogpu/lobster"
)

// Mutation is a body colour palette.
type Mutation struct {
	Name      string
	Base      lobster.RGB
	Shadow    lobster.RGB
	Highlight lobster.RGB

	// Split mutations colour the right half of the body (x >= 20) with
	// Base2/Shadow2 instead of Base/Shadow.
	Split   bool
	Base2   lobster.RGB
	Shadow2 lobster.RGB
}

// Pattern is the procedural decoration drawn over a scene's vignette.
type Pattern int

// Scene patterns.
const (
	PatternBubbles Pattern = iota
	PatternKelp
	PatternCoral
	PatternVent
	PatternPlanks
	PatternStarfish
	PatternRocks
	PatternNone
)

var patternNames = [...]string{
	PatternBubbles:  "bubbles",
	PatternKelp:     "kelp",
	PatternCoral:    "coral",
	PatternVent:     "vent",
	PatternPlanks:   "planks",
	PatternStarfish: "starfish",
	PatternRocks:    "rocks",
	PatternNone:     "none",
}

// String returns the lower-case pattern name.
func (p Pattern) String() string {
	if p >= 0 && int(p) < len(patternNames) {
		return patternNames[p]
	}
	return "Unknown"
}

// Scene is a background: floor colours, pattern and optional grain.
type Scene struct {
	Name    string
	Floor   lobster.RGB // vignette base, also used for glow fades
	Floor2  lobster.RGB // pattern tint
	Grain   bool
	Pattern Pattern
}

var mutations = [...]Mutation{
	{Name: "Classic Red", Base: lobster.Hex("#C84820"), Shadow: lobster.Hex("#7A2C10"), Highlight: lobster.Hex("#E8784A")},
	{Name: "Ocean Blue", Base: lobster.Hex("#1A4E8C"), Shadow: lobster.Hex("#0C2E58"), Highlight: lobster.Hex("#4A80BC")},
	{Name: "Melanistic", Base: lobster.Hex("#1E1E2A"), Shadow: lobster.Hex("#0C0C14"), Highlight: lobster.Hex("#383850")},
	{Name: "Albino", Base: lobster.Hex("#E4D8C0"), Shadow: lobster.Hex("#B8A888"), Highlight: lobster.Hex("#F4EEE4")},
	{Name: "Yellow", Base: lobster.Hex("#C8A014"), Shadow: lobster.Hex("#7A5E08"), Highlight: lobster.Hex("#E8C840")},
	{
		Name: "Calico", Base: lobster.Hex("#C84820"), Shadow: lobster.Hex("#7A2C10"), Highlight: lobster.Hex("#E8784A"),
		Split: true, Base2: lobster.Hex("#1A4E8C"), Shadow2: lobster.Hex("#0C2E58"),
	},
	{
		Name: "Cotton Candy", Base: lobster.Hex("#E090B4"), Shadow: lobster.Hex("#B86090"), Highlight: lobster.Hex("#F4B4CC"),
		Split: true, Base2: lobster.Hex("#88B4E8"), Shadow2: lobster.Hex("#6090C8"),
	},
	{Name: "Burnt Sienna", Base: lobster.Hex("#8A3A18"), Shadow: lobster.Hex("#4A1C08"), Highlight: lobster.Hex("#AA5428")},
}

var scenes = [...]Scene{
	{Name: "Open Water", Floor: lobster.Hex("#0A1828"), Floor2: lobster.Hex("#0D2038"), Pattern: PatternBubbles},
	{Name: "Kelp Forest", Floor: lobster.Hex("#071410"), Floor2: lobster.Hex("#0A1E14"), Pattern: PatternKelp},
	{Name: "Coral Reef", Floor: lobster.Hex("#0C0614"), Floor2: lobster.Hex("#160824"), Pattern: PatternCoral},
	{Name: "Volcanic Vent", Floor: lobster.Hex("#050202"), Floor2: lobster.Hex("#0A0402"), Pattern: PatternVent},
	{Name: "Shipwreck", Floor: lobster.Hex("#100C06"), Floor2: lobster.Hex("#1A1408"), Grain: true, Pattern: PatternPlanks},
	{Name: "Tide Pool", Floor: lobster.Hex("#A0784A"), Floor2: lobster.Hex("#887040"), Grain: true, Pattern: PatternStarfish},
	{Name: "Ocean Floor", Floor: lobster.Hex("#2A2014"), Floor2: lobster.Hex("#1A1408"), Grain: true, Pattern: PatternRocks},
	{Name: "The Abyss", Floor: lobster.Hex("#000000"), Floor2: lobster.Hex("#000000"), Pattern: PatternNone},
}

var markingNames = [...]string{
	"None", "Spotted", "Striped", "Iridescent",
	"Battle Scarred", "Banded", "Mottled", "Chitin Sheen",
}

var eyeNames = [...]string{
	"Standard", "Glow Green", "Glow Blue", "Cyclops", "Void", "Laser", "Noggles",
}

var clawNames = [...]string{
	"Balanced", "Left Crusher", "Right Crusher", "Dueling", "Giant Left", "Regenerating",
}

var accessoryNames = [...]string{
	"None", "Pirate Hat", "Crown", "Eye Patch", "Barnacles",
	"Old Coin", "Admiral Hat", "Pearl", "Rainbow Puke", "Gold Chain", "Blush",
}

var specialNames = [...]string{"", "Ghost", "Infernal", "Celestial", "Nounish", "Doodled"}

// clawScales holds the per-category claw scale factors, {left, right}.
var clawScales = [...][2]float64{
	{1, 1},
	{1.5, 0.7},
	{0.7, 1.5},
	{0.9, 0.9},
	{2.0, 0.8},
	{0.5, 1.0},
}

// mustIndex panics when i is outside [0, n). Out-of-range trait indices can
// only come from a decoder defect, so they are never clamped.
func mustIndex(kind string, i, n int) {
	if i < 0 || i >= n {
		panic(fmt.Sprintf("traits: %s index %d out of range [0,%d)", kind, i, n))
	}
}

// MutationAt returns the mutation palette for index i.
func MutationAt(i int) Mutation {
	mustIndex("mutation", i, len(mutations))
	return mutations[i]
}

// SceneAt returns the scene for index i.
func SceneAt(i int) Scene {
	mustIndex("scene", i, len(scenes))
	return scenes[i]
}

// MarkingName returns the display name of marking i.
func MarkingName(i int) string {
	mustIndex("marking", i, len(markingNames))
	return markingNames[i]
}

// EyeName returns the display name of eye style i.
func EyeName(i int) string {
	mustIndex("eyes", i, len(eyeNames))
	return eyeNames[i]
}

// ClawName returns the display name of claw category i.
func ClawName(i int) string {
	mustIndex("claws", i, len(clawNames))
	return clawNames[i]
}

// AccessoryName returns the display name of accessory i.
func AccessoryName(i int) string {
	mustIndex("accessory", i, len(accessoryNames))
	return accessoryNames[i]
}

// SpecialName returns the display name of special i; SpecialNone has an
// empty name.
func SpecialName(i int) string {
	mustIndex("special", i, len(specialNames))
	return specialNames[i]
}

// ClawScales returns the left and right claw scale factors for claw
// category i.
func ClawScales(i int) (left, right float64) {
	mustIndex("claws", i, len(clawScales))
	return clawScales[i][0], clawScales[i][1]
}
