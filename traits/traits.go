// Package traits decodes a 64-bit seed into a lobster's trait vector and
// holds the read-only trait catalogs (palettes, scenes and display names).
//
// Decoding is a pure function of the seed: each base trait reads one byte
// of the seed and maps it through a cumulative weight table, then a
// "special" byte may overwrite several of the decoded fields. The result
// must match the canonical on-chain decoder for every seed.
package traits

// Traits is the decoded attribute set of one lobster.
//
// Every field is an index into the matching catalog in this package.
// Values produced by Decode are always in range; the catalog accessors
// panic on anything else.
type Traits struct {
	Mutation      int  `json:"mutation"`      // 0–7, see MutationAt
	Scene         int  `json:"scene"`         // 0–7, see SceneAt
	Marking       int  `json:"marking"`       // 0–7, see MarkingName
	Claws         int  `json:"claws"`         // 0–5, see ClawName
	Eyes          int  `json:"eyes"`          // 0–6, see EyeName
	Accessory     int  `json:"accessory"`     // 0–10, see AccessoryName
	TailVariant   int  `json:"tailVariant"`   // 0–4
	BrokenAntenna bool `json:"brokenAntenna"` // bent left antenna
	Special       int  `json:"special"`       // 0 = none, 1–5, see SpecialName
}

// Cumulative weight tables, out of 255. A byte b maps to the smallest
// index i with b < w[i]; the tables end at 255 so byte 255 falls through
// to the last index.
var (
	mutationWeights  = [...]uint8{102, 127, 148, 163, 176, 207, 217, 255}
	sceneWeights     = [...]uint8{32, 64, 96, 128, 160, 192, 224, 255}
	markingWeights   = [...]uint8{89, 135, 166, 186, 204, 219, 244, 255}
	clawWeights      = [...]uint8{89, 135, 181, 212, 238, 255}
	eyeWeights       = [...]uint8{115, 153, 191, 211, 231, 244, 255}
	accessoryWeights = [...]uint8{77, 102, 122, 142, 162, 177, 192, 204, 217, 237, 255}
	tailWeights      = [...]uint8{128, 179, 209, 235, 255}
)

// Bit offsets of each trait byte within the seed.
const (
	mutationShift  = 0
	sceneShift     = 8
	markingShift   = 16
	clawShift      = 24
	eyeShift       = 32
	accessoryShift = 40
	tailShift      = 48
	antennaShift   = 56
	specialShift   = 57 // top seven bits of the antenna byte: special byte = antenna byte >> 1
)

// brokenAntennaBelow gives roughly a 15% chance of a broken antenna.
const brokenAntennaBelow = 38

// Special trait indices.
const (
	SpecialNone = iota
	SpecialGhost
	SpecialInfernal
	SpecialCelestial
	SpecialNounish
	SpecialDoodled
)

// specialRule overwrites fields of an already decoded vector.
type specialRule struct {
	below uint8
	apply func(t *Traits)
}

// specialRules are checked in order; the first rule whose threshold is
// above the special byte wins.
var specialRules = [...]specialRule{
	{10, func(t *Traits) { t.Mutation, t.Eyes, t.Scene, t.Special = 3, 4, 7, SpecialGhost }},
	{18, func(t *Traits) { t.Mutation, t.Scene, t.Accessory, t.Eyes, t.Special = 2, 3, 6, 5, SpecialInfernal }},
	{21, func(t *Traits) { t.Mutation, t.Scene, t.Accessory, t.Eyes, t.Special = 6, 7, 2, 2, SpecialCelestial }},
	{26, func(t *Traits) { t.Eyes, t.Mutation, t.Scene, t.Special = 6, 0, 6, SpecialNounish }},
	{34, func(t *Traits) { t.Accessory, t.Mutation, t.Scene, t.Special = 8, 3, 5, SpecialDoodled }},
}

// Decode maps a seed to its trait vector. It is total: every seed yields
// a valid vector, and the same seed always yields the same vector.
func Decode(seed uint64) Traits {
	t := Traits{
		Mutation:      weighted(seed, mutationShift, mutationWeights[:]),
		Scene:         weighted(seed, sceneShift, sceneWeights[:]),
		Marking:       weighted(seed, markingShift, markingWeights[:]),
		Claws:         weighted(seed, clawShift, clawWeights[:]),
		Eyes:          weighted(seed, eyeShift, eyeWeights[:]),
		Accessory:     weighted(seed, accessoryShift, accessoryWeights[:]),
		TailVariant:   weighted(seed, tailShift, tailWeights[:]),
		BrokenAntenna: byteAt(seed, antennaShift) < brokenAntennaBelow,
	}
	applySpecial(&t, byteAt(seed, specialShift))
	return t
}

// applySpecial runs after the base decode and overwrites rather than merges.
func applySpecial(t *Traits, sp uint8) {
	for _, r := range specialRules {
		if sp < r.below {
			r.apply(t)
			return
		}
	}
}

// byteAt extracts the byte at the given bit offset. For offsets above 56
// fewer than eight bits remain and the high bits read as zero.
func byteAt(seed uint64, shift uint) uint8 {
	return uint8((seed >> shift) & 0xFF)
}

func weighted(seed uint64, shift uint, weights []uint8) int {
	return categoryOf(byteAt(seed, shift), weights)
}

func categoryOf(b uint8, weights []uint8) int {
	for i, w := range weights {
		if b < w {
			return i
		}
	}
	return len(weights) - 1
}

// Valid reports whether every field is within its catalog range.
func (t Traits) Valid() bool {
	return inRange(t.Mutation, len(mutations)) &&
		inRange(t.Scene, len(scenes)) &&
		inRange(t.Marking, len(markingNames)) &&
		inRange(t.Claws, len(clawNames)) &&
		inRange(t.Eyes, len(eyeNames)) &&
		inRange(t.Accessory, len(accessoryNames)) &&
		inRange(t.TailVariant, len(tailWeights)) &&
		inRange(t.Special, len(specialNames))
}

func inRange(i, n int) bool { return i >= 0 && i < n }
