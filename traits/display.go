package traits

// Names is the human-readable form of a trait vector, as shown on trait
// sheets and share cards.
type Names struct {
	Special       string `json:"special,omitempty"`
	Mutation      string `json:"mutation"`
	Scene         string `json:"scene"`
	Marking       string `json:"marking"`
	Claws         string `json:"claws"`
	Eyes          string `json:"eyes"`
	Accessory     string `json:"accessory"`
	BrokenAntenna bool   `json:"brokenAntenna"`
	TailVariant   int    `json:"tailVariant"`
}

// Display resolves every index of t to its catalog name.
// It panics if t is not Valid.
func Display(t Traits) Names {
	return Names{
		Special:       SpecialName(t.Special),
		Mutation:      MutationAt(t.Mutation).Name,
		Scene:         SceneAt(t.Scene).Name,
		Marking:       MarkingName(t.Marking),
		Claws:         ClawName(t.Claws),
		Eyes:          EyeName(t.Eyes),
		Accessory:     AccessoryName(t.Accessory),
		BrokenAntenna: t.BrokenAntenna,
		TailVariant:   t.TailVariant,
	}
}

// Title is a one-line summary such as "Infernal Melanistic in Volcanic Vent".
func (n Names) Title() string {
	s := n.Mutation + " in " + n.Scene
	if n.Special != "" {
		s = n.Special + " " + s
	}
	return s
}
