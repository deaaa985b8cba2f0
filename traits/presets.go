package traits

// Preset is a hand-picked trait vector used by the preview gallery.
type Preset struct {
	Label  string
	Traits Traits
}

// Presets are showcase vectors that exercise the rarer combinations.
var Presets = []Preset{
	{"Classic", Traits{Mutation: 0, Scene: 6, Claws: 0, Eyes: 0, Marking: 0, Accessory: 0}},
	{"Blue Baron", Traits{Mutation: 1, Scene: 2, Claws: 0, Eyes: 2, Marking: 3, Accessory: 2, TailVariant: 1}},
	{"Ghost", Traits{Mutation: 3, Scene: 7, Claws: 0, Eyes: 4, Marking: 0, Accessory: 0}},
	{"Calico Corsair", Traits{Mutation: 5, Scene: 1, Claws: 1, Eyes: 0, Marking: 1, Accessory: 1, BrokenAntenna: true}},
	{"Infernal", Traits{Mutation: 2, Scene: 3, Claws: 4, Eyes: 5, Marking: 7, Accessory: 6}},
	{"Doodled", Traits{Mutation: 6, Scene: 0, Claws: 0, Eyes: 0, Marking: 0, Accessory: 8, TailVariant: 1}},
	{"Chain Maxi", Traits{Mutation: 4, Scene: 5, Claws: 0, Eyes: 6, Marking: 5, Accessory: 9}},
	{"Nounish", Traits{Mutation: 0, Scene: 6, Claws: 2, Eyes: 6, Marking: 0, Accessory: 0}},
	{"Rosy", Traits{Mutation: 3, Scene: 0, Claws: 0, Eyes: 0, Marking: 0, Accessory: 10}},
	{"Sea Veteran", Traits{Mutation: 7, Scene: 4, Claws: 2, Eyes: 0, Marking: 4, Accessory: 4, BrokenAntenna: true}},
	{"Yellow King", Traits{Mutation: 4, Scene: 5, Claws: 3, Eyes: 0, Marking: 6, Accessory: 2}},
	{"Laser Ghost", Traits{Mutation: 2, Scene: 7, Claws: 0, Eyes: 5, Marking: 0, Accessory: 0}},
}

// PresetSeeds is the fixed gallery of seeds shown before any token exists.
var PresetSeeds = []uint64{
	0x1A2B3C4D5E6F7089, 0x9876543210ABCDEF, 0x2468ACE02468ACE0, 0xFEDCBA9876543210,
	0x0F1E2D3C4B5A6978, 0x80706050A0302010, 0xAABBCCDD11223344, 0x5566778899AABBCC,
	0x1357924601234567, 0xDEADBEEF12345678, 0x0102030405060708, 0xF0E0D0C0B0A09080,
	0x1234ABCD5678EF90, 0x9ABC1234DEF05678, 0x0011223344556677, 0x8899AABBCCDDEEFF,
	0x3141592653589793, 0x2718281828459045, 0x1618033988749894, 0x1414213562373095,
	0xA1B2C3D4E5F60718, 0x5A4B3C2D1E0F9807, 0xCAFEBABE12345678, 0xDEADC0DEBEEF1234,
	0x0BADCAFE87654321, 0x600DC0DE00000000, 0xABCDEF0123456789, 0xFEDCBA0987654321,
	0x0123456789ABCDEF, 0x1111111122222222, 0x3333333344444444, 0x5555555566666666,
	0x7777777788888888, 0x9999999900000000, 0xAAAAAAAABBBBBBBB, 0xCCCCCCCCDDDDDDDD,
	0xEEEEEEEEFFFFFFFF, 0x0F0F0F0FF0F0F0F0, 0x1234567887654321, 0xABCDEFEFCDAB0123,
	0x246813579ABCDEF0, 0xF1E2D3C4B5A69780, 0x0A1B2C3D4E5F6789, 0x9870123456ABCDEF,
	0x1122334455667788, 0x99AABBCCDDEEFF00, 0xFEEDFACECAFED00D, 0xC0FFEE0123456789,
	0xDEAF00DBEEFDEAD0, 0x1234FEDC5678BA98, 0xA0B1C2D3E4F50617, 0x7061504030201000,
	0xF0CACC1A00ABCF12, 0x314159265358979D, 0x161803398874989A, 0x271828182845904B,
	0x577215664901532C, 0x302775637731670D, 0x693147180559945F, 0x424242424242424E,
}

// PresetByLabel returns the preset with the given label.
func PresetByLabel(label string) (Preset, bool) {
	for _, p := range Presets {
		if p.Label == label {
			return p, true
		}
	}
	return Preset{}, false
}
