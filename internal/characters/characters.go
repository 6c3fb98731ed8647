// Package characters holds the frame presets a player can own and equip.
// Frames only change how the runner is drawn.
package characters

import "github.com/vovakirdan/neon-fracture/internal/core"

// Rarity grades a frame.
type Rarity string

const (
	Common    Rarity = "COMMON"
	Rare      Rarity = "RARE"
	Legendary Rarity = "LEGENDARY"
)

// Model is the frame silhouette.
type Model string

const (
	ModelStandard Model = "STANDARD"
	ModelStealth  Model = "STEALTH"
	ModelHeavy    Model = "HEAVY"
	ModelProto    Model = "PROTO"
)

// Theme is the frame colour scheme as hex strings.
type Theme struct {
	Primary   string
	Secondary string
	Emissive  string
}

// Character is one frame preset.
type Character struct {
	ID     string
	Name   string
	Rarity Rarity
	Model  Model
	Theme  Theme
}

// DefaultID is the frame every new record owns and equips.
const DefaultID = "frame_v01"

var catalog = []Character{
	{
		ID: DefaultID, Name: "VANGUARD", Rarity: Common, Model: ModelStandard,
		Theme: Theme{Primary: "#1e293b", Secondary: "#0ea5e9", Emissive: "#0ea5e9"},
	},
	{
		ID: "frame_stealth", Name: "VOID WALKER", Rarity: Rare, Model: ModelStealth,
		Theme: Theme{Primary: "#0f172a", Secondary: "#a855f7", Emissive: "#d946ef"},
	},
	{
		ID: "frame_assault", Name: "CRIMSON EDGE", Rarity: Rare, Model: ModelHeavy,
		Theme: Theme{Primary: "#450a0a", Secondary: "#ef4444", Emissive: "#f87171"},
	},
	{
		ID: "frame_proto", Name: "SOLARIS PRIME", Rarity: Legendary, Model: ModelProto,
		Theme: Theme{Primary: "#fffbeb", Secondary: "#f59e0b", Emissive: "#fbbf24"},
	},
	{
		ID: "frame_toxin", Name: "ACID RAIN", Rarity: Common, Model: ModelHeavy,
		Theme: Theme{Primary: "#064e3b", Secondary: "#10b981", Emissive: "#34d399"},
	},
}

// All returns every frame in catalog order.
func All() []Character {
	out := make([]Character, len(catalog))
	copy(out, catalog)
	return out
}

// Lookup returns the frame with the given id.
func Lookup(id string) (Character, bool) {
	for _, c := range catalog {
		if c.ID == id {
			return c, true
		}
	}
	return Character{}, false
}

// ByID returns the frame with the given id, or the default frame when the
// id is unknown.
func ByID(id string) Character {
	if c, ok := Lookup(id); ok {
		return c
	}
	return catalog[0]
}

// Glyph is the rune the runner is drawn with.
func (c Character) Glyph() rune {
	switch c.Model {
	case ModelStealth:
		return '◆'
	case ModelHeavy:
		return '■'
	case ModelProto:
		return '★'
	default:
		return '●'
	}
}

// Color is the cell colour the runner is drawn with.
func (c Character) Color() core.Color {
	return core.Color(c.Theme.Emissive)
}

// RarityColor is the label colour for a rarity.
func RarityColor(r Rarity) core.Color {
	switch r {
	case Rare:
		return core.ColorPurple
	case Legendary:
		return core.ColorYellow
	default:
		return core.ColorGray
	}
}
