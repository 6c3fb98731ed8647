package levels

import "github.com/vovakirdan/neon-fracture/internal/physics"

// Palette used by the built-in sectors.
const (
	colorBase   = "#1e293b"
	colorSlate  = "#334155"
	colorCyan   = "#0ea5e9"
	colorPink   = "#d946ef"
	colorTarget = "#05050a"
)

// builtin is the campaign, in play order.
var builtin = []Level{
	{
		ID:          0,
		Name:        "SECTOR 01: CALIBRATION",
		Description: "System diagnostics. Basic movement protocols.",
		Goal:        physics.V3(0, 0, -60),
		Platforms: []Platform{
			plat(0, -2, 0, 10, 1, 10, colorBase, false),
			plat(0, -2, -15, 10, 1, 15, colorSlate, false),
			plat(0, -2, -35, 10, 1, 15, colorSlate, false),
			plat(0, -2, -60, 15, 1, 15, colorTarget, true),
		},
	},
	{
		ID:          1,
		Name:        "SECTOR 02: THE GAP",
		Description: "Jump mechanics engaged.",
		Goal:        physics.V3(0, 0, -70),
		Platforms: []Platform{
			plat(0, -2, 0, 10, 1, 10, colorBase, false),
			plat(0, -2, -18, 8, 1, 8, colorSlate, false),
			plat(0, -2, -36, 8, 1, 8, colorSlate, false),
			plat(0, 0, -54, 8, 1, 8, colorCyan, true),
			plat(0, 0, -70, 15, 1, 15, colorTarget, true),
		},
	},
	{
		ID:          2,
		Name:        "SECTOR 03: STAIRWAY",
		Description: "Vertical traversal required.",
		Goal:        physics.V3(0, 20, -60),
		Platforms: []Platform{
			plat(0, -2, 0, 10, 1, 10, colorBase, false),
			plat(0, 2, -15, 8, 1, 8, colorSlate, false),
			plat(0, 6, -30, 8, 1, 8, colorSlate, false),
			plat(0, 12, -45, 8, 1, 8, colorPink, true),
			plat(0, 20, -60, 12, 1, 12, colorTarget, true),
		},
	},
	{
		ID:          3,
		Name:        "SECTOR 04: ZIGZAG",
		Description: "Lateral movement proficiency.",
		Goal:        physics.V3(0, 0, -80),
		Platforms: []Platform{
			plat(0, -2, 0, 10, 1, 10, colorBase, false),
			plat(-10, 0, -20, 8, 1, 8, colorSlate, false),
			plat(10, 2, -40, 8, 1, 8, colorSlate, false),
			plat(-10, 4, -60, 8, 1, 8, colorCyan, true),
			plat(0, 0, -80, 12, 1, 12, colorTarget, true),
		},
	},
	{
		ID:          4,
		Name:        "SECTOR 05: ARCHIPELAGO",
		Description: "Momentum maintenance essential.",
		Goal:        physics.V3(0, 0, -100),
		Platforms: []Platform{
			plat(0, -2, 0, 12, 1, 12, colorBase, false),
			plat(0, 0, -25, 6, 1, 6, colorSlate, false),
			plat(0, 2, -50, 6, 1, 6, colorPink, true),
			plat(0, 4, -75, 6, 1, 6, colorSlate, false),
			plat(0, 0, -100, 15, 1, 15, colorTarget, true),
		},
	},
	{
		ID:          5,
		Name:        "SECTOR 06: THE BEAM",
		Description: "Precision footing required.",
		Goal:        physics.V3(0, 0, -120),
		Platforms: []Platform{
			plat(0, -2, 0, 10, 1, 10, colorBase, false),
			plat(0, 0, -30, 4, 1, 40, colorSlate, false),
			plat(0, 2, -60, 10, 1, 10, colorCyan, true),
			plat(0, 4, -90, 2, 1, 40, colorPink, true),
			plat(0, 0, -120, 15, 1, 15, colorTarget, true),
		},
	},
	{
		ID:          6,
		Name:        "SECTOR 07: ASCENSION",
		Description: "Vertical spiral structure.",
		Goal:        physics.V3(0, 50, 0),
		Platforms: []Platform{
			plat(0, -2, 0, 15, 1, 15, colorBase, false),
			plat(10, 5, 0, 6, 1, 6, colorSlate, false),
			plat(0, 12, -10, 6, 1, 6, colorSlate, false),
			plat(-10, 19, 0, 6, 1, 6, colorCyan, true),
			plat(0, 26, 10, 6, 1, 6, colorSlate, false),
			plat(10, 33, 0, 6, 1, 6, colorPink, true),
			plat(0, 40, -10, 6, 1, 6, colorSlate, false),
			plat(0, 50, 0, 10, 1, 10, colorTarget, true),
		},
	},
	{
		ID:          7,
		Name:        "SECTOR 08: FRACTURED",
		Description: "Disordered geometry.",
		Goal:        physics.V3(20, 10, -100),
		Platforms: []Platform{
			plat(0, -2, 0, 10, 1, 10, colorBase, false),
			plat(-8, 2, -20, 6, 1, 6, colorSlate, false),
			plat(8, 6, -40, 6, 1, 6, colorSlate, false),
			plat(-12, 4, -60, 5, 1, 5, colorCyan, true),
			plat(0, 10, -80, 4, 1, 4, colorPink, true),
			plat(20, 10, -100, 12, 1, 12, colorTarget, true),
		},
	},
	{
		ID:          8,
		Name:        "SECTOR 09: VOID RUN",
		Description: "Maximum velocity required. Do not hesitate.",
		Goal:        physics.V3(0, 0, -180),
		Platforms: []Platform{
			plat(0, -2, 0, 15, 1, 15, colorBase, false),
			plat(0, 0, -40, 8, 1, 8, colorSlate, false),
			plat(0, 2, -80, 8, 1, 8, colorCyan, true),
			plat(0, 4, -130, 8, 1, 8, colorPink, true),
			plat(0, 0, -180, 20, 1, 20, colorTarget, true),
		},
	},
	{
		ID:          9,
		Name:        "SECTOR 10: THE CORE",
		Description: "Final trial. Zero margin for error.",
		Goal:        physics.V3(0, 60, -60),
		Platforms: []Platform{
			plat(0, -2, 0, 12, 1, 12, colorBase, false),
			plat(0, 5, -20, 4, 1, 4, colorSlate, false),
			plat(15, 15, -20, 4, 1, 4, colorCyan, true),
			plat(0, 25, -20, 4, 1, 4, colorSlate, false),
			plat(-15, 35, -40, 4, 1, 4, colorPink, true),
			plat(0, 45, -60, 4, 1, 4, colorSlate, false),
			plat(0, 60, -60, 10, 1, 10, colorTarget, true),
		},
	},
}

// Count returns the number of built-in sectors.
func Count() int {
	return len(builtin)
}

// All returns the built-in sectors in campaign order.
// The returned slice is a copy; levels are immutable.
func All() []Level {
	out := make([]Level, len(builtin))
	copy(out, builtin)
	return out
}

// Get returns the sector at index.
func Get(index int) (Level, bool) {
	if index < 0 || index >= len(builtin) {
		return Level{}, false
	}
	return builtin[index], true
}

// StartIndex picks the sector a session opens on: the highest unlocked one,
// or the first once the campaign has been completed.
func StartIndex(highestUnlocked, count int) int {
	if highestUnlocked < 0 || highestUnlocked >= count {
		return 0
	}
	return highestUnlocked
}

// NextIndex returns the sector after index, wrapping to the first after the
// last one.
func NextIndex(index, count int) int {
	if count <= 0 || index+1 >= count {
		return 0
	}
	return index + 1
}
