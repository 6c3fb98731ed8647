// Package formats provides level file format parsers.
package formats

import (
	"fmt"

	"github.com/vovakirdan/neon-fracture/internal/physics"
	"gopkg.in/yaml.v3"
)

// YAMLLevel represents the YAML structure for a level file.
type YAMLLevel struct {
	ID          int            `yaml:"id"`
	Name        string         `yaml:"name"`
	Description string         `yaml:"description,omitempty"`
	Spawn       []float64      `yaml:"spawn,omitempty"`
	Goal        []float64      `yaml:"goal"`
	Platforms   []YAMLPlatform `yaml:"platforms"`
}

// YAMLPlatform is one box. Pos is the centre, Size the full extents.
type YAMLPlatform struct {
	Pos   []float64 `yaml:"pos"`
	Size  []float64 `yaml:"size"`
	Color string    `yaml:"color,omitempty"`
	Neon  bool      `yaml:"neon,omitempty"`
}

// Platform is a parsed platform.
type Platform struct {
	Position physics.Vec3
	Size     physics.Vec3
	Color    string
	Neon     bool
}

// Level represents a parsed level ready for use.
type Level struct {
	ID          int
	Name        string
	Description string
	Spawn       *physics.Vec3
	Goal        physics.Vec3
	Platforms   []Platform
}

// DefaultPlatformColor is used when a platform omits its colour.
const DefaultPlatformColor = "#334155"

// ParseYAML parses a YAML level file.
func ParseYAML(data []byte) (Level, error) {
	var yl YAMLLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("yaml unmarshal: %w", err)
	}

	goal, err := vec3(yl.Goal, "goal")
	if err != nil {
		return Level{}, err
	}

	level := Level{
		ID:          yl.ID,
		Name:        yl.Name,
		Description: yl.Description,
		Goal:        goal,
		Platforms:   make([]Platform, 0, len(yl.Platforms)),
	}

	if yl.Spawn != nil {
		spawn, err := vec3(yl.Spawn, "spawn")
		if err != nil {
			return Level{}, err
		}
		level.Spawn = &spawn
	}

	for i, p := range yl.Platforms {
		pos, err := vec3(p.Pos, fmt.Sprintf("platforms[%d].pos", i))
		if err != nil {
			return Level{}, err
		}
		size, err := vec3(p.Size, fmt.Sprintf("platforms[%d].size", i))
		if err != nil {
			return Level{}, err
		}
		color := p.Color
		if color == "" {
			color = DefaultPlatformColor
		}
		level.Platforms = append(level.Platforms, Platform{
			Position: pos,
			Size:     size,
			Color:    color,
			Neon:     p.Neon,
		})
	}

	return level, nil
}

// FormatExtensions returns supported file extensions.
func FormatExtensions() []string {
	return []string{".yaml", ".yml"}
}

func vec3(v []float64, field string) (physics.Vec3, error) {
	if len(v) != 3 {
		return physics.Vec3{}, fmt.Errorf("%s: expected 3 components, got %d", field, len(v))
	}
	return physics.V3(v[0], v[1], v[2]), nil
}
