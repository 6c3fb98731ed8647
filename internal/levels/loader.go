package levels

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"sort"
	"strings"

	"github.com/vovakirdan/neon-fracture/internal/levels/formats"
	"github.com/vovakirdan/neon-fracture/internal/physics"
)

// Loader handles loading custom levels from a directory.
type Loader struct {
	Root   string
	Tuning physics.Tuning // Movement the levels are validated against
}

// NewLoader creates a new level loader.
func NewLoader(root string, tuning physics.Tuning) *Loader {
	return &Loader{Root: root, Tuning: tuning}
}

// LoadAll recursively scans and loads all level files.
// Files that fail to parse or validate are skipped.
// Returns levels sorted by ID for deterministic ordering.
func (l *Loader) LoadAll() ([]Level, error) {
	var levels []Level

	err := filepath.WalkDir(l.Root, func(path string, d os.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		if !slices.Contains(formats.FormatExtensions(), strings.ToLower(filepath.Ext(path))) {
			return nil
		}

		level, err := l.LoadFile(path)
		if err != nil {
			return nil
		}
		levels = append(levels, level)
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("walking directory %s: %w", l.Root, err)
	}

	sort.SliceStable(levels, func(i, j int) bool {
		return levels[i].ID < levels[j].ID
	})

	return levels, nil
}

// LoadFile loads and validates a single level file.
func (l *Loader) LoadFile(path string) (Level, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Level{}, fmt.Errorf("reading file %s: %w", path, err)
	}

	parsed, err := parseByExtension(data, strings.ToLower(filepath.Ext(path)))
	if err != nil {
		return Level{}, fmt.Errorf("parsing file %s: %w", path, err)
	}

	level := fromParsed(parsed)
	level.FilePath = path

	if err := Validate(level, l.Tuning); err != nil {
		return Level{}, fmt.Errorf("validating file %s: %w", path, err)
	}
	return level, nil
}

func fromParsed(p formats.Level) Level {
	level := Level{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Goal:        p.Goal,
		Spawn:       p.Spawn,
		Platforms:   make([]Platform, len(p.Platforms)),
	}
	for i, pp := range p.Platforms {
		level.Platforms[i] = Platform{
			Position: pp.Position,
			Size:     pp.Size,
			Color:    pp.Color,
			Neon:     pp.Neon,
		}
	}
	return level
}

func parseByExtension(data []byte, ext string) (formats.Level, error) {
	switch ext {
	case ".yaml", ".yml":
		return formats.ParseYAML(data)
	default:
		return formats.Level{}, fmt.Errorf("unsupported extension: %s", ext)
	}
}
