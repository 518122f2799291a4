package engine

import (
	"embed"
	"fmt"
	"io/fs"
	"sort"

	yaml "gopkg.in/yaml.v3"

	"github.com/park285/chess-review/internal/uci"
)

//go:embed presets.yaml
var presetFiles embed.FS

// Preset is a named analysis profile. Exactly one of Depth and
// MoveTimeMillis is set; explicit CLI flags override either.
type Preset struct {
	Name           string
	MoveTimeMillis int `yaml:"movetime_ms"`
	Depth          int `yaml:"depth"`
	MultiPV        int `yaml:"multipv"`
}

// Limits converts the preset into a per-request search budget.
func (p Preset) Limits() uci.Limits {
	return uci.Limits{Depth: p.Depth, MoveTimeMillis: p.MoveTimeMillis}
}

type presetFile struct {
	Presets map[string]Preset `yaml:"presets"`
}

// GetPreset returns the named analysis profile from the embedded catalog.
func GetPreset(name string) (Preset, error) {
	catalog, err := loadPresets()
	if err != nil {
		return Preset{}, err
	}
	p, ok := catalog[name]
	if !ok {
		return Preset{}, fmt.Errorf("unknown preset %q (available: %v)", name, presetNames(catalog))
	}
	p.Name = name
	return p, nil
}

func loadPresets() (map[string]Preset, error) {
	raw, err := fs.ReadFile(presetFiles, "presets.yaml")
	if err != nil {
		return nil, fmt.Errorf("read embedded presets: %w", err)
	}
	var file presetFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return nil, fmt.Errorf("parse presets: %w", err)
	}
	return file.Presets, nil
}

func presetNames(catalog map[string]Preset) []string {
	names := make([]string, 0, len(catalog))
	for name := range catalog {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
