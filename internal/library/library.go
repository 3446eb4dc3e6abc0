// Package library provides named footprint presets for two-terminal parts.
package library

import (
	"fmt"
	"io"
	"log"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"pcb-reveng/internal/component"
	"pcb-reveng/pkg/geometry"
)

// Preset is a named set of passive footprint parameters.
type Preset struct {
	Name       string
	SymType    component.PassiveSymType
	BodyType   component.Passive2BodyType
	PinD       float64
	BodyCorner geometry.Point2D
	PinCorner  geometry.Point2D
}

// Build places a part with this preset's geometry.
func (p *Preset) Build(resolver component.SideLayerResolver, center geometry.Point2D, theta float64, side component.Side) *component.Passive2Component {
	return component.NewPassive2Component(resolver, center, theta, side,
		p.SymType, p.BodyType, p.PinD, p.BodyCorner, p.PinCorner)
}

type presetYAML struct {
	Name       string     `yaml:"name"`
	Sym        string     `yaml:"sym"`
	Body       string     `yaml:"body"`
	PinD       float64    `yaml:"pin_d"`
	BodyCorner [2]float64 `yaml:"body_corner,flow"`
	PinCorner  [2]float64 `yaml:"pin_corner,flow"`
}

type libraryYAML struct {
	Presets []presetYAML `yaml:"presets"`
}

// Library stores presets keyed by case-insensitive name.
type Library struct {
	presets map[string]*Preset
}

// New creates an empty library.
func New() *Library {
	return &Library{presets: make(map[string]*Preset)}
}

// Add adds or replaces a preset.
func (lib *Library) Add(p *Preset) {
	lib.presets[strings.ToLower(p.Name)] = p
}

// Get returns the named preset, or nil.
func (lib *Library) Get(name string) *Preset {
	return lib.presets[strings.ToLower(strings.TrimSpace(name))]
}

// Names returns the preset names in sorted order.
func (lib *Library) Names() []string {
	names := make([]string, 0, len(lib.presets))
	for _, p := range lib.presets {
		names = append(names, p.Name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of presets.
func (lib *Library) Len() int {
	return len(lib.presets)
}

// Merge copies every preset of other into lib, replacing same-named ones.
func (lib *Library) Merge(other *Library) {
	for _, p := range other.presets {
		lib.Add(p)
	}
}

// Parse reads a YAML preset library.
func Parse(r io.Reader) (*Library, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}

	var raw libraryYAML
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, err
	}

	lib := New()
	for i, py := range raw.Presets {
		if py.Name == "" {
			return nil, fmt.Errorf("preset %d: missing name", i)
		}
		sym, err := component.ParsePassiveSymType(py.Sym)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", py.Name, err)
		}
		body, err := component.ParsePassive2BodyType(py.Body)
		if err != nil {
			return nil, fmt.Errorf("preset %s: %w", py.Name, err)
		}
		lib.Add(&Preset{
			Name:       py.Name,
			SymType:    sym,
			BodyType:   body,
			PinD:       py.PinD,
			BodyCorner: geometry.NewPoint2D(py.BodyCorner[0], py.BodyCorner[1]),
			PinCorner:  geometry.NewPoint2D(py.PinCorner[0], py.PinCorner[1]),
		})
	}
	return lib, nil
}

// LoadFile reads a YAML preset library from path.
func LoadFile(path string) (*Library, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	lib, err := Parse(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	log.Printf("[Library] loaded %d presets from %s", lib.Len(), path)
	return lib, nil
}

// Write encodes the library as YAML, presets sorted by name.
func (lib *Library) Write(w io.Writer) error {
	var raw libraryYAML
	for _, name := range lib.Names() {
		p := lib.Get(name)
		raw.Presets = append(raw.Presets, presetYAML{
			Name:       p.Name,
			Sym:        p.SymType.String(),
			Body:       p.BodyType.String(),
			PinD:       p.PinD,
			BodyCorner: [2]float64{p.BodyCorner.X, p.BodyCorner.Y},
			PinCorner:  [2]float64{p.PinCorner.X, p.PinCorner.Y},
		})
	}
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(&raw); err != nil {
		return err
	}
	return enc.Close()
}
