// Package project provides the in-memory project and its persistence.
package project

import (
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"

	"pcb-reveng/internal/component"
	"pcb-reveng/internal/document"
	"pcb-reveng/internal/stackup"
	"pcb-reveng/pkg/geometry"
)

// Project owns the board stackup and every placed component.
type Project struct {
	ID       string
	Name     string
	Created  time.Time
	Modified time.Time

	Stackup    *stackup.Stackup
	Components []component.Component
}

// New creates an empty project with a two-layer stackup.
func New(name string) *Project {
	now := time.Now().UTC()
	return &Project{
		ID:       uuid.NewString(),
		Name:     name,
		Created:  now,
		Modified: now,
		Stackup:  stackup.Default(),
	}
}

// LayerForSide maps top to the first stackup layer and bottom to the last.
func (p *Project) LayerForSide(side component.Side) *stackup.Layer {
	if side == component.SideBottom {
		return p.Stackup.Bottom()
	}
	return p.Stackup.Top()
}

// AddComponent adds a component to the project.
func (p *Project) AddComponent(c component.Component) {
	p.Components = append(p.Components, c)
	p.Modified = time.Now().UTC()
}

// RemoveComponent removes c by identity.
func (p *Project) RemoveComponent(c component.Component) bool {
	for i, existing := range p.Components {
		if existing == c {
			p.Components = append(p.Components[:i], p.Components[i+1:]...)
			p.Modified = time.Now().UTC()
			return true
		}
	}
	return false
}

// Count returns the number of components.
func (p *Project) Count() int {
	return len(p.Components)
}

// OnLayer returns components that occupy the given layer: single-sided parts
// on their own side's layer, and double-sided parts on every layer.
func (p *Project) OnLayer(layer *stackup.Layer) []component.Component {
	var result []component.Component
	for _, c := range p.Components {
		if c.OnSides() == component.BothSides || p.LayerForSide(c.Placement().Side) == layer {
			result = append(result, c)
		}
	}
	return result
}

// ComponentsAt returns the components whose bounds contain the board point pt,
// topmost (most recently added) first.
func (p *Project) ComponentsAt(pt geometry.Point2D) []component.Component {
	var result []component.Component
	for i := len(p.Components) - 1; i >= 0; i-- {
		if component.HitTest(p.Components[i], pt) {
			result = append(result, p.Components[i])
		}
	}
	return result
}

// ToDocument converts the project to its persisted form.
func (p *Project) ToDocument() *document.Document {
	doc := &document.Document{
		Format:   document.FormatTag,
		Version:  document.CurrentVersion,
		ID:       p.ID,
		Name:     p.Name,
		Created:  p.Created,
		Modified: p.Modified,
	}
	for _, l := range p.Stackup.Layers() {
		doc.Stackup = append(doc.Stackup, document.LayerMsg{Name: l.Name, Color: l.Color})
	}
	doc.Components = make([]document.ComponentMsg, len(p.Components))
	for i, c := range p.Components {
		c.Serialize(&doc.Components[i])
	}
	return doc
}

// FromDocument rebuilds a project from its persisted form. Any component
// that fails to load aborts the whole load.
func FromDocument(doc *document.Document) (*Project, error) {
	p := &Project{
		ID:       doc.ID,
		Name:     doc.Name,
		Created:  doc.Created,
		Modified: doc.Modified,
		Stackup:  stackup.New(),
	}
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	for _, l := range doc.Stackup {
		p.Stackup.AddLayer(&stackup.Layer{Name: l.Name, Color: l.Color})
	}
	if p.Stackup.Count() == 0 {
		p.Stackup = stackup.Default()
	}

	for i, msg := range doc.Components {
		c, err := component.Deserialize(p, msg)
		if err != nil {
			return nil, fmt.Errorf("component %d: %w", i, err)
		}
		p.Components = append(p.Components, c)
	}
	return p, nil
}

// Load loads a project from a .pcbj or .pcbm file.
func Load(path string) (*Project, error) {
	doc, err := document.Load(path)
	if err != nil {
		return nil, err
	}
	p, err := FromDocument(doc)
	if err != nil {
		log.Printf("[Project] %s is corrupt: %v", path, err)
		return nil, fmt.Errorf("load %s: %w", path, err)
	}
	return p, nil
}

// Save saves the project; the encoding follows the file extension.
func (p *Project) Save(path string) error {
	doc := p.ToDocument()
	if err := document.Save(path, doc); err != nil {
		return err
	}
	p.Modified = doc.Modified
	return nil
}
