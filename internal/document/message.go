// Package document defines the persisted project document and its encodings.
//
// A document is a tree of plain message structs. Model packages write into
// and read from these messages; this package only moves them to and from
// bytes. Coordinates are stored as integers (board units), so any fractional
// part of a persisted length is dropped on save.
package document

import "time"

const (
	// FormatTag identifies a pcb-reveng document.
	FormatTag = "pcbre-document"

	// CurrentVersion is the document version written by this build.
	CurrentVersion = 1
)

// Component message variants.
const (
	VariantPassive2 = "passive-two-terminal"
)

// Point2Msg is a persisted integer point.
type Point2Msg struct {
	X int `json:"x" msgpack:"x"`
	Y int `json:"y" msgpack:"y"`
}

// CommonMsg carries the placement fields shared by every component.
type CommonMsg struct {
	Center Point2Msg `json:"center" msgpack:"center"`
	Theta  float64   `json:"theta" msgpack:"theta"` // Radians
	Side   int       `json:"side" msgpack:"side"`
}

// Passive2Msg is the payload of a two-terminal component.
type Passive2Msg struct {
	SymType    int       `json:"sym_type" msgpack:"sym_type"`
	BodyType   int       `json:"body_type" msgpack:"body_type"`
	PinD       int       `json:"pin_d" msgpack:"pin_d"`
	BodyCorner Point2Msg `json:"body_corner" msgpack:"body_corner"`
	PinCorner  Point2Msg `json:"pin_corner" msgpack:"pin_corner"`
}

// ComponentMsg is one persisted component: the common sub-message plus
// exactly one variant payload selected by Variant.
type ComponentMsg struct {
	Common   CommonMsg    `json:"common" msgpack:"common"`
	Variant  string       `json:"variant" msgpack:"variant"`
	Passive2 *Passive2Msg `json:"passive2,omitempty" msgpack:"passive2,omitempty"`
}

// LayerMsg is a persisted stackup layer.
type LayerMsg struct {
	Name  string `json:"name" msgpack:"name"`
	Color string `json:"color,omitempty" msgpack:"color,omitempty"`
}

// Document is the root of a persisted project.
type Document struct {
	Format   string    `json:"format" msgpack:"format"`
	Version  int       `json:"version" msgpack:"version"`
	ID       string    `json:"id" msgpack:"id"`
	Name     string    `json:"name" msgpack:"name"`
	Created  time.Time `json:"created" msgpack:"created"`
	Modified time.Time `json:"modified" msgpack:"modified"`

	Stackup    []LayerMsg     `json:"stackup" msgpack:"stackup"`
	Components []ComponentMsg `json:"components" msgpack:"components"`
}

// New returns an empty document stamped with the current format and version.
func New(id, name string) *Document {
	now := time.Now().UTC()
	return &Document{
		Format:   FormatTag,
		Version:  CurrentVersion,
		ID:       id,
		Name:     name,
		Created:  now,
		Modified: now,
	}
}
