// Package stackup describes the ordered physical layers of a board.
package stackup

// Layer is a single physical copper layer.
type Layer struct {
	Name  string `json:"name"`
	Color string `json:"color,omitempty"` // Display color, e.g. "#C83232"
}

// Stackup holds the board layers ordered from the top side down.
type Stackup struct {
	layers []*Layer
}

// New creates an empty stackup.
func New() *Stackup {
	return &Stackup{}
}

// Default returns a two-layer stackup ("Top" and "Bottom").
func Default() *Stackup {
	s := New()
	s.AddLayer(&Layer{Name: "Top", Color: "#C83232"})
	s.AddLayer(&Layer{Name: "Bottom", Color: "#3232C8"})
	return s
}

// AddLayer appends a layer below the current bottom layer.
func (s *Stackup) AddLayer(l *Layer) {
	s.layers = append(s.layers, l)
}

// Layers returns the layers in order. The slice must not be modified.
func (s *Stackup) Layers() []*Layer {
	return s.layers
}

// Count returns the number of layers.
func (s *Stackup) Count() int {
	return len(s.layers)
}

// At returns the layer at the given order index, or nil if out of range.
func (s *Stackup) At(i int) *Layer {
	if i < 0 || i >= len(s.layers) {
		return nil
	}
	return s.layers[i]
}

// OrderForLayer returns the index of l in the stackup, or -1 if absent.
func (s *Stackup) OrderForLayer(l *Layer) int {
	for i, layer := range s.layers {
		if layer == l {
			return i
		}
	}
	return -1
}

// LayerNamed returns the first layer with the given name, or nil.
func (s *Stackup) LayerNamed(name string) *Layer {
	for _, l := range s.layers {
		if l.Name == name {
			return l
		}
	}
	return nil
}

// Top returns the topmost layer, or nil for an empty stackup.
func (s *Stackup) Top() *Layer {
	return s.At(0)
}

// Bottom returns the bottommost layer, or nil for an empty stackup.
func (s *Stackup) Bottom() *Layer {
	return s.At(len(s.layers) - 1)
}
