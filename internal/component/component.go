// Package component provides the board component model: placement, pad
// geometry, and conversion to and from persisted document messages.
package component

import (
	"errors"
	"fmt"

	"pcb-reveng/internal/document"
	"pcb-reveng/internal/stackup"
	"pcb-reveng/pkg/geometry"
)

var (
	ErrUnknownVariant   = errors.New("unknown component variant")
	ErrMalformedMessage = errors.New("malformed component message")
)

// SideLayerResolver maps a board side to the physical layer on that side.
// A project implements this for the components it owns.
type SideLayerResolver interface {
	LayerForSide(side Side) *stackup.Layer
}

// Component is the behaviour shared by every placed board component.
type Component interface {
	Placement() *Base
	Pads() []*Pad
	OnSides() OnSide
	ThetaBBox() geometry.Rect
	Serialize(msg *document.ComponentMsg)
}

// Base is the placement record every component composes: where it sits,
// how it is turned, which face it is on, and who resolves that face to a layer.
type Base struct {
	Center geometry.Point2D
	Theta  float64 // Radians, counter-clockwise
	Side   Side

	resolver SideLayerResolver
}

// NewBase creates a placement record. resolver may be nil.
func NewBase(center geometry.Point2D, theta float64, side Side, resolver SideLayerResolver) Base {
	return Base{Center: center, Theta: theta, Side: side, resolver: resolver}
}

// Placement returns the placement record itself.
func (b *Base) Placement() *Base {
	return b
}

// Resolver returns the side-layer resolver, or nil.
func (b *Base) Resolver() SideLayerResolver {
	return b.resolver
}

// Layer returns the layer on the component's side, or nil without a resolver.
func (b *Base) Layer() *stackup.Layer {
	if b.resolver == nil {
		return nil
	}
	return b.resolver.LayerForSide(b.Side)
}

// Matrix returns the local-to-board transform: mirror across the local Y
// axis for bottom-side parts, rotate by Theta, then move to Center.
func (b *Base) Matrix() geometry.AffineTransform {
	m := geometry.Translation(b.Center.X, b.Center.Y).Compose(geometry.Rotation(b.Theta))
	if b.Side == SideBottom {
		m = m.Compose(geometry.Scale(-1, 1))
	}
	return m
}

// SerializeCommon writes the placement into the shared sub-message.
func (b *Base) SerializeCommon(msg *document.CommonMsg) {
	msg.Center = pointMsg(b.Center)
	msg.Theta = b.Theta
	msg.Side = b.Side.Code()
}

// DeserializeCommon restores a placement record from the shared sub-message.
func DeserializeCommon(resolver SideLayerResolver, msg document.CommonMsg) (Base, error) {
	side, err := SideFromCode(msg.Side)
	if err != nil {
		return Base{}, err
	}
	return Base{
		Center:   pointFromMsg(msg.Center),
		Theta:    msg.Theta,
		Side:     side,
		resolver: resolver,
	}, nil
}

// Deserialize restores any known component variant from msg.
func Deserialize(resolver SideLayerResolver, msg document.ComponentMsg) (Component, error) {
	switch msg.Variant {
	case document.VariantPassive2:
		c, err := DeserializePassive2(resolver, msg)
		if err != nil {
			return nil, err
		}
		return c, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, msg.Variant)
}

func pointMsg(p geometry.Point2D) document.Point2Msg {
	pi := geometry.Trunc(p)
	return document.Point2Msg{X: pi.X, Y: pi.Y}
}

func pointFromMsg(m document.Point2Msg) geometry.Point2D {
	return geometry.PointInt{X: m.X, Y: m.Y}.ToFloat()
}
