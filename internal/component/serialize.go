package component

import (
	"fmt"

	"pcb-reveng/internal/document"
	"pcb-reveng/pkg/geometry"
)

// Passive2Fields holds every persisted field of a two-terminal part.
type Passive2Fields struct {
	SymType       PassiveSymType
	BodyType      Passive2BodyType
	PinD          float64
	BodyCornerVec geometry.Point2D
	PinCornerVec  geometry.Point2D
}

// RestorePassive2 rebuilds a part from persisted state. The pad cache starts
// empty and is re-derived on first use.
func RestorePassive2(base Base, f Passive2Fields) *Passive2Component {
	return &Passive2Component{
		Base:          base,
		symType:       f.SymType,
		bodyType:      f.BodyType,
		pinD:          f.PinD,
		bodyCornerVec: f.BodyCornerVec,
		pinCornerVec:  f.PinCornerVec,
		pads:          nil,
	}
}

// Serialize writes the part into msg. Pin distance and corner vectors are
// truncated toward zero; pads are never written.
func (c *Passive2Component) Serialize(msg *document.ComponentMsg) {
	c.SerializeCommon(&msg.Common)

	msg.Variant = document.VariantPassive2
	msg.Passive2 = &document.Passive2Msg{
		SymType:    c.symType.Code(),
		BodyType:   c.bodyType.Code(),
		PinD:       int(c.pinD),
		BodyCorner: pointMsg(c.bodyCornerVec),
		PinCorner:  pointMsg(c.pinCornerVec),
	}
}

// DeserializePassive2 restores a two-terminal part from msg. Unknown symbol
// or body codes fail with an error matching ErrInvalidEnumValue.
func DeserializePassive2(resolver SideLayerResolver, msg document.ComponentMsg) (*Passive2Component, error) {
	if msg.Variant != document.VariantPassive2 {
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, msg.Variant)
	}
	m := msg.Passive2
	if m == nil {
		return nil, fmt.Errorf("%w: %s payload missing", ErrMalformedMessage, msg.Variant)
	}

	base, err := DeserializeCommon(resolver, msg.Common)
	if err != nil {
		return nil, fmt.Errorf("common: %w", err)
	}

	symType, err := PassiveSymTypeFromCode(m.SymType)
	if err != nil {
		return nil, err
	}
	bodyType, err := Passive2BodyTypeFromCode(m.BodyType)
	if err != nil {
		return nil, err
	}

	return RestorePassive2(base, Passive2Fields{
		SymType:       symType,
		BodyType:      bodyType,
		PinD:          float64(m.PinD),
		BodyCornerVec: pointFromMsg(m.BodyCorner),
		PinCornerVec:  pointFromMsg(m.PinCorner),
	}), nil
}
