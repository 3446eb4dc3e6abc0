package component

import "fmt"

// Side indicates which face of the board a component is mounted on.
type Side int

const (
	SideTop    Side = iota // Component side
	SideBottom             // Solder side
)

func (s Side) String() string {
	switch s {
	case SideTop:
		return "top"
	case SideBottom:
		return "bottom"
	default:
		return fmt.Sprintf("Side(%d)", int(s))
	}
}

// Flip returns the opposite side.
func (s Side) Flip() Side {
	if s == SideTop {
		return SideBottom
	}
	return SideTop
}

// ParseSide maps "top"/"bottom" (or "front"/"back") to a Side.
func ParseSide(s string) (Side, error) {
	switch s {
	case "top", "front":
		return SideTop, nil
	case "bottom", "back":
		return SideBottom, nil
	}
	return 0, fmt.Errorf("unknown side %q", s)
}

// OnSide tells whether a component occupies one board face or both.
type OnSide int

const (
	OneSide OnSide = iota
	BothSides
)

func (o OnSide) String() string {
	if o == OneSide {
		return "one"
	}
	return "both"
}
