package component

import (
	"errors"
	"fmt"
)

// ErrInvalidEnumValue is matched by every InvalidEnumValueError.
var ErrInvalidEnumValue = errors.New("invalid enum value")

// InvalidEnumValueError reports a persisted enum code with no known variant.
type InvalidEnumValueError struct {
	Enum string
	Code int
}

func (e *InvalidEnumValueError) Error() string {
	return fmt.Sprintf("invalid enum value: %s code %d", e.Enum, e.Code)
}

func (e *InvalidEnumValueError) Is(target error) bool {
	return target == ErrInvalidEnumValue
}

// Persisted codes. These never change once released; new variants take
// new codes regardless of where they sit in the Go const blocks.
var (
	sideCodes = map[Side]int{
		SideTop:    0,
		SideBottom: 1,
	}
	symTypeCodes = map[PassiveSymType]int{
		SymResistor:           0,
		SymCapacitor:          1,
		SymCapacitorPolarized: 2,
		SymInductor:           3,
		SymDiode:              4,
	}
	bodyTypeCodes = map[Passive2BodyType]int{
		BodyChip:         0,
		BodyTHAxial:      1,
		BodyTHRadial:     2,
		BodySMDCap:       3,
		BodyTHFlippedCap: 4,
	}

	sideByCode     = invert(sideCodes)
	symTypeByCode  = invert(symTypeCodes)
	bodyTypeByCode = invert(bodyTypeCodes)
)

func invert[K comparable](m map[K]int) map[int]K {
	out := make(map[int]K, len(m))
	for k, code := range m {
		out[code] = k
	}
	return out
}

// Code returns the persisted code of the side.
func (s Side) Code() int {
	return sideCodes[s]
}

// SideFromCode looks up a persisted side code.
func SideFromCode(code int) (Side, error) {
	s, ok := sideByCode[code]
	if !ok {
		return 0, &InvalidEnumValueError{Enum: "Side", Code: code}
	}
	return s, nil
}

// Code returns the persisted code of the symbol type.
func (t PassiveSymType) Code() int {
	return symTypeCodes[t]
}

// PassiveSymTypeFromCode looks up a persisted symbol type code.
func PassiveSymTypeFromCode(code int) (PassiveSymType, error) {
	t, ok := symTypeByCode[code]
	if !ok {
		return 0, &InvalidEnumValueError{Enum: "PassiveSymType", Code: code}
	}
	return t, nil
}

// Code returns the persisted code of the body type.
func (b Passive2BodyType) Code() int {
	return bodyTypeCodes[b]
}

// Passive2BodyTypeFromCode looks up a persisted body type code.
func Passive2BodyTypeFromCode(code int) (Passive2BodyType, error) {
	b, ok := bodyTypeByCode[code]
	if !ok {
		return 0, &InvalidEnumValueError{Enum: "Passive2BodyType", Code: code}
	}
	return b, nil
}
