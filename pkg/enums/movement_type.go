package enums

import "fmt"

// MovementType tags a ledger entry as inbound, outbound, or part of a
// full-state reset.
type MovementType string

const (
	MovementTypeIn    MovementType = "IN"
	MovementTypeOut   MovementType = "OUT"
	MovementTypeReset MovementType = "RESET"
)

var validMovementTypes = []MovementType{
	MovementTypeIn,
	MovementTypeOut,
	MovementTypeReset,
}

// IsValid reports whether the value matches a known movement type.
func (t MovementType) IsValid() bool {
	for _, candidate := range validMovementTypes {
		if candidate == t {
			return true
		}
	}
	return false
}

func (t MovementType) String() string {
	return string(t)
}

// ParseMovementType converts raw input into MovementType.
func ParseMovementType(value string) (MovementType, error) {
	for _, candidate := range validMovementTypes {
		if string(candidate) == value {
			return candidate, nil
		}
	}
	return "", fmt.Errorf("invalid movement type %q", value)
}
