package activitylog

import (
	"errors"
	"fmt"
	"strings"
)

var ErrUnknownOperationKind = errors.New("unknown operation kind")

// OperationKind identifies which catalog mutation an Entry records.
//
// The set of kinds is closed: only the constants below are valid, the zero value is not.
type OperationKind uint8

const (
	// OperationAdd records that a book was added to the catalog.
	OperationAdd OperationKind = iota + 1

	// OperationRemove records that a book was removed from the catalog.
	OperationRemove

	// OperationUpdate records that the descriptive data of a book was replaced.
	OperationUpdate

	// OperationBorrow records that a book was lent out.
	OperationBorrow

	// OperationReturn records that a lent book was returned.
	OperationReturn
)

var operationKindNames = map[OperationKind]string{
	OperationAdd:    "ADD",
	OperationRemove: "REMOVE",
	OperationUpdate: "UPDATE",
	OperationBorrow: "BORROW",
	OperationReturn: "RETURN",
}

// AllOperationKinds returns every valid OperationKind in declaration order.
func AllOperationKinds() []OperationKind {
	return []OperationKind{OperationAdd, OperationRemove, OperationUpdate, OperationBorrow, OperationReturn}
}

// ParseOperationKind converts a kind name (case-insensitive) into an OperationKind.
func ParseOperationKind(name string) (OperationKind, error) {
	for kind, kindName := range operationKindNames {
		if strings.EqualFold(kindName, strings.TrimSpace(name)) {
			return kind, nil
		}
	}

	return 0, fmt.Errorf("%w: %q", ErrUnknownOperationKind, name)
}

// IsValid reports whether k is one of the declared operation kinds.
func (k OperationKind) IsValid() bool {
	_, ok := operationKindNames[k]
	return ok
}

// String provides the upper-case name used in the rendered log, e.g. "BORROW".
func (k OperationKind) String() string {
	if name, ok := operationKindNames[k]; ok {
		return name
	}

	return fmt.Sprintf("OperationKind(%d)", uint8(k))
}

// MarshalText implements encoding.TextMarshaler so kinds are serialized by name.
func (k OperationKind) MarshalText() ([]byte, error) {
	if !k.IsValid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownOperationKind, uint8(k))
	}

	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (k *OperationKind) UnmarshalText(text []byte) error {
	kind, err := ParseOperationKind(string(text))
	if err != nil {
		return err
	}

	*k = kind

	return nil
}
