package jdex

import (
	"encoding/json"
	"fmt"
)

// EntityKind identifies the kind of a Javadoc entity. The integer values
// are persisted in index files and must not change.
type EntityKind int

const (
	KindAnnotation        EntityKind = 0
	KindClass             EntityKind = 1
	KindEnum              EntityKind = 2
	KindInterface         EntityKind = 3
	KindAnnotationElement EntityKind = 4
	KindField             EntityKind = 5
	KindMethod            EntityKind = 6
	KindEnumConstant      EntityKind = 7
)

// Kinds lists every valid kind in code order.
var Kinds = []EntityKind{
	KindAnnotation,
	KindClass,
	KindEnum,
	KindInterface,
	KindAnnotationElement,
	KindField,
	KindMethod,
	KindEnumConstant,
}

var kindNames = map[EntityKind]string{
	KindAnnotation:        "annotation",
	KindClass:             "class",
	KindEnum:              "enum",
	KindInterface:         "interface",
	KindAnnotationElement: "annotation element",
	KindField:             "field",
	KindMethod:            "method",
	KindEnumConstant:      "enum constant",
}

// Valid reports whether k is one of the known kinds.
func (k EntityKind) Valid() bool {
	_, ok := kindNames[k]
	return ok
}

// String returns the kind's display name.
func (k EntityKind) String() string {
	if name, ok := kindNames[k]; ok {
		return name
	}
	return fmt.Sprintf("kind(%d)", int(k))
}

// Broad returns the broad category the kind belongs to.
func (k EntityKind) Broad() BroadKind {
	switch k {
	case KindAnnotation, KindClass, KindEnum, KindInterface:
		return BroadObject
	default:
		return BroadMember
	}
}

// UnmarshalJSON rejects kind codes outside the closed enumeration.
func (k *EntityKind) UnmarshalJSON(data []byte) error {
	var code int
	if err := json.Unmarshal(data, &code); err != nil {
		return err
	}
	kind := EntityKind(code)
	if !kind.Valid() {
		return Errorf(EINVALID, "unknown entity kind %d", code)
	}
	*k = kind
	return nil
}

// BroadKind separates top-level objects from the members they contain.
type BroadKind string

const (
	BroadObject BroadKind = "o"
	BroadMember BroadKind = "m"
)

// Valid reports whether b is a known broad kind.
func (b BroadKind) Valid() bool {
	return b == BroadObject || b == BroadMember
}
