package spritemaker

import "strings"

// Position is the horizontal role a group kind plays inside its family.
type Position uint8

const (
	PositionNone   Position = iota // standalone control (checkbox, radio)
	PositionLeft                   // left cap, drawn at the control's left edge
	PositionMiddle                 // repeating tile stretched between the caps
	PositionRight                  // right cap, flush with the sheet's right edge
)

// String returns the suffix used in group names for this position.
func (p Position) String() string {
	switch p {
	case PositionLeft:
		return "Left"
	case PositionMiddle:
		return "Middle"
	case PositionRight:
		return "Right"
	default:
		return ""
	}
}

// Kind is one recognized group name. The kind table replaces open-ended
// filename matching: a file whose prefix is not a Kind is ignored.
type Kind struct {
	Name     string
	Family   string
	Position Position
	// SharedHeight requires every image across the family (all positions
	// and states) to have the same height.
	SharedHeight bool
}

// Kinds is an ordered kind table. Order matters twice: Lookup is a
// first-wins scan, and the index of a kind is its layout rank.
type Kinds []Kind

// NewKind builds a kind from its family and position.
func NewKind(family string, pos Position, sharedHeight bool) Kind {
	return Kind{
		Name:         family + pos.String(),
		Family:       family,
		Position:     pos,
		SharedHeight: sharedHeight,
	}
}

// DefaultKinds returns the kinds of the stock theme controls in sheet order:
// selects, checkboxes, radios, file inputs, then buttons. Inside a family the
// right cap comes first, then the middle tile, then the left cap.
func DefaultKinds() Kinds {
	return Kinds{
		NewKind("select", PositionRight, true),
		NewKind("select", PositionMiddle, true),
		NewKind("select", PositionLeft, true),
		NewKind("checkbox", PositionNone, false),
		NewKind("radio", PositionNone, false),
		NewKind("fileFilename", PositionRight, true),
		NewKind("fileFilename", PositionMiddle, true),
		NewKind("fileFilename", PositionLeft, true),
		NewKind("fileButton", PositionRight, true),
		NewKind("fileButton", PositionMiddle, true),
		NewKind("fileButton", PositionLeft, true),
		NewKind("button", PositionRight, true),
		NewKind("button", PositionMiddle, true),
		NewKind("button", PositionLeft, true),
	}
}

// InputTextKind is the optional repeating background for text inputs.
var InputTextKind = NewKind("inputText", PositionMiddle, false)

// Lookup returns the first kind named name and its rank in the table.
func (ks Kinds) Lookup(name string) (Kind, int, bool) {
	for i, k := range ks {
		if k.Name == name {
			return k, i, true
		}
	}
	return Kind{}, -1, false
}

// SharedHeightFamilies lists, in table order and without duplicates, the
// families whose images must all share one height.
func (ks Kinds) SharedHeightFamilies() []string {
	var out []string
	seen := make(map[string]bool)
	for _, k := range ks {
		if !k.SharedHeight || seen[k.Family] {
			continue
		}
		seen[k.Family] = true
		out = append(out, k.Family)
	}
	return out
}

// positionOf derives the position from a group name's suffix.
func positionOf(groupName string) Position {
	switch {
	case strings.HasSuffix(groupName, "Left"):
		return PositionLeft
	case strings.HasSuffix(groupName, "Middle"):
		return PositionMiddle
	case strings.HasSuffix(groupName, "Right"):
		return PositionRight
	default:
		return PositionNone
	}
}

// familyOf strips a trailing Left/Middle/Right from a group name.
func familyOf(groupName string) string {
	if p := positionOf(groupName); p != PositionNone {
		return strings.TrimSuffix(groupName, p.String())
	}
	return groupName
}
