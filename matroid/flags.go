package matroid

import "strings"

// Flags describe a decomposition tree node. The low bits (TypeMask) hold
// the node type; the remaining bits are properties of the represented
// matroid.
type Flags int

const (
	OneSum   Flags = 1 // block-diagonal composition of its children
	TwoSum   Flags = 2 // two-sum of two children
	ThreeSum Flags = 3 // three-sum of two children
	R10      Flags = 4 // leaf isomorphic to the R10 matroid
	TypeMask Flags = 7 // selects the node type bits

	Graphic   Flags = 8  // matroid is graphic
	Cographic Flags = 16 // matroid is cographic
	Regular   Flags = 32 // matroid is regular
)

// Type returns the node type bits.
func (f Flags) Type() Flags { return f & TypeMask }

// String renders the flags as a '|'-separated list, e.g. "one-sum|regular".
func (f Flags) String() string {
	var parts []string
	switch f.Type() {
	case OneSum:
		parts = append(parts, "one-sum")
	case TwoSum:
		parts = append(parts, "two-sum")
	case ThreeSum:
		parts = append(parts, "three-sum")
	case R10:
		parts = append(parts, "r10")
	}
	for _, p := range []struct {
		bit  Flags
		name string
	}{{Graphic, "graphic"}, {Cographic, "cographic"}, {Regular, "regular"}} {
		if f&p.bit != 0 {
			parts = append(parts, p.name)
		}
	}
	if len(parts) == 0 {
		return "leaf"
	}

	return strings.Join(parts, "|")
}
