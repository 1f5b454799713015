package cpu

import (
	"fmt"
	"strings"
)

// Flag is a bit position in the F register.
type Flag uint8

const (
	FlagZero      Flag = 7
	FlagSubtract  Flag = 6
	FlagHalfCarry Flag = 5
	FlagCarry     Flag = 4
)

// Flags lists the flags from the most significant bit down.
var Flags = []Flag{FlagZero, FlagSubtract, FlagHalfCarry, FlagCarry}

var flagNames = map[Flag]string{
	FlagZero:      "Z",
	FlagSubtract:  "N",
	FlagHalfCarry: "H",
	FlagCarry:     "C",
}

// Mask returns the bit of F that holds the flag.
func (f Flag) Mask() uint8 {
	return 1 << f
}

func (f Flag) String() string {
	if name, ok := flagNames[f]; ok {
		return name
	}
	return fmt.Sprintf("Flag(%d)", uint8(f))
}

// Flag returns true if the given flag is set.
func (r *Registers) Flag(f Flag) bool {
	return r.F&f.Mask() != 0
}

// SetFlag sets or clears the given flag, leaving the others untouched.
func (r *Registers) SetFlag(f Flag, value bool) {
	if value {
		r.F |= f.Mask()
	} else {
		r.F &= ^f.Mask()
	}
}

// FlagString returns the flags as ZNHC, using lower case for those
// that are clear.
func (r *Registers) FlagString() string {
	var b strings.Builder
	for _, f := range Flags {
		if r.Flag(f) {
			b.WriteString(f.String())
		} else {
			b.WriteString(strings.ToLower(f.String()))
		}
	}
	return b.String()
}
