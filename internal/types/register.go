package types

// Register represents a GB Register which is used to hold an 8-bit value.
// The CPU has 8 registers: A, B, C, D, E, H, L, and F. The F register is
// special in that it is used to hold the flags, and its lower nibble is
// not wired to anything.
type Register = uint8

// FlagMask covers the bits of F that hold flags.
const FlagMask Register = Bit7 | Bit6 | Bit5 | Bit4
