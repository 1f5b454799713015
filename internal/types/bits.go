package types

// Bits of the F register that hold flags.
const (
	Bit4 = 1 << (iota + 4) // 0b0001_0000
	Bit5                   // 0b0010_0000
	Bit6                   // 0b0100_0000
	Bit7                   // 0b1000_0000
)
