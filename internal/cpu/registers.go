package cpu

import (
	"fmt"
	"strings"

	"github.com/thelolagemann/sm83/internal/types"
)

// Registers is the register file of the SM83. It holds the eight
// 8-bit registers and the two 16-bit registers, and exposes the
// 16-bit register pairs and the flags as views over them.
//
// Registers is a plain value: assigning it to another variable
// produces an independent copy, which is all that is needed to
// snapshot the CPU.
type Registers struct {
	A types.Register
	F types.Register // only the upper nibble is used
	B types.Register
	C types.Register
	D types.Register
	E types.Register
	H types.Register
	L types.Register

	// SP is the stack pointer, it points to the top of the stack.
	SP uint16
	// PC is the program counter, it points to the next instruction to be executed.
	PC uint16
}

// Pair identifies one of the 16-bit register pairs.
type Pair uint8

const (
	AF Pair = iota
	BC
	DE
	HL
)

// Pairs lists every register pair.
var Pairs = []Pair{AF, BC, DE, HL}

var pairNames = [...]string{AF: "AF", BC: "BC", DE: "DE", HL: "HL"}

func (p Pair) String() string {
	if int(p) < len(pairNames) {
		return pairNames[p]
	}
	return fmt.Sprintf("Pair(%d)", uint8(p))
}

// ParsePair returns the Pair with the given name, ignoring case.
func ParsePair(s string) (Pair, bool) {
	for _, p := range Pairs {
		if strings.EqualFold(pairNames[p], s) {
			return p, true
		}
	}
	return 0, false
}

// Uint16 returns the value of the register pair, high byte first.
func (r *Registers) Uint16(p Pair) uint16 {
	switch p {
	case AF:
		return uint16(r.A)<<8 | uint16(r.F)
	case BC:
		return uint16(r.B)<<8 | uint16(r.C)
	case DE:
		return uint16(r.D)<<8 | uint16(r.E)
	case HL:
		return uint16(r.H)<<8 | uint16(r.L)
	}
	panic(fmt.Sprintf("invalid register pair: %d", p))
}

// SetUint16 sets the value of the register pair. The lower nibble of F
// is not wired, so writes to AF always leave it cleared, whereas the
// other pairs store the full low byte.
func (r *Registers) SetUint16(p Pair, value uint16) {
	switch p {
	case AF:
		r.A = uint8(value >> 8)
		r.F = uint8(value & 0x00F0)
	case BC:
		r.B = uint8(value >> 8)
		r.C = uint8(value & 0x00FF)
	case DE:
		r.D = uint8(value >> 8)
		r.E = uint8(value & 0x00FF)
	case HL:
		r.H = uint8(value >> 8)
		r.L = uint8(value & 0x00FF)
	default:
		panic(fmt.Sprintf("invalid register pair: %d", p))
	}
}

// Reg identifies one of the 8-bit registers.
type Reg uint8

const (
	RegA Reg = iota
	RegF
	RegB
	RegC
	RegD
	RegE
	RegH
	RegL
)

// Regs lists every 8-bit register in storage order.
var Regs = []Reg{RegA, RegF, RegB, RegC, RegD, RegE, RegH, RegL}

var regNames = [...]string{"A", "F", "B", "C", "D", "E", "H", "L"}

func (g Reg) String() string {
	if int(g) < len(regNames) {
		return regNames[g]
	}
	return fmt.Sprintf("Reg(%d)", uint8(g))
}

// ParseReg returns the 8-bit register with the given name, ignoring case.
func ParseReg(s string) (Reg, bool) {
	for _, g := range Regs {
		if strings.EqualFold(regNames[g], s) {
			return g, true
		}
	}
	return 0, false
}

// field returns a pointer to the storage cell for g.
func (r *Registers) field(g Reg) *types.Register {
	switch g {
	case RegA:
		return &r.A
	case RegF:
		return &r.F
	case RegB:
		return &r.B
	case RegC:
		return &r.C
	case RegD:
		return &r.D
	case RegE:
		return &r.E
	case RegH:
		return &r.H
	case RegL:
		return &r.L
	}
	panic(fmt.Sprintf("invalid register: %d", g))
}

// Get returns the value of an 8-bit register.
func (r *Registers) Get(g Reg) uint8 {
	return *r.field(g)
}

// Set writes an 8-bit register. Writes to F drop the lower nibble.
func (r *Registers) Set(g Reg, value uint8) {
	if g == RegF {
		value &= types.FlagMask
	}
	*r.field(g) = value
}

// String returns the register file as a single line, e.g.
//
//	AF=01B0 BC=0013 DE=00D8 HL=014D SP=FFFE PC=0100 [ZnHC]
func (r Registers) String() string {
	return fmt.Sprintf("AF=%04X BC=%04X DE=%04X HL=%04X SP=%04X PC=%04X [%s]",
		r.Uint16(AF), r.Uint16(BC), r.Uint16(DE), r.Uint16(HL), r.SP, r.PC, r.FlagString())
}

// Save writes the ten storage cells to s, 8-bit registers first.
func (r *Registers) Save(s *types.State) {
	for _, g := range Regs {
		s.Write8(r.Get(g))
	}
	s.Write16(r.SP)
	s.Write16(r.PC)
}

// Load reads the ten storage cells from s in the order written by Save.
func (r *Registers) Load(s *types.State) {
	for _, g := range Regs {
		r.Set(g, s.Read8())
	}
	r.SP = s.Read16()
	r.PC = s.Read16()
}

var _ types.Stater = (*Registers)(nil)
