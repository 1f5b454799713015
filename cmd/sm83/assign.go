package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/thelolagemann/sm83/internal/cpu"
)

var flagAssignments = map[string]cpu.Flag{
	"zf": cpu.FlagZero,
	"nf": cpu.FlagSubtract,
	"hf": cpu.FlagHalfCarry,
	"cf": cpu.FlagCarry,
}

// assign applies a NAME=VALUE assignment to regs. Values are parsed
// with Go integer syntax, so 0x, 0b and 0o prefixes are accepted.
func assign(regs *cpu.Registers, s string) error {
	name, value, ok := strings.Cut(s, "=")
	if !ok {
		return fmt.Errorf("assignment %q: expected NAME=VALUE", s)
	}
	name = strings.ToLower(strings.TrimSpace(name))
	value = strings.TrimSpace(value)

	if f, ok := flagAssignments[name]; ok {
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("assignment %q: %w", s, err)
		}
		regs.SetFlag(f, b)
		return nil
	}

	if g, ok := cpu.ParseReg(name); ok {
		v, err := strconv.ParseUint(value, 0, 8)
		if err != nil {
			return fmt.Errorf("assignment %q: %w", s, err)
		}
		regs.Set(g, uint8(v))
		return nil
	}

	v, err := strconv.ParseUint(value, 0, 16)
	if err != nil {
		return fmt.Errorf("assignment %q: %w", s, err)
	}
	if p, ok := cpu.ParsePair(name); ok {
		regs.SetUint16(p, uint16(v))
		return nil
	}
	switch name {
	case "sp":
		regs.SP = uint16(v)
	case "pc":
		regs.PC = uint16(v)
	default:
		return fmt.Errorf("assignment %q: unknown register %q", s, name)
	}
	return nil
}
