package types

import (
	"errors"
	"fmt"
	"strings"
)

type Model uint8 // The Model used in emulation.

const (
	GB  Model = iota // GB - Standard Game Boy (DMG)
	GBP              // GBP - Game Boy Pocket (MGB)
	GBC              // GBC - Game Boy Colour (CGB)
	SGB              // SGB - Super Game Boy
)

// Models lists every supported Model in declaration order.
var Models = []Model{GB, GBP, GBC, SGB}

// ErrUnknownModel is returned when a name doesn't map to a Model.
var ErrUnknownModel = errors.New("unknown model")

var ModelNames = map[Model]string{
	GB:  "GB",
	GBP: "GBP",
	GBC: "GBC",
	SGB: "SGB",
}

// modelAliases maps the alternative hardware codes onto a Model.
var modelAliases = map[string]Model{
	"DMG":    GB,
	"MGB":    GBP,
	"POCKET": GBP,
	"CGB":    GBC,
}

// ParseModel converts a string to a Model. Both the short tags
// (GB, GBP, GBC, SGB) and the hardware codes (DMG, MGB, CGB) are
// accepted, regardless of case.
func ParseModel(s string) (Model, error) {
	name := strings.ToUpper(strings.TrimSpace(s))
	for _, m := range Models {
		if ModelNames[m] == name {
			return m, nil
		}
	}
	if m, ok := modelAliases[name]; ok {
		return m, nil
	}

	return GB, fmt.Errorf("%w: %q", ErrUnknownModel, s)
}

// Valid reports whether m is one of the four supported models.
func (m Model) Valid() bool {
	return m <= SGB
}

func (m Model) String() string {
	if name, ok := ModelNames[m]; ok {
		return name
	}
	return fmt.Sprintf("Model(%d)", uint8(m))
}

// MarshalText implements encoding.TextMarshaler.
func (m Model) MarshalText() ([]byte, error) {
	if !m.Valid() {
		return nil, fmt.Errorf("%w: %d", ErrUnknownModel, uint8(m))
	}
	return []byte(m.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (m *Model) UnmarshalText(text []byte) error {
	parsed, err := ParseModel(string(text))
	if err != nil {
		return err
	}
	*m = parsed
	return nil
}

const (
	// InitialSP is the stack pointer left behind by the boot ROM. Programs
	// shouldn't rely on it and are expected to set SP themselves.
	InitialSP uint16 = 0xFFFE
	// InitialPC is where execution of the cartridge starts once the boot
	// ROM has finished.
	InitialPC uint16 = 0x0100
)

// ModelRegisters - model specific starting CPU registers, in
// A, F, B, C, D, E, H, L order.
var ModelRegisters = map[Model][8]uint8{
	GB:  {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	GBP: {0xFF, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	GBC: {0x11, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
	SGB: {0x01, 0xB0, 0x00, 0x13, 0x00, 0xD8, 0x01, 0x4D},
}
