package cpu

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/thelolagemann/sm83/internal/types"
)

func TestPowerUp(t *testing.T) {
	common := Registers{
		F: 0xB0,
		B: 0x00, C: 0x13,
		D: 0x00, E: 0xD8,
		H: 0x01, L: 0x4D,
		SP: 0xFFFE,
		PC: 0x0100,
	}

	tests := []struct {
		model types.Model
		a     uint8
	}{
		{types.GB, 0x01},
		{types.GBP, 0xFF},
		{types.GBC, 0x11},
		{types.SGB, 0x01},
	}
	for _, tt := range tests {
		t.Run(tt.model.String(), func(t *testing.T) {
			want := common
			want.A = tt.a

			if diff := cmp.Diff(want, PowerUp(tt.model)); diff != "" {
				t.Errorf("unexpected power-up state (-want +got):\n%s", diff)
			}
		})
	}

	t.Run("flags", func(t *testing.T) {
		regs := PowerUp(types.GB)
		for flag, want := range map[Flag]bool{
			FlagZero:      true,
			FlagSubtract:  false,
			FlagHalfCarry: true,
			FlagCarry:     true,
		} {
			if regs.Flag(flag) != want {
				t.Errorf("expected flag %s to be %v", flag, want)
			}
		}
	})
	t.Run("invalid model", func(t *testing.T) {
		defer func() {
			if recover() == nil {
				t.Errorf("expected PowerUp to panic for an unknown model")
			}
		}()
		PowerUp(types.Model(0xFF))
	})
}
