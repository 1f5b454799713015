package cpu

import (
	"fmt"

	"github.com/thelolagemann/sm83/internal/types"
)

// PowerUp returns the register file as the boot ROM leaves it for the
// given model. Only A depends on the model.
func PowerUp(model types.Model) Registers {
	regs, ok := types.ModelRegisters[model]
	if !ok {
		panic(fmt.Sprintf("invalid model: %d", model))
	}

	return Registers{
		A:  regs[0],
		F:  regs[1],
		B:  regs[2],
		C:  regs[3],
		D:  regs[4],
		E:  regs[5],
		H:  regs[6],
		L:  regs[7],
		SP: types.InitialSP,
		PC: types.InitialPC,
	}
}
