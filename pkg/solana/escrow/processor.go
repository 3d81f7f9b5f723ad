package escrow

import (
	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
)

// ProcessInstruction is the program entrypoint. The first byte of the
// instruction data selects the operation; the remainder is operation-specific
// payload.
func ProcessInstruction(env runtime.Env, accounts []*runtime.AccountView, data []byte) error {
	if len(data) == 0 {
		return runtime.ErrInvalidInstructionData
	}

	switch data[0] {
	case MakeInstructionTag:
		instruction, err := newMakeInstruction(env, accounts, data[1:])
		if err != nil {
			return err
		}
		return instruction.process()
	case TakeInstructionTag:
		instruction, err := newTakeInstruction(env, accounts)
		if err != nil {
			return err
		}
		return instruction.process()
	case RefundInstructionTag:
		instruction, err := newRefundInstruction(env, accounts)
		if err != nil {
			return err
		}
		return instruction.process()
	default:
		return runtime.ErrInvalidInstructionData
	}
}
