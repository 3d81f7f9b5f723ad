package bank

import (
	"github.com/blueshift-gg/escrow/pkg/solana"
	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
	"github.com/blueshift-gg/escrow/pkg/solana/system"
)

// processSystemInstruction implements the subset of the system program the
// escrow program and its tests exercise: account allocation and plain lamport
// transfers.
func processSystemInstruction(env *invokeEnv, instruction solana.Instruction, views []*runtime.AccountView) error {
	if created, err := system.ParseCreateAccount(instruction); err == nil {
		return processCreateAccount(env, created, views)
	}
	if transfer, err := system.ParseTransfer(instruction); err == nil {
		return processSystemTransfer(transfer, views)
	}
	return runtime.ErrInvalidInstructionData
}

func processCreateAccount(env *invokeEnv, args *system.ParsedCreateAccount, views []*runtime.AccountView) error {
	funder, created := views[0], views[1]

	if !funder.IsSigner || !created.IsSigner {
		return runtime.ErrMissingRequiredSignature
	}
	if !created.Account.IsEmpty() {
		return runtime.ErrAccountAlreadyInitialized
	}
	if funder.Account.Lamports < args.Lamports {
		return runtime.ErrInsufficientFunds
	}
	if args.Lamports < env.bank.MinimumBalance(args.Size) {
		return runtime.ErrAccountNotRentExempt
	}

	funder.Account.Lamports -= args.Lamports
	created.Account.Lamports = args.Lamports
	created.Account.Data = make([]byte, args.Size)
	created.Account.Owner = args.Owner

	return nil
}

func processSystemTransfer(args *system.ParsedTransfer, views []*runtime.AccountView) error {
	from, to := views[0], views[1]

	if !from.IsSigner {
		return runtime.ErrMissingRequiredSignature
	}
	if from.Account.Lamports < args.Lamports {
		return runtime.ErrInsufficientFunds
	}

	from.Account.Lamports -= args.Lamports
	to.Account.Lamports += args.Lamports

	return nil
}
