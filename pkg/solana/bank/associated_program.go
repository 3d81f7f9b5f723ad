package bank

import (
	"bytes"

	"github.com/blueshift-gg/escrow/pkg/solana"
	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

// processAssociatedTokenInstruction implements the associated token account
// program: create (and idempotent create) of the canonical per-(owner, mint)
// token account, funded by the subsidizer.
func processAssociatedTokenInstruction(env *invokeEnv, instruction solana.Instruction, views []*runtime.AccountView) error {
	args, err := token.ParseCreateAssociatedAccount(instruction)
	if err != nil {
		return runtime.ErrInvalidInstructionData
	}

	subsidizer, created, mintView := views[0], views[1], views[3]

	expected, err := token.GetAssociatedAccount(args.Owner, args.Mint)
	if err != nil {
		return err
	}
	if !bytes.Equal(expected, created.Address) {
		return runtime.ErrInvalidSeeds
	}

	if !subsidizer.IsSigner {
		return runtime.ErrMissingRequiredSignature
	}

	if !created.Account.IsEmpty() {
		if !args.Idempotent {
			return runtime.ErrAccountAlreadyInitialized
		}

		existing, err := decodeTokenAccount(created)
		if err != nil {
			return err
		}
		if !bytes.Equal(existing.Mint, args.Mint) || !bytes.Equal(existing.Owner, args.Owner) {
			return runtime.ErrInvalidAccountData
		}
		return nil
	}

	var mint token.Mint
	if !mint.Unmarshal(mintView.Account.Data) || !mint.IsInitialized {
		return token.ErrorInvalidMint
	}

	lamports := env.bank.MinimumBalance(token.AccountSize)
	if subsidizer.Account.Lamports < lamports {
		return runtime.ErrInsufficientFunds
	}

	subsidizer.Account.Lamports -= lamports
	created.Account.Lamports = lamports
	created.Account.Owner = token.ProgramKey
	created.Account.Data = (&token.Account{
		Mint:  args.Mint,
		Owner: args.Owner,
		State: token.AccountStateInitialized,
	}).Marshal()

	return nil
}
