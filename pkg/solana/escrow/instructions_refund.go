package escrow

import (
	"crypto/ed25519"

	"github.com/blueshift-gg/escrow/pkg/solana"
	"github.com/blueshift-gg/escrow/pkg/solana/system"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

// RefundInstructionTag cancels an escrow and returns the deposit.
const RefundInstructionTag byte = 2

type RefundInstructionAccounts struct {
	Maker     ed25519.PublicKey
	Escrow    ed25519.PublicKey
	MintA     ed25519.PublicKey
	Vault     ed25519.PublicKey
	MakerAtaA ed25519.PublicKey
}

func NewRefundInstruction(accounts *RefundInstructionAccounts) solana.Instruction {
	// # Account references
	//   0. [WRITE, SIGNER] Maker
	//   1. [WRITE] Escrow state
	//   2. [] Mint A
	//   3. [WRITE] Vault
	//   4. [WRITE] Maker's mint A token account (created if absent)
	//   5. [] System program
	//   6. [] Token program
	//   7. [] Associated token account program
	return solana.NewInstruction(
		PROGRAM_ID,
		[]byte{RefundInstructionTag},
		solana.NewAccountMeta(accounts.Maker, true),
		solana.NewAccountMeta(accounts.Escrow, false),
		solana.NewReadonlyAccountMeta(accounts.MintA, false),
		solana.NewAccountMeta(accounts.Vault, false),
		solana.NewAccountMeta(accounts.MakerAtaA, false),
		solana.NewReadonlyAccountMeta(system.ProgramKey, false),
		solana.NewReadonlyAccountMeta(token.ProgramKey, false),
		solana.NewReadonlyAccountMeta(token.AssociatedTokenAccountProgramKey, false),
	)
}
