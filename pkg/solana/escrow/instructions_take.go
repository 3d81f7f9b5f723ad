package escrow

import (
	"crypto/ed25519"

	"github.com/blueshift-gg/escrow/pkg/solana"
	"github.com/blueshift-gg/escrow/pkg/solana/system"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

// TakeInstructionTag settles an escrow by swap.
const TakeInstructionTag byte = 1

type TakeInstructionAccounts struct {
	Taker     ed25519.PublicKey
	Maker     ed25519.PublicKey
	Escrow    ed25519.PublicKey
	MintA     ed25519.PublicKey
	MintB     ed25519.PublicKey
	Vault     ed25519.PublicKey
	TakerAtaA ed25519.PublicKey
	TakerAtaB ed25519.PublicKey
	MakerAtaB ed25519.PublicKey
}

func NewTakeInstruction(accounts *TakeInstructionAccounts) solana.Instruction {
	// # Account references
	//   0. [WRITE, SIGNER] Taker
	//   1. [WRITE] Maker
	//   2. [WRITE] Escrow state
	//   3. [] Mint A
	//   4. [] Mint B
	//   5. [WRITE] Vault
	//   6. [WRITE] Taker's mint A token account (created if absent)
	//   7. [WRITE] Taker's mint B token account
	//   8. [WRITE] Maker's mint B token account (created if absent)
	//   9. [] System program
	//  10. [] Token program
	//  11. [] Associated token account program
	return solana.NewInstruction(
		PROGRAM_ID,
		[]byte{TakeInstructionTag},
		solana.NewAccountMeta(accounts.Taker, true),
		solana.NewAccountMeta(accounts.Maker, false),
		solana.NewAccountMeta(accounts.Escrow, false),
		solana.NewReadonlyAccountMeta(accounts.MintA, false),
		solana.NewReadonlyAccountMeta(accounts.MintB, false),
		solana.NewAccountMeta(accounts.Vault, false),
		solana.NewAccountMeta(accounts.TakerAtaA, false),
		solana.NewAccountMeta(accounts.TakerAtaB, false),
		solana.NewAccountMeta(accounts.MakerAtaB, false),
		solana.NewReadonlyAccountMeta(system.ProgramKey, false),
		solana.NewReadonlyAccountMeta(token.ProgramKey, false),
		solana.NewReadonlyAccountMeta(token.AssociatedTokenAccountProgramKey, false),
	)
}
