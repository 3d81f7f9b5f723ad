package escrow

import (
	"crypto/ed25519"

	"github.com/blueshift-gg/escrow/pkg/solana"
	"github.com/blueshift-gg/escrow/pkg/solana/system"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

// MakeInstructionTag opens an escrow.
const MakeInstructionTag byte = 0

const MakeInstructionArgsSize = (8 + // seed
	8 + // receive
	8) // amount

type MakeInstructionArgs struct {
	Seed    uint64
	Receive uint64
	Amount  uint64
}

type MakeInstructionAccounts struct {
	Maker     ed25519.PublicKey
	Escrow    ed25519.PublicKey
	MintA     ed25519.PublicKey
	MintB     ed25519.PublicKey
	MakerAtaA ed25519.PublicKey
	Vault     ed25519.PublicKey
}

func NewMakeInstruction(
	accounts *MakeInstructionAccounts,
	args *MakeInstructionArgs,
) solana.Instruction {
	var offset int

	data := make([]byte, 1+MakeInstructionArgsSize)
	data[0] = MakeInstructionTag
	offset++
	putUint64(data, args.Seed, &offset)
	putUint64(data, args.Receive, &offset)
	putUint64(data, args.Amount, &offset)

	// # Account references
	//   0. [WRITE, SIGNER] Maker
	//   1. [WRITE] Escrow state
	//   2. [] Mint A
	//   3. [] Mint B
	//   4. [WRITE] Maker's mint A token account
	//   5. [WRITE] Vault
	//   6. [] System program
	//   7. [] Token program
	//   8. [] Associated token account program
	return solana.NewInstruction(
		PROGRAM_ID,
		data,
		solana.NewAccountMeta(accounts.Maker, true),
		solana.NewAccountMeta(accounts.Escrow, false),
		solana.NewReadonlyAccountMeta(accounts.MintA, false),
		solana.NewReadonlyAccountMeta(accounts.MintB, false),
		solana.NewAccountMeta(accounts.MakerAtaA, false),
		solana.NewAccountMeta(accounts.Vault, false),
		solana.NewReadonlyAccountMeta(system.ProgramKey, false),
		solana.NewReadonlyAccountMeta(token.ProgramKey, false),
		solana.NewReadonlyAccountMeta(token.AssociatedTokenAccountProgramKey, false),
	)
}
