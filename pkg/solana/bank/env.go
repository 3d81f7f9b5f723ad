package bank

import (
	"crypto/ed25519"

	"github.com/blueshift-gg/escrow/pkg/solana"
	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
)

// invokeEnv is the runtime.Env handed to a program for the duration of one
// instruction. It carries the privileges proven so far; a cross-program
// invocation may extend them only through program-derived authorizations.
type invokeEnv struct {
	bank    *Bank
	program ed25519.PublicKey
	signers map[string]bool
}

func (e *invokeEnv) ProgramID() ed25519.PublicKey {
	return e.program
}

func (e *invokeEnv) MinimumBalance(size uint64) uint64 {
	return e.bank.MinimumBalance(size)
}

func (e *invokeEnv) Invoke(instruction solana.Instruction, authorizations ...runtime.Authorization) error {
	signers := make(map[string]bool, len(e.signers)+len(authorizations))
	for key := range e.signers {
		signers[key] = true
	}

	// A derived authorization is re-verified on every use: the seeds must
	// reproduce an address under the calling program's identity.
	for _, authorization := range authorizations {
		address, err := solana.CreateProgramAddress(e.program, authorization.Seeds...)
		if err != nil {
			return runtime.ErrInvalidSeeds
		}
		signers[string(address)] = true
	}

	// Reject privilege escalation before executing: every signer meta must be
	// covered by the transaction's signatures or a derived authorization.
	for _, meta := range instruction.Accounts {
		if meta.IsSigner && !signers[string(meta.PublicKey)] {
			return runtime.ErrMissingRequiredSignature
		}
	}

	inner := &invokeEnv{
		bank:    e.bank,
		program: instruction.Program,
		signers: signers,
	}
	return e.bank.execute(inner, instruction)
}
