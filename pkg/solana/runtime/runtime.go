// Package runtime defines the execution-facing contract between a native program
// and the ledger hosting it: the account views handed to an invocation, the
// environment used for cross-program calls, and program-derived authorizations.
package runtime

import (
	"crypto/ed25519"

	"github.com/blueshift-gg/escrow/pkg/solana"
)

// Account is the stored state of one ledger account.
type Account struct {
	Lamports uint64
	Owner    ed25519.PublicKey
	Data     []byte
}

// IsEmpty reports whether the account is indistinguishable from one that was
// never created.
func (a *Account) IsEmpty() bool {
	return a.Lamports == 0 && len(a.Data) == 0
}

// AccountView is one entry of the ordered account list passed to an instruction.
// The privileges reflect the account metas of the invoking instruction, after
// signature verification by the host.
type AccountView struct {
	Address    ed25519.PublicKey
	Account    *Account
	IsSigner   bool
	IsWritable bool
}

// Authorization is a program-derived signature: an explicit seed list that the
// host re-derives into an address under the calling program's identity. It is
// constructed fresh per call and never cached.
type Authorization struct {
	Seeds [][]byte
}

// NewAuthorization builds an Authorization from the given seed material.
func NewAuthorization(seeds ...[]byte) Authorization {
	return Authorization{Seeds: seeds}
}

// Env is the host environment available to a program while it processes
// an instruction.
type Env interface {
	// ProgramID returns the identity of the executing program.
	ProgramID() ed25519.PublicKey

	// Invoke executes an instruction against another program. Each authorization
	// extends signer privilege to the address derived from its seeds under the
	// calling program's identity.
	Invoke(instruction solana.Instruction, authorizations ...Authorization) error

	// MinimumBalance returns the rent-exempt minimum for an account of the
	// given data size.
	MinimumBalance(size uint64) uint64
}

// ProcessFunc is the entrypoint shape of a native program.
type ProcessFunc func(env Env, accounts []*AccountView, data []byte) error
