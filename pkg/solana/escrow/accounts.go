package escrow

import (
	"bytes"
	"crypto/ed25519"

	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
	"github.com/blueshift-gg/escrow/pkg/solana/system"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

// Account validators. Each Check function is a pure predicate over an account
// view; the Init variants may additionally issue an account-creation call.

// CheckSigner fails unless the account carries an authorizing signature for
// this invocation.
func CheckSigner(view *runtime.AccountView) error {
	if !view.IsSigner {
		return ErrorNotSigner
	}
	return nil
}

// CheckProgramOwned fails unless the account is owned by this program and
// sized as an escrow state account.
func CheckProgramOwned(view *runtime.AccountView) error {
	if !bytes.Equal(view.Account.Owner, PROGRAM_ID) {
		return ErrorInvalidOwner
	}
	if len(view.Account.Data) != EscrowStateAccountSize {
		return ErrorInvalidAccountData
	}
	return nil
}

// CheckMint fails unless the account is an initialized token mint.
func CheckMint(view *runtime.AccountView) error {
	if !bytes.Equal(view.Account.Owner, token.ProgramKey) {
		return ErrorInvalidOwner
	}

	var mint token.Mint
	if !mint.Unmarshal(view.Account.Data) {
		return ErrorInvalidAccountData
	}
	if !mint.IsInitialized {
		return ErrorInvalidAccountData
	}
	return nil
}

// CheckAssociatedTokenAccount fails unless the account sits at the canonical
// associated token address for (owner, mint) and its decoded state matches.
func CheckAssociatedTokenAccount(view *runtime.AccountView, owner, mint ed25519.PublicKey) error {
	expected, err := token.GetAssociatedAccount(owner, mint)
	if err != nil {
		return err
	}
	if !bytes.Equal(expected, view.Address) {
		return ErrorInvalidAddress
	}

	if !bytes.Equal(view.Account.Owner, token.ProgramKey) {
		return ErrorInvalidOwner
	}

	var decoded token.Account
	if !decoded.Unmarshal(view.Account.Data) {
		return ErrorInvalidAccountData
	}
	if !bytes.Equal(decoded.Mint, mint) || !bytes.Equal(decoded.Owner, owner) {
		return ErrorInvalidAccountData
	}
	return nil
}

// InitAssociatedTokenAccount creates the associated token account for
// (owner, mint), paid for by payer. It fails if the account already exists.
func InitAssociatedTokenAccount(env runtime.Env, view *runtime.AccountView, owner, mint, payer ed25519.PublicKey) error {
	expected, err := token.GetAssociatedAccount(owner, mint)
	if err != nil {
		return err
	}
	if !bytes.Equal(expected, view.Address) {
		return ErrorInvalidAddress
	}

	instruction, _, err := token.CreateAssociatedTokenAccount(payer, owner, mint)
	if err != nil {
		return err
	}
	return env.Invoke(instruction)
}

// InitAssociatedTokenAccountIfNeeded behaves as CheckAssociatedTokenAccount
// when the account exists, and creates it otherwise.
func InitAssociatedTokenAccountIfNeeded(env runtime.Env, view *runtime.AccountView, owner, mint, payer ed25519.PublicKey) error {
	if view.Account.IsEmpty() {
		return InitAssociatedTokenAccount(env, view, owner, mint, payer)
	}
	return CheckAssociatedTokenAccount(view, owner, mint)
}

func readTokenAccount(view *runtime.AccountView) (*token.Account, error) {
	var decoded token.Account
	if !decoded.Unmarshal(view.Account.Data) {
		return nil, ErrorInvalidAccountData
	}
	return &decoded, nil
}

// closeProgramAccount destroys a program-owned account, reclaiming its
// lamports to destination. The emptied account is indistinguishable from one
// that never existed.
func closeProgramAccount(view, destination *runtime.AccountView) {
	destination.Account.Lamports += view.Account.Lamports
	view.Account.Lamports = 0
	view.Account.Data = nil
	view.Account.Owner = system.ProgramKey
}
