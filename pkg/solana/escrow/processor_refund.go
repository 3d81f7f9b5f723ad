package escrow

import (
	"bytes"
	"encoding/binary"

	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

type refundAccounts struct {
	maker     *runtime.AccountView
	escrow    *runtime.AccountView
	mintA     *runtime.AccountView
	vault     *runtime.AccountView
	makerAtaA *runtime.AccountView
}

func newRefundAccounts(accounts []*runtime.AccountView) (*refundAccounts, error) {
	if len(accounts) < 8 {
		return nil, runtime.ErrNotEnoughAccountKeys
	}

	parsed := &refundAccounts{
		maker:     accounts[0],
		escrow:    accounts[1],
		mintA:     accounts[2],
		vault:     accounts[3],
		makerAtaA: accounts[4],
	}

	if err := CheckSigner(parsed.maker); err != nil {
		return nil, err
	}
	if err := CheckProgramOwned(parsed.escrow); err != nil {
		return nil, err
	}
	if err := CheckMint(parsed.mintA); err != nil {
		return nil, err
	}
	if err := CheckAssociatedTokenAccount(parsed.vault, parsed.escrow.Address, parsed.mintA.Address); err != nil {
		return nil, err
	}

	return parsed, nil
}

type refundInstruction struct {
	env      runtime.Env
	accounts *refundAccounts
}

func newRefundInstruction(env runtime.Env, accounts []*runtime.AccountView) (*refundInstruction, error) {
	parsed, err := newRefundAccounts(accounts)
	if err != nil {
		return nil, err
	}

	if err := InitAssociatedTokenAccountIfNeeded(env, parsed.makerAtaA, parsed.maker.Address, parsed.mintA.Address, parsed.maker.Address); err != nil {
		return nil, err
	}

	return &refundInstruction{
		env:      env,
		accounts: parsed,
	}, nil
}

func (i *refundInstruction) process() error {
	accounts := i.accounts

	var state EscrowStateAccount
	if err := state.Unmarshal(accounts.escrow.Account.Data); err != nil {
		return ErrorInvalidAccountData
	}

	// Bind the record to its stored maker: the supplied account must sit at
	// the address the stored seed material reproduces.
	escrowAddress, err := CreateEscrowStateAddress(state.Maker, state.Seed, state.Bump)
	if err != nil {
		return runtime.ErrInvalidAccountOwner
	}
	if !bytes.Equal(escrowAddress, accounts.escrow.Address) {
		return runtime.ErrInvalidAccountOwner
	}

	// Only the original depositor may cancel.
	if !bytes.Equal(accounts.maker.Address, state.Maker) {
		return runtime.ErrMissingRequiredSignature
	}

	// The supplied mint must be the one recorded at Make time. A vault for a
	// different mint would drain nothing while still destroying the record.
	if !bytes.Equal(state.MintA, accounts.mintA.Address) {
		return ErrorInvalidAccountData
	}

	seedBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(seedBytes, state.Seed)
	authorization := runtime.NewAuthorization(
		escrowStatePrefix,
		state.Maker,
		seedBytes,
		[]byte{state.Bump},
	)

	vault, err := readTokenAccount(accounts.vault)
	if err != nil {
		return err
	}

	err = i.env.Invoke(token.Transfer(
		accounts.vault.Address,
		accounts.makerAtaA.Address,
		accounts.escrow.Address,
		vault.Amount,
	), authorization)
	if err != nil {
		return err
	}

	err = i.env.Invoke(token.CloseAccount(
		accounts.vault.Address,
		accounts.maker.Address,
		accounts.escrow.Address,
	), authorization)
	if err != nil {
		return err
	}

	closeProgramAccount(accounts.escrow, accounts.maker)

	return nil
}
