package escrow

import (
	"bytes"
	"encoding/binary"

	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

type takeAccounts struct {
	taker     *runtime.AccountView
	maker     *runtime.AccountView
	escrow    *runtime.AccountView
	mintA     *runtime.AccountView
	mintB     *runtime.AccountView
	vault     *runtime.AccountView
	takerAtaA *runtime.AccountView
	takerAtaB *runtime.AccountView
	makerAtaB *runtime.AccountView
}

func newTakeAccounts(accounts []*runtime.AccountView) (*takeAccounts, error) {
	if len(accounts) < 12 {
		return nil, runtime.ErrNotEnoughAccountKeys
	}

	parsed := &takeAccounts{
		taker:     accounts[0],
		maker:     accounts[1],
		escrow:    accounts[2],
		mintA:     accounts[3],
		mintB:     accounts[4],
		vault:     accounts[5],
		takerAtaA: accounts[6],
		takerAtaB: accounts[7],
		makerAtaB: accounts[8],
	}

	if err := CheckSigner(parsed.taker); err != nil {
		return nil, err
	}
	if err := CheckProgramOwned(parsed.escrow); err != nil {
		return nil, err
	}
	if err := CheckMint(parsed.mintA); err != nil {
		return nil, err
	}
	if err := CheckMint(parsed.mintB); err != nil {
		return nil, err
	}
	if err := CheckAssociatedTokenAccount(parsed.vault, parsed.escrow.Address, parsed.mintA.Address); err != nil {
		return nil, err
	}
	if err := CheckAssociatedTokenAccount(parsed.takerAtaB, parsed.taker.Address, parsed.mintB.Address); err != nil {
		return nil, err
	}

	return parsed, nil
}

type takeInstruction struct {
	env      runtime.Env
	accounts *takeAccounts
}

func newTakeInstruction(env runtime.Env, accounts []*runtime.AccountView) (*takeInstruction, error) {
	parsed, err := newTakeAccounts(accounts)
	if err != nil {
		return nil, err
	}

	// The taker funds both accounts that may be missing: their own mint A
	// account and the maker's mint B account.
	if err := InitAssociatedTokenAccountIfNeeded(env, parsed.takerAtaA, parsed.taker.Address, parsed.mintA.Address, parsed.taker.Address); err != nil {
		return nil, err
	}
	if err := InitAssociatedTokenAccountIfNeeded(env, parsed.makerAtaB, parsed.maker.Address, parsed.mintB.Address, parsed.taker.Address); err != nil {
		return nil, err
	}

	return &takeInstruction{
		env:      env,
		accounts: parsed,
	}, nil
}

func (i *takeInstruction) process() error {
	accounts := i.accounts

	var state EscrowStateAccount
	if err := state.Unmarshal(accounts.escrow.Account.Data); err != nil {
		return ErrorInvalidAccountData
	}

	// Recompute the state address from the supplied maker and the stored seed
	// material. A record substituted from another maker or seed cannot
	// reproduce it.
	escrowAddress, err := CreateEscrowStateAddress(accounts.maker.Address, state.Seed, state.Bump)
	if err != nil {
		return runtime.ErrInvalidAccountOwner
	}
	if !bytes.Equal(escrowAddress, accounts.escrow.Address) {
		return runtime.ErrInvalidAccountOwner
	}

	// The supplied mints must be the ones recorded at Make time. Without this
	// the taker could settle with an arbitrary mint of their own.
	if !bytes.Equal(state.MintA, accounts.mintA.Address) || !bytes.Equal(state.MintB, accounts.mintB.Address) {
		return ErrorInvalidAccountData
	}

	// The taker pays the maker the requested amount of mint B directly.
	err = i.env.Invoke(token.Transfer(
		accounts.takerAtaB.Address,
		accounts.makerAtaB.Address,
		accounts.taker.Address,
		state.Receive,
	))
	if err != nil {
		return err
	}

	seedBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(seedBytes, state.Seed)
	authorization := runtime.NewAuthorization(
		escrowStatePrefix,
		accounts.maker.Address,
		seedBytes,
		[]byte{state.Bump},
	)

	vault, err := readTokenAccount(accounts.vault)
	if err != nil {
		return err
	}

	err = i.env.Invoke(token.Transfer(
		accounts.vault.Address,
		accounts.takerAtaA.Address,
		accounts.escrow.Address,
		vault.Amount,
	), authorization)
	if err != nil {
		return err
	}

	// The vault's rent goes to the taker, who paid for the accounts created
	// by this instruction.
	err = i.env.Invoke(token.CloseAccount(
		accounts.vault.Address,
		accounts.taker.Address,
		accounts.escrow.Address,
	), authorization)
	if err != nil {
		return err
	}

	closeProgramAccount(accounts.escrow, accounts.maker)

	return nil
}
