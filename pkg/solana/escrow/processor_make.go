package escrow

import (
	"bytes"
	"encoding/binary"

	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
	"github.com/blueshift-gg/escrow/pkg/solana/system"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

type makeAccounts struct {
	maker     *runtime.AccountView
	escrow    *runtime.AccountView
	mintA     *runtime.AccountView
	mintB     *runtime.AccountView
	makerAtaA *runtime.AccountView
	vault     *runtime.AccountView
}

func newMakeAccounts(accounts []*runtime.AccountView) (*makeAccounts, error) {
	if len(accounts) < 9 {
		return nil, runtime.ErrNotEnoughAccountKeys
	}

	parsed := &makeAccounts{
		maker:     accounts[0],
		escrow:    accounts[1],
		mintA:     accounts[2],
		mintB:     accounts[3],
		makerAtaA: accounts[4],
		vault:     accounts[5],
	}

	if err := CheckSigner(parsed.maker); err != nil {
		return nil, err
	}
	if err := CheckMint(parsed.mintA); err != nil {
		return nil, err
	}
	if err := CheckMint(parsed.mintB); err != nil {
		return nil, err
	}
	if err := CheckAssociatedTokenAccount(parsed.makerAtaA, parsed.maker.Address, parsed.mintA.Address); err != nil {
		return nil, err
	}

	return parsed, nil
}

type makeInstruction struct {
	env      runtime.Env
	accounts *makeAccounts
	args     MakeInstructionArgs
}

func newMakeInstruction(env runtime.Env, accounts []*runtime.AccountView, data []byte) (*makeInstruction, error) {
	if len(data) != MakeInstructionArgsSize {
		return nil, runtime.ErrInvalidInstructionData
	}

	parsed, err := newMakeAccounts(accounts)
	if err != nil {
		return nil, err
	}

	var offset int
	var args MakeInstructionArgs
	getUint64(data, &args.Seed, &offset)
	getUint64(data, &args.Receive, &offset)
	getUint64(data, &args.Amount, &offset)

	return &makeInstruction{
		env:      env,
		accounts: parsed,
		args:     args,
	}, nil
}

func (i *makeInstruction) process() error {
	accounts := i.accounts

	// The escrow state account must sit at the address derived from the
	// maker and the caller-chosen seed.
	escrowAddress, bump, err := GetEscrowStateAddress(&GetEscrowStateAddressArgs{
		Maker: accounts.maker.Address,
		Seed:  i.args.Seed,
	})
	if err != nil {
		return err
	}
	if !bytes.Equal(escrowAddress, accounts.escrow.Address) {
		return ErrorInvalidAddress
	}
	if !accounts.escrow.Account.IsEmpty() {
		return runtime.ErrAccountAlreadyInitialized
	}

	vaultAddress, err := GetVaultAddress(&GetVaultAddressArgs{
		Escrow: escrowAddress,
		MintA:  accounts.mintA.Address,
	})
	if err != nil {
		return err
	}
	if !bytes.Equal(vaultAddress, accounts.vault.Address) {
		return ErrorInvalidAddress
	}

	minBalance := i.env.MinimumBalance(EscrowStateAccountSize)
	if accounts.maker.Account.Lamports < minBalance {
		return ErrorNotRentExempt
	}

	seedBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(seedBytes, i.args.Seed)
	authorization := runtime.NewAuthorization(
		escrowStatePrefix,
		accounts.maker.Address,
		seedBytes,
		[]byte{bump},
	)

	// Allocate the state account under the program, signed by the account's
	// own derivation.
	err = i.env.Invoke(
		system.CreateAccount(accounts.maker.Address, escrowAddress, PROGRAM_ID, minBalance, EscrowStateAccountSize),
		authorization,
	)
	if err != nil {
		return err
	}

	state := EscrowStateAccount{
		Seed:    i.args.Seed,
		Maker:   accounts.maker.Address,
		MintA:   accounts.mintA.Address,
		MintB:   accounts.mintB.Address,
		Receive: i.args.Receive,
		Bump:    bump,
	}
	copy(accounts.escrow.Account.Data, state.Marshal())

	// The vault is the escrow state's own associated token account for mint A.
	// Creation fails if it already exists.
	if err := InitAssociatedTokenAccount(i.env, accounts.vault, escrowAddress, accounts.mintA.Address, accounts.maker.Address); err != nil {
		return err
	}

	// The deposit moves under the maker's own signature; no derived authority
	// is involved while the maker is the one paying.
	return i.env.Invoke(token.Transfer(
		accounts.makerAtaA.Address,
		accounts.vault.Address,
		accounts.maker.Address,
		i.args.Amount,
	))
}
