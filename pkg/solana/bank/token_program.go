package bank

import (
	"bytes"

	"github.com/blueshift-gg/escrow/pkg/solana"
	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
	"github.com/blueshift-gg/escrow/pkg/solana/system"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

// processTokenInstruction implements the subset of the SPL token program the
// escrow program and its tests exercise.
func processTokenInstruction(env *invokeEnv, instruction solana.Instruction, views []*runtime.AccountView) error {
	command, err := token.GetCommand(instruction)
	if err != nil {
		return runtime.ErrInvalidInstructionData
	}

	switch command {
	case token.CommandInitializeMint:
		args, err := token.ParseInitializeMint(instruction)
		if err != nil {
			return runtime.ErrInvalidInstructionData
		}
		return processInitializeMint(env, args, views)
	case token.CommandInitializeAccount:
		if _, err := token.ParseInitializeAccount(instruction); err != nil {
			return runtime.ErrInvalidInstructionData
		}
		return processInitializeAccount(env, views)
	case token.CommandTransfer:
		args, err := token.ParseTransfer(instruction)
		if err != nil {
			return runtime.ErrInvalidInstructionData
		}
		return processTokenTransfer(args, views)
	case token.CommandMintTo:
		args, err := token.ParseMintTo(instruction)
		if err != nil {
			return runtime.ErrInvalidInstructionData
		}
		return processMintTo(args, views)
	case token.CommandCloseAccount:
		if _, err := token.ParseCloseAccount(instruction); err != nil {
			return runtime.ErrInvalidInstructionData
		}
		return processCloseTokenAccount(views)
	default:
		return runtime.ErrInvalidInstructionData
	}
}

func processInitializeMint(env *invokeEnv, args *token.ParsedInitializeMint, views []*runtime.AccountView) error {
	view := views[0]

	if !bytes.Equal(view.Account.Owner, token.ProgramKey) {
		return runtime.ErrInvalidAccountOwner
	}

	var mint token.Mint
	if !mint.Unmarshal(view.Account.Data) {
		return runtime.ErrInvalidAccountData
	}
	if mint.IsInitialized {
		return token.ErrorAlreadyInUse
	}
	if view.Account.Lamports < env.bank.MinimumBalance(token.MintSize) {
		return token.ErrorNotRentExempt
	}

	mint = token.Mint{
		Authority:     args.Authority,
		Decimals:      args.Decimals,
		IsInitialized: true,
	}
	copy(view.Account.Data, mint.Marshal())

	return nil
}

func processInitializeAccount(env *invokeEnv, views []*runtime.AccountView) error {
	view, mintView, ownerView := views[0], views[1], views[2]

	if !bytes.Equal(view.Account.Owner, token.ProgramKey) {
		return runtime.ErrInvalidAccountOwner
	}

	var account token.Account
	if !account.Unmarshal(view.Account.Data) {
		return runtime.ErrInvalidAccountData
	}
	if account.State != token.AccountStateUninitialized {
		return token.ErrorAlreadyInUse
	}

	var mint token.Mint
	if !mint.Unmarshal(mintView.Account.Data) || !mint.IsInitialized {
		return token.ErrorInvalidMint
	}

	if view.Account.Lamports < env.bank.MinimumBalance(token.AccountSize) {
		return token.ErrorNotRentExempt
	}

	account = token.Account{
		Mint:  mintView.Address,
		Owner: ownerView.Address,
		State: token.AccountStateInitialized,
	}
	copy(view.Account.Data, account.Marshal())

	return nil
}

func processTokenTransfer(args *token.ParsedTransfer, views []*runtime.AccountView) error {
	sourceView, destView, authorityView := views[0], views[1], views[2]

	source, err := decodeTokenAccount(sourceView)
	if err != nil {
		return err
	}
	dest, err := decodeTokenAccount(destView)
	if err != nil {
		return err
	}

	if !authorityView.IsSigner {
		return runtime.ErrMissingRequiredSignature
	}
	if !bytes.Equal(source.Owner, authorityView.Address) {
		return token.ErrorOwnerMismatch
	}
	if !bytes.Equal(source.Mint, dest.Mint) {
		return token.ErrorMintMismatch
	}
	if source.Amount < args.Amount {
		return token.ErrorInsufficientFunds
	}

	source.Amount -= args.Amount
	dest.Amount += args.Amount

	// Self-transfers share one account; re-decode order matters, so guard.
	if bytes.Equal(sourceView.Address, destView.Address) {
		copy(sourceView.Account.Data, dest.Marshal())
		return nil
	}

	copy(sourceView.Account.Data, source.Marshal())
	copy(destView.Account.Data, dest.Marshal())

	return nil
}

func processMintTo(args *token.ParsedMintTo, views []*runtime.AccountView) error {
	mintView, destView, authorityView := views[0], views[1], views[2]

	var mint token.Mint
	if !mint.Unmarshal(mintView.Account.Data) || !mint.IsInitialized {
		return token.ErrorInvalidMint
	}

	dest, err := decodeTokenAccount(destView)
	if err != nil {
		return err
	}

	if !authorityView.IsSigner {
		return runtime.ErrMissingRequiredSignature
	}
	if !bytes.Equal(mint.Authority, authorityView.Address) {
		return token.ErrorOwnerMismatch
	}
	if !bytes.Equal(dest.Mint, mintView.Address) {
		return token.ErrorMintMismatch
	}

	mint.Supply += args.Amount
	dest.Amount += args.Amount

	copy(mintView.Account.Data, mint.Marshal())
	copy(destView.Account.Data, dest.Marshal())

	return nil
}

func processCloseTokenAccount(views []*runtime.AccountView) error {
	view, destView, authorityView := views[0], views[1], views[2]

	account, err := decodeTokenAccount(view)
	if err != nil {
		return err
	}

	closeAuthority := account.Owner
	if len(account.CloseAuthority) > 0 {
		closeAuthority = account.CloseAuthority
	}

	if !authorityView.IsSigner {
		return runtime.ErrMissingRequiredSignature
	}
	if !bytes.Equal(closeAuthority, authorityView.Address) {
		return token.ErrorOwnerMismatch
	}
	if account.Amount != 0 {
		return token.ErrorNonNativeHasBalance
	}

	destView.Account.Lamports += view.Account.Lamports
	view.Account.Lamports = 0
	view.Account.Data = nil
	view.Account.Owner = system.ProgramKey

	return nil
}

func decodeTokenAccount(view *runtime.AccountView) (*token.Account, error) {
	if !bytes.Equal(view.Account.Owner, token.ProgramKey) {
		return nil, runtime.ErrInvalidAccountOwner
	}

	var account token.Account
	if !account.Unmarshal(view.Account.Data) {
		return nil, runtime.ErrInvalidAccountData
	}
	if account.State != token.AccountStateInitialized {
		return nil, token.ErrorUninitializedState
	}
	return &account, nil
}
