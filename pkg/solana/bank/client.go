package bank

import (
	"crypto/ed25519"

	"github.com/pkg/errors"

	"github.com/blueshift-gg/escrow/pkg/solana/system"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

// Token-side conveniences used to arrange ledger state. Each submits a real
// signed transaction; nothing here bypasses the programs.

// CreateMint allocates and initializes a token mint.
func (b *Bank) CreateMint(payer, mint ed25519.PrivateKey, authority ed25519.PublicKey, decimals byte) error {
	payerPub := payer.Public().(ed25519.PublicKey)
	mintPub := mint.Public().(ed25519.PublicKey)

	txn := NewTransaction(
		system.CreateAccount(payerPub, mintPub, token.ProgramKey, b.MinimumBalance(token.MintSize), token.MintSize),
		token.InitializeMint(mintPub, authority, decimals),
	).Sign(payer, mint)

	return errors.Wrap(b.Submit(txn), "failed to create mint")
}

// CreateAssociatedTokenAccount creates the associated token account for
// (wallet, mint), paid for by payer, and returns its address.
func (b *Bank) CreateAssociatedTokenAccount(payer ed25519.PrivateKey, wallet, mint ed25519.PublicKey) (ed25519.PublicKey, error) {
	payerPub := payer.Public().(ed25519.PublicKey)

	instruction, address, err := token.CreateAssociatedTokenAccount(payerPub, wallet, mint)
	if err != nil {
		return nil, err
	}

	txn := NewTransaction(instruction).Sign(payer)
	if err := b.Submit(txn); err != nil {
		return nil, errors.Wrap(err, "failed to create associated token account")
	}
	return address, nil
}

// MintTo mints tokens to a destination token account.
func (b *Bank) MintTo(authority ed25519.PrivateKey, mint, destination ed25519.PublicKey, amount uint64) error {
	authorityPub := authority.Public().(ed25519.PublicKey)

	txn := NewTransaction(
		token.MintTo(mint, destination, authorityPub, amount),
	).Sign(authority)

	return errors.Wrap(b.Submit(txn), "failed to mint tokens")
}
