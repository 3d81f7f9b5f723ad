package escrow

import (
	"github.com/blueshift-gg/escrow/pkg/solana"
)

// Program error codes, surfaced as custom program errors.
const (
	// ErrorNotRentExempt indicates a new account could not be funded to the
	// rent-exempt minimum.
	ErrorNotRentExempt solana.CustomError = iota
	// ErrorNotSigner indicates a required authorizing signature is absent.
	ErrorNotSigner
	// ErrorInvalidOwner indicates an account's owning program does not match
	// expectation.
	ErrorInvalidOwner
	// ErrorInvalidAccountData indicates decoded account contents fail a
	// structural or field check.
	ErrorInvalidAccountData
	// ErrorInvalidAddress indicates a derived address does not match the
	// account actually supplied.
	ErrorInvalidAddress
)
