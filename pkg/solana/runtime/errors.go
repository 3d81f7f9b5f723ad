package runtime

import (
	"github.com/pkg/errors"
)

// Instruction-level failure kinds surfaced unchanged to the transaction
// submitter. Mirrors the Solana runtime's InstructionError variants.
//
// Reference: https://github.com/solana-labs/solana/blob/4e2754341514cd181ae3f373cc2548bd22e918b8/sdk/program/src/instruction.rs#L23
var (
	ErrInvalidArgument            = errors.New("InvalidArgument")
	ErrInvalidInstructionData     = errors.New("InvalidInstructionData")
	ErrInvalidAccountData         = errors.New("InvalidAccountData")
	ErrInsufficientFunds          = errors.New("InsufficientFunds")
	ErrIncorrectProgramID         = errors.New("IncorrectProgramId")
	ErrMissingRequiredSignature   = errors.New("MissingRequiredSignature")
	ErrAccountAlreadyInitialized  = errors.New("AccountAlreadyInitialized")
	ErrUninitializedAccount       = errors.New("UninitializedAccount")
	ErrNotEnoughAccountKeys       = errors.New("NotEnoughAccountKeys")
	ErrAccountBorrowFailed        = errors.New("AccountBorrowFailed")
	ErrMissingAccount             = errors.New("MissingAccount")
	ErrInvalidSeeds               = errors.New("InvalidSeeds")
	ErrInvalidAccountOwner        = errors.New("InvalidAccountOwner")
	ErrAccountNotRentExempt       = errors.New("AccountNotRentExempt")
	ErrUnsupportedProgramID       = errors.New("UnsupportedProgramId")
	ErrExternalAccountDataWritten = errors.New("ExternalAccountDataModified")
	ErrReadonlyLamportChange      = errors.New("ReadonlyLamportChange")
	ErrReadonlyDataModified       = errors.New("ReadonlyDataModified")
)
