// Package bank is an in-memory account ledger that hosts native Go programs.
// It implements the collaborator surface a program is written against: account
// storage with rent-exemption rules, transaction signature verification,
// cross-program invocation with program-derived authorizations, and atomic
// rollback of every account mutation when an instruction fails.
package bank

import (
	"bytes"
	"crypto/ed25519"
	"sync"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/blueshift-gg/escrow/pkg/solana"
	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
	"github.com/blueshift-gg/escrow/pkg/solana/system"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

// Rent parameters, matching the Solana defaults.
//
// Reference: https://github.com/solana-labs/solana/blob/5548e599fe4920b71766e0ad1d121755ce9c63d5/sdk/program/src/rent.rs#L27-L36
const (
	lamportsPerByteYear    = 3480
	rentExemptionYears     = 2
	accountStorageOverhead = 128
)

var (
	ErrMissingSignature = errors.New("missing signature for a required signer")
	ErrInvalidSignature = errors.New("signature verification failed")
)

type nativeProgram func(env *invokeEnv, instruction solana.Instruction, views []*runtime.AccountView) error

// Bank holds ledger state and the registry of executable programs.
type Bank struct {
	log *logrus.Entry
	mu  sync.Mutex

	accounts map[string]*runtime.Account
	programs map[string]nativeProgram
}

// New creates a Bank with the system, token and associated token account
// programs installed.
func New() *Bank {
	b := &Bank{
		log:      logrus.StandardLogger().WithField("type", "solana/bank"),
		accounts: make(map[string]*runtime.Account),
		programs: make(map[string]nativeProgram),
	}

	b.programs[string(system.ProgramKey)] = processSystemInstruction
	b.programs[string(token.ProgramKey)] = processTokenInstruction
	b.programs[string(token.AssociatedTokenAccountProgramKey)] = processAssociatedTokenInstruction

	return b
}

// RegisterNativeProgram installs a program entrypoint at the provided address.
func (b *Bank) RegisterNativeProgram(id ed25519.PublicKey, process runtime.ProcessFunc) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.programs[string(id)] = func(env *invokeEnv, instruction solana.Instruction, views []*runtime.AccountView) error {
		return process(env, views, instruction.Data)
	}
}

// MinimumBalance returns the rent-exempt minimum for an account of the given
// data size.
func (b *Bank) MinimumBalance(size uint64) uint64 {
	return (accountStorageOverhead + size) * lamportsPerByteYear * rentExemptionYears
}

// Airdrop credits lamports to an account, creating it when absent.
func (b *Bank) Airdrop(address ed25519.PublicKey, lamports uint64) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.account(address).Lamports += lamports
}

// GetAccount returns a copy of the stored account, or false when the account
// does not exist.
func (b *Bank) GetAccount(address ed25519.PublicKey) (runtime.Account, bool) {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, ok := b.accounts[string(address)]
	if !ok || account.IsEmpty() {
		return runtime.Account{}, false
	}

	cloned := runtime.Account{
		Lamports: account.Lamports,
		Owner:    append(ed25519.PublicKey{}, account.Owner...),
		Data:     append([]byte{}, account.Data...),
	}
	return cloned, true
}

// GetBalance returns the lamport balance for an account.
func (b *Bank) GetBalance(address ed25519.PublicKey) uint64 {
	b.mu.Lock()
	defer b.mu.Unlock()

	account, ok := b.accounts[string(address)]
	if !ok {
		return 0
	}
	return account.Lamports
}

// GetTokenAccount decodes the token account stored at the provided address.
func (b *Bank) GetTokenAccount(address ed25519.PublicKey) (*token.Account, error) {
	account, ok := b.GetAccount(address)
	if !ok {
		return nil, errors.New("account not found")
	}

	var decoded token.Account
	if !decoded.Unmarshal(account.Data) {
		return nil, errors.New("invalid token account")
	}
	return &decoded, nil
}

// Submit verifies a transaction's signatures and executes its instructions in
// order as one indivisible unit. On any failure every mutation is rolled back
// and the failing instruction's error is returned.
func (b *Bank) Submit(txn *Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()

	log := b.log.WithField("method", "Submit")

	signers, err := txn.verify()
	if err != nil {
		return err
	}

	checkpoint := b.checkpoint()

	for index, instruction := range txn.Instructions {
		env := &invokeEnv{
			bank:    b,
			program: instruction.Program,
			signers: signers,
		}

		if err := b.execute(env, instruction); err != nil {
			b.restore(checkpoint)

			log.WithError(err).
				WithField("instruction", index).
				Info("transaction failed")

			return solana.InstructionError{
				Index: index,
				Err:   err,
			}
		}
	}

	return nil
}

// execute runs one instruction. Signer privilege on an account meta is only
// honored when the submitter actually proved it (transaction signature), or,
// for inner invocations, when the caller holds it.
func (b *Bank) execute(env *invokeEnv, instruction solana.Instruction) error {
	process, ok := b.programs[string(instruction.Program)]
	if !ok {
		return runtime.ErrUnsupportedProgramID
	}

	views := make([]*runtime.AccountView, len(instruction.Accounts))
	readonly := make([]runtime.Account, len(instruction.Accounts))
	for i, meta := range instruction.Accounts {
		views[i] = &runtime.AccountView{
			Address:    meta.PublicKey,
			Account:    b.account(meta.PublicKey),
			IsSigner:   meta.IsSigner && env.signers[string(meta.PublicKey)],
			IsWritable: meta.IsWritable,
		}

		if !meta.IsWritable {
			readonly[i] = runtime.Account{
				Lamports: views[i].Account.Lamports,
				Owner:    append([]byte{}, views[i].Account.Owner...),
				Data:     append([]byte{}, views[i].Account.Data...),
			}
		}
	}

	if err := process(env, instruction, views); err != nil {
		return err
	}

	// A program may only mutate accounts whose metas grant write access,
	// including through nested invocations.
	for i, meta := range instruction.Accounts {
		if meta.IsWritable {
			continue
		}
		if views[i].Account.Lamports != readonly[i].Lamports {
			return runtime.ErrReadonlyLamportChange
		}
		if !bytes.Equal(views[i].Account.Owner, readonly[i].Owner) ||
			!bytes.Equal(views[i].Account.Data, readonly[i].Data) {
			return runtime.ErrReadonlyDataModified
		}
	}

	return nil
}

// account returns the stored account, materializing an empty one when absent.
// An empty account is indistinguishable from one that never existed.
func (b *Bank) account(address ed25519.PublicKey) *runtime.Account {
	account, ok := b.accounts[string(address)]
	if !ok {
		account = &runtime.Account{
			Owner: system.ProgramKey,
		}
		b.accounts[string(address)] = account
	}
	return account
}

func (b *Bank) checkpoint() map[string]runtime.Account {
	snapshot := make(map[string]runtime.Account, len(b.accounts))
	for key, account := range b.accounts {
		snapshot[key] = runtime.Account{
			Lamports: account.Lamports,
			Owner:    append(ed25519.PublicKey{}, account.Owner...),
			Data:     append([]byte{}, account.Data...),
		}
	}
	return snapshot
}

func (b *Bank) restore(snapshot map[string]runtime.Account) {
	b.accounts = make(map[string]*runtime.Account, len(snapshot))
	for key, account := range snapshot {
		restored := account
		b.accounts[key] = &restored
	}
}
