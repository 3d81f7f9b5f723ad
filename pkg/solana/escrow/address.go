package escrow

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/blueshift-gg/escrow/pkg/solana"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
)

var escrowStatePrefix = []byte("escrow")

type GetEscrowStateAddressArgs struct {
	Maker ed25519.PublicKey
	Seed  uint64
}

type GetVaultAddressArgs struct {
	Escrow ed25519.PublicKey
	MintA  ed25519.PublicKey
}

// GetEscrowStateAddress finds the escrow state address and bump for a
// (maker, seed) pair.
func GetEscrowStateAddress(args *GetEscrowStateAddressArgs) (ed25519.PublicKey, uint8, error) {
	seedBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(seedBytes, args.Seed)

	return solana.FindProgramAddressAndBump(
		PROGRAM_ID,
		escrowStatePrefix,
		args.Maker,
		seedBytes,
	)
}

// CreateEscrowStateAddress re-derives the escrow state address from complete
// seed material, including the bump. It is the verification counterpart of
// GetEscrowStateAddress: any supplied account whose address does not reproduce
// under this derivation is a forgery.
func CreateEscrowStateAddress(maker ed25519.PublicKey, seed uint64, bump uint8) (ed25519.PublicKey, error) {
	seedBytes := make([]byte, 8)
	binary.LittleEndian.PutUint64(seedBytes, seed)

	return solana.CreateProgramAddress(
		PROGRAM_ID,
		escrowStatePrefix,
		maker,
		seedBytes,
		[]byte{bump},
	)
}

// GetVaultAddress returns the vault address for an escrow: the associated token
// account of mint A owned by the escrow state address itself.
func GetVaultAddress(args *GetVaultAddressArgs) (ed25519.PublicKey, error) {
	return token.GetAssociatedAccount(args.Escrow, args.MintA)
}
