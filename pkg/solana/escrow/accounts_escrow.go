package escrow

import (
	"crypto/ed25519"
	"fmt"

	"github.com/mr-tron/base58"

	"github.com/blueshift-gg/escrow/pkg/solana/runtime"
)

const (
	EscrowStateAccountSize = (8 + // seed
		32 + // maker
		32 + // mint_a
		32 + // mint_b
		8 + // receive
		1) // bump
)

// EscrowStateAccount is the persisted state for one open escrow. It is written
// once by Make and destroyed by whichever of Take or Refund executes; there is
// no update path.
type EscrowStateAccount struct {
	Seed    uint64
	Maker   ed25519.PublicKey
	MintA   ed25519.PublicKey
	MintB   ed25519.PublicKey
	Receive uint64
	Bump    uint8
}

func (obj *EscrowStateAccount) Marshal() []byte {
	data := make([]byte, EscrowStateAccountSize)

	var offset int
	putUint64(data, obj.Seed, &offset)
	putKey(data, obj.Maker, &offset)
	putKey(data, obj.MintA, &offset)
	putKey(data, obj.MintB, &offset)
	putUint64(data, obj.Receive, &offset)
	putUint8(data, obj.Bump, &offset)

	return data
}

func (obj *EscrowStateAccount) Unmarshal(data []byte) error {
	if len(data) != EscrowStateAccountSize {
		return runtime.ErrInvalidAccountData
	}

	var offset int
	getUint64(data, &obj.Seed, &offset)
	getKey(data, &obj.Maker, &offset)
	getKey(data, &obj.MintA, &offset)
	getKey(data, &obj.MintB, &offset)
	getUint64(data, &obj.Receive, &offset)
	getUint8(data, &obj.Bump, &offset)

	return nil
}

func (obj *EscrowStateAccount) String() string {
	return fmt.Sprintf(
		"EscrowStateAccount{seed=%d,maker=%s,mint_a=%s,mint_b=%s,receive=%d,bump=%d}",
		obj.Seed,
		base58.Encode(obj.Maker),
		base58.Encode(obj.MintA),
		base58.Encode(obj.MintB),
		obj.Receive,
		obj.Bump,
	)
}
