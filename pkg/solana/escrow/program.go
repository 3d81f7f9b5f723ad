// Package escrow implements the Blueshift escrow program: a maker locks an
// amount of one token into a program-controlled vault and names the amount of a
// second token they want in exchange; a taker settles the swap atomically, or
// the maker cancels and reclaims the deposit.
package escrow

import (
	"crypto/ed25519"

	"github.com/mr-tron/base58"
)

var (
	PROGRAM_ADDRESS = mustBase58Decode("22222222222222222222222222222222222222222222")
	PROGRAM_ID      = ed25519.PublicKey(PROGRAM_ADDRESS)
)

func mustBase58Decode(value string) []byte {
	decoded, err := base58.Decode(value)
	if err != nil {
		panic(err)
	}
	return decoded
}
