package token

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueshift-gg/escrow/pkg/solana"
)

func generateKeys(t *testing.T, n int) []ed25519.PublicKey {
	keys := make([]ed25519.PublicKey, n)
	for i := 0; i < n; i++ {
		p, _, err := ed25519.GenerateKey(nil)
		require.NoError(t, err)
		keys[i] = p
	}
	return keys
}

func TestTransfer(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := Transfer(keys[0], keys[1], keys[2], 123456789)

	command, err := GetCommand(instruction)
	require.NoError(t, err)
	assert.Equal(t, CommandTransfer, command)

	require.Equal(t, 3, len(instruction.Accounts))
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.True(t, instruction.Accounts[1].IsWritable)
	assert.True(t, instruction.Accounts[2].IsSigner)
	assert.False(t, instruction.Accounts[2].IsWritable)

	parsed, err := ParseTransfer(instruction)
	require.NoError(t, err)
	assert.Equal(t, keys[0], parsed.Source)
	assert.Equal(t, keys[1], parsed.Destination)
	assert.Equal(t, keys[2], parsed.Owner)
	assert.EqualValues(t, 123456789, parsed.Amount)
}

func TestInitializeAccount(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := InitializeAccount(keys[0], keys[1], keys[2])

	parsed, err := ParseInitializeAccount(instruction)
	require.NoError(t, err)
	assert.Equal(t, keys[0], parsed.Account)
	assert.Equal(t, keys[1], parsed.Mint)
	assert.Equal(t, keys[2], parsed.Owner)
}

func TestInitializeMint(t *testing.T) {
	keys := generateKeys(t, 2)

	instruction := InitializeMint(keys[0], keys[1], 5)

	parsed, err := ParseInitializeMint(instruction)
	require.NoError(t, err)
	assert.Equal(t, keys[0], parsed.Mint)
	assert.Equal(t, keys[1], parsed.Authority)
	assert.EqualValues(t, 5, parsed.Decimals)
}

func TestMintTo(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := MintTo(keys[0], keys[1], keys[2], 42)

	parsed, err := ParseMintTo(instruction)
	require.NoError(t, err)
	assert.Equal(t, keys[0], parsed.Mint)
	assert.Equal(t, keys[1], parsed.Destination)
	assert.Equal(t, keys[2], parsed.Authority)
	assert.EqualValues(t, 42, parsed.Amount)

	_, err = ParseTransfer(instruction)
	assert.Equal(t, solana.ErrIncorrectInstruction, err)
}

func TestCloseAccount(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := CloseAccount(keys[0], keys[1], keys[2])

	parsed, err := ParseCloseAccount(instruction)
	require.NoError(t, err)
	assert.Equal(t, keys[0], parsed.Account)
	assert.Equal(t, keys[1], parsed.Destination)
	assert.Equal(t, keys[2], parsed.Owner)
}
