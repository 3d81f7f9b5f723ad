package system

import (
	"crypto/ed25519"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
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

func TestCreateAccount(t *testing.T) {
	keys := generateKeys(t, 3)

	instruction := CreateAccount(keys[0], keys[1], keys[2], 12345, 67890)

	assert.Equal(t, 52, len(instruction.Data))
	require.Equal(t, 2, len(instruction.Accounts))
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.True(t, instruction.Accounts[1].IsSigner)
	assert.True(t, instruction.Accounts[1].IsWritable)

	parsed, err := ParseCreateAccount(instruction)
	require.NoError(t, err)
	assert.Equal(t, keys[0], parsed.Funder)
	assert.Equal(t, keys[1], parsed.Address)
	assert.Equal(t, keys[2], parsed.Owner)
	assert.EqualValues(t, 12345, parsed.Lamports)
	assert.EqualValues(t, 67890, parsed.Size)
}

func TestTransfer(t *testing.T) {
	keys := generateKeys(t, 2)

	instruction := Transfer(keys[0], keys[1], 123)

	parsed, err := ParseTransfer(instruction)
	require.NoError(t, err)
	assert.Equal(t, keys[0], parsed.From)
	assert.Equal(t, keys[1], parsed.To)
	assert.EqualValues(t, 123, parsed.Lamports)

	_, err = ParseCreateAccount(instruction)
	assert.Error(t, err)
}
