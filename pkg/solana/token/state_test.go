package token

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccountState(t *testing.T) {
	keys := generateKeys(t, 2)

	account := Account{
		Mint:   keys[0],
		Owner:  keys[1],
		Amount: 100,
		State:  AccountStateInitialized,
	}

	b := account.Marshal()
	require.Len(t, b, AccountSize)

	var decoded Account
	require.True(t, decoded.Unmarshal(b))
	assert.EqualValues(t, keys[0], decoded.Mint)
	assert.EqualValues(t, keys[1], decoded.Owner)
	assert.EqualValues(t, 100, decoded.Amount)
	assert.Equal(t, AccountStateInitialized, decoded.State)
	assert.Empty(t, decoded.Delegate)
	assert.Nil(t, decoded.IsNative)

	var tooShort Account
	assert.False(t, tooShort.Unmarshal(b[:AccountSize-1]))
}

func TestMintState(t *testing.T) {
	keys := generateKeys(t, 1)

	mint := Mint{
		Authority:     keys[0],
		Supply:        1_000_000,
		Decimals:      6,
		IsInitialized: true,
	}

	b := mint.Marshal()
	require.Len(t, b, MintSize)

	var decoded Mint
	require.True(t, decoded.Unmarshal(b))
	assert.EqualValues(t, keys[0], decoded.Authority)
	assert.EqualValues(t, 1_000_000, decoded.Supply)
	assert.EqualValues(t, 6, decoded.Decimals)
	assert.True(t, decoded.IsInitialized)
	assert.Empty(t, decoded.FreezeAuthority)
}
