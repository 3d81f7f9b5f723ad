package escrow

import (
	"encoding/binary"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/blueshift-gg/escrow/pkg/solana/system"
	"github.com/blueshift-gg/escrow/pkg/solana/token"
	"github.com/blueshift-gg/escrow/pkg/testutil"
)

func TestNewMakeInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 6)

	instruction := NewMakeInstruction(
		&MakeInstructionAccounts{
			Maker:     keys[0],
			Escrow:    keys[1],
			MintA:     keys[2],
			MintB:     keys[3],
			MakerAtaA: keys[4],
			Vault:     keys[5],
		},
		&MakeInstructionArgs{
			Seed:    1,
			Receive: 50,
			Amount:  100,
		},
	)

	assert.EqualValues(t, PROGRAM_ID, instruction.Program)

	require.Len(t, instruction.Data, 1+MakeInstructionArgsSize)
	assert.Equal(t, MakeInstructionTag, instruction.Data[0])
	assert.EqualValues(t, 1, binary.LittleEndian.Uint64(instruction.Data[1:]))
	assert.EqualValues(t, 50, binary.LittleEndian.Uint64(instruction.Data[9:]))
	assert.EqualValues(t, 100, binary.LittleEndian.Uint64(instruction.Data[17:]))

	require.Len(t, instruction.Accounts, 9)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)
	for i := 1; i < len(instruction.Accounts); i++ {
		assert.False(t, instruction.Accounts[i].IsSigner)
	}
	assert.EqualValues(t, system.ProgramKey, instruction.Accounts[6].PublicKey)
	assert.EqualValues(t, token.ProgramKey, instruction.Accounts[7].PublicKey)
	assert.EqualValues(t, token.AssociatedTokenAccountProgramKey, instruction.Accounts[8].PublicKey)
}

func TestNewTakeInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 9)

	instruction := NewTakeInstruction(&TakeInstructionAccounts{
		Taker:     keys[0],
		Maker:     keys[1],
		Escrow:    keys[2],
		MintA:     keys[3],
		MintB:     keys[4],
		Vault:     keys[5],
		TakerAtaA: keys[6],
		TakerAtaB: keys[7],
		MakerAtaB: keys[8],
	})

	assert.Equal(t, []byte{TakeInstructionTag}, instruction.Data)
	require.Len(t, instruction.Accounts, 12)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.EqualValues(t, keys[5], instruction.Accounts[5].PublicKey)
	assert.True(t, instruction.Accounts[5].IsWritable)
}

func TestNewRefundInstruction(t *testing.T) {
	keys := testutil.GenerateSolanaKeys(t, 5)

	instruction := NewRefundInstruction(&RefundInstructionAccounts{
		Maker:     keys[0],
		Escrow:    keys[1],
		MintA:     keys[2],
		Vault:     keys[3],
		MakerAtaA: keys[4],
	})

	assert.Equal(t, []byte{RefundInstructionTag}, instruction.Data)
	require.Len(t, instruction.Accounts, 8)
	assert.True(t, instruction.Accounts[0].IsSigner)
	assert.True(t, instruction.Accounts[0].IsWritable)
	assert.EqualValues(t, token.AssociatedTokenAccountProgramKey, instruction.Accounts[7].PublicKey)
}
