package bank

import (
	"crypto/ed25519"
	"encoding/binary"

	"github.com/blueshift-gg/escrow/pkg/solana"
)

// Transaction is an ordered list of instructions plus the signatures proving
// every required signer authorized it.
type Transaction struct {
	Instructions []solana.Instruction

	signatures map[string][]byte
}

// NewTransaction creates a transaction from the provided instructions.
func NewTransaction(instructions ...solana.Instruction) *Transaction {
	return &Transaction{
		Instructions: instructions,
		signatures:   make(map[string][]byte),
	}
}

// Sign adds a signature over the serialized message for each provided key.
func (t *Transaction) Sign(keys ...ed25519.PrivateKey) *Transaction {
	message := t.Message()
	for _, key := range keys {
		pub := key.Public().(ed25519.PublicKey)
		t.signatures[string(pub)] = ed25519.Sign(key, message)
	}
	return t
}

// Message returns the canonical serialization of the instruction list, which
// is what signers sign.
func (t *Transaction) Message() []byte {
	var message []byte

	appendUint16 := func(v uint16) {
		var buf [2]byte
		binary.LittleEndian.PutUint16(buf[:], v)
		message = append(message, buf[:]...)
	}
	appendUint32 := func(v uint32) {
		var buf [4]byte
		binary.LittleEndian.PutUint32(buf[:], v)
		message = append(message, buf[:]...)
	}

	appendUint16(uint16(len(t.Instructions)))
	for _, instruction := range t.Instructions {
		message = append(message, instruction.Program...)
		appendUint16(uint16(len(instruction.Accounts)))
		for _, meta := range instruction.Accounts {
			message = append(message, meta.PublicKey...)

			var flags byte
			if meta.IsSigner {
				flags |= 1
			}
			if meta.IsWritable {
				flags |= 2
			}
			message = append(message, flags)
		}
		appendUint32(uint32(len(instruction.Data)))
		message = append(message, instruction.Data...)
	}

	return message
}

// verify checks a signature is present and valid for every account meta marked
// as a signer, returning the proven signer set.
func (t *Transaction) verify() (map[string]bool, error) {
	message := t.Message()

	signers := make(map[string]bool)
	for _, instruction := range t.Instructions {
		for _, meta := range instruction.Accounts {
			if !meta.IsSigner || signers[string(meta.PublicKey)] {
				continue
			}

			signature, ok := t.signatures[string(meta.PublicKey)]
			if !ok {
				return nil, ErrMissingSignature
			}
			if !ed25519.Verify(meta.PublicKey, message, signature) {
				return nil, ErrInvalidSignature
			}
			signers[string(meta.PublicKey)] = true
		}
	}

	return signers, nil
}
