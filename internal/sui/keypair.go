package sui

import (
	"crypto/ed25519"
	"encoding/base64"
	"encoding/hex"
	"fmt"
	"strings"

	"golang.org/x/crypto/blake2b"
)

// ed25519Flag is the Sui signature scheme flag for ed25519. It prefixes the
// public key when deriving an address and the signature when serializing it.
const ed25519Flag byte = 0x00

// Intent prefix for TransactionData: scope, version, app id.
var transactionIntent = []byte{0, 0, 0}

// Keypair is the faucet's funding signing key. It is loaded once at startup
// from configuration and never persisted.
type Keypair struct {
	priv    ed25519.PrivateKey
	address string
}

// ParseKeypair decodes a base64 ed25519 secret key. Keys are 32-byte seeds,
// but some wallet exports prepend the scheme flag byte; that prefix is
// stripped.
func ParseKeypair(encoded string) (*Keypair, error) {
	raw, err := base64.StdEncoding.DecodeString(strings.TrimSpace(encoded))
	if err != nil {
		return nil, fmt.Errorf("decode private key: %w", err)
	}
	if len(raw) == ed25519.SeedSize+1 {
		raw = raw[1:]
	}
	if len(raw) != ed25519.SeedSize {
		return nil, fmt.Errorf("private key must be %d bytes, got %d", ed25519.SeedSize, len(raw))
	}

	priv := ed25519.NewKeyFromSeed(raw)
	return &Keypair{
		priv:    priv,
		address: deriveAddress(priv.Public().(ed25519.PublicKey)),
	}, nil
}

// Address returns the Sui address derived from the public key.
func (k *Keypair) Address() string {
	return k.address
}

// SignTransaction signs BCS transaction bytes under the TransactionData
// intent and returns the serialized signature (flag || sig || pubkey) in
// base64, as expected by sui_executeTransactionBlock.
func (k *Keypair) SignTransaction(txBytes []byte) string {
	message := make([]byte, 0, len(transactionIntent)+len(txBytes))
	message = append(message, transactionIntent...)
	message = append(message, txBytes...)
	digest := blake2b.Sum256(message)

	sig := ed25519.Sign(k.priv, digest[:])
	pub := k.priv.Public().(ed25519.PublicKey)

	serialized := make([]byte, 0, 1+len(sig)+len(pub))
	serialized = append(serialized, ed25519Flag)
	serialized = append(serialized, sig...)
	serialized = append(serialized, pub...)
	return base64.StdEncoding.EncodeToString(serialized)
}

func deriveAddress(pub ed25519.PublicKey) string {
	input := make([]byte, 0, 1+len(pub))
	input = append(input, ed25519Flag)
	input = append(input, pub...)
	sum := blake2b.Sum256(input)
	return "0x" + hex.EncodeToString(sum[:])
}
