package sui

import (
	"crypto/ed25519"
	"encoding/base64"
	"regexp"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/blake2b"
)

var addressPattern = regexp.MustCompile(`^0x[0-9a-f]{64}$`)

func testSeed() []byte {
	seed := make([]byte, ed25519.SeedSize)
	for i := range seed {
		seed[i] = byte(i)
	}
	return seed
}

func TestParseKeypair(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(testSeed())

	kp, err := ParseKeypair(encoded)
	require.NoError(t, err)
	require.Regexp(t, addressPattern, kp.Address())
}

func TestParseKeypair_FlagPrefixedExport(t *testing.T) {
	seed := testSeed()
	plain, err := ParseKeypair(base64.StdEncoding.EncodeToString(seed))
	require.NoError(t, err)

	// 33-byte exports carry a leading scheme flag; both forms must yield
	// the same address
	prefixed := append([]byte{ed25519Flag}, seed...)
	withFlag, err := ParseKeypair(base64.StdEncoding.EncodeToString(prefixed))
	require.NoError(t, err)
	require.Equal(t, plain.Address(), withFlag.Address())
}

func TestParseKeypair_Invalid(t *testing.T) {
	tests := []struct {
		name    string
		encoded string
	}{
		{name: "not base64", encoded: "!!!not-base64!!!"},
		{name: "too short", encoded: base64.StdEncoding.EncodeToString([]byte("short"))},
		{name: "too long", encoded: base64.StdEncoding.EncodeToString(make([]byte, 64))},
		{name: "empty", encoded: ""},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseKeypair(tc.encoded)
			require.Error(t, err)
		})
	}
}

func TestParseKeypair_DeterministicAddress(t *testing.T) {
	encoded := base64.StdEncoding.EncodeToString(testSeed())

	first, err := ParseKeypair(encoded)
	require.NoError(t, err)
	second, err := ParseKeypair(encoded)
	require.NoError(t, err)
	require.Equal(t, first.Address(), second.Address())
}

func TestSignTransaction(t *testing.T) {
	kp, err := ParseKeypair(base64.StdEncoding.EncodeToString(testSeed()))
	require.NoError(t, err)

	txBytes := []byte("fake bcs transaction bytes")
	serialized := kp.SignTransaction(txBytes)

	raw, err := base64.StdEncoding.DecodeString(serialized)
	require.NoError(t, err)
	require.Len(t, raw, 1+ed25519.SignatureSize+ed25519.PublicKeySize)
	require.Equal(t, ed25519Flag, raw[0])

	// The signature must verify over the blake2b digest of the intent
	// message, not the raw tx bytes
	sig := raw[1 : 1+ed25519.SignatureSize]
	pub := ed25519.PublicKey(raw[1+ed25519.SignatureSize:])

	message := append([]byte{0, 0, 0}, txBytes...)
	digest := blake2b.Sum256(message)
	require.True(t, ed25519.Verify(pub, digest[:], sig))
	require.False(t, ed25519.Verify(pub, txBytes, sig))
}
