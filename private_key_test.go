package ecc

import (
	"math/big"
	"testing"

	"github.com/btcsuite/btcd/btcec"
	"github.com/stretchr/testify/assert"
)

func Test_PrivateKey_NewRandom(t *testing.T) {
	assert := assert.New(t)

	pk, err := NewRandomPrivateKey()
	assert.NoError(err)
	assert.NotNil(pk)
	assert.True(pk.Secret().Sign() > 0)
	assert.True(pk.Secret().Cmp(S256Order()) < 0)
}

func Test_PrivateKey_FromSecret(t *testing.T) {
	assert := assert.New(t)

	pk, err := NewPrivateKeyFromSecret(big.NewInt(12345))
	assert.NoError(err)
	assert.Equal(big.NewInt(12345), pk.Secret())

	_, err = NewPrivateKeyFromSecret(big.NewInt(0))
	assert.ErrorIs(err, ErrInvalidPrivateKey)

	_, err = NewPrivateKeyFromSecret(big.NewInt(-5))
	assert.ErrorIs(err, ErrInvalidPrivateKey)

	_, err = NewPrivateKeyFromSecret(S256Order())
	assert.ErrorIs(err, ErrInvalidPrivateKey)

	_, err = NewPrivateKeyFromSecret(nil)
	assert.ErrorIs(err, ErrInvalidPrivateKey)
}

func Test_PrivateKey_FromPassword(t *testing.T) {
	assert := assert.New(t)

	salt := []byte{0x11, 0x22, 0x33, 0x44}
	key, err := NewPrivateKeyFromPassword([]byte("super secret spies"), salt)
	assert.NoError(err)
	assert.NotNil(key)

	// Derivation is deterministic.
	key1, err := NewPrivateKeyFromPassword([]byte("super secret spies"), salt)
	assert.NoError(err)
	assert.True(key.Equal(key1))

	// A different salt gives a different key.
	key2, err := NewPrivateKeyFromPassword([]byte("super secret spies"), []byte{0x55})
	assert.NoError(err)
	assert.False(key.Equal(key2))
}

func Test_PrivateKey_Mnemonic(t *testing.T) {
	assert := assert.New(t)

	key, err := NewPrivateKeyFromSecret(big.NewInt(123456))
	assert.NoError(err)
	mnemonic, err := key.Mnemonic()
	assert.NoError(err)

	key1, err := NewPrivateKeyFromMnemonic(mnemonic)
	assert.NoError(err)
	assert.True(key.Equal(key1))

	// Try bad mnemonic.
	_, err = NewPrivateKeyFromMnemonic("foo bar baz")
	assert.Error(err)
}

func Test_PrivateKey_PublicKey(t *testing.T) {
	assert := assert.New(t)

	// The public key is secret * G.
	key, err := NewPrivateKeyFromSecret(big.NewInt(7))
	assert.NoError(err)
	publicKey, err := key.PublicKey()
	assert.NoError(err)

	k, err := NewScalarFromInt64(7)
	assert.NoError(err)
	want, err := S256Generator().Multiply(k)
	assert.NoError(err)
	assert.Equal(want.X(), publicKey.X())
	assert.Equal(want.Y(), publicKey.Y())
}

func Test_PrivateKey_GetECDHEncryptionKey(t *testing.T) {
	assert := assert.New(t)

	aliceKey, err := NewRandomPrivateKey()
	assert.NoError(err)
	bobKey, err := NewRandomPrivateKey()
	assert.NoError(err)

	alicePublicKey, err := aliceKey.PublicKey()
	assert.NoError(err)
	bobPublicKey, err := bobKey.PublicKey()
	assert.NoError(err)

	// Both sides derive the same shared key.
	aliceShared, err := aliceKey.GetECDHEncryptionKey(bobPublicKey)
	assert.NoError(err)
	bobShared, err := bobKey.GetECDHEncryptionKey(alicePublicKey)
	assert.NoError(err)

	assert.Equal(aliceShared, bobShared)
	assert.Len(aliceShared, 32)
}

func Test_PrivateKey_Equal(t *testing.T) {
	assert := assert.New(t)

	key1, err := NewPrivateKeyFromSecret(big.NewInt(100))
	assert.NoError(err)
	key2, err := NewPrivateKeyFromSecret(big.NewInt(100))
	assert.NoError(err)
	key3, err := NewPrivateKeyFromSecret(big.NewInt(200))
	assert.NoError(err)

	assert.True(key1.Equal(key2))
	assert.False(key1.Equal(key3))
}

func Test_PrivateKey_ToECDSA(t *testing.T) {
	assert := assert.New(t)

	key, err := NewPrivateKeyFromSecret(big.NewInt(12345))
	assert.NoError(err)
	ecdsaKey, err := key.ToECDSA()
	assert.NoError(err)

	assert.Equal(big.NewInt(12345), ecdsaKey.D)
	assert.Equal(btcec.S256(), ecdsaKey.Curve)

	// The derived public point agrees with the reference implementation.
	x, y := btcec.S256().ScalarBaseMult(ecdsaKey.D.Bytes())
	assert.Equal(x, ecdsaKey.X)
	assert.Equal(y, ecdsaKey.Y)
}
