package ecc

import (
	"crypto/ecdsa"
	"crypto/rand"
	"crypto/sha256"
	"fmt"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
	"github.com/tyler-smith/go-bip39"
	"golang.org/x/crypto/pbkdf2"
)

const (
	PBKDF2_ITER = 16384
	PBKDF2_SIZE = 32
)

// PrivateKey is a secp256k1 private key: a secret scalar in [1, N). The
// public key is derived as secret*G with this package's own scalar
// multiplication.
type PrivateKey struct {
	secret *big.Int
}

// NewRandomPrivateKey creates a new random private key.
func NewRandomPrivateKey() (*PrivateKey, error) {
	for {
		secret, err := rand.Int(rand.Reader, s256N)
		if err != nil {
			return nil, fmt.Errorf("failed to generate private key: %w", err)
		}
		if secret.Sign() != 0 {
			return &PrivateKey{secret: secret}, nil
		}
	}
}

// NewPrivateKeyFromSecret creates a private key from secret.
// ErrInvalidPrivateKey is returned if secret is outside [1, N).
func NewPrivateKeyFromSecret(secret *big.Int) (*PrivateKey, error) {
	if secret == nil || secret.Sign() <= 0 || secret.Cmp(s256N) >= 0 {
		return nil, ErrInvalidPrivateKey
	}
	return &PrivateKey{secret: new(big.Int).Set(secret)}, nil
}

// NewPrivateKeyFromPassword creates a private key from password and salt
// using the PBKDF2 algorithm.
// See https://en.wikipedia.org/wiki/PBKDF2.
func NewPrivateKeyFromPassword(password, salt []byte) (*PrivateKey, error) {
	key := pbkdf2.Key(password, salt, PBKDF2_ITER, PBKDF2_SIZE, sha256.New)
	secret := new(big.Int).SetBytes(key)
	secret.Mod(secret, s256N)
	return NewPrivateKeyFromSecret(secret)
}

// NewPrivateKeyFromMnemonic creates a private key from a BIP39 mnemonic
// phrase.
func NewPrivateKeyFromMnemonic(mnemonic string) (*PrivateKey, error) {
	b, err := bip39.EntropyFromMnemonic(mnemonic)
	if err != nil {
		return nil, err
	}
	return NewPrivateKeyFromSecret(new(big.Int).SetBytes(b))
}

// Secret returns the private key's secret.
func (pk *PrivateKey) Secret() *big.Int {
	return pk.secret
}

// Mnemonic returns a mnemonic phrase which can be used to recover this
// private key.
func (pk *PrivateKey) Mnemonic() (string, error) {
	return bip39.NewMnemonic(padWithZeros(pk.secret.Bytes(), 32))
}

// PublicKey returns the public key derived from this private key.
func (pk *PrivateKey) PublicKey() (*PublicKey, error) {
	k, err := NewScalar(pk.secret)
	if err != nil {
		return nil, err
	}
	point, err := S256Generator().Multiply(k)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: point}, nil
}

// GetECDHEncryptionKey returns a shared key that can be used to encrypt data
// exchanged by two parties, using Elliptic Curve Diffie-Hellman algorithm
// (ECDH). For Alice and Bob, the key is guaranteed to be the same when it's
// derived from Alice's private key and Bob's public key or Alice's public
// key and Bob's private key.
//
// See https://en.wikipedia.org/wiki/Elliptic-curve_Diffie%E2%80%93Hellman.
func (pk *PrivateKey) GetECDHEncryptionKey(publicKey *PublicKey) ([]byte, error) {
	k, err := NewScalar(pk.secret)
	if err != nil {
		return nil, err
	}
	shared, err := publicKey.point.Multiply(k)
	if err != nil {
		return nil, err
	}
	return padWithZeros(shared.X().Bytes(), 32), nil
}

// Equal returns true if this key is equal to the other key.
func (pk *PrivateKey) Equal(other *PrivateKey) bool {
	return pk.secret.Cmp(other.secret) == 0
}

// ToECDSA returns this key as crypto/ecdsa private key.
func (pk *PrivateKey) ToECDSA() (*ecdsa.PrivateKey, error) {
	publicKey, err := pk.PublicKey()
	if err != nil {
		return nil, err
	}
	privateKey := &ecdsa.PrivateKey{D: new(big.Int).Set(pk.secret)}
	privateKey.PublicKey.Curve = btcec.S256()
	privateKey.PublicKey.X = publicKey.X()
	privateKey.PublicKey.Y = publicKey.Y()
	return privateKey, nil
}
