package ecc

import (
	"crypto/ecdsa"
	"math/big"

	"github.com/btcsuite/btcd/btcec"
)

// PublicKey is a secp256k1 public key: a finite point on the curve.
type PublicKey struct {
	point *S256Point
}

// NewPublicKey creates a public key from a curve point. The point at
// infinity is not a valid public key.
func NewPublicKey(point *S256Point) (*PublicKey, error) {
	if point.IsInfinity() {
		return nil, ErrInvalidPublicKey
	}
	return &PublicKey{point: point}, nil
}

// NewPublicKeyFromCoordinates creates a public key from raw coordinates,
// validating that they lie on the curve.
func NewPublicKeyFromCoordinates(x, y *big.Int) (*PublicKey, error) {
	point, err := NewS256PointFromCoordinates(x, y)
	if err != nil {
		return nil, err
	}
	return &PublicKey{point: point}, nil
}

// Point returns the curve point of this public key.
func (pbk *PublicKey) Point() *S256Point {
	return pbk.point
}

// X returns X component of the public key.
func (pbk *PublicKey) X() *big.Int {
	return pbk.point.X()
}

// Y returns Y component of the public key.
func (pbk *PublicKey) Y() *big.Int {
	return pbk.point.Y()
}

// Equal returns true if this key is equal to the other key.
func (pbk *PublicKey) Equal(other *PublicKey) bool {
	if other == nil {
		return false
	}
	return pbk.point.Equal(other.point)
}

// ToECDSA returns this key as crypto/ecdsa public key.
func (pbk *PublicKey) ToECDSA() *ecdsa.PublicKey {
	return &ecdsa.PublicKey{
		Curve: btcec.S256(),
		X:     new(big.Int).Set(pbk.X()),
		Y:     new(big.Int).Set(pbk.Y()),
	}
}

// String returns a diagnostic rendering of the public key.
func (pbk *PublicKey) String() string {
	return pbk.point.String()
}
