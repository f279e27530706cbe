package ecc

import "errors"

// ErrFieldNotInRange is returned when a field element is constructed with a
// value outside [0, prime).
var ErrFieldNotInRange = errors.New("value not in field range")

// ErrInvalidField is returned when an operation combines elements that belong
// to different fields.
var ErrInvalidField = errors.New("operands belong to different fields")

// ErrPointNotOnCurve is returned when coordinates do not satisfy the curve
// equation, or when points on different curves are combined.
var ErrPointNotOnCurve = errors.New("point is not on the curve")

// ErrDivisionByZero is returned when dividing by the zero element. The Fermat
// inverse is undefined there, so it must be rejected rather than computed.
var ErrDivisionByZero = errors.New("division by the zero element")

// ErrNegativeScalar is returned when constructing a scalar from a negative
// integer.
var ErrNegativeScalar = errors.New("scalar must be non-negative")

// ErrInvalidPrivateKey is returned when a secret is outside [1, N), where N
// is the secp256k1 group order.
var ErrInvalidPrivateKey = errors.New("private key must be in [1, N)")

// ErrInvalidPublicKey is returned when a public key is constructed from the
// point at infinity.
var ErrInvalidPublicKey = errors.New("public key must be a finite point")
