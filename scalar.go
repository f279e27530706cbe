package ecc

import (
	"fmt"
	"math/big"
)

// Scalar is a non-negative arbitrary precision multiplier. It carries no
// field or curve association; it can multiply any group element.
type Scalar struct {
	n *big.Int
}

// NewScalar creates a scalar from n. ErrNegativeScalar is returned if n is
// negative.
func NewScalar(n *big.Int) (*Scalar, error) {
	if n.Sign() < 0 {
		return nil, fmt.Errorf("%v: %w", n, ErrNegativeScalar)
	}
	return &Scalar{n: new(big.Int).Set(n)}, nil
}

// NewScalarFromInt64 creates a scalar from a small non-negative integer.
func NewScalarFromInt64(n int64) (*Scalar, error) {
	return NewScalar(big.NewInt(n))
}

// Value returns the scalar's value. The caller must not modify it.
func (s *Scalar) Value() *big.Int {
	return s.n
}

// String returns a diagnostic rendering of the scalar.
func (s *Scalar) String() string {
	return fmt.Sprintf("Scalar(%v)", s.n)
}

// GroupElement is any immutable value that can be combined additively with
// another value of the same type. Both *FieldElement (under field addition)
// and *Point (under the curve group law) satisfy it.
type GroupElement[T any] interface {
	Add(other T) (T, error)
	Identity() T
}

// Multiply computes the k-fold additive combination of operand using binary
// double-and-add: walk the bits of k from least to most significant, adding
// the running power-of-two multiple of operand whenever a bit is set. This
// takes O(log k) group operations, which is what makes 256-bit multipliers
// tractable; k-fold repeated addition would take O(k).
//
// A zero scalar yields the group identity.
func Multiply[T GroupElement[T]](k *Scalar, operand T) (T, error) {
	var zero T
	result := operand.Identity()
	current := operand
	coef := new(big.Int).Set(k.n)
	for coef.Sign() > 0 {
		var err error
		if coef.Bit(0) == 1 {
			result, err = result.Add(current)
			if err != nil {
				return zero, err
			}
		}
		current, err = current.Add(current)
		if err != nil {
			return zero, err
		}
		coef.Rsh(coef, 1)
	}
	return result, nil
}
