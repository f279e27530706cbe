package ecc

import (
	"fmt"
	"math/big"
)

var (
	bigOne   = big.NewInt(1)
	bigTwo   = big.NewInt(2)
	bigThree = big.NewInt(3)
)

// FieldValue is the arithmetic capability shared by FieldElement and its
// fixed-modulus specializations (see S256Field). The curve group law and
// scalar multiplication are written once against this contract.
type FieldValue[F any] interface {
	// Add returns the sum of the two elements.
	Add(other F) (F, error)
	// Sub returns the difference of the two elements.
	Sub(other F) (F, error)
	// Mul returns the product of the two elements.
	Mul(other F) (F, error)
	// Div returns the quotient of the two elements.
	Div(other F) (F, error)
	// PowMod raises the element to the given exponent, which may be negative.
	PowMod(exponent *big.Int) F
	// Equal reports whether two elements have the same value and prime.
	Equal(other F) bool
	// Identity returns the additive identity of the element's field.
	Identity() F
	// FromValues constructs a new element of the same concrete type from raw
	// parts. It stands in for a constructor, which Go interfaces cannot
	// express directly.
	FromValues(value, prime *big.Int) (F, error)
	// Value returns the element's value.
	Value() *big.Int
	// Prime returns the field's prime modulus.
	Prime() *big.Int

	fmt.Stringer
}

var _ FieldValue[*FieldElement] = (*FieldElement)(nil)

// FieldElement is an element of a prime field: an integer in [0, prime).
// Elements are immutable; every operation returns a new element.
type FieldElement struct {
	value *big.Int
	prime *big.Int
}

// NewFieldElement creates a field element with the given value and prime
// modulus. ErrFieldNotInRange is returned if value is not in [0, prime).
func NewFieldElement(value, prime *big.Int) (*FieldElement, error) {
	if value.Sign() < 0 || value.Cmp(prime) >= 0 {
		return nil, fmt.Errorf("num %v not in field range 0 to %v: %w",
			value, new(big.Int).Sub(prime, bigOne), ErrFieldNotInRange)
	}
	return &FieldElement{
		value: new(big.Int).Set(value),
		prime: new(big.Int).Set(prime),
	}, nil
}

// checkPrime verifies that both elements belong to the same field.
func (fe *FieldElement) checkPrime(other *FieldElement) error {
	if fe.prime.Cmp(other.prime) != 0 {
		return fmt.Errorf("cannot combine values from fields F_%v and F_%v: %w",
			fe.prime, other.prime, ErrInvalidField)
	}
	return nil
}

// Add returns fe + other in the field.
func (fe *FieldElement) Add(other *FieldElement) (*FieldElement, error) {
	if err := fe.checkPrime(other); err != nil {
		return nil, err
	}
	value := new(big.Int).Add(fe.value, other.value)
	value.Mod(value, fe.prime)
	return &FieldElement{value: value, prime: fe.prime}, nil
}

// Sub returns fe - other in the field.
func (fe *FieldElement) Sub(other *FieldElement) (*FieldElement, error) {
	if err := fe.checkPrime(other); err != nil {
		return nil, err
	}
	// big.Int.Mod is Euclidean, so the result of reducing a negative
	// difference is already in [0, prime).
	value := new(big.Int).Sub(fe.value, other.value)
	value.Mod(value, fe.prime)
	return &FieldElement{value: value, prime: fe.prime}, nil
}

// Mul returns fe * other in the field.
func (fe *FieldElement) Mul(other *FieldElement) (*FieldElement, error) {
	if err := fe.checkPrime(other); err != nil {
		return nil, err
	}
	value := new(big.Int).Mul(fe.value, other.value)
	value.Mod(value, fe.prime)
	return &FieldElement{value: value, prime: fe.prime}, nil
}

// Div returns fe / other in the field. By Fermat's little theorem,
// other^(prime-1) = 1 for prime moduli, so other^(prime-2) is the
// multiplicative inverse of other. The zero element has no inverse;
// dividing by it returns ErrDivisionByZero.
func (fe *FieldElement) Div(other *FieldElement) (*FieldElement, error) {
	if err := fe.checkPrime(other); err != nil {
		return nil, err
	}
	if other.value.Sign() == 0 {
		return nil, fmt.Errorf("%v / %v: %w", fe, other, ErrDivisionByZero)
	}
	exp := new(big.Int).Sub(fe.prime, bigTwo)
	inverse := new(big.Int).Exp(other.value, exp, fe.prime)
	value := new(big.Int).Mul(fe.value, inverse)
	value.Mod(value, fe.prime)
	return &FieldElement{value: value, prime: fe.prime}, nil
}

// PowMod raises fe to the given exponent. Negative exponents are brought into
// range by adding prime-1, the order of the multiplicative group, so
// fe.PowMod(k) equals fe.PowMod(k + (prime-1)) for any k.
func (fe *FieldElement) PowMod(exponent *big.Int) *FieldElement {
	n := new(big.Int).Set(exponent)
	groupOrder := new(big.Int).Sub(fe.prime, bigOne)
	for n.Sign() < 0 {
		n.Add(n, groupOrder)
	}
	value := new(big.Int).Exp(fe.value, n, fe.prime)
	return &FieldElement{value: value, prime: fe.prime}
}

// Equal reports whether both value and prime match exactly.
func (fe *FieldElement) Equal(other *FieldElement) bool {
	return fe.value.Cmp(other.value) == 0 && fe.prime.Cmp(other.prime) == 0
}

// Identity returns the zero element of the same field.
func (fe *FieldElement) Identity() *FieldElement {
	return &FieldElement{value: new(big.Int), prime: fe.prime}
}

// FromValues constructs a field element from raw parts. It satisfies the
// FieldValue contract; it is equivalent to NewFieldElement.
func (fe *FieldElement) FromValues(value, prime *big.Int) (*FieldElement, error) {
	return NewFieldElement(value, prime)
}

// Value returns the element's value. The caller must not modify it.
func (fe *FieldElement) Value() *big.Int {
	return fe.value
}

// Prime returns the field's prime modulus. The caller must not modify it.
func (fe *FieldElement) Prime() *big.Int {
	return fe.prime
}

// String returns a diagnostic rendering of the element.
func (fe *FieldElement) String() string {
	return fmt.Sprintf("FieldElement_%v(%v)", fe.prime, fe.value)
}
