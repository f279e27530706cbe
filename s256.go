package ecc

import (
	"fmt"
	"math/big"
	"sync"

	"github.com/ethereum/go-ethereum/common/math"
)

// secp256k1 domain parameters. The prime is 2^256 - 2^32 - 977; the curve is
// y^2 = x^3 + 7. These are read-only after initialization.
var (
	s256Prime = math.MustParseBig256("0xfffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f")
	s256A     = big.NewInt(0)
	s256B     = big.NewInt(7)
	s256Gx    = math.MustParseBig256("0x79be667ef9dcbbac55a06295ce870b07029bfcdb2dce28d959f2815b16f81798")
	s256Gy    = math.MustParseBig256("0x483ada7726a3c4655da4fbfc0e1108a8fd17b448a68554199c47d08ffb10d4b8")
	s256N     = math.MustParseBig256("0xfffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141")
)

// S256Prime returns the secp256k1 field prime.
func S256Prime() *big.Int {
	return new(big.Int).Set(s256Prime)
}

// S256Order returns the order of the secp256k1 group generated by G.
func S256Order() *big.Int {
	return new(big.Int).Set(s256N)
}

var _ FieldValue[*S256Field] = (*S256Field)(nil)

// S256Field is a FieldElement over the secp256k1 prime. It satisfies the same
// FieldValue contract as the generic element, so Point and Multiply work with
// it unchanged.
type S256Field struct {
	field *FieldElement
}

// NewS256Field creates a secp256k1 field element with the given value.
func NewS256Field(value *big.Int) (*S256Field, error) {
	fe, err := NewFieldElement(value, s256Prime)
	if err != nil {
		return nil, err
	}
	return &S256Field{field: fe}, nil
}

func (f *S256Field) Add(other *S256Field) (*S256Field, error) {
	fe, err := f.field.Add(other.field)
	if err != nil {
		return nil, err
	}
	return &S256Field{field: fe}, nil
}

func (f *S256Field) Sub(other *S256Field) (*S256Field, error) {
	fe, err := f.field.Sub(other.field)
	if err != nil {
		return nil, err
	}
	return &S256Field{field: fe}, nil
}

func (f *S256Field) Mul(other *S256Field) (*S256Field, error) {
	fe, err := f.field.Mul(other.field)
	if err != nil {
		return nil, err
	}
	return &S256Field{field: fe}, nil
}

func (f *S256Field) Div(other *S256Field) (*S256Field, error) {
	fe, err := f.field.Div(other.field)
	if err != nil {
		return nil, err
	}
	return &S256Field{field: fe}, nil
}

func (f *S256Field) PowMod(exponent *big.Int) *S256Field {
	return &S256Field{field: f.field.PowMod(exponent)}
}

func (f *S256Field) Equal(other *S256Field) bool {
	return f.field.Equal(other.field)
}

func (f *S256Field) Identity() *S256Field {
	return &S256Field{field: f.field.Identity()}
}

// FromValues constructs a secp256k1 field element from raw parts. The prime
// must be the secp256k1 prime.
func (f *S256Field) FromValues(value, prime *big.Int) (*S256Field, error) {
	if prime.Cmp(s256Prime) != 0 {
		return nil, fmt.Errorf("prime %v is not the secp256k1 prime: %w",
			prime, ErrInvalidField)
	}
	return NewS256Field(value)
}

func (f *S256Field) Value() *big.Int {
	return f.field.Value()
}

func (f *S256Field) Prime() *big.Int {
	return f.field.Prime()
}

// String renders the value as 64 hex digits, the customary form for
// secp256k1 coordinates.
func (f *S256Field) String() string {
	return fmt.Sprintf("S256Field(%064x)", f.field.Value())
}

// S256Point is a point on the secp256k1 curve. It fixes the curve
// coefficients a = 0, b = 7 so callers only supply coordinates.
type S256Point struct {
	point *Point[*S256Field]
}

// s256Coefficients returns the fixed curve coefficients as field elements.
func s256Coefficients() (*S256Field, *S256Field) {
	a, err := NewS256Field(s256A)
	if err != nil {
		panic(fmt.Sprintf("ecc: bad secp256k1 coefficient a: %v", err))
	}
	b, err := NewS256Field(s256B)
	if err != nil {
		panic(fmt.Sprintf("ecc: bad secp256k1 coefficient b: %v", err))
	}
	return a, b
}

// NewS256Point creates the secp256k1 point (x, y). ErrPointNotOnCurve is
// returned if the coordinates do not satisfy y^2 = x^3 + 7.
func NewS256Point(x, y *S256Field) (*S256Point, error) {
	a, b := s256Coefficients()
	point, err := NewPoint(a, b, x, y)
	if err != nil {
		return nil, err
	}
	return &S256Point{point: point}, nil
}

// NewS256PointFromCoordinates creates the secp256k1 point (x, y) from raw
// integers.
func NewS256PointFromCoordinates(x, y *big.Int) (*S256Point, error) {
	xField, err := NewS256Field(x)
	if err != nil {
		return nil, err
	}
	yField, err := NewS256Field(y)
	if err != nil {
		return nil, err
	}
	return NewS256Point(xField, yField)
}

// S256Infinity returns the secp256k1 point at infinity.
func S256Infinity() *S256Point {
	a, b := s256Coefficients()
	return &S256Point{point: NewInfinityPoint(a, b)}
}

var (
	s256GenOnce sync.Once
	s256Gen     *S256Point
)

// S256Generator returns the secp256k1 base point G. The point is built on
// first use and shared afterwards; it is immutable.
func S256Generator() *S256Point {
	s256GenOnce.Do(func() {
		g, err := NewS256PointFromCoordinates(s256Gx, s256Gy)
		if err != nil {
			panic(fmt.Sprintf("ecc: bad secp256k1 generator: %v", err))
		}
		s256Gen = g
	})
	return s256Gen
}

// Add returns the group-law sum of the two points.
func (p *S256Point) Add(other *S256Point) (*S256Point, error) {
	sum, err := p.point.Add(other.point)
	if err != nil {
		return nil, err
	}
	return &S256Point{point: sum}, nil
}

// Multiply returns the scalar multiple k*p.
func (p *S256Point) Multiply(k *Scalar) (*S256Point, error) {
	return Multiply(k, p)
}

// Equal reports whether the two points have the same coordinates.
func (p *S256Point) Equal(other *S256Point) bool {
	return p.point.Equal(other.point)
}

// Identity returns the point at infinity.
func (p *S256Point) Identity() *S256Point {
	return &S256Point{point: p.point.Identity()}
}

// IsInfinity reports whether p is the point at infinity.
func (p *S256Point) IsInfinity() bool {
	return p.point.IsInfinity()
}

// X returns the x coordinate, or nil for the point at infinity.
func (p *S256Point) X() *big.Int {
	if p.point.IsInfinity() {
		return nil
	}
	return p.point.X().Value()
}

// Y returns the y coordinate, or nil for the point at infinity.
func (p *S256Point) Y() *big.Int {
	if p.point.IsInfinity() {
		return nil
	}
	return p.point.Y().Value()
}

// String returns a diagnostic rendering of the point.
func (p *S256Point) String() string {
	if p.point.IsInfinity() {
		return "S256Point(infinity)"
	}
	return fmt.Sprintf("S256Point(%064x, %064x)", p.X(), p.Y())
}
