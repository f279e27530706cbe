package ecc

import (
	"fmt"
	"math/big"
)

// Point is an affine point on the short Weierstrass curve y^2 = x^3 + ax + b
// over the prime field of its coordinates, or the point at infinity (the
// group identity). Points are immutable; Add returns a new point.
type Point[F FieldValue[F]] struct {
	a, b     F
	x, y     F
	infinity bool
}

// NewPoint creates the point (x, y) on the curve defined by a and b.
// ErrPointNotOnCurve is returned if the coordinates do not satisfy the curve
// equation; ErrInvalidField if the four elements live in different fields.
func NewPoint[F FieldValue[F]](a, b, x, y F) (*Point[F], error) {
	ySquared := y.PowMod(bigTwo)
	ax, err := a.Mul(x)
	if err != nil {
		return nil, err
	}
	rhs, err := x.PowMod(bigThree).Add(ax)
	if err != nil {
		return nil, err
	}
	rhs, err = rhs.Add(b)
	if err != nil {
		return nil, err
	}
	if !ySquared.Equal(rhs) {
		return nil, fmt.Errorf("(%v, %v): %w", x.Value(), y.Value(), ErrPointNotOnCurve)
	}
	return &Point[F]{a: a, b: b, x: x, y: y}, nil
}

// NewInfinityPoint creates the point at infinity of the curve defined by a
// and b.
func NewInfinityPoint[F FieldValue[F]](a, b F) *Point[F] {
	return &Point[F]{a: a, b: b, infinity: true}
}

// checkSameCurve verifies that both points belong to the same curve.
func (p *Point[F]) checkSameCurve(other *Point[F]) error {
	if !p.a.Equal(other.a) || !p.b.Equal(other.b) {
		return fmt.Errorf("points %v and %v are not on the same curve: %w",
			p, other, ErrPointNotOnCurve)
	}
	return nil
}

// isAdditiveInverseOf reports whether the two points share an x coordinate
// but not a y coordinate, in which case the line through them is vertical.
func (p *Point[F]) isAdditiveInverseOf(other *Point[F]) bool {
	return p.x.Equal(other.x) && !p.y.Equal(other.y)
}

// isOnVerticalTangent reports whether the tangent line at p is vertical,
// which is the case when y is zero.
func (p *Point[F]) isOnVerticalTangent() bool {
	return !p.infinity && p.y.Value().Sign() == 0
}

// Add implements the elliptic curve group law. Coordinates produced by the
// chord and tangent cases go through NewPoint again, so a corrupted slope
// computation surfaces as ErrPointNotOnCurve instead of an off-curve point.
func (p *Point[F]) Add(other *Point[F]) (*Point[F], error) {
	if err := p.checkSameCurve(other); err != nil {
		return nil, err
	}

	if p.infinity {
		return other, nil
	}
	if other.infinity {
		return p, nil
	}

	if p.isAdditiveInverseOf(other) {
		return NewInfinityPoint(p.a, p.b), nil
	}

	// P1 + P2 with distinct x: the line through the points intersects the
	// curve at a third point, whose reflection is the sum.
	if !p.x.Equal(other.x) {
		slope, err := chordSlope(p, other)
		if err != nil {
			return nil, err
		}
		// x3 = s^2 - x1 - x2
		x3, err := slope.PowMod(bigTwo).Sub(p.x)
		if err != nil {
			return nil, err
		}
		x3, err = x3.Sub(other.x)
		if err != nil {
			return nil, err
		}
		y3, err := reflectedY(slope, p.x, x3, p.y)
		if err != nil {
			return nil, err
		}
		return NewPoint(p.a, p.b, x3, y3)
	}

	if p.Equal(other) && p.isOnVerticalTangent() {
		return NewInfinityPoint(p.a, p.b), nil
	}

	// P1 + P1: the tangent line at the point.
	if p.Equal(other) {
		slope, err := tangentSlope(p)
		if err != nil {
			return nil, err
		}
		// x3 = s^2 - 2*x1
		twoX1, err := smallMultiple(2, p.x)
		if err != nil {
			return nil, err
		}
		x3, err := slope.PowMod(bigTwo).Sub(twoX1)
		if err != nil {
			return nil, err
		}
		y3, err := reflectedY(slope, p.x, x3, p.y)
		if err != nil {
			return nil, err
		}
		return NewPoint(p.a, p.b, x3, y3)
	}

	// Unreachable given the cases above.
	return nil, fmt.Errorf("no addition case applies to %v and %v: %w",
		p, other, ErrPointNotOnCurve)
}

// chordSlope computes (y2 - y1) / (x2 - x1).
func chordSlope[F FieldValue[F]](p1, p2 *Point[F]) (F, error) {
	var zero F
	dy, err := p2.y.Sub(p1.y)
	if err != nil {
		return zero, err
	}
	dx, err := p2.x.Sub(p1.x)
	if err != nil {
		return zero, err
	}
	return dy.Div(dx)
}

// tangentSlope computes (3*x1^2 + a) / (2*y1).
func tangentSlope[F FieldValue[F]](p *Point[F]) (F, error) {
	var zero F
	threeXSquared, err := smallMultiple(3, p.x.PowMod(bigTwo))
	if err != nil {
		return zero, err
	}
	numerator, err := threeXSquared.Add(p.a)
	if err != nil {
		return zero, err
	}
	denominator, err := smallMultiple(2, p.y)
	if err != nil {
		return zero, err
	}
	return numerator.Div(denominator)
}

// reflectedY computes y3 = s*(x1 - x3) - y1.
func reflectedY[F FieldValue[F]](slope, x1, x3, y1 F) (F, error) {
	var zero F
	dx, err := x1.Sub(x3)
	if err != nil {
		return zero, err
	}
	y3, err := slope.Mul(dx)
	if err != nil {
		return zero, err
	}
	return y3.Sub(y1)
}

// smallMultiple computes n*v for a small constant coefficient.
func smallMultiple[F FieldValue[F]](n int64, v F) (F, error) {
	var zero F
	coef, err := v.FromValues(big.NewInt(n), v.Prime())
	if err != nil {
		return zero, err
	}
	return coef.Mul(v)
}

// Multiply returns the scalar multiple k*p, computed with double-and-add.
func (p *Point[F]) Multiply(k *Scalar) (*Point[F], error) {
	return Multiply(k, p)
}

// Equal reports whether both points lie on the same curve and have the same
// coordinates. Two points at infinity of the same curve are equal.
func (p *Point[F]) Equal(other *Point[F]) bool {
	if !p.a.Equal(other.a) || !p.b.Equal(other.b) {
		return false
	}
	if p.infinity || other.infinity {
		return p.infinity && other.infinity
	}
	return p.x.Equal(other.x) && p.y.Equal(other.y)
}

// Identity returns the point at infinity of p's curve.
func (p *Point[F]) Identity() *Point[F] {
	return NewInfinityPoint(p.a, p.b)
}

// IsInfinity reports whether p is the point at infinity.
func (p *Point[F]) IsInfinity() bool {
	return p.infinity
}

// X returns the x coordinate. It is only meaningful when p is not the point
// at infinity.
func (p *Point[F]) X() F {
	return p.x
}

// Y returns the y coordinate. It is only meaningful when p is not the point
// at infinity.
func (p *Point[F]) Y() F {
	return p.y
}

// A returns the curve coefficient a.
func (p *Point[F]) A() F {
	return p.a
}

// B returns the curve coefficient b.
func (p *Point[F]) B() F {
	return p.b
}

// String returns a diagnostic rendering of the point.
func (p *Point[F]) String() string {
	if p.infinity {
		return "Point(infinity)"
	}
	return fmt.Sprintf("Point(%v, %v)_%v_%v FieldElement(%v)",
		p.x.Value(), p.y.Value(), p.a.Value(), p.b.Value(), p.a.Prime())
}
