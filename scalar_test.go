package ecc

import (
	"math/big"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Scalar_New(t *testing.T) {
	assert := assert.New(t)

	k, err := NewScalar(big.NewInt(5))
	assert.NoError(err)
	assert.Equal(big.NewInt(5), k.Value())

	_, err = NewScalar(big.NewInt(-1))
	assert.ErrorIs(err, ErrNegativeScalar)

	k, err = NewScalarFromInt64(0)
	assert.NoError(err)
	assert.Equal(big.NewInt(0), k.Value())
}

func Test_Scalar_MultiplyFieldElement(t *testing.T) {
	assert := assert.New(t)

	fe := newFE(t, 15, 223)

	k, err := NewScalarFromInt64(2)
	assert.NoError(err)
	product, err := Multiply(k, fe)
	assert.NoError(err)
	assert.True(product.Equal(newFE(t, 30, 223)))

	// Wraps around the modulus: 20 * 15 = 300 = 77 mod 223.
	k, err = NewScalarFromInt64(20)
	assert.NoError(err)
	product, err = Multiply(k, fe)
	assert.NoError(err)
	assert.True(product.Equal(newFE(t, 77, 223)))
}

func Test_Scalar_MultiplyZero(t *testing.T) {
	assert := assert.New(t)

	zero, err := NewScalarFromInt64(0)
	assert.NoError(err)

	// 0 * x is the additive identity of the field.
	product, err := Multiply(zero, newFE(t, 15, 223))
	assert.NoError(err)
	assert.True(product.Equal(newFE(t, 0, 223)))

	// 0 * P is the point at infinity.
	p := newTestPoint(t, 47, 71)
	productPoint, err := Multiply(zero, p)
	assert.NoError(err)
	assert.True(productPoint.IsInfinity())
}

func Test_Scalar_MultiplyMatchesRepeatedAddition(t *testing.T) {
	assert := assert.New(t)

	p := newTestPoint(t, 47, 71)
	running := p.Identity()

	for n := int64(0); n <= 20; n++ {
		k, err := NewScalarFromInt64(n)
		assert.NoError(err)
		product, err := Multiply(k, p)
		assert.NoError(err)
		assert.True(product.Equal(running), "n=%d", n)

		running, err = running.Add(p)
		assert.NoError(err)
	}
}

func Test_Scalar_MultiplyKnownVectors(t *testing.T) {
	assert := assert.New(t)

	p := newTestPoint(t, 47, 71)
	vectors := [][3]int64{
		// n, x, y
		{2, 36, 111},
		{5, 126, 96},
		{10, 154, 150},
		{16, 126, 127},
		{20, 47, 152},
	}

	for _, v := range vectors {
		k, err := NewScalarFromInt64(v[0])
		assert.NoError(err)
		product, err := Multiply(k, p)
		assert.NoError(err)
		assert.True(product.Equal(newTestPoint(t, v[1], v[2])), "n=%d", v[0])
	}
}

func Test_Scalar_String(t *testing.T) {
	assert := assert.New(t)

	k, err := NewScalarFromInt64(1485)
	assert.NoError(err)
	assert.Equal("Scalar(1485)", k.String())
}
