/*
Package ecc implements the arithmetic foundation of elliptic curve cryptography
over prime fields: finite field elements, the group law for short Weierstrass
curves (y^2 = x^3 + ax + b), scalar multiplication, and the secp256k1 curve
used by Bitcoin.

The building blocks are:

-- FieldElement, an arbitrary precision value with modular arithmetic

-- Point, an affine point (or the point at infinity) with the group addition law

-- Scalar, a non-negative multiplier applied with double-and-add

-- S256Field, S256Point and S256Generator, the secp256k1 specialization

On top of the algebra, PrivateKey and PublicKey derive secp256k1 key pairs
(public key = secret * G) using this package's own arithmetic.

This is a reference implementation, written for clarity. It is not constant
time and must not be used where side-channel resistance matters.

See the examples for more information.
*/
package ecc
