package ecc

import (
	"encoding/hex"
	"testing"

	"github.com/stretchr/testify/assert"
)

func Test_Hash256(t *testing.T) {
	assert := assert.New(t)

	assert.Equal("5df6e0e2761359d30a8275058e299fcc0381534545f55cf43e41983f5d4c9456",
		hex.EncodeToString(Hash256(nil)))
	assert.Equal("ceef7bdf95237aadbad413cca7e64b0c3a4af0bb8097b5b83bb8e05e0a4cd208",
		hex.EncodeToString(Hash256([]byte("super secret message"))))
}
