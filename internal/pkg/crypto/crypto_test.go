package crypto

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shaoqingyang/qingcloud-sdk-go/signature"
)

func TestHexMD5EmptyMatchesPinnedConstant(t *testing.T) {
	assert.Equal(t, signature.EmptyBodyMD5, HexMD5(nil))
	assert.Equal(t, signature.EmptyBodyMD5, HexMD5([]byte{}))
}

func TestHexMD5(t *testing.T) {
	// RFC 1321 test vector.
	assert.Equal(t, "9e107d9d372bb6826bd81d3542a419d6", HexMD5([]byte("The quick brown fox jumps over the lazy dog")))
}

func TestGenerateAccessKeyPair(t *testing.T) {
	ak, sk, err := GenerateAccessKeyPair()
	require.NoError(t, err)

	assert.Len(t, ak, AccessKeyIDLength)
	assert.Len(t, sk, SecretKeyLength)

	ak2, sk2, err := GenerateAccessKeyPair()
	require.NoError(t, err)
	assert.NotEqual(t, ak, ak2)
	assert.NotEqual(t, sk, sk2)
}
