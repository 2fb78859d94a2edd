package passhash

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewBcrypt(t *testing.T) {
	b, err := NewBcrypt()
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, b.Cost())

	b, err = NewBcrypt(SetCost(bcrypt.MinCost))
	require.NoError(t, err)
	assert.Equal(t, bcrypt.MinCost, b.Cost())

	_, err = NewBcrypt(SetCost(bcrypt.MinCost - 1))
	assert.Error(t, err)
	_, err = NewBcrypt(SetCost(bcrypt.MaxCost + 1))
	assert.Error(t, err)
}

func TestBcrypt_HashVerify(t *testing.T) {
	b, err := NewBcrypt(SetCost(bcrypt.MinCost))
	require.NoError(t, err)
	digest, err := Digest("asdasd")
	require.NoError(t, err)

	token, err := b.Hash(digest)
	require.NoError(t, err)
	assert.Len(t, token, 60)
	assert.True(t, strings.HasPrefix(token, "$2a$"))
	for _, r := range token {
		assert.Less(t, r, rune(0x80), "Token should be ASCII")
	}

	ok, err := b.Verify(digest, token)
	require.NoError(t, err)
	assert.True(t, ok)

	wrong, err := Digest("wrongpass")
	require.NoError(t, err)
	ok, err = b.Verify(wrong, token)
	require.NoError(t, err)
	assert.False(t, ok)
}

func TestBcrypt_VerifyMalformed(t *testing.T) {
	b, err := NewBcrypt(SetCost(bcrypt.MinCost))
	require.NoError(t, err)
	ok, err := b.Verify("0", "not a bcrypt token")
	assert.Error(t, err)
	assert.False(t, ok)

	ok, err = b.Verify("0", "")
	assert.Error(t, err)
	assert.False(t, ok)
}
