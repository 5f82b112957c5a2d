package password

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"github.com/dtroode/tasktracker-server/internal/model"
)

func TestBcrypt_HashAndCompare(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	hash, err := h.Hash("hunter22")
	require.NoError(t, err)
	assert.NotEqual(t, "hunter22", hash)

	require.NoError(t, h.Compare(hash, "hunter22"))
	require.ErrorIs(t, h.Compare(hash, "hunter23"), ErrMismatch)
}

func TestBcrypt_SaltedHashes(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	a, err := h.Hash("same")
	require.NoError(t, err)
	b, err := h.Hash("same")
	require.NoError(t, err)
	assert.NotEqual(t, a, b)
}

func TestBcrypt_Cost(t *testing.T) {
	hash, err := NewBcrypt(0).Hash("pw")
	require.NoError(t, err)

	cost, err := bcrypt.Cost([]byte(hash))
	require.NoError(t, err)
	assert.Equal(t, DefaultCost, cost)
}

func TestBcrypt_PasswordTooLong(t *testing.T) {
	h := NewBcrypt(bcrypt.MinCost)

	_, err := h.Hash(strings.Repeat("é", 40))
	require.ErrorIs(t, err, model.ErrValidation)

	_, err = h.Hash(strings.Repeat("é", 36))
	require.NoError(t, err)
}

func TestBcrypt_MalformedHash(t *testing.T) {
	err := NewBcrypt(bcrypt.MinCost).Compare("not-a-hash", "pw")
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrMismatch)
}
