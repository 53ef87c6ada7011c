package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestNewUser(t *testing.T) {
	t.Run("hashes the password", func(t *testing.T) {
		user, err := NewUser("Margaret", "Hamilton", "apollo11rocks", bcrypt.MinCost)
		require.NoError(t, err)

		assert.Equal(t, "Margaret", user.FirstName)
		assert.Equal(t, "Hamilton", user.LastName)
		assert.NotEqual(t, "apollo11rocks", user.PasswordHash)
		assert.NotEmpty(t, user.PasswordHash)
	})

	t.Run("rejects an empty password", func(t *testing.T) {
		user, err := NewUser("Margaret", "Hamilton", "", bcrypt.MinCost)
		assert.Nil(t, user)
		assert.ErrorIs(t, err, ErrEmptyPassword)
		assert.Equal(t, "password is empty !", err.Error())
	})
}

func TestUserVerifyPassword(t *testing.T) {
	user, err := NewUser("Grace", "Hopper", "cobol4ever", bcrypt.MinCost)
	require.NoError(t, err)

	assert.True(t, user.VerifyPassword("cobol4ever"))
	assert.False(t, user.VerifyPassword("cobol4never"))
	assert.False(t, user.VerifyPassword(""))
}
