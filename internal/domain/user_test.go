package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUserIdentity(t *testing.T) {
	t.Run("keeps the email as given apart from surrounding space", func(t *testing.T) {
		id, err := NewUserIdentity("user:1", "  A@b.com ")
		require.NoError(t, err)
		assert.Equal(t, "A@b.com", id.Email)
		assert.Equal(t, "user:1", id.ID)
	})

	t.Run("rejects an identity without email", func(t *testing.T) {
		id, err := NewUserIdentity("user:1", "   ")
		assert.Nil(t, id)
		assert.ErrorIs(t, err, ErrInvalidIdentity)
	})
}

func TestNormalizeEmail(t *testing.T) {
	assert.Equal(t, "a@b.com", NormalizeEmail(" A@B.com\n"))
}
