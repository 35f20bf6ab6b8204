package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLogin(t *testing.T) {
	identity := NewMockIdentity()
	assert.False(t, identity.IsSessionActive())

	user, err := identity.Login("jane@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "jane@example.com", user.Email)
	assert.True(t, identity.IsSessionActive())

	current, ok := identity.CurrentUser()
	require.True(t, ok)
	assert.Equal(t, user, current)
}

func TestLogin_EmptyCredentials(t *testing.T) {
	identity := NewMockIdentity()

	_, err := identity.Login("", "secret")
	assert.ErrorIs(t, err, ErrInvalidCredentials)

	_, err = identity.Login("jane@example.com", "")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
	assert.False(t, identity.IsSessionActive())
}

func TestRegister(t *testing.T) {
	identity := NewMockIdentity()

	user, err := identity.Register("Jane", "jane@example.com", "secret")
	require.NoError(t, err)
	assert.Equal(t, "Jane", user.Name)
	assert.True(t, identity.IsSessionActive())

	_, err = identity.Register("", "jane@example.com", "secret")
	assert.ErrorIs(t, err, ErrInvalidName)
}

func TestLogout(t *testing.T) {
	identity := NewMockIdentity()
	_, err := identity.Login("jane@example.com", "secret")
	require.NoError(t, err)

	identity.Logout()
	assert.False(t, identity.IsSessionActive())
	_, ok := identity.CurrentUser()
	assert.False(t, ok)
}
