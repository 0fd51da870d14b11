package identity

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	u, err := NewUser("Ada@Example.com", "Ada", "correct-horse-battery")
	require.NoError(t, err)

	assert.Equal(t, "ada@example.com", u.Email, "email is normalized")
	assert.Equal(t, RoleCustomer, u.Role)
	assert.Equal(t, UserStatusActive, u.Status)
	assert.NotEqual(t, "correct-horse-battery", u.PasswordHash)

	events := u.GetDomainEvents()
	require.Len(t, events, 1)
	assert.Equal(t, EventTypeUserRegistered, events[0].EventType())
}

func TestNewUser_Validation(t *testing.T) {
	tests := []struct {
		name     string
		email    string
		username string
		password string
	}{
		{"empty email", "", "Ada", "password123"},
		{"bad email", "not-an-email", "Ada", "password123"},
		{"empty name", "ada@example.com", "", "password123"},
		{"short password", "ada@example.com", "Ada", "short"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewUser(tt.email, tt.username, tt.password)
			assert.Error(t, err)
		})
	}
}

func TestUser_VerifyPassword(t *testing.T) {
	u, err := NewUser("ada@example.com", "Ada", "correct-horse-battery")
	require.NoError(t, err)

	assert.True(t, u.VerifyPassword("correct-horse-battery"))
	assert.False(t, u.VerifyPassword("wrong-password"))
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := NewUser("ada@example.com", "Ada", "correct-horse-battery")
	require.NoError(t, err)

	require.NoError(t, u.ChangePassword("new-password-123"))
	assert.True(t, u.VerifyPassword("new-password-123"))
	assert.False(t, u.VerifyPassword("correct-horse-battery"))

	assert.Error(t, u.ChangePassword("short"))
}

func TestNewAdminUser(t *testing.T) {
	u, err := NewAdminUser("admin@example.com", "Admin", "admin-password")
	require.NoError(t, err)
	assert.True(t, u.IsAdmin())
}
