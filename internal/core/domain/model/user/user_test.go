package user_test

import (
	"testing"

	"autoshop/internal/core/domain/model/kernel"
	"autoshop/internal/core/domain/model/user"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewUser(t *testing.T) {
	t.Run("hashes_password", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "liping", "liping@shop.example", "s3cret-pw", user.RoleStaff)
		require.NoError(t, err)

		assert.Equal(t, "liping", u.Username())
		assert.Equal(t, user.RoleStaff, u.Role())
		assert.NotEqual(t, "s3cret-pw", u.PasswordHash())
		require.NoError(t, u.CheckPassword("s3cret-pw"))
		require.ErrorIs(t, u.CheckPassword("wrong"), user.ErrInvalidCredentials)
	})

	t.Run("defaults_role_to_user", func(t *testing.T) {
		u, err := user.NewUser(kernel.NewUUID(), "liping", "liping@shop.example", "s3cret-pw", "")
		require.NoError(t, err)
		assert.Equal(t, user.RoleUser, u.Role())
	})

	t.Run("rejects_short_password", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "liping", "liping@shop.example", "abc", user.RoleUser)
		require.ErrorIs(t, err, user.ErrPasswordTooShort)
	})

	t.Run("rejects_unknown_role", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "liping", "liping@shop.example", "s3cret-pw", user.Role("owner"))
		require.Error(t, err)
	})

	t.Run("required_fields", func(t *testing.T) {
		_, err := user.NewUser(kernel.NewUUID(), "", "liping@shop.example", "s3cret-pw", user.RoleUser)
		require.ErrorIs(t, err, user.ErrUsernameIsRequired)

		_, err = user.NewUser(kernel.NewUUID(), "liping", "", "s3cret-pw", user.RoleUser)
		require.ErrorIs(t, err, user.ErrEmailIsRequired)
	})
}

func TestRestoreUser(t *testing.T) {
	original, err := user.NewUser(kernel.NewUUID(), "admin", "admin@shop.example", "top-secret", user.RoleAdmin)
	require.NoError(t, err)

	restored, err := user.RestoreUser(
		original.ID(), original.Username(), original.Email(),
		original.PasswordHash(), original.Role(),
	)
	require.NoError(t, err)
	require.NoError(t, restored.CheckPassword("top-secret"))

	_, err = user.RestoreUser(kernel.NewUUID(), "admin", "admin@shop.example", "", user.RoleAdmin)
	require.Error(t, err, "empty hash is rejected")
}

func TestUser_ChangePassword(t *testing.T) {
	u, err := user.NewUser(kernel.NewUUID(), "liping", "liping@shop.example", "old-pass", user.RoleStaff)
	require.NoError(t, err)

	require.ErrorIs(t, u.ChangePassword("wrong", "new-pass"), user.ErrInvalidCredentials)
	require.ErrorIs(t, u.ChangePassword("old-pass", "short"), user.ErrPasswordTooShort)
	require.Error(t, u.ChangePassword("old-pass", "old-pass"))

	require.NoError(t, u.ChangePassword("old-pass", "new-pass"))
	require.NoError(t, u.CheckPassword("new-pass"))
	require.ErrorIs(t, u.CheckPassword("old-pass"), user.ErrInvalidCredentials)
}

func TestUser_ZeroValueIsInvalid(t *testing.T) {
	var u user.User
	require.ErrorIs(t, u.Validate(), user.ErrUserIsNotConstructed)
}
