package kernel_test

import (
	"testing"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPhone(t *testing.T) {
	t.Run("should accept ten digits", func(t *testing.T) {
		p, err := kernel.NewPhone("9876543210")

		require.NoError(t, err)
		assert.Equal(t, "9876543210", p.String())
		require.NoError(t, p.Validate())
	})

	t.Run("should keep leading zeros", func(t *testing.T) {
		p, err := kernel.NewPhone("0012345678")

		require.NoError(t, err)
		assert.Equal(t, "0012345678", p.String())
	})

	t.Run("should reject empty number", func(t *testing.T) {
		_, err := kernel.NewPhone("")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})

	t.Run("should reject short number", func(t *testing.T) {
		_, err := kernel.NewPhone("12345")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject long number", func(t *testing.T) {
		_, err := kernel.NewPhone("12345678901")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should reject non-digit characters", func(t *testing.T) {
		for _, number := range []string{"98765-4321", "+919876543", "98765 4321", "abcdefghij"} {
			_, err := kernel.NewPhone(number)
			require.Error(t, err, number)
		}
	})
}

func TestPhone_Validate(t *testing.T) {
	t.Run("zero value fails", func(t *testing.T) {
		var p kernel.Phone

		err := p.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, kernel.ErrPhoneIsNotConstructed)
	})
}

func TestRoleFromString(t *testing.T) {
	t.Run("parses all known roles", func(t *testing.T) {
		for _, s := range []string{"customer", "pickup-agent", "delivery-agent", "vendor", "admin"} {
			role, err := kernel.RoleFromString(s)
			require.NoError(t, err, s)
			assert.Equal(t, s, role.String())
			require.NoError(t, role.Validate())
		}
	})

	t.Run("rejects unknown role", func(t *testing.T) {
		_, err := kernel.RoleFromString("dispatcher")

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("zero value is invalid", func(t *testing.T) {
		var role kernel.Role

		require.Error(t, role.Validate())
		assert.Equal(t, "unknown", role.String())
	})
}
