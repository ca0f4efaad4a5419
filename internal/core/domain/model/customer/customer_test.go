package customer_test

import (
	"testing"
	"time"

	"lockerbooking/internal/core/domain/model/customer"
	"lockerbooking/internal/core/domain/model/kernel"
	"lockerbooking/internal/core/domain/model/party"
	"lockerbooking/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func lockerParty(t *testing.T, name, code string) party.Party {
	t.Helper()
	p, err := party.NewParty(name, name+"@example.test", "0821234567", party.Locker, code, party.StreetAddress{})
	require.NoError(t, err)
	return p
}

func TestNewCustomer(t *testing.T) {
	now := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)

	t.Run("should create customer", func(t *testing.T) {
		id := kernel.NewUUID()

		c, err := customer.NewCustomer(id, lockerParty(t, "jane", "ABC001"), now)

		require.NoError(t, err)
		require.NoError(t, c.Validate())
		assert.True(t, c.ID().IsEqual(id))
		assert.Equal(t, "jane", c.Name())
		assert.Equal(t, now, c.CreatedAt())
		assert.Equal(t, now, c.UpdatedAt())
	})

	t.Run("should reject zero values", func(t *testing.T) {
		c, err := customer.NewCustomer(kernel.UUID{}, party.Party{}, time.Time{})

		require.Error(t, err)
		assert.Nil(t, c)
		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		assert.Contains(t, err.Error(), "customer details")
		assert.Contains(t, err.Error(), "created at")
	})
}

func TestCustomer_Update(t *testing.T) {
	created := time.Date(2025, 3, 1, 10, 0, 0, 0, time.UTC)
	c, err := customer.NewCustomer(kernel.NewUUID(), lockerParty(t, "jane", "ABC001"), created)
	require.NoError(t, err)

	t.Run("should replace details and touch updatedAt", func(t *testing.T) {
		later := created.Add(time.Hour)

		require.NoError(t, c.Update(lockerParty(t, "janet", "ABC002"), later))

		assert.Equal(t, "janet", c.Name())
		assert.Equal(t, "ABC002", c.Details().LockerID())
		assert.Equal(t, created, c.CreatedAt())
		assert.Equal(t, later, c.UpdatedAt())
	})

	t.Run("should keep previous details on invalid update", func(t *testing.T) {
		require.Error(t, c.Update(party.Party{}, created.Add(2*time.Hour)))

		assert.Equal(t, "janet", c.Name())
	})
}

func TestCustomer_IsEqual(t *testing.T) {
	id := kernel.NewUUID()
	now := time.Now()
	a := customer.RestoreCustomer(id, lockerParty(t, "a", "X1"), now, now)
	b := customer.RestoreCustomer(id, lockerParty(t, "b", "X2"), now, now)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(nil))
	assert.False(t, a.IsEqual(customer.RestoreCustomer(kernel.NewUUID(), lockerParty(t, "a", "X1"), now, now)))
}

func TestCustomer_Validate(t *testing.T) {
	var c *customer.Customer

	require.ErrorIs(t, c.Validate(), customer.ErrCustomerIsNotConstructed)
	require.ErrorIs(t, (&customer.Customer{}).Validate(), customer.ErrCustomerIsNotConstructed)
}
