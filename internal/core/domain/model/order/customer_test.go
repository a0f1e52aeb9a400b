package order_test

import (
	"testing"

	"fooddelivery/internal/core/domain/model/kernel"
	"fooddelivery/internal/core/domain/model/order"
	"fooddelivery/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCustomer(t *testing.T) {
	t.Run("should require name and address", func(t *testing.T) {
		tests := []struct{ name, address string }{
			{"", "B"},
			{"A", ""},
			{"   ", "B"},
			{"", ""},
		}
		for _, tt := range tests {
			_, err := order.NewCustomer(tt.name, tt.address)

			require.ErrorIs(t, err, errs.ErrValueIsRequired)
			require.ErrorIs(t, err, order.ErrCustomerIsIncomplete)
		}
	})

	t.Run("should report both missing fields", func(t *testing.T) {
		_, err := order.NewCustomer("", "")

		assert.Contains(t, err.Error(), "customer.name")
		assert.Contains(t, err.Error(), "customer.address")
	})
}

func TestNewLines(t *testing.T) {
	t.Run("should require at least one id", func(t *testing.T) {
		_, err := order.NewLines([]int64{})

		require.ErrorIs(t, err, errs.ErrValueIsRequired)
		require.ErrorIs(t, err, order.ErrLinesAreRequired)
	})

	t.Run("should reject non-positive ids", func(t *testing.T) {
		_, err := order.NewLines([]int64{1, 0, -2})

		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})

	t.Run("should keep order and duplicates", func(t *testing.T) {
		lines, err := order.NewLines([]int64{3, 1, 3})

		require.NoError(t, err)
		ids := make([]kernel.ID, len(lines))
		for i, l := range lines {
			ids[i] = l.MenuItemID()
		}
		assert.Equal(t, []kernel.ID{3, 1, 3}, ids)
	})
}
