package kernel_test

import (
	"testing"

	"sellerhub/internal/core/domain/model/kernel"
	"sellerhub/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewMoney(t *testing.T) {
	t.Run("should create money from non-negative amounts", func(t *testing.T) {
		amounts := []int64{0, 1, 99, 100, 24900, 1<<40 + 7}

		for _, amount := range amounts {
			m, err := kernel.NewMoney(amount)

			require.NoError(t, err)
			assert.Equal(t, amount, m.Amount())
			require.NoError(t, m.Validate())
		}
	})

	t.Run("should reject negative amounts", func(t *testing.T) {
		m, err := kernel.NewMoney(-1)

		require.Error(t, err)
		assert.IsType(t, &errs.ValueIsOutOfRangeError{}, err)
		assert.Equal(t, kernel.Money{}, m)
	})
}

func TestMoney_Validate(t *testing.T) {
	t.Run("should reject zero value money", func(t *testing.T) {
		var m kernel.Money

		err := m.Validate()

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_Add(t *testing.T) {
	t.Run("should sum two amounts", func(t *testing.T) {
		a, err := kernel.NewMoney(15000)
		require.NoError(t, err)
		b, err := kernel.NewMoney(4950)
		require.NoError(t, err)

		sum, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(19950), sum.Amount())
	})

	t.Run("should not mutate the operands", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		b, _ := kernel.NewMoney(200)

		_, err := a.Add(b)

		require.NoError(t, err)
		assert.Equal(t, int64(100), a.Amount())
		assert.Equal(t, int64(200), b.Amount())
	})

	t.Run("should reject zero value operand", func(t *testing.T) {
		a, _ := kernel.NewMoney(100)
		var b kernel.Money

		_, err := a.Add(b)

		require.Error(t, err)
		assert.Equal(t, kernel.ErrMoneyIsNotConstructed, err)
	})
}

func TestMoney_IsEqual(t *testing.T) {
	t.Run("should compare by amount", func(t *testing.T) {
		a, _ := kernel.NewMoney(500)
		b, _ := kernel.NewMoney(500)
		c, _ := kernel.NewMoney(501)

		assert.True(t, a.IsEqual(b))
		assert.False(t, a.IsEqual(c))
	})
}

func TestMoney_String(t *testing.T) {
	t.Run("should format with two decimal places", func(t *testing.T) {
		testCases := []struct {
			amount   int64
			expected string
		}{
			{0, "0.00"},
			{5, "0.05"},
			{99, "0.99"},
			{100, "1.00"},
			{24900, "249.00"},
			{24951, "249.51"},
		}

		for _, tc := range testCases {
			m, err := kernel.NewMoney(tc.amount)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, m.String())
		}
	})
}
