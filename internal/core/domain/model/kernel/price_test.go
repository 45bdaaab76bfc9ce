package kernel_test

import (
	"math"
	"testing"

	"foodorders/internal/core/domain/model/kernel"
	"foodorders/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewPrice(t *testing.T) {
	t.Run("accepts positive amounts", func(t *testing.T) {
		p, err := kernel.NewPrice(5.5)

		require.NoError(t, err)
		assert.InDelta(t, 5.5, p.Float64(), 0)
		assert.Equal(t, "5.50", p.String())
	})

	t.Run("accepts fractional cents", func(t *testing.T) {
		_, err := kernel.NewPrice(0.001)
		require.NoError(t, err)
	})

	invalid := map[string]float64{
		"zero":     0,
		"negative": -3,
		"nan":      math.NaN(),
		"inf":      math.Inf(1),
	}
	for name, amount := range invalid {
		t.Run("rejects "+name, func(t *testing.T) {
			_, err := kernel.NewPrice(amount)
			require.ErrorIs(t, err, errs.ErrValueIsInvalid)
		})
	}
}

func TestPrice_IsEqual(t *testing.T) {
	a, _ := kernel.NewPrice(6)
	b, _ := kernel.NewPrice(6)
	c, _ := kernel.NewPrice(5)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}

func TestPrice_ZeroValueIsInvalid(t *testing.T) {
	var p kernel.Price
	require.Error(t, p.Validate())
}
