package kernel_test

import (
	"testing"

	"fnbpos/internal/core/domain/model/kernel"
	"fnbpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewVATRate(t *testing.T) {
	tests := []struct {
		name    string
		percent int
		want    kernel.VATRate
		wantErr bool
	}{
		{name: "zero", percent: 0, want: kernel.VAT0},
		{name: "five", percent: 5, want: kernel.VAT5},
		{name: "eight", percent: 8, want: kernel.VAT8},
		{name: "ten", percent: 10, want: kernel.VAT10},
		{name: "twelve is not a bucket", percent: 12, wantErr: true},
		{name: "negative", percent: -5, wantErr: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			rate, err := kernel.NewVATRate(tc.percent)
			if tc.wantErr {
				require.Error(t, err)
				assert.IsType(t, &errs.ValueIsInvalidError{}, err)
				assert.Equal(t, kernel.VAT0, rate)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, rate)
		})
	}
}

func TestVATRate_Buckets(t *testing.T) {
	assert.Equal(t, []kernel.VATRate{0, 5, 8, 10}, kernel.Buckets())
	for _, rate := range kernel.Buckets() {
		assert.True(t, rate.IsKnown(), rate.String())
	}
	assert.False(t, kernel.VATRate(12).IsKnown())
}

func TestVATRate_Arithmetic(t *testing.T) {
	t.Run("Fraction", func(t *testing.T) {
		assert.InDelta(t, 0.1, kernel.VAT10.Fraction(), 1e-12)
		assert.InDelta(t, 0.0, kernel.VAT0.Fraction(), 1e-12)
	})

	t.Run("Of", func(t *testing.T) {
		assert.Equal(t, 40000.0, kernel.VAT10.Of(400000))
		assert.Equal(t, 0.0, kernel.VAT0.Of(400000))
	})

	t.Run("Gross", func(t *testing.T) {
		assert.InDelta(t, 110000.0, kernel.VAT10.Gross(100000), 1e-6)
		assert.InDelta(t, 108000.0, kernel.VAT8.Gross(100000), 1e-6)
		assert.InDelta(t, 50000.0, kernel.VAT0.Gross(50000), 1e-6)
	})

	t.Run("VATOfGross", func(t *testing.T) {
		assert.InDelta(t, 10000.0, kernel.VAT10.VATOfGross(110000), 1e-6)
		assert.InDelta(t, 0.0, kernel.VAT0.VATOfGross(110000), 1e-6)
	})

	t.Run("String", func(t *testing.T) {
		assert.Equal(t, "8%", kernel.VAT8.String())
	})
}

func TestRoundVND(t *testing.T) {
	tests := []struct {
		amount float64
		want   int64
	}{
		{amount: 0, want: 0},
		{amount: 27272.727, want: 27273},
		{amount: 1.5, want: 2},
		{amount: -1.5, want: -2},
		{amount: 490000.0000001, want: 490000},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, kernel.RoundVND(tc.amount), "amount %v", tc.amount)
	}
}
