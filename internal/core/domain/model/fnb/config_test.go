package fnb_test

import (
	"testing"

	"fnbpos/internal/core/domain/model/fnb"
	"fnbpos/internal/core/domain/model/order"
	"fnbpos/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewConfig(t *testing.T) {
	t.Run("should apply defaults", func(t *testing.T) {
		cfg, err := fnb.NewConfig("restaurant", "", "")

		require.NoError(t, err)
		assert.Equal(t, fnb.PayAtTable, cfg.PaymentMode)
		assert.Equal(t, order.TaxModeStandard, cfg.TaxMode)
		assert.False(t, cfg.SendCompletesOrder())
	})

	t.Run("should mark pay-at-counter sends as completing", func(t *testing.T) {
		cfg, err := fnb.NewConfig("cafe", fnb.PayAtCounter, order.TaxModeExempt)

		require.NoError(t, err)
		assert.True(t, cfg.SendCompletesOrder())
		assert.Equal(t, "cafe", cfg.BusinessType)
	})

	t.Run("should reject unknown modes", func(t *testing.T) {
		_, err := fnb.NewConfig("cafe", "payLater", "")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)

		_, err = fnb.NewConfig("cafe", fnb.PayAtCounter, "reduced")
		require.ErrorIs(t, err, errs.ErrValueIsInvalid)
	})
}
