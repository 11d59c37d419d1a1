package posting

import (
	"testing"

	"github.com/alecthomas/assert/v2"
	"github.com/hance08/tally/internal/model"
)

func TestBuildLegs(t *testing.T) {
	t.Run("simple leaves secondary unset", func(t *testing.T) {
		legs := BuildLegs(simple(model.TxTransfer, 42.5, "USD"))

		assert.Equal(t, int64(10), legs[0].AccountID)
		assert.Equal(t, "42.5", legs[0].AmountOC.String())
		assert.Equal(t, "USD", legs[0].Currency)
		assert.True(t, legs[0].complete())

		assert.Equal(t, int64(20), legs[1].AccountID)
		assert.True(t, legs[1].AmountOC == nil)
		assert.Equal(t, "", legs[1].Currency)
		assert.False(t, legs[1].complete())
	})

	t.Run("forex fills both legs", func(t *testing.T) {
		legs := BuildLegs(forex(1000, "USD", 850, "EUR"))

		assert.Equal(t, "1000", legs[0].AmountOC.String())
		assert.Equal(t, "USD", legs[0].Currency)
		assert.Equal(t, "850", legs[1].AmountOC.String())
		assert.Equal(t, "EUR", legs[1].Currency)
	})
}
