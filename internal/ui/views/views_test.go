package views

import (
	"testing"
	"time"

	"github.com/alecthomas/assert/v2"
	"github.com/hance08/tally/internal/model"
)

func TestLabelsCoverEveryType(t *testing.T) {
	for _, txType := range model.TxTypes() {
		t.Run(string(txType), func(t *testing.T) {
			assert.NotEqual(t, string(txType), TypeLabel(txType))
			roles := LegRoles(txType)
			assert.NotEqual(t, "account", roles[0])
			assert.NotEqual(t, roles[0], roles[1])
		})
	}
	assert.Equal(t, [2]string{"account", "account"}, LegRoles("refund"))
}

func TestFormatTTL(t *testing.T) {
	assert.Equal(t, "disabled", formatTTL(0))
	assert.Equal(t, "5 minutes", formatTTL(5*time.Minute))
}
