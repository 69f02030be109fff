package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEffectiveUnitPrice(t *testing.T) {
	testCases := []struct {
		name      string
		basePrice int
		variant   string
		expected  int
	}{
		{
			name:      "No variant",
			basePrice: 899,
			variant:   "",
			expected:  899,
		},
		{
			name:      "Plain variant without override",
			basePrice: 899,
			variant:   "30天份袋裝",
			expected:  899,
		},
		{
			name:      "Override with half-width colon",
			basePrice: 1280,
			variant:   "奶茶色:1480",
			expected:  1480,
		},
		{
			name:      "Override with full-width colon",
			basePrice: 2980,
			variant:   "三盒優惠組：7900",
			expected:  7900,
		},
		{
			name:      "Override equal to base price",
			basePrice: 1280,
			variant:   "奶茶色:1280",
			expected:  1280,
		},
		{
			name:      "Non-numeric suffix falls back",
			basePrice: 899,
			variant:   "大包裝:免運",
			expected:  899,
		},
		{
			name:      "Colon without suffix falls back",
			basePrice: 899,
			variant:   "大包裝:",
			expected:  899,
		},
		{
			name:      "Colon without prefix falls back",
			basePrice: 899,
			variant:   ":123",
			expected:  899,
		},
	}
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.expected, EffectiveUnitPrice(tc.basePrice, tc.variant))
		})
	}
}
