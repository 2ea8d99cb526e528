package pricing_test

import (
	"testing"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/pricing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUnitPrice(t *testing.T) {
	testCases := []struct {
		name      string
		basePrice int
		dims      entities.Dimensions
		finish    string
		want      int
		wantErr   bool
	}{
		{
			name:      "identity at default size and natural finish",
			basePrice: 89900,
			dims:      entities.Dimensions{Length: 180, Width: 90, Height: 75},
			finish:    "natural",
			want:      89900,
		},
		{
			name:      "unknown finish prices like natural",
			basePrice: 44900,
			dims:      entities.Dimensions{Length: 180, Width: 90, Height: 75},
			finish:    "walnut-oiled",
			want:      44900,
		},
		{
			name:      "larger top with dark finish",
			basePrice: 89900,
			dims:      entities.Dimensions{Length: 200, Width: 90, Height: 75},
			finish:    "dark",
			// 89900 × (200·90)/(180·90) × 1.10 = 109877.77…
			want: 109878,
		},
		{
			name:      "light finish at default size",
			basePrice: 100000,
			dims:      entities.Dimensions{Length: 180, Width: 90, Height: 75},
			finish:    "light",
			want:      105000,
		},
		{
			name:      "finish is case-insensitive",
			basePrice: 100000,
			dims:      entities.Dimensions{Length: 180, Width: 90, Height: 75},
			finish:    "Dark",
			want:      110000,
		},
		{
			name:      "zero dimensions default instead of failing",
			basePrice: 50000,
			dims:      entities.Dimensions{},
			finish:    "natural",
			want:      50000,
		},
		{
			name:      "negative dimension rejected",
			basePrice: 50000,
			dims:      entities.Dimensions{Length: -10, Width: 90, Height: 75},
			finish:    "natural",
			wantErr:   true,
		},
		{
			name:      "negative base price rejected",
			basePrice: -1,
			dims:      entities.Dimensions{Length: 180, Width: 90, Height: 75},
			finish:    "natural",
			wantErr:   true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, err := pricing.UnitPrice(tc.basePrice, tc.dims, tc.finish)
			if tc.wantErr {
				assert.ErrorIs(t, err, entities.ErrValidation)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestUnitPrice_MonotonicInArea(t *testing.T) {
	prev := 0
	for length := 100; length <= 300; length += 20 {
		price, err := pricing.UnitPrice(89900, entities.Dimensions{Length: length, Width: 90, Height: 75}, "natural")
		require.NoError(t, err)
		assert.GreaterOrEqual(t, price, prev, "price must not decrease as the top grows")
		prev = price
	}
}

func TestDeliveryFee(t *testing.T) {
	assert.Equal(t, 1000, pricing.DeliveryFee("blida"))
	assert.Equal(t, 1000, pricing.DeliveryFee("  Blida "))
	assert.Equal(t, 800, pricing.DeliveryFee("alger"))
	assert.Equal(t, pricing.DefaultDeliveryFee, pricing.DeliveryFee("atlantis"))
	assert.Equal(t, pricing.DefaultDeliveryFee, pricing.DeliveryFee(""))
}

func TestRegions(t *testing.T) {
	regions := pricing.Regions()
	require.NotEmpty(t, regions)

	seen := make(map[string]bool, len(regions))
	for _, r := range regions {
		assert.False(t, seen[r.ID], "duplicate region %q", r.ID)
		seen[r.ID] = true
		assert.Equal(t, r.Fee, pricing.DeliveryFee(r.ID))
	}
}
