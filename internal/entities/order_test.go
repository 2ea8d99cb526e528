package entities_test

import (
	"testing"

	"github.com/boudaoud-zakaria/e-com-furniture-sub000/internal/entities"
	"github.com/stretchr/testify/assert"
)

func TestOrderStatus_CanTransitionTo(t *testing.T) {
	testCases := []struct {
		name string
		from entities.OrderStatus
		to   entities.OrderStatus
		want bool
	}{
		{"one step forward", entities.StatusPending, entities.StatusConfirmed, true},
		{"full path middle", entities.StatusReadyForDelivery, entities.StatusOutForDelivery, true},
		{"last step", entities.StatusOutForDelivery, entities.StatusDelivered, true},
		{"skipping ahead", entities.StatusPending, entities.StatusInProgress, false},
		{"moving backwards", entities.StatusConfirmed, entities.StatusPending, false},
		{"cancel from pending", entities.StatusPending, entities.StatusCancelled, true},
		{"cancel from out for delivery", entities.StatusOutForDelivery, entities.StatusCancelled, true},
		{"cancel after delivery", entities.StatusDelivered, entities.StatusCancelled, false},
		{"leaving cancelled", entities.StatusCancelled, entities.StatusPending, false},
		{"delivered is final", entities.StatusDelivered, entities.StatusDelivered, false},
		{"unknown target", entities.StatusPending, entities.OrderStatus("SHIPPED"), false},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, tc.from.CanTransitionTo(tc.to))
		})
	}
}

func TestOrderStatus_Valid(t *testing.T) {
	assert.True(t, entities.StatusPending.Valid())
	assert.True(t, entities.StatusCancelled.Valid())
	assert.False(t, entities.OrderStatus("SHIPPED").Valid())
	assert.False(t, entities.OrderStatus("").Valid())
}

func TestDimensions_Normalized(t *testing.T) {
	assert.Equal(t,
		entities.Dimensions{Length: 180, Width: 90, Height: 75},
		entities.Dimensions{}.Normalized(),
	)
	assert.Equal(t,
		entities.Dimensions{Length: 200, Width: 90, Height: 75},
		entities.Dimensions{Length: 200}.Normalized(),
	)
	assert.Equal(t, "200x90x75 cm", entities.Dimensions{Length: 200, Width: 90, Height: 75}.String())
}
