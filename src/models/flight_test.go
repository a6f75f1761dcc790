package models

import (
	"fbs/src/types"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerateSeats(t *testing.T) {
	seats := GenerateSeats(199, 499, 899)
	assert.Len(t, seats, 178)

	counts := map[types.SeatClass]int{}
	for _, seat := range seats {
		counts[seat.Class]++
		assert.Equal(t, types.SEAT_AVAILABLE, seat.Status)
		assert.Equal(t, seat.Number, seat.ID)
	}
	assert.Equal(t, 8, counts[types.SEAT_FIRST_CLASS])
	assert.Equal(t, 20, counts[types.SEAT_BUSINESS])
	assert.Equal(t, 150, counts[types.SEAT_ECONOMY])

	byNumber := map[string]Seat{}
	for _, seat := range seats {
		byNumber[seat.Number] = seat
	}

	assert.Equal(t, types.SEAT_FIRST_CLASS, byNumber["1A"].Class)
	assert.Equal(t, float32(899), byNumber["2F"].Price)
	assert.Equal(t, types.SEAT_BUSINESS, byNumber["3A"].Class)
	assert.Equal(t, float32(499), byNumber["7D"].Price)
	assert.Equal(t, types.SEAT_ECONOMY, byNumber["8B"].Class)
	assert.Equal(t, float32(199), byNumber["32F"].Price)

	// Premium cabins skip the middle seats.
	_, ok := byNumber["1B"]
	assert.False(t, ok)
	_, ok = byNumber["5E"]
	assert.False(t, ok)
}

func TestPlanRequestCanAdvanceTo(t *testing.T) {
	pending := &PlanRequest{Status: types.PLAN_REQUEST_PENDING}
	assert.True(t, pending.CanAdvanceTo(types.PLAN_REQUEST_CONTACTED))
	assert.True(t, pending.CanAdvanceTo(types.PLAN_REQUEST_COMPLETED))
	assert.False(t, pending.CanAdvanceTo(types.PLAN_REQUEST_PENDING))

	contacted := &PlanRequest{Status: types.PLAN_REQUEST_CONTACTED}
	assert.True(t, contacted.CanAdvanceTo(types.PLAN_REQUEST_COMPLETED))
	assert.False(t, contacted.CanAdvanceTo(types.PLAN_REQUEST_PENDING))

	completed := &PlanRequest{Status: types.PLAN_REQUEST_COMPLETED}
	assert.False(t, completed.CanAdvanceTo(types.PLAN_REQUEST_PENDING))
	assert.False(t, completed.CanAdvanceTo(types.PLAN_REQUEST_CONTACTED))

	assert.False(t, pending.CanAdvanceTo("archived"))
}
