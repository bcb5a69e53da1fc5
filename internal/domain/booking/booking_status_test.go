package booking

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBookingStatus_Transitions(t *testing.T) {
	assert.True(t, StatusConfirmed.CanTransitionTo(StatusCheckedIn))
	assert.True(t, StatusCheckedIn.CanTransitionTo(StatusCheckedOut))

	assert.False(t, StatusConfirmed.CanTransitionTo(StatusCheckedOut))
	assert.False(t, StatusCheckedIn.CanTransitionTo(StatusConfirmed))
	assert.False(t, StatusCheckedOut.CanTransitionTo(StatusCheckedIn))
	assert.False(t, BookingStatus("cancelled").CanTransitionTo(StatusCheckedIn))
}

func TestBookingStatus_Cancellation(t *testing.T) {
	assert.True(t, StatusConfirmed.CanBeCancelled())
	assert.True(t, StatusCheckedIn.CanBeCancelled())
	assert.False(t, StatusCheckedOut.CanBeCancelled())
	assert.True(t, StatusCheckedOut.IsTerminal())
}

func TestParseBookingStatus(t *testing.T) {
	s, err := ParseBookingStatus("checked_in")
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, s)

	_, err = ParseBookingStatus("pending")
	assert.Error(t, err)
}

func TestAction_InitialStatus(t *testing.T) {
	s, err := ActionBooking.InitialStatus()
	require.NoError(t, err)
	assert.Equal(t, StatusConfirmed, s)

	s, err = ActionCheckIn.InitialStatus()
	require.NoError(t, err)
	assert.Equal(t, StatusCheckedIn, s)

	_, err = Action("walkin").InitialStatus()
	assert.Error(t, err)
}
