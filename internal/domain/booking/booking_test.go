package booking

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBooking_Occupants(t *testing.T) {
	b := Booking{MainGuestID: 4}
	assert.Equal(t, []int64{4}, b.Occupants())

	b.GuestIDs = []int64{4, 5}
	assert.Equal(t, []int64{4, 5}, b.Occupants())
}

func TestPatch_Apply(t *testing.T) {
	b := Booking{ID: 1, RoomID: 2, MainGuestID: 3, Status: StatusConfirmed, Price: 9000,
		CheckInDate: "2024-01-01", CheckOutDate: "2024-01-03"}

	patch := StatusPatch(StatusCheckedIn)
	assert.False(t, patch.IsEmpty())

	got := patch.Apply(b)
	assert.Equal(t, StatusCheckedIn, got.Status)
	assert.Equal(t, int64(9000), got.Price)
	assert.Equal(t, "2024-01-03", got.CheckOutDate)
	assert.True(t, Patch{}.IsEmpty())
}

func TestNormalizeDate(t *testing.T) {
	got, err := NormalizeDate("2024-03-05")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", got)

	got, err = NormalizeDate("2024-03-05T23:30:00Z")
	require.NoError(t, err)
	assert.Equal(t, "2024-03-05", got)

	_, err = NormalizeDate("05.03.2024")
	assert.Error(t, err)
}

func TestToday_UsesUTC(t *testing.T) {
	loc := time.FixedZone("UTC+5", 5*60*60)
	now := time.Date(2024, 6, 2, 2, 0, 0, 0, loc)
	assert.Equal(t, "2024-06-01", Today(now))
}
