package leave_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/joyamit/leave-manager/leave"
)

func seededCalendar() *leave.Calendar {
	return leave.NewCalendar([]leave.Holiday{
		{Date: leave.NewDate(2025, time.August, 15), Name: "Independence Day"},
		{Date: leave.NewDate(2025, time.October, 2), Name: "Gandhi Jayanti"},
		{Date: leave.NewDate(2025, time.December, 25), Name: "Christmas"},
	})
}

func TestCalendar_Upcoming_BeforeAllDates(t *testing.T) {
	// A date before every seeded holiday returns the full set in
	// original order.

	cal := seededCalendar()
	upcoming := cal.Upcoming(leave.NewDate(2025, time.January, 1))

	require.Len(t, upcoming, 3)
	assert.Equal(t, "Independence Day", upcoming[0].Name)
	assert.Equal(t, "Gandhi Jayanti", upcoming[1].Name)
	assert.Equal(t, "Christmas", upcoming[2].Name)
}

func TestCalendar_Upcoming_AfterAllDates(t *testing.T) {
	cal := seededCalendar()
	upcoming := cal.Upcoming(leave.NewDate(2026, time.January, 1))
	assert.Empty(t, upcoming)
}

func TestCalendar_Upcoming_TodayIsInclusive(t *testing.T) {
	// A holiday on exactly today still counts as upcoming.

	cal := seededCalendar()
	upcoming := cal.Upcoming(leave.NewDate(2025, time.October, 2))

	require.Len(t, upcoming, 2)
	assert.Equal(t, "Gandhi Jayanti", upcoming[0].Name)
	assert.Equal(t, "Christmas", upcoming[1].Name)
}
