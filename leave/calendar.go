package leave

// =============================================================================
// HOLIDAY CALENDAR - Static ordered (date, name) pairs
// =============================================================================

// Holiday is one calendar entry. The set is static configuration, loaded
// and validated at startup.
type Holiday struct {
	Date Date
	Name string
}

// Calendar holds the seeded holidays in their original order.
type Calendar struct {
	holidays []Holiday
}

// NewCalendar builds a calendar. Entries keep their seed order; malformed
// dates are rejected earlier, at seed validation.
func NewCalendar(holidays []Holiday) *Calendar {
	out := make([]Holiday, len(holidays))
	copy(out, holidays)
	return &Calendar{holidays: out}
}

// Upcoming returns the holidays on or after today, preserving seed order.
// Pure function of today and the static set.
func (c *Calendar) Upcoming(today Date) []Holiday {
	var out []Holiday
	for _, h := range c.holidays {
		if h.Date.OnOrAfter(today) {
			out = append(out, h)
		}
	}
	return out
}

// All returns every seeded holiday in order.
func (c *Calendar) All() []Holiday {
	out := make([]Holiday, len(c.holidays))
	copy(out, c.holidays)
	return out
}
