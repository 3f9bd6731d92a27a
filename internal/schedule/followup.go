// Package schedule derives follow-up reminder dates from a quote's creation
// time.
package schedule

import "time"

// FollowUp is a labeled reminder date.
type FollowUp struct {
	Label string
	Date  time.Time
}

// FollowUps returns the Day 1/3/7 reminders for a quote created at the given
// time. Dates are computed by calendar-day addition, not 24h multiples, so
// they roll over month and year boundaries (and DST transitions) the way a
// wall calendar does.
func FollowUps(created time.Time) []FollowUp {
	return []FollowUp{
		{Label: "Day 1 follow-up", Date: created.AddDate(0, 0, 1)},
		{Label: "Day 3 follow-up", Date: created.AddDate(0, 0, 3)},
		{Label: "Day 7 follow-up", Date: created.AddDate(0, 0, 7)},
	}
}

// FollowUpsFor parses a stored ISO-8601 creation timestamp and returns its
// reminders. ok is false when the timestamp is unreadable.
func FollowUpsFor(createdAt string) (fups []FollowUp, ok bool) {
	t, err := time.Parse(time.RFC3339, createdAt)
	if err != nil {
		return nil, false
	}
	return FollowUps(t), true
}
