package calendar

import "time"

func beginningOfMonth(ts time.Time) time.Time {
	y, m, _ := ts.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, ts.Location())
}

func daysIn(month time.Time) int {
	return beginningOfMonth(month).AddDate(0, 1, -1).Day()
}

// mondayOffset is the number of empty cells before the 1st in a week starting on Monday.
func mondayOffset(month time.Time) int {
	return int(beginningOfMonth(month).Weekday()+6) % 7
}
