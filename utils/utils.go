package utils

import "time"

const DateLayout = "2006-01-02"
const TimeLayout = "15:04:05"

// DateRange fills missing range bounds, defaulting to the last 30 days.
func DateRange(from, to string) (string, string) {
	if to == "" {
		to = time.Now().Format(DateLayout)
	}
	if from == "" {
		from = time.Now().AddDate(0, 0, -30).Format(DateLayout)
	}
	return from, to
}

func Today() string {
	return time.Now().Format(DateLayout)
}

func NowTime() string {
	return time.Now().Format(TimeLayout)
}
