package domain

// TotalMinutes sums the durations recorded on day. Order is irrelevant.
func TotalMinutes(records []CompletedSession, day Date) int {
	total := 0
	for _, record := range records {
		if record.Date == day {
			total += record.DurationMinutes
		}
	}
	return total
}
