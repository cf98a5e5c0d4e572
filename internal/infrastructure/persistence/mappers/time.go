package mappers

import "time"

// Timestamps are persisted as unix milliseconds; these helpers convert at the
// model boundary.

func millisToTime(ms int64) time.Time {
	return time.UnixMilli(ms)
}

func timeToMillis(t time.Time) int64 {
	return t.UnixMilli()
}

func millisPtrToTimePtr(ms *int64) *time.Time {
	if ms == nil {
		return nil
	}
	t := time.UnixMilli(*ms)
	return &t
}

func timePtrToMillisPtr(t *time.Time) *int64 {
	if t == nil {
		return nil
	}
	ms := t.UnixMilli()
	return &ms
}
