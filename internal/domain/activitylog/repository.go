package activitylog

import "context"

type EntryRepository interface {
	Save(ctx context.Context, entry *Entry) error
	List(ctx context.Context, filter EntryFilter) ([]*Entry, int64, error)
}

type EntryFilter struct {
	Search   string
	Action   string
	UserID   *uint
	Page     int
	PageSize int
}
