package ticket

import (
	"context"
	"time"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

type TicketRepository interface {
	Save(ctx context.Context, ticket *Ticket) error
	Update(ctx context.Context, ticket *Ticket) error
	Delete(ctx context.Context, ticketID uint) error
	GetByID(ctx context.Context, ticketID uint) (*Ticket, error)
	GetByCode(ctx context.Context, code string) (*Ticket, error)
	ExistsByCode(ctx context.Context, code string) (bool, error)
	List(ctx context.Context, filter TicketFilter) ([]*Ticket, int64, error)
	GetByOwnerID(ctx context.Context, ownerID uint) ([]*Ticket, error)
	DeleteByOwnerID(ctx context.Context, ownerID uint) error
}

// TicketFilter narrows List results. OwnerID scopes the query to one user's
// tickets; Archived follows tri-state semantics: nil hides archived tickets,
// true shows only archived, false only non-archived.
type TicketFilter struct {
	Search   string
	Status   *vo.TicketStatus
	Priority *vo.Priority
	OwnerID  *uint
	Archived *bool
	Page     int
	PageSize int
}

type ReplyRepository interface {
	Save(ctx context.Context, reply *Reply) error
	GetByID(ctx context.Context, replyID uint) (*Reply, error)
	GetByTicketID(ctx context.Context, ticketID uint) ([]*Reply, error)
	GetByTicketIDs(ctx context.Context, ticketIDs []uint) ([]*Reply, error)
	Delete(ctx context.Context, replyID uint) error
	DeleteByTicketID(ctx context.Context, ticketID uint) error
	DeleteByTicketIDs(ctx context.Context, ticketIDs []uint) error
	DeleteByAuthorID(ctx context.Context, authorID uint) error
}

// StatisticsRepository serves the dashboard aggregates. All ranges are
// half-open [from, to).
type StatisticsRepository interface {
	CountCreatedBetween(ctx context.Context, from, to time.Time) (int64, error)
	CountByStatusBetween(ctx context.Context, status vo.TicketStatus, from, to time.Time) (int64, error)
	CountByPriorityBetween(ctx context.Context, priority vo.Priority, from, to time.Time) (int64, error)
	CountArchivedBetween(ctx context.Context, from, to time.Time) (int64, error)
	ResolutionSpansBetween(ctx context.Context, from, to time.Time) ([]ResolutionSpan, error)
	CountCreatedOn(ctx context.Context, day time.Time) (int64, error)
}

// ResolutionSpan pairs a resolved ticket's creation and completion times so
// average resolution can be computed independently of the SQL dialect.
type ResolutionSpan struct {
	CreatedAt   time.Time
	CompletedAt time.Time
}
