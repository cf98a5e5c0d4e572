package usecases

import (
	"context"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/domain/user"
	"helpdesk/internal/shared/logger"
)

// ListEntriesUseCase serves the admin audit trail view, resolving the actor
// name for each entry.
type ListEntriesUseCase struct {
	entryRepo activitylog.EntryRepository
	userRepo  user.UserRepository
	logger    logger.Interface
}

func NewListEntriesUseCase(
	entryRepo activitylog.EntryRepository,
	userRepo user.UserRepository,
	logger logger.Interface,
) *ListEntriesUseCase {
	return &ListEntriesUseCase{
		entryRepo: entryRepo,
		userRepo:  userRepo,
		logger:    logger,
	}
}

type ListEntriesCommand struct {
	Search   string
	Action   string
	UserID   *uint
	Page     int
	PageSize int
}

type ListEntriesResult struct {
	Entries []*activitylog.Entry
	Users   map[uint]*user.User
	Total   int64
}

func (uc *ListEntriesUseCase) Execute(ctx context.Context, cmd ListEntriesCommand) (*ListEntriesResult, error) {
	entries, total, err := uc.entryRepo.List(ctx, activitylog.EntryFilter{
		Search:   cmd.Search,
		Action:   cmd.Action,
		UserID:   cmd.UserID,
		Page:     cmd.Page,
		PageSize: cmd.PageSize,
	})
	if err != nil {
		uc.logger.Errorw("failed to list activity log entries", "error", err)
		return nil, err
	}

	userIDs := make([]uint, 0, len(entries))
	seen := make(map[uint]bool)
	for _, e := range entries {
		if e.UserID() == nil || seen[*e.UserID()] {
			continue
		}
		seen[*e.UserID()] = true
		userIDs = append(userIDs, *e.UserID())
	}

	users := make(map[uint]*user.User, len(userIDs))
	if len(userIDs) > 0 {
		list, err := uc.userRepo.GetByIDs(ctx, userIDs)
		if err != nil {
			uc.logger.Warnw("failed to resolve activity log actors", "error", err)
		} else {
			for _, u := range list {
				users[u.ID()] = u
			}
		}
	}

	return &ListEntriesResult{Entries: entries, Users: users, Total: total}, nil
}
