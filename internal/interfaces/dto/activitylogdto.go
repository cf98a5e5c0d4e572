package dto

import (
	"time"

	"helpdesk/internal/application/activitylog/usecases"
)

// ActivityLogActorResponse identifies who performed a logged action. Nil for
// anonymous or deleted actors.
type ActivityLogActorResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

type ActivityLogResponse struct {
	ID          uint                      `json:"id"`
	Actor       *ActivityLogActorResponse `json:"actor"`
	Action      string                    `json:"action"`
	Description string                    `json:"description"`
	Meta        map[string]any            `json:"meta,omitempty"`
	IPAddress   string                    `json:"ip_address"`
	UserAgent   string                    `json:"user_agent"`
	CreatedAt   time.Time                 `json:"created_at"`
}

func FromActivityLogs(result *usecases.ListEntriesResult) []ActivityLogResponse {
	out := make([]ActivityLogResponse, 0, len(result.Entries))
	for _, e := range result.Entries {
		resp := ActivityLogResponse{
			ID:          e.ID(),
			Action:      e.Action(),
			Description: e.Description(),
			Meta:        e.Meta(),
			IPAddress:   e.IPAddress(),
			UserAgent:   e.UserAgent(),
			CreatedAt:   e.CreatedAt(),
		}
		if e.UserID() != nil {
			if u, ok := result.Users[*e.UserID()]; ok {
				resp.Actor = &ActivityLogActorResponse{
					ID:    u.ID(),
					Name:  u.Name(),
					Email: u.Email(),
				}
			}
		}
		out = append(out, resp)
	}
	return out
}
