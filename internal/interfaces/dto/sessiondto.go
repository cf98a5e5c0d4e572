package dto

import (
	"time"

	"helpdesk/internal/application/session/usecases"
)

type SessionResponse struct {
	ID             uint       `json:"id"`
	IPAddress      string     `json:"ip_address"`
	DeviceName     string     `json:"device_name"`
	UserAgent      string     `json:"user_agent"`
	LoginAt        time.Time  `json:"login_at"`
	LastActivityAt time.Time  `json:"last_activity_at"`
	Revoked        bool       `json:"revoked"`
	RevokedAt      *time.Time `json:"revoked_at"`
	Current        bool       `json:"is_current"`
}

func FromSessions(sessions []usecases.SessionInfo) []SessionResponse {
	out := make([]SessionResponse, 0, len(sessions))
	for _, info := range sessions {
		s := info.Session
		out = append(out, SessionResponse{
			ID:             s.ID(),
			IPAddress:      s.IPAddress(),
			DeviceName:     s.DeviceName(),
			UserAgent:      s.UserAgent(),
			LoginAt:        s.LoginAt(),
			LastActivityAt: s.LastActivityAt(),
			Revoked:        s.IsRevoked(),
			RevokedAt:      s.RevokedAt(),
			Current:        info.Current,
		})
	}
	return out
}
