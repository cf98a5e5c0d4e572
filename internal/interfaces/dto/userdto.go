package dto

import (
	"time"

	"helpdesk/internal/domain/user"
)

// NotificationPreferencesResponse mirrors the per-user email toggles. Absent
// flags default to enabled, so the response always renders concrete booleans.
type NotificationPreferencesResponse struct {
	EmailOnTicketCreated bool `json:"email_on_ticket_created"`
	EmailOnTicketReply   bool `json:"email_on_ticket_reply"`
	EmailOnTicketClosed  bool `json:"email_on_ticket_closed"`
	EmailOnTicketUpdated bool `json:"email_on_ticket_updated"`
}

type UserResponse struct {
	ID          uint                            `json:"id"`
	Name        string                          `json:"name"`
	Email       string                          `json:"email"`
	Role        string                          `json:"role"`
	Division    *string                         `json:"division"`
	Position    *string                         `json:"position"`
	LastLoginIP *string                         `json:"last_login_ip,omitempty"`
	LastLoginAt *time.Time                      `json:"last_login_at,omitempty"`
	Preferences NotificationPreferencesResponse `json:"notification_preferences"`
	CreatedAt   time.Time                       `json:"created_at"`
	UpdatedAt   time.Time                       `json:"updated_at"`
}

func FromUser(u *user.User) UserResponse {
	prefs := u.Preferences()
	return UserResponse{
		ID:          u.ID(),
		Name:        u.Name(),
		Email:       u.Email(),
		Role:        string(u.Role()),
		Division:    u.Division(),
		Position:    u.Position(),
		LastLoginIP: u.LastLoginIP(),
		LastLoginAt: u.LastLoginAt(),
		Preferences: NotificationPreferencesResponse{
			EmailOnTicketCreated: prefs.AllowsTicketCreated(),
			EmailOnTicketReply:   prefs.AllowsTicketReply(),
			EmailOnTicketClosed:  prefs.AllowsTicketClosed(),
			EmailOnTicketUpdated: prefs.AllowsTicketUpdated(),
		},
		CreatedAt: u.CreatedAt(),
		UpdatedAt: u.UpdatedAt(),
	}
}

func FromUsers(users []*user.User) []UserResponse {
	out := make([]UserResponse, 0, len(users))
	for _, u := range users {
		out = append(out, FromUser(u))
	}
	return out
}

// LoginResponse bundles the access token with the authenticated user.
type LoginResponse struct {
	AccessToken string       `json:"access_token"`
	TokenType   string       `json:"token_type"`
	ExpiresIn   int64        `json:"expires_in"`
	User        UserResponse `json:"user"`
}
