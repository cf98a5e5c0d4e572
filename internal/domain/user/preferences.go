package user

// NotificationPreferences holds the per-user email opt-out flags. A nil flag
// has never been set and means "send email".
type NotificationPreferences struct {
	EmailOnTicketCreated *bool
	EmailOnTicketReply   *bool
	EmailOnTicketClosed  *bool
	EmailOnTicketUpdated *bool
}

func enabled(flag *bool) bool {
	return flag == nil || *flag
}

func (p NotificationPreferences) AllowsTicketCreated() bool { return enabled(p.EmailOnTicketCreated) }
func (p NotificationPreferences) AllowsTicketReply() bool   { return enabled(p.EmailOnTicketReply) }
func (p NotificationPreferences) AllowsTicketClosed() bool  { return enabled(p.EmailOnTicketClosed) }
func (p NotificationPreferences) AllowsTicketUpdated() bool { return enabled(p.EmailOnTicketUpdated) }
