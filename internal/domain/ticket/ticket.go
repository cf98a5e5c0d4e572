package ticket

import (
	"fmt"
	"time"

	vo "helpdesk/internal/domain/ticket/value_objects"
)

// Ticket is the aggregate root for a support request. The owner is fixed at
// creation; status, priority and archival are mutated through the methods
// below so the completed_at timestamp stays consistent with the status.
type Ticket struct {
	id             uint
	code           string
	ownerID        uint
	title          string
	description    string
	priority       vo.Priority
	status         vo.TicketStatus
	attachmentPath *string
	completedAt    *time.Time
	archivedAt     *time.Time
	createdAt      time.Time
	updatedAt      time.Time
}

func NewTicket(
	ownerID uint,
	title string,
	description string,
	priority vo.Priority,
) (*Ticket, error) {
	if ownerID == 0 {
		return nil, fmt.Errorf("owner ID is required")
	}
	if len(title) == 0 {
		return nil, fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return nil, fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(description) == 0 {
		return nil, fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}

	now := time.Now()
	return &Ticket{
		ownerID:     ownerID,
		title:       title,
		description: description,
		priority:    priority,
		status:      vo.StatusOpen,
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTicket(
	id uint,
	code string,
	ownerID uint,
	title string,
	description string,
	priority vo.Priority,
	status vo.TicketStatus,
	attachmentPath *string,
	completedAt *time.Time,
	archivedAt *time.Time,
	createdAt, updatedAt time.Time,
) (*Ticket, error) {
	if id == 0 {
		return nil, fmt.Errorf("ticket ID cannot be zero")
	}
	if len(code) == 0 {
		return nil, fmt.Errorf("ticket code is required")
	}
	if !priority.IsValid() {
		return nil, fmt.Errorf("invalid priority")
	}
	if !status.IsValid() {
		return nil, fmt.Errorf("invalid ticket status")
	}

	return &Ticket{
		id:             id,
		code:           code,
		ownerID:        ownerID,
		title:          title,
		description:    description,
		priority:       priority,
		status:         status,
		attachmentPath: attachmentPath,
		completedAt:    completedAt,
		archivedAt:     archivedAt,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (t *Ticket) ID() uint                { return t.id }
func (t *Ticket) Code() string            { return t.code }
func (t *Ticket) OwnerID() uint           { return t.ownerID }
func (t *Ticket) Title() string           { return t.title }
func (t *Ticket) Description() string     { return t.description }
func (t *Ticket) Priority() vo.Priority   { return t.priority }
func (t *Ticket) Status() vo.TicketStatus { return t.status }
func (t *Ticket) AttachmentPath() *string { return t.attachmentPath }
func (t *Ticket) CompletedAt() *time.Time { return t.completedAt }
func (t *Ticket) ArchivedAt() *time.Time  { return t.archivedAt }
func (t *Ticket) CreatedAt() time.Time    { return t.createdAt }
func (t *Ticket) UpdatedAt() time.Time    { return t.updatedAt }

func (t *Ticket) SetID(id uint) {
	t.id = id
}

// AssignCode sets the generated ticket code. Codes are immutable once set.
func (t *Ticket) AssignCode(code string) error {
	if t.code != "" {
		return fmt.Errorf("ticket code already assigned")
	}
	if len(code) == 0 {
		return fmt.Errorf("ticket code is required")
	}
	t.code = code
	return nil
}

func (t *Ticket) UpdateDetails(title, description string, priority vo.Priority) error {
	if len(title) == 0 {
		return fmt.Errorf("title is required")
	}
	if len(title) > 255 {
		return fmt.Errorf("title exceeds maximum length of 255 characters")
	}
	if len(description) == 0 {
		return fmt.Errorf("description is required")
	}
	if !priority.IsValid() {
		return fmt.Errorf("invalid priority")
	}

	t.title = title
	t.description = description
	t.priority = priority
	t.updatedAt = time.Now()
	return nil
}

// ChangeStatus transitions the ticket and maintains the invariant that
// completedAt is set exactly when the status is resolved.
func (t *Ticket) ChangeStatus(newStatus vo.TicketStatus) error {
	if !newStatus.IsValid() {
		return fmt.Errorf("invalid ticket status: %s", newStatus)
	}
	if t.status == newStatus {
		return nil
	}

	now := time.Now()
	t.status = newStatus
	if newStatus.IsResolved() {
		t.completedAt = &now
	} else {
		t.completedAt = nil
	}
	t.updatedAt = now
	return nil
}

func (t *Ticket) SetAttachmentPath(path *string) {
	t.attachmentPath = path
	t.updatedAt = time.Now()
}

func (t *Ticket) IsArchived() bool {
	return t.archivedAt != nil
}

// Archive hides the ticket from default listings without affecting its status.
func (t *Ticket) Archive() {
	if t.archivedAt != nil {
		return
	}
	now := time.Now()
	t.archivedAt = &now
	t.updatedAt = now
}

func (t *Ticket) Unarchive() {
	if t.archivedAt == nil {
		return
	}
	t.archivedAt = nil
	t.updatedAt = time.Now()
}

// IsOwnedBy reports whether the given user created this ticket.
func (t *Ticket) IsOwnedBy(userID uint) bool {
	return t.ownerID == userID
}
