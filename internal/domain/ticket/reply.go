package ticket

import (
	"fmt"
	"time"
)

// Reply is a message in a ticket's conversation thread, authored by the
// ticket owner or by an admin.
type Reply struct {
	id             uint
	ticketID       uint
	authorID       uint
	content        string
	attachmentPath *string
	createdAt      time.Time
	updatedAt      time.Time
}

func NewReply(ticketID, authorID uint, content string) (*Reply, error) {
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}
	if authorID == 0 {
		return nil, fmt.Errorf("author ID is required")
	}
	if len(content) == 0 {
		return nil, fmt.Errorf("content is required")
	}

	now := time.Now()
	return &Reply{
		ticketID:  ticketID,
		authorID:  authorID,
		content:   content,
		createdAt: now,
		updatedAt: now,
	}, nil
}

func ReconstructReply(
	id uint,
	ticketID uint,
	authorID uint,
	content string,
	attachmentPath *string,
	createdAt, updatedAt time.Time,
) (*Reply, error) {
	if id == 0 {
		return nil, fmt.Errorf("reply ID cannot be zero")
	}
	if ticketID == 0 {
		return nil, fmt.Errorf("ticket ID is required")
	}

	return &Reply{
		id:             id,
		ticketID:       ticketID,
		authorID:       authorID,
		content:        content,
		attachmentPath: attachmentPath,
		createdAt:      createdAt,
		updatedAt:      updatedAt,
	}, nil
}

func (r *Reply) ID() uint                { return r.id }
func (r *Reply) TicketID() uint          { return r.ticketID }
func (r *Reply) AuthorID() uint          { return r.authorID }
func (r *Reply) Content() string         { return r.content }
func (r *Reply) AttachmentPath() *string { return r.attachmentPath }
func (r *Reply) CreatedAt() time.Time    { return r.createdAt }
func (r *Reply) UpdatedAt() time.Time    { return r.updatedAt }

func (r *Reply) SetID(id uint) {
	r.id = id
}

func (r *Reply) SetAttachmentPath(path *string) {
	r.attachmentPath = path
}
