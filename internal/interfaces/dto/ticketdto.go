package dto

import (
	"time"

	"helpdesk/internal/application/ticket/usecases"
	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/domain/user"
)

type TicketResponse struct {
	ID             uint       `json:"id"`
	Code           string     `json:"code"`
	OwnerID        uint       `json:"owner_id"`
	Title          string     `json:"title"`
	Description    string     `json:"description"`
	Priority       string     `json:"priority"`
	Status         string     `json:"status"`
	HasAttachment  bool       `json:"has_attachment"`
	AttachmentName *string    `json:"attachment_name,omitempty"`
	CompletedAt    *time.Time `json:"completed_at"`
	ArchivedAt     *time.Time `json:"archived_at"`
	CreatedAt      time.Time  `json:"created_at"`
	UpdatedAt      time.Time  `json:"updated_at"`
}

func FromTicket(t *ticket.Ticket) TicketResponse {
	return TicketResponse{
		ID:             t.ID(),
		Code:           t.Code(),
		OwnerID:        t.OwnerID(),
		Title:          t.Title(),
		Description:    t.Description(),
		Priority:       string(t.Priority()),
		Status:         string(t.Status()),
		HasAttachment:  t.AttachmentPath() != nil,
		AttachmentName: t.AttachmentPath(),
		CompletedAt:    t.CompletedAt(),
		ArchivedAt:     t.ArchivedAt(),
		CreatedAt:      t.CreatedAt(),
		UpdatedAt:      t.UpdatedAt(),
	}
}

func FromTickets(tickets []*ticket.Ticket) []TicketResponse {
	out := make([]TicketResponse, 0, len(tickets))
	for _, t := range tickets {
		out = append(out, FromTicket(t))
	}
	return out
}

// ReplyAuthorResponse is the slim author block embedded in replies. Deleted
// authors render as null.
type ReplyAuthorResponse struct {
	ID   uint   `json:"id"`
	Name string `json:"name"`
	Role string `json:"role"`
}

type ReplyResponse struct {
	ID             uint                 `json:"id"`
	TicketID       uint                 `json:"ticket_id"`
	Author         *ReplyAuthorResponse `json:"author"`
	Content        string               `json:"content"`
	HasAttachment  bool                 `json:"has_attachment"`
	AttachmentName *string              `json:"attachment_name,omitempty"`
	CreatedAt      time.Time            `json:"created_at"`
}

func FromReply(r *ticket.Reply, author *user.User) ReplyResponse {
	resp := ReplyResponse{
		ID:             r.ID(),
		TicketID:       r.TicketID(),
		Content:        r.Content(),
		HasAttachment:  r.AttachmentPath() != nil,
		AttachmentName: r.AttachmentPath(),
		CreatedAt:      r.CreatedAt(),
	}
	if author != nil {
		resp.Author = &ReplyAuthorResponse{
			ID:   author.ID(),
			Name: author.Name(),
			Role: string(author.Role()),
		}
	}
	return resp
}

type TicketDetailResponse struct {
	TicketResponse
	Owner   *ReplyAuthorResponse `json:"owner"`
	Replies []ReplyResponse      `json:"replies"`
}

func FromTicketDetail(result *usecases.GetTicketResult) TicketDetailResponse {
	detail := TicketDetailResponse{
		TicketResponse: FromTicket(result.Ticket),
		Replies:        make([]ReplyResponse, 0, len(result.Replies)),
	}
	if result.Owner != nil {
		detail.Owner = &ReplyAuthorResponse{
			ID:   result.Owner.ID(),
			Name: result.Owner.Name(),
			Role: string(result.Owner.Role()),
		}
	}
	for _, rd := range result.Replies {
		detail.Replies = append(detail.Replies, FromReply(rd.Reply, rd.Author))
	}
	return detail
}
