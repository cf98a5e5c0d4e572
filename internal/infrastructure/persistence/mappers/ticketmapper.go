package mappers

import (
	"fmt"

	"helpdesk/internal/domain/ticket"
	vo "helpdesk/internal/domain/ticket/value_objects"
	"helpdesk/internal/infrastructure/persistence/models"
)

// TicketMapper handles the conversion between ticket domain entities and persistence models.
type TicketMapper interface {
	ToModel(t *ticket.Ticket) *models.TicketModel
	ToDomain(model *models.TicketModel) (*ticket.Ticket, error)
	ReplyToModel(r *ticket.Reply) *models.TicketReplyModel
	ReplyToDomain(model *models.TicketReplyModel) (*ticket.Reply, error)
}

type TicketMapperImpl struct{}

func NewTicketMapper() TicketMapper {
	return &TicketMapperImpl{}
}

func (m *TicketMapperImpl) ToModel(t *ticket.Ticket) *models.TicketModel {
	return &models.TicketModel{
		ID:             t.ID(),
		Code:           t.Code(),
		UserID:         t.OwnerID(),
		Title:          t.Title(),
		Description:    t.Description(),
		Priority:       t.Priority().String(),
		Status:         t.Status().String(),
		AttachmentPath: t.AttachmentPath(),
		CompletedAt:    timePtrToMillisPtr(t.CompletedAt()),
		ArchivedAt:     timePtrToMillisPtr(t.ArchivedAt()),
		CreatedAt:      timeToMillis(t.CreatedAt()),
		UpdatedAt:      timeToMillis(t.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) ToDomain(model *models.TicketModel) (*ticket.Ticket, error) {
	priority, err := vo.NewPriority(model.Priority)
	if err != nil {
		return nil, fmt.Errorf("invalid priority in ticket %d: %w", model.ID, err)
	}
	status, err := vo.NewTicketStatus(model.Status)
	if err != nil {
		return nil, fmt.Errorf("invalid status in ticket %d: %w", model.ID, err)
	}

	return ticket.ReconstructTicket(
		model.ID,
		model.Code,
		model.UserID,
		model.Title,
		model.Description,
		priority,
		status,
		model.AttachmentPath,
		millisPtrToTimePtr(model.CompletedAt),
		millisPtrToTimePtr(model.ArchivedAt),
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}

func (m *TicketMapperImpl) ReplyToModel(r *ticket.Reply) *models.TicketReplyModel {
	return &models.TicketReplyModel{
		ID:             r.ID(),
		TicketID:       r.TicketID(),
		UserID:         r.AuthorID(),
		Content:        r.Content(),
		AttachmentPath: r.AttachmentPath(),
		CreatedAt:      timeToMillis(r.CreatedAt()),
		UpdatedAt:      timeToMillis(r.UpdatedAt()),
	}
}

func (m *TicketMapperImpl) ReplyToDomain(model *models.TicketReplyModel) (*ticket.Reply, error) {
	return ticket.ReconstructReply(
		model.ID,
		model.TicketID,
		model.UserID,
		model.Content,
		model.AttachmentPath,
		millisToTime(model.CreatedAt),
		millisToTime(model.UpdatedAt),
	)
}
