package repository

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"helpdesk/internal/domain/ticket"
	"helpdesk/internal/infrastructure/persistence/mappers"
	"helpdesk/internal/infrastructure/persistence/models"
	"helpdesk/internal/shared/db"
	apperrors "helpdesk/internal/shared/errors"
)

type ReplyRepository struct {
	db     *gorm.DB
	mapper mappers.TicketMapper
}

func NewReplyRepository(db *gorm.DB) *ReplyRepository {
	return &ReplyRepository{
		db:     db,
		mapper: mappers.NewTicketMapper(),
	}
}

func (r *ReplyRepository) Save(ctx context.Context, reply *ticket.Reply) error {
	model := r.mapper.ReplyToModel(reply)
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.Create(model).Error; err != nil {
		return fmt.Errorf("failed to save reply: %w", err)
	}

	reply.SetID(model.ID)
	return nil
}

func (r *ReplyRepository) GetByID(ctx context.Context, replyID uint) (*ticket.Reply, error) {
	var model models.TicketReplyModel
	tx := db.GetTxFromContext(ctx, r.db)

	if err := tx.First(&model, replyID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.NewNotFoundError("reply not found")
		}
		return nil, fmt.Errorf("failed to find reply: %w", err)
	}

	return r.mapper.ReplyToDomain(&model)
}

func (r *ReplyRepository) GetByTicketID(ctx context.Context, ticketID uint) ([]*ticket.Reply, error) {
	tx := db.GetTxFromContext(ctx, r.db)

	var replyModels []models.TicketReplyModel
	if err := tx.
		Where("ticket_id = ?", ticketID).
		Order("created_at ASC").
		Find(&replyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	return r.toDomainSlice(replyModels)
}

func (r *ReplyRepository) GetByTicketIDs(ctx context.Context, ticketIDs []uint) ([]*ticket.Reply, error) {
	if len(ticketIDs) == 0 {
		return nil, nil
	}
	tx := db.GetTxFromContext(ctx, r.db)

	var replyModels []models.TicketReplyModel
	if err := tx.
		Where("ticket_id IN ?", ticketIDs).
		Find(&replyModels).Error; err != nil {
		return nil, fmt.Errorf("failed to list replies: %w", err)
	}

	return r.toDomainSlice(replyModels)
}

func (r *ReplyRepository) Delete(ctx context.Context, replyID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	result := tx.Delete(&models.TicketReplyModel{}, replyID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete reply: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return apperrors.NewNotFoundError("reply not found")
	}
	return nil
}

func (r *ReplyRepository) DeleteByTicketID(ctx context.Context, ticketID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id = ?", ticketID).Delete(&models.TicketReplyModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete replies by ticket: %w", err)
	}
	return nil
}

func (r *ReplyRepository) DeleteByTicketIDs(ctx context.Context, ticketIDs []uint) error {
	if len(ticketIDs) == 0 {
		return nil
	}
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("ticket_id IN ?", ticketIDs).Delete(&models.TicketReplyModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete replies by tickets: %w", err)
	}
	return nil
}

func (r *ReplyRepository) DeleteByAuthorID(ctx context.Context, authorID uint) error {
	tx := db.GetTxFromContext(ctx, r.db)
	if err := tx.Where("user_id = ?", authorID).Delete(&models.TicketReplyModel{}).Error; err != nil {
		return fmt.Errorf("failed to delete replies by author: %w", err)
	}
	return nil
}

func (r *ReplyRepository) toDomainSlice(replyModels []models.TicketReplyModel) ([]*ticket.Reply, error) {
	replies := make([]*ticket.Reply, len(replyModels))
	for i := range replyModels {
		reply, err := r.mapper.ReplyToDomain(&replyModels[i])
		if err != nil {
			return nil, err
		}
		replies[i] = reply
	}
	return replies, nil
}
