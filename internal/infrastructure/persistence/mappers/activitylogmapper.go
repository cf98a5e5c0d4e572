package mappers

import (
	"encoding/json"
	"fmt"

	"helpdesk/internal/domain/activitylog"
	"helpdesk/internal/infrastructure/persistence/models"
)

type ActivityLogMapper interface {
	ToModel(e *activitylog.Entry) (*models.ActivityLogModel, error)
	ToDomain(model *models.ActivityLogModel) (*activitylog.Entry, error)
}

type ActivityLogMapperImpl struct{}

func NewActivityLogMapper() ActivityLogMapper {
	return &ActivityLogMapperImpl{}
}

func (m *ActivityLogMapperImpl) ToModel(e *activitylog.Entry) (*models.ActivityLogModel, error) {
	var metaJSON []byte
	if e.Meta() != nil {
		var err error
		metaJSON, err = json.Marshal(e.Meta())
		if err != nil {
			return nil, fmt.Errorf("failed to marshal activity log meta: %w", err)
		}
	}

	return &models.ActivityLogModel{
		ID:          e.ID(),
		UserID:      e.UserID(),
		Action:      e.Action(),
		Description: e.Description(),
		Meta:        metaJSON,
		IPAddress:   e.IPAddress(),
		UserAgent:   e.UserAgent(),
		CreatedAt:   timeToMillis(e.CreatedAt()),
	}, nil
}

func (m *ActivityLogMapperImpl) ToDomain(model *models.ActivityLogModel) (*activitylog.Entry, error) {
	var meta map[string]any
	if len(model.Meta) > 0 {
		if err := json.Unmarshal(model.Meta, &meta); err != nil {
			return nil, fmt.Errorf("failed to unmarshal activity log meta (id=%d): %w", model.ID, err)
		}
	}

	return activitylog.ReconstructEntry(
		model.ID,
		model.UserID,
		model.Action,
		model.Description,
		meta,
		model.IPAddress,
		model.UserAgent,
		millisToTime(model.CreatedAt),
	)
}
