package models

import "gorm.io/datatypes"

type NotificationModel struct {
	ID        uint           `gorm:"primaryKey"`
	UserID    uint           `gorm:"not null;index"`
	Title     string         `gorm:"size:255;not null"`
	Message   string         `gorm:"type:text"`
	Href      datatypes.JSON `gorm:"type:json"`
	Meta      datatypes.JSON `gorm:"type:json"`
	ReadAt    *int64
	CreatedAt int64 `gorm:"autoCreateTime:milli;not null;index"`
}

func (NotificationModel) TableName() string {
	return "notifications"
}
