package models

import "gorm.io/datatypes"

type ActivityLogModel struct {
	ID          uint           `gorm:"primaryKey"`
	UserID      *uint          `gorm:"index"`
	Action      string         `gorm:"size:100;not null;index"`
	Description string         `gorm:"type:text"`
	Meta        datatypes.JSON `gorm:"type:json"`
	IPAddress   string         `gorm:"size:45"`
	UserAgent   string         `gorm:"size:512"`
	CreatedAt   int64          `gorm:"autoCreateTime:milli;not null;index"`
}

func (ActivityLogModel) TableName() string {
	return "activity_logs"
}
