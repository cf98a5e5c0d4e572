package models

import "gorm.io/datatypes"

type GuideModel struct {
	ID         uint           `gorm:"primaryKey"`
	CategoryID uint           `gorm:"not null;index"`
	Title      string         `gorm:"size:255;not null"`
	Slug       string         `gorm:"uniqueIndex;size:255;not null"`
	Problem    string         `gorm:"type:text;not null"`
	Solutions  datatypes.JSON `gorm:"type:json"`
	IsActive   bool           `gorm:"not null;default:true;index"`
	SortOrder  int            `gorm:"column:sort_order;not null;default:0"`
	CreatedAt  int64          `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt  int64          `gorm:"autoUpdateTime:milli;not null"`
}

func (GuideModel) TableName() string {
	return "guides"
}

type GuideCategoryModel struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"size:255;not null"`
	Icon      string `gorm:"size:100"`
	SortOrder int    `gorm:"column:sort_order;not null;default:0"`
	CreatedAt int64  `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64  `gorm:"autoUpdateTime:milli;not null"`
}

func (GuideCategoryModel) TableName() string {
	return "guide_categories"
}
