package models

type TicketModel struct {
	ID             uint    `gorm:"primaryKey"`
	Code           string  `gorm:"uniqueIndex;size:20;not null"`
	UserID         uint    `gorm:"not null;index"`
	Title          string  `gorm:"size:255;not null"`
	Description    string  `gorm:"type:text;not null"`
	Priority       string  `gorm:"size:20;not null;index"`
	Status         string  `gorm:"size:20;not null;index"`
	AttachmentPath *string `gorm:"size:512"`
	CompletedAt    *int64
	ArchivedAt     *int64 `gorm:"index"`
	CreatedAt      int64  `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64  `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (TicketModel) TableName() string {
	return "tickets"
}

type TicketReplyModel struct {
	ID             uint    `gorm:"primaryKey"`
	TicketID       uint    `gorm:"not null;index"`
	UserID         uint    `gorm:"not null;index"`
	Content        string  `gorm:"type:text;not null"`
	AttachmentPath *string `gorm:"size:512"`
	CreatedAt      int64   `gorm:"autoCreateTime:milli;not null;index"`
	UpdatedAt      int64   `gorm:"autoUpdateTime:milli;not null"`
}

func (TicketReplyModel) TableName() string {
	return "ticket_replies"
}
