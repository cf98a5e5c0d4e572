package models

type UserModel struct {
	ID           uint    `gorm:"primaryKey"`
	Name         string  `gorm:"size:255;not null"`
	Email        string  `gorm:"uniqueIndex;size:255;not null"`
	PasswordHash string  `gorm:"column:password;size:255;not null"`
	Role         string  `gorm:"size:20;not null;index;default:user"`
	Division     *string `gorm:"size:255"`
	Position     *string `gorm:"size:255"`
	LastLoginIP  *string `gorm:"size:45"`
	LastLoginAt  *int64

	NotifyEmailOnTicketCreated *bool
	NotifyEmailOnTicketReply   *bool
	NotifyEmailOnTicketClosed  *bool
	NotifyEmailOnTicketUpdated *bool

	CreatedAt int64 `gorm:"autoCreateTime:milli;not null"`
	UpdatedAt int64 `gorm:"autoUpdateTime:milli;not null"`

	// Note: No foreign key constraints or associations.
	// All relationships are managed by application business logic.
}

func (UserModel) TableName() string {
	return "users"
}

type PasswordResetTokenModel struct {
	Email     string `gorm:"primaryKey;size:255"`
	TokenHash string `gorm:"column:token;size:255;not null"`
	CreatedAt int64  `gorm:"not null"`
	ExpiresAt int64  `gorm:"not null"`
}

func (PasswordResetTokenModel) TableName() string {
	return "password_reset_tokens"
}
