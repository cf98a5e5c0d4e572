package models

type LoginSessionModel struct {
	ID             uint   `gorm:"primaryKey"`
	UserID         uint   `gorm:"not null;index"`
	IPAddress      string `gorm:"size:45;not null;index"`
	DeviceName     string `gorm:"size:50;not null"`
	UserAgent      string `gorm:"size:512"`
	LoginAt        int64  `gorm:"not null"`
	LastActivityAt int64  `gorm:"not null;index"`
	Revoked        bool   `gorm:"not null;default:false;index"`
	RevokedAt      *int64
}

func (LoginSessionModel) TableName() string {
	return "user_login_sessions"
}
