package user

import (
	"context"

	"helpdesk/internal/shared/authorization"
)

type UserRepository interface {
	Save(ctx context.Context, user *User) error
	Update(ctx context.Context, user *User) error
	Delete(ctx context.Context, userID uint) error
	GetByID(ctx context.Context, userID uint) (*User, error)
	GetByEmail(ctx context.Context, email string) (*User, error)
	ExistsByEmail(ctx context.Context, email string) (bool, error)
	List(ctx context.Context, filter UserFilter) ([]*User, int64, error)
	GetByRole(ctx context.Context, role authorization.UserRole) ([]*User, error)
	GetByIDs(ctx context.Context, userIDs []uint) ([]*User, error)
}

type UserFilter struct {
	Search   string
	Role     *authorization.UserRole
	Page     int
	PageSize int
}

type SessionRepository interface {
	Save(ctx context.Context, session *LoginSession) error
	Update(ctx context.Context, session *LoginSession) error
	GetByID(ctx context.Context, sessionID uint) (*LoginSession, error)
	GetActiveByUserID(ctx context.Context, userID uint) ([]*LoginSession, error)
	ExistsActiveByUserIP(ctx context.Context, userID uint, ipAddress string) (bool, error)
	RevokeAllExceptIP(ctx context.Context, userID uint, ipAddress string) (int64, error)
	DeleteByUserID(ctx context.Context, userID uint) error
}

type PasswordResetTokenRepository interface {
	Save(ctx context.Context, token *PasswordResetToken) error
	GetByEmail(ctx context.Context, email string) (*PasswordResetToken, error)
	DeleteByEmail(ctx context.Context, email string) error
}
