package user

import (
	"fmt"
	"net/mail"
	"time"

	"helpdesk/internal/shared/authorization"
)

// User is the aggregate root for a helpdesk account. Password material is
// carried only as a hash; the notification preference flags stay nullable so
// an unset flag keeps the "send email" default.
type User struct {
	id           uint
	name         string
	email        string
	passwordHash string
	role         authorization.UserRole
	division     *string
	position     *string
	lastLoginIP  *string
	lastLoginAt  *time.Time
	preferences  NotificationPreferences
	createdAt    time.Time
	updatedAt    time.Time
}

func NewUser(name, email, passwordHash string, role authorization.UserRole) (*User, error) {
	if len(name) == 0 {
		return nil, fmt.Errorf("name is required")
	}
	if len(name) > 255 {
		return nil, fmt.Errorf("name exceeds maximum length of 255 characters")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return nil, fmt.Errorf("invalid email address: %s", email)
	}
	if len(passwordHash) == 0 {
		return nil, fmt.Errorf("password hash is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	now := time.Now()
	return &User{
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		createdAt:    now,
		updatedAt:    now,
	}, nil
}

func ReconstructUser(
	id uint,
	name string,
	email string,
	passwordHash string,
	role authorization.UserRole,
	division *string,
	position *string,
	lastLoginIP *string,
	lastLoginAt *time.Time,
	preferences NotificationPreferences,
	createdAt, updatedAt time.Time,
) (*User, error) {
	if id == 0 {
		return nil, fmt.Errorf("user ID cannot be zero")
	}
	if len(email) == 0 {
		return nil, fmt.Errorf("email is required")
	}
	if !role.IsValid() {
		return nil, fmt.Errorf("invalid role: %s", role)
	}

	return &User{
		id:           id,
		name:         name,
		email:        email,
		passwordHash: passwordHash,
		role:         role,
		division:     division,
		position:     position,
		lastLoginIP:  lastLoginIP,
		lastLoginAt:  lastLoginAt,
		preferences:  preferences,
		createdAt:    createdAt,
		updatedAt:    updatedAt,
	}, nil
}

func (u *User) ID() uint                             { return u.id }
func (u *User) Name() string                         { return u.name }
func (u *User) Email() string                        { return u.email }
func (u *User) PasswordHash() string                 { return u.passwordHash }
func (u *User) Role() authorization.UserRole         { return u.role }
func (u *User) Division() *string                    { return u.division }
func (u *User) Position() *string                    { return u.position }
func (u *User) LastLoginIP() *string                 { return u.lastLoginIP }
func (u *User) LastLoginAt() *time.Time              { return u.lastLoginAt }
func (u *User) Preferences() NotificationPreferences { return u.preferences }
func (u *User) CreatedAt() time.Time                 { return u.createdAt }
func (u *User) UpdatedAt() time.Time                 { return u.updatedAt }

func (u *User) SetID(id uint) {
	u.id = id
}

func (u *User) IsAdmin() bool {
	return u.role.IsAdmin()
}

func (u *User) UpdateProfile(name, email string, division, position *string) error {
	if len(name) == 0 {
		return fmt.Errorf("name is required")
	}
	if _, err := mail.ParseAddress(email); err != nil {
		return fmt.Errorf("invalid email address: %s", email)
	}

	u.name = name
	u.email = email
	u.division = division
	u.position = position
	u.updatedAt = time.Now()
	return nil
}

func (u *User) ChangeRole(role authorization.UserRole) error {
	if !role.IsValid() {
		return fmt.Errorf("invalid role: %s", role)
	}
	u.role = role
	u.updatedAt = time.Now()
	return nil
}

func (u *User) SetPasswordHash(hash string) error {
	if len(hash) == 0 {
		return fmt.Errorf("password hash is required")
	}
	u.passwordHash = hash
	u.updatedAt = time.Now()
	return nil
}

// RecordLogin stores the origin of the latest successful authentication.
func (u *User) RecordLogin(ip string, at time.Time) {
	u.lastLoginIP = &ip
	u.lastLoginAt = &at
	u.updatedAt = at
}

func (u *User) UpdatePreferences(prefs NotificationPreferences) {
	u.preferences = prefs
	u.updatedAt = time.Now()
}
