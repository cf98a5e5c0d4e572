package user

import (
	"fmt"
	"strings"
	"time"
)

// LoginSession records one successful authentication: origin IP, the device
// derived from the user agent, and an activity timestamp. Revocation is an
// explicit flag rather than a delete so the record stays auditable.
type LoginSession struct {
	id             uint
	userID         uint
	ipAddress      string
	deviceName     string
	userAgent      string
	loginAt        time.Time
	lastActivityAt time.Time
	revoked        bool
	revokedAt      *time.Time
}

func NewLoginSession(userID uint, ipAddress, userAgent string) (*LoginSession, error) {
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}
	if len(ipAddress) == 0 {
		return nil, fmt.Errorf("IP address is required")
	}

	now := time.Now()
	return &LoginSession{
		userID:         userID,
		ipAddress:      ipAddress,
		deviceName:     DeviceNameFromUserAgent(userAgent),
		userAgent:      userAgent,
		loginAt:        now,
		lastActivityAt: now,
	}, nil
}

func ReconstructLoginSession(
	id uint,
	userID uint,
	ipAddress string,
	deviceName string,
	userAgent string,
	loginAt time.Time,
	lastActivityAt time.Time,
	revoked bool,
	revokedAt *time.Time,
) (*LoginSession, error) {
	if id == 0 {
		return nil, fmt.Errorf("session ID cannot be zero")
	}
	if userID == 0 {
		return nil, fmt.Errorf("user ID is required")
	}

	return &LoginSession{
		id:             id,
		userID:         userID,
		ipAddress:      ipAddress,
		deviceName:     deviceName,
		userAgent:      userAgent,
		loginAt:        loginAt,
		lastActivityAt: lastActivityAt,
		revoked:        revoked,
		revokedAt:      revokedAt,
	}, nil
}

func (s *LoginSession) ID() uint                  { return s.id }
func (s *LoginSession) UserID() uint              { return s.userID }
func (s *LoginSession) IPAddress() string         { return s.ipAddress }
func (s *LoginSession) DeviceName() string        { return s.deviceName }
func (s *LoginSession) UserAgent() string         { return s.userAgent }
func (s *LoginSession) LoginAt() time.Time        { return s.loginAt }
func (s *LoginSession) LastActivityAt() time.Time { return s.lastActivityAt }
func (s *LoginSession) IsRevoked() bool           { return s.revoked }
func (s *LoginSession) RevokedAt() *time.Time     { return s.revokedAt }

func (s *LoginSession) SetID(id uint) {
	s.id = id
}

func (s *LoginSession) Touch(at time.Time) {
	s.lastActivityAt = at
}

func (s *LoginSession) Revoke() {
	if s.revoked {
		return
	}
	now := time.Now()
	s.revoked = true
	s.revokedAt = &now
}

// deviceMatches is checked in order; the first user agent substring hit wins.
var deviceMatches = []struct {
	substr string
	name   string
}{
	{"windows", "Windows"},
	{"mac", "macOS"},
	{"linux", "Linux"},
	{"iphone", "iPhone"},
	{"ipad", "iPad"},
	{"android", "Android"},
}

// DeviceNameFromUserAgent derives a coarse device label from a raw user
// agent string via case-insensitive substring matching.
func DeviceNameFromUserAgent(userAgent string) string {
	ua := strings.ToLower(userAgent)
	for _, m := range deviceMatches {
		if strings.Contains(ua, m.substr) {
			return m.name
		}
	}
	return "Unknown Device"
}
