package user

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceNameFromUserAgent(t *testing.T) {
	tests := []struct {
		name      string
		userAgent string
		want      string
	}{
		{
			name:      "windows desktop",
			userAgent: "Mozilla/5.0 (Windows NT 10.0; Win64; x64) AppleWebKit/537.36",
			want:      "Windows",
		},
		{
			name:      "mac desktop",
			userAgent: "Mozilla/5.0 (Macintosh; Intel Mac OS X 10_15_7) AppleWebKit/605.1.15",
			want:      "macOS",
		},
		{
			name:      "linux desktop",
			userAgent: "Mozilla/5.0 (X11; Linux x86_64) Gecko/20100101 Firefox/124.0",
			want:      "Linux",
		},
		{
			name:      "ipad",
			userAgent: "Mozilla/5.0 (iPad; CPU OS 16_6) AppleWebKit/605.1.15",
			want:      "iPad",
		},
		{
			// iPhone user agents contain "like Mac OS X"; the Mac check
			// comes first so they classify as macOS
			name:      "iphone classified by mac substring",
			userAgent: "Mozilla/5.0 (iPhone; CPU iPhone OS 17_0 like Mac OS X)",
			want:      "macOS",
		},
		{
			name:      "case insensitive",
			userAgent: "some client on WINDOWS",
			want:      "Windows",
		},
		{
			name:      "unrecognized",
			userAgent: "curl/8.4.0",
			want:      "Unknown Device",
		},
		{
			name:      "empty",
			userAgent: "",
			want:      "Unknown Device",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DeviceNameFromUserAgent(tt.userAgent))
		})
	}
}

func TestNewLoginSession(t *testing.T) {
	s, err := NewLoginSession(1, "10.0.0.5", "Mozilla/5.0 (Windows NT 10.0)")
	require.NoError(t, err)
	assert.Equal(t, "Windows", s.DeviceName())
	assert.False(t, s.IsRevoked())
	assert.Nil(t, s.RevokedAt())

	_, err = NewLoginSession(0, "10.0.0.5", "")
	require.Error(t, err)

	_, err = NewLoginSession(1, "", "")
	require.Error(t, err)
}

func TestLoginSession_Revoke(t *testing.T) {
	s, err := NewLoginSession(1, "10.0.0.5", "")
	require.NoError(t, err)

	s.Revoke()
	require.True(t, s.IsRevoked())
	require.NotNil(t, s.RevokedAt())
	first := *s.RevokedAt()

	s.Revoke()
	assert.Equal(t, first, *s.RevokedAt())
}
