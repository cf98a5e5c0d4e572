package guide

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSlugify(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"How to reset your password", "how-to-reset-your-password"},
		{"VPN: connection drops!", "vpn-connection-drops"},
		{"  spaces  everywhere  ", "spaces-everywhere"},
		{"Already-Slugged", "already-slugged"},
		{"", ""},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, Slugify(tt.in), tt.in)
	}
}

func TestNewGuide_DerivesSlugFromTitle(t *testing.T) {
	g, err := NewGuide(1, "Printer Setup Guide", "", "Printer not detected", []string{"Check the cable"}, 0)
	require.NoError(t, err)
	assert.Equal(t, "printer-setup-guide", g.Slug())
	assert.True(t, g.IsActive())
}

func TestGuide_Update_ReslugsOnTitleChange(t *testing.T) {
	g, err := NewGuide(1, "Old Title", "", "problem", nil, 0)
	require.NoError(t, err)

	require.NoError(t, g.Update(1, "New Title", "", "problem", nil, true, 0))
	assert.Equal(t, "new-title", g.Slug())

	// explicit slug wins over derivation
	require.NoError(t, g.Update(1, "Another Title", "custom-slug", "problem", nil, true, 0))
	assert.Equal(t, "custom-slug", g.Slug())

	// unchanged title keeps the existing slug
	require.NoError(t, g.Update(1, "Another Title", "", "problem", nil, true, 0))
	assert.Equal(t, "custom-slug", g.Slug())
}
