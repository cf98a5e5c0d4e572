package ticket

import (
	"context"
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRandomCodeGenerator_Format(t *testing.T) {
	gen := NewRandomCodeGenerator()
	pattern := regexp.MustCompile(`^TIC-\d{5}$`)

	for i := 0; i < 100; i++ {
		code, err := gen.Generate(context.Background())
		require.NoError(t, err)
		assert.Regexp(t, pattern, code)
	}
}
