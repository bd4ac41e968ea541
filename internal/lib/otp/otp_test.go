package otp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateCode(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 50; i++ {
		code, err := GenerateCode()
		require.NoError(t, err)
		assert.Len(t, code, 6)
		assert.True(t, IsValidFormat(code), "generated code %q has invalid format", code)
		seen[code] = true
	}
	// 50 одинаковых кодов подряд — признак сломанного генератора
	assert.Greater(t, len(seen), 1)
}

func TestIsValidFormat(t *testing.T) {
	tests := []struct {
		code string
		want bool
	}{
		{"123456", true},
		{"000000", true},
		{"12345", false},
		{"1234567", false},
		{"12345a", false},
		{"", false},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, IsValidFormat(tt.code), tt.code)
	}
}
