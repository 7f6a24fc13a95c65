package http

import (
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseOrigins(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
	}{
		{"EmptyString", "", nil},
		{"SingleOrigin", "https://app.example.com", []string{"https://app.example.com"}},
		{
			"MultipleOrigins",
			"https://app.example.com,https://admin.example.com",
			[]string{"https://app.example.com", "https://admin.example.com"},
		},
		{
			"TrimsWhitespace",
			" https://app.example.com , https://admin.example.com ",
			[]string{"https://app.example.com", "https://admin.example.com"},
		},
		{"SkipsEmptyParts", "https://app.example.com,,", []string{"https://app.example.com"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, parseOrigins(tt.input))
		})
	}
}

func TestCreateCORSMiddleware(t *testing.T) {
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))

	t.Run("DisabledReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(false, "https://app.example.com", logger))
	})

	t.Run("EnabledWithoutOriginsReturnsNil", func(t *testing.T) {
		assert.Nil(t, createCORSMiddleware(true, "", logger))
	})

	t.Run("EnabledWithOriginsReturnsMiddleware", func(t *testing.T) {
		assert.NotNil(t, createCORSMiddleware(true, "https://app.example.com", logger))
	})
}
