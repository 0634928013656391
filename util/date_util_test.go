package util

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestParseDateOr(t *testing.T) {
	fallback := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	tests := []struct {
		name  string
		input string
		want  time.Time
	}{
		{"valid date", "2024-03-15", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"padded input", " 2024-03-15 ", time.Date(2024, 3, 15, 0, 0, 0, 0, time.UTC)},
		{"empty falls back", "", fallback},
		{"garbage falls back", "15/03/2024", fallback},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseDateOr(tt.input, fallback))
		})
	}
}
