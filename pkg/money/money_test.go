package money

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRound2(t *testing.T) {
	tests := []struct {
		name     string
		amount   float64
		expected float64
	}{
		{"rounds half up", 1001.897, 1001.9},
		{"rounds down", 833.3333, 833.33},
		{"already rounded", 475.22, 475.22},
		{"zero", 0, 0},
		{"negative drift", -0.004, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, Round2(tt.amount))
		})
	}
}
