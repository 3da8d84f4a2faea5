package report

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFormatPace(t *testing.T) {
	tests := []struct {
		name string
		pace float64
		want string
	}{
		{"exact half minute", 5.5, "5:30"},
		{"whole minutes", 6.0, "6:00"},
		{"truncates not rounds", 5.999, "5:59"},
		{"sub four", 3.75, "3:45"},
		{"double digit minutes", 12.25, "12:15"},
		{"single digit seconds padded", 5.1, "5:06"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatPaceValue(tt.pace))
		})
	}
}

func TestFormatPaceUnavailable(t *testing.T) {
	assert.Equal(t, "N/A", FormatPace(nil))
}

func TestFormatDuration(t *testing.T) {
	assert.Equal(t, "45min", FormatDuration(45))
	assert.Equal(t, "1:00", FormatDuration(60))
	assert.Equal(t, "1:30", FormatDuration(90.7))
	assert.Equal(t, "2:05", FormatDuration(125))
	assert.Equal(t, "0min", FormatDuration(0))
}
