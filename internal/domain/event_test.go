package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLabelFor(t *testing.T) {
	tests := []struct {
		name  string
		score float64
		want  Label
	}{
		{"clearly positive", 0.5, LabelPositive},
		{"just above threshold", 0.051, LabelPositive},
		{"exactly at positive threshold", 0.05, LabelNeutral},
		{"zero", 0, LabelNeutral},
		{"exactly at negative threshold", -0.05, LabelNeutral},
		{"just below threshold", -0.051, LabelNegative},
		{"clearly negative", -0.5, LabelNegative},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, LabelFor(tt.score))
		})
	}
}
