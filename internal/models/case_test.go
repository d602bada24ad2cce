package models_test

import (
	"testing"

	"github.com/aarnio/casedesk/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestDifficulty_String(t *testing.T) {
	tests := []struct {
		difficulty models.Difficulty
		want       string
	}{
		{models.DifficultyBeginner, "Beginner"},
		{models.DifficultyIntermediate, "Intermediate"},
		{models.DifficultyAdvanced, "Advanced"},
		{models.Difficulty(3), "Unknown"},
		{models.Difficulty(-1), "Unknown"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.difficulty.String())
		})
	}
}
