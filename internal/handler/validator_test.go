package handler

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/osse101/DogDaycare_Go/internal/domain"
)

func TestValidator_DaycareName(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		// Best case
		{"simple", "Happy Paws", false},
		{"unicode", "Café Chien 🐶", false},

		// Boundaries
		{"single rune", "A", false},
		{"max runes", strings.Repeat("é", MaxDaycareNameLength), false},
		{"too long", strings.Repeat("a", MaxDaycareNameLength+1), true},
		{"padded to max", "  " + strings.Repeat("b", MaxDaycareNameLength) + "  ", false},

		// Invalid
		{"empty", "", true},
		{"whitespace only", "   ", true},
		{"control char", "Paws\x00", true},
		{"newline", "Happy\nPaws", true},
		{"invalid utf8", "\xff\xfe", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(StartGameRequest{Name: tt.input})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestValidator_Action(t *testing.T) {
	v := GetValidator()

	for _, action := range []string{"FEED", "PLAY", "SLEEP"} {
		assert.NoError(t, v.ValidateStruct(InteractRequest{Action: domain.Action(action)}), action)
	}
	for _, action := range []string{"", "feed", "BATHE"} {
		assert.Error(t, v.ValidateStruct(InteractRequest{Action: domain.Action(action)}), action)
	}
}

func TestFormatValidationError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		assert.Nil(t, FormatValidationError(nil))
	})

	t.Run("non validation error", func(t *testing.T) {
		assert.Equal(t, map[string]string{"error": "Invalid request format"}, FormatValidationError(assert.AnError))
	})

	t.Run("tags", func(t *testing.T) {
		v := GetValidator()

		errs := FormatValidationError(v.ValidateStruct(BuyUpgradeRequest{Key: "goldenLeash"}))
		require.Contains(t, errs, "key")
		assert.Equal(t, "Must be one of: premiumFood, fancyToy, comfyBed", errs["key"])

		errs = FormatValidationError(v.ValidateStruct(SetPlayingRequest{}))
		assert.Equal(t, "This field is required", errs["playing"])

		errs = FormatValidationError(v.ValidateStruct(StartGameRequest{Name: strings.Repeat("x", 40)}))
		assert.Contains(t, errs["name"], "printable characters")

		errs = FormatValidationError(v.ValidateStruct(HireWorkerRequest{CandidateID: strings.Repeat("x", 65)}))
		assert.Equal(t, "Must be at most 64 characters", errs["candidateid"])
	})
}
