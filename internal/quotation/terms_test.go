package quotation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func terms(percentages ...float64) []PaymentTerm {
	out := make([]PaymentTerm, len(percentages))
	for i, p := range percentages {
		out[i] = PaymentTerm{Kind: TermKindCustom, Description: "Term", Percentage: p}
	}
	return out
}

func TestValidateTerms(t *testing.T) {
	assert.True(t, ValidateTerms(terms(100)))
	assert.True(t, ValidateTerms(terms(50, 50)))
	assert.True(t, ValidateTerms(terms(30, 70)))
	assert.True(t, ValidateTerms(terms(33.5, 66.5)))

	assert.False(t, ValidateTerms(terms(40, 59)), "sum 99 must not validate")
	assert.False(t, ValidateTerms(terms(60, 50)))
	assert.False(t, ValidateTerms(nil), "empty terms sum to 0, not 100")
	assert.False(t, ValidateTerms(terms()))
}

func TestPresetsAllSettle(t *testing.T) {
	presets := Presets()
	require.Len(t, presets, 4)
	for _, preset := range presets {
		assert.True(t, ValidateTerms(preset.Terms), "preset %s must sum to 100", preset.ID)
	}
}

func TestMilestones(t *testing.T) {
	schedule := Milestones(terms(30, 70), 5000)
	require.Len(t, schedule, 2)
	assert.Equal(t, 1500.0, schedule[0].Amount)
	assert.Equal(t, 3500.0, schedule[1].Amount)
}

func TestMilestonesEmpty(t *testing.T) {
	assert.Empty(t, Milestones(nil, 5000))
}
