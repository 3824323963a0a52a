package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAnalyzeSymptoms_EmergencyKeywords(t *testing.T) {
	inputs := []string{
		"sudden chest pain radiating to the left arm",
		"severe bleeding from a deep cut",
		"found unconscious in the hallway",
		"shortness of breath after climbing one flight",
		"severe difficulty breathing since this morning",
	}

	for _, input := range inputs {
		result := AnalyzeSymptoms(input)
		assert.Equal(t, UrgencyHigh, result.Urgency, "input: %s", input)
		assert.Equal(t, ClassificationEmergency, result.Classification, "input: %s", input)
		assert.Contains(t, result.Recommendations, "Visit nearest ER immediately")
		assert.Contains(t, result.Recommendations, "Call emergency services")
	}
}

func TestAnalyzeSymptoms_CaseInsensitive(t *testing.T) {
	result := AnalyzeSymptoms("CHEST PAIN and dizziness")

	assert.Equal(t, UrgencyHigh, result.Urgency)
	assert.Equal(t, ClassificationEmergency, result.Classification)
}

func TestAnalyzeSymptoms_FeverAndCough(t *testing.T) {
	result := AnalyzeSymptoms("mild fever since yesterday with a dry cough")

	assert.Equal(t, UrgencyMedium, result.Urgency)
	assert.Equal(t, ClassificationInfection, result.Classification)
	assert.Contains(t, result.Recommendations, "Book an appointment with a physician")
}

func TestAnalyzeSymptoms_FeverAloneIsRoutine(t *testing.T) {
	result := AnalyzeSymptoms("slight fever, no other complaints")

	assert.Equal(t, UrgencyLow, result.Urgency)
	assert.Equal(t, ClassificationRoutine, result.Classification)
}

func TestAnalyzeSymptoms_RoutineFallback(t *testing.T) {
	result := AnalyzeSymptoms("itchy rash on the forearm")

	assert.Equal(t, UrgencyLow, result.Urgency)
	assert.Equal(t, ClassificationRoutine, result.Classification)
	assert.Contains(t, result.Recommendations, "Self-care")
}

func TestAnalyzeSymptoms_EmergencyWinsOverInfection(t *testing.T) {
	result := AnalyzeSymptoms("fever, cough and shortness of breath")

	assert.Equal(t, UrgencyHigh, result.Urgency)
	assert.Equal(t, ClassificationEmergency, result.Classification)
}

func TestAnalyzeSymptoms_EmptyInput(t *testing.T) {
	for _, input := range []string{"", "   ", "\n\t"} {
		result := AnalyzeSymptoms(input)

		assert.Equal(t, UrgencyUnknown, result.Urgency)
		assert.Equal(t, ClassificationInsufficient, result.Classification)
		assert.Equal(t, []string{"Please provide more details"}, result.Recommendations)
	}
}
