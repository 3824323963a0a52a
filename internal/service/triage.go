package service

import "strings"

// Urgency levels produced by the symptom classifier.
const (
	UrgencyHigh    = "High"
	UrgencyMedium  = "Medium"
	UrgencyLow     = "Low"
	UrgencyUnknown = "Unknown"
)

// Classification labels produced by the symptom classifier.
const (
	ClassificationEmergency    = "Emergency"
	ClassificationInfection    = "Possible infection"
	ClassificationRoutine      = "Routine"
	ClassificationInsufficient = "Insufficient data"
)

// emergencyKeywords trigger a High/Emergency classification on a
// case-insensitive substring match.
var emergencyKeywords = []string{
	"chest pain",
	"severe bleeding",
	"unconscious",
	"shortness of breath",
	"severe difficulty breathing",
}

// TriageResult is the urgency/classification/recommendation triple derived
// from free-text symptoms.
type TriageResult struct {
	Urgency         string
	Classification  string
	Recommendations []string
}

// AnalyzeSymptoms maps free-text symptoms to a triage result. It is a
// deterministic, stateless, total function: it never fails and degrades to
// Unknown on empty input.
func AnalyzeSymptoms(text string) TriageResult {
	if strings.TrimSpace(text) == "" {
		return TriageResult{
			Urgency:         UrgencyUnknown,
			Classification:  ClassificationInsufficient,
			Recommendations: []string{"Please provide more details"},
		}
	}

	lowered := strings.ToLower(text)

	for _, keyword := range emergencyKeywords {
		if strings.Contains(lowered, keyword) {
			return TriageResult{
				Urgency:        UrgencyHigh,
				Classification: ClassificationEmergency,
				Recommendations: []string{
					"Visit nearest ER immediately",
					"Call emergency services",
				},
			}
		}
	}

	if strings.Contains(lowered, "fever") && strings.Contains(lowered, "cough") {
		return TriageResult{
			Urgency:        UrgencyMedium,
			Classification: ClassificationInfection,
			Recommendations: []string{
				"Book an appointment with a physician",
				"Isolate and monitor symptoms",
			},
		}
	}

	return TriageResult{
		Urgency:        UrgencyLow,
		Classification: ClassificationRoutine,
		Recommendations: []string{
			"Self-care",
			"Schedule regular checkup if persists",
		},
	}
}
