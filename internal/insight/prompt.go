// Package insight builds the insight generation prompt and validates the
// structured response of the language model. It performs no I/O.
package insight

import (
	"fmt"
	"strings"

	"github.com/flowise/cycle-tracker/internal/domain"
)

// DefaultSystemPrompt is used when no managed prompt is available.
const DefaultSystemPrompt = "You are a helpful AI assistant specializing in women's health and menstrual cycle analysis. " +
	"Provide supportive, evidence-based insights without medical diagnoses. " +
	"Encourage consulting healthcare professionals for medical concerns."

const promptTemplate = `
You are a specialized AI health assistant for menstrual cycle tracking. Analyze the following user data and provide 3–4 personalized insights.

User Profile:
- Age: %d
- Average Cycle Length: %d days
- Average Period Length: %d days
- Cycle Regularity: %s
- Last Period Date: %s
- Contraceptive Method: %s
- Medical Conditions: %s
- Primary Goal: %s
- Symptoms Tracked: %s
- Lifestyle: %s

Recent Symptom Entries: %d entries
Recent Cycle Entries: %d entries

Return ONLY JSON that matches the schema.
`

const notProvided = "Not provided"

// BuildPrompt interpolates the profile and the entry counts into the fixed
// prompt template. Entry contents never reach the prompt.
func BuildPrompt(p *domain.Profile, symptomEntries []domain.SymptomEntry, cycleEntries []domain.CycleEntry) string {
	if p == nil {
		p = &domain.Profile{}
	}

	lastPeriod := notProvided
	if p.LastPeriodDate != nil && !p.LastPeriodDate.IsZero() {
		lastPeriod = p.LastPeriodDate.String()
	}

	conditions := strings.Join(p.MedicalConditions, ", ")
	if conditions == "" {
		conditions = "None"
	}

	lifestyle := p.Lifestyle
	if lifestyle == "" {
		lifestyle = notProvided
	}

	return fmt.Sprintf(promptTemplate,
		p.Age,
		p.AverageCycleLength,
		p.AveragePeriodLength,
		p.CycleRegularity,
		lastPeriod,
		p.ContraceptiveMethod,
		conditions,
		p.PrimaryGoal,
		strings.Join(p.SymptomsToTrack, ", "),
		lifestyle,
		len(symptomEntries),
		len(cycleEntries),
	)
}
