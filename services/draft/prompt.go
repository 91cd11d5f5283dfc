// Package draft builds the content-drafting prompt and performs the single
// completion-gateway call behind the deprecated /api/draft endpoint.
//
// Deprecated: drafting moved out of this service; the endpoint is kept for
// legacy callers only.
package draft

import (
	"fmt"
	"strings"

	"carebrief/models"
)

// systemPrompt frames the model as a discharge-document writer.
const systemPrompt = `You are a clinical communication assistant. You turn a technical ` +
	`discharge note into patient-friendly discharge document content with exactly seven ` +
	`sections: What I Have, How to Live With It, The Next Six Months, Impact on My Life, ` +
	`My Medications, Warning Signs, Who to Contact. Write warmly and plainly. Never invent ` +
	`clinical facts that are not in the note.`

// sectionGuidelines describes the expected shape of each of the seven sections.
const sectionGuidelines = `Section guidelines:
- What I Have: name the condition and explain it in one short paragraph.
- How to Live With It: concrete daily habits, diet and activity advice.
- The Next Six Months: what recovery typically looks like, upcoming checkups.
- Impact on My Life: work, driving, family life, mood.
- My Medications: every medication with dose, schedule and purpose, as a list.
- Warning Signs: symptoms that require calling for help, as a list.
- Who to Contact: who to call for what, with urgency levels.`

// safetyRules are always appended last.
const safetyRules = `Safety rules:
- Do not contradict the technical note.
- Flag every information gap instead of guessing.
- Include no diagnosis or prognosis beyond what the note states.
- Keep reading level appropriate to the stated health literacy.`

// personalizationInstructions renders the patient profile as prompt lines.
// Defaults are applied first so every line is present.
func personalizationInstructions(p models.PatientProfile) string {
	p = p.WithDefaults()
	var sb strings.Builder
	sb.WriteString("Patient profile:\n")
	fmt.Fprintf(&sb, "- Age: %d\n", p.Age)
	fmt.Fprintf(&sb, "- Sex: %s\n", p.Sex)
	fmt.Fprintf(&sb, "- Health literacy: %s\n", p.HealthLiteracy)
	fmt.Fprintf(&sb, "- Language: %s\n", p.Language)
	if p.JourneyType != "" {
		fmt.Fprintf(&sb, "- Journey type: %s\n", p.JourneyType)
	}
	if len(p.Comorbidities) > 0 {
		fmt.Fprintf(&sb, "- Comorbidities: %s\n", strings.Join(p.Comorbidities, ", "))
	}
	fmt.Fprintf(&sb, "- Smoking status: %s\n", p.SmokingStatus)
	fmt.Fprintf(&sb, "- Risk appetite: %s", p.RiskAppetite)
	return sb.String()
}

// languageGuidelines tells the model which language to write in.
func languageGuidelines(language string) string {
	if language == "" {
		language = "english"
	}
	return fmt.Sprintf("Write the entire document in %s, in everyday vocabulary a layperson uses.",
		strings.ToLower(language))
}

// formatAnalysis renders the extracted categories, one block per category,
// findings and gaps bullet-joined.
func formatAnalysis(a models.NoteAnalysis) string {
	if len(a.Categories) == 0 {
		return "No structured categories were extracted from the note."
	}
	var sb strings.Builder
	for i, cat := range a.Categories {
		if i > 0 {
			sb.WriteString("\n\n")
		}
		fmt.Fprintf(&sb, "### %s\n", cat.Category)
		sb.WriteString("Findings:\n")
		if len(cat.Findings) == 0 {
			sb.WriteString("- none recorded\n")
		}
		for _, f := range cat.Findings {
			fmt.Fprintf(&sb, "- %s\n", f)
		}
		if len(cat.Gaps) > 0 {
			sb.WriteString("Gaps:\n")
			for _, g := range cat.Gaps {
				fmt.Fprintf(&sb, "- %s\n", g)
			}
		}
	}
	return strings.TrimRight(sb.String(), "\n")
}

// BuildPrompt assembles the system and user prompts for one draft request.
func BuildPrompt(analysis models.NoteAnalysis, patient models.PatientProfile, technicalNote string) (system, user string) {
	var sb strings.Builder
	sb.WriteString("Technical discharge note:\n")
	sb.WriteString(technicalNote)
	sb.WriteString("\n\nExtracted clinical categories:\n")
	sb.WriteString(formatAnalysis(analysis))
	sb.WriteString("\n\n")
	sb.WriteString(personalizationInstructions(patient))
	sb.WriteString("\n\n")
	sb.WriteString(sectionGuidelines)
	sb.WriteString("\n\n")
	sb.WriteString(languageGuidelines(patient.Language))
	sb.WriteString("\n\n")
	sb.WriteString(safetyRules)
	return systemPrompt, sb.String()
}
