package models

// CategoryFindings is one extracted clinical category with what was found in
// the technical note and what is still missing.
type CategoryFindings struct {
	Category string   `json:"category"`
	Findings []string `json:"findings"`
	Gaps     []string `json:"gaps,omitempty"`
}

// NoteAnalysis groups the categories extracted from a technical note.
type NoteAnalysis struct {
	Categories []CategoryFindings `json:"categories"`
}

// PatientProfile describes the reader of the document. Every field is
// independently defaulted when absent; see WithDefaults.
type PatientProfile struct {
	Age            int      `json:"age,omitempty"`
	Sex            string   `json:"sex,omitempty"`
	HealthLiteracy string   `json:"healthLiteracy,omitempty"`
	Language       string   `json:"language,omitempty"`
	JourneyType    string   `json:"journeyType,omitempty"`
	Comorbidities  []string `json:"comorbidities,omitempty"`
	SmokingStatus  string   `json:"smokingStatus,omitempty"`
	RiskAppetite   string   `json:"riskAppetite,omitempty"`
}

// WithDefaults returns a copy with absent fields filled in.
func (p PatientProfile) WithDefaults() PatientProfile {
	if p.Age == 0 {
		p.Age = 65
	}
	if p.Sex == "" {
		p.Sex = "unspecified"
	}
	if p.HealthLiteracy == "" {
		p.HealthLiteracy = "medium"
	}
	if p.Language == "" {
		p.Language = "english"
	}
	if p.SmokingStatus == "" {
		p.SmokingStatus = "unknown"
	}
	if p.RiskAppetite == "" {
		p.RiskAppetite = "moderate"
	}
	return p
}

// DraftRequest is the payload for the deprecated POST /api/draft endpoint.
type DraftRequest struct {
	TechnicalNote string         `json:"technicalNote"`
	Analysis      NoteAnalysis   `json:"analysis"`
	Patient       PatientProfile `json:"patient"`
}

// DraftResponse carries the raw completion text back to the caller.
type DraftResponse struct {
	Draft string `json:"draft"`
}
