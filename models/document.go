package models

// SectionVariant is the closed set of visual themes a content card can take.
// The renderer only tags markup with the variant; the print stylesheet owns
// the actual colors.
type SectionVariant string

const (
	VariantTeal     SectionVariant = "teal"
	VariantPink     SectionVariant = "pink"
	VariantRed      SectionVariant = "red"
	VariantNeutral  SectionVariant = "neutral"
	VariantContacts SectionVariant = "contacts"
)

// SectionKey identifies one of the seven fixed semantic slots of the
// discharge document, in document order.
type SectionKey string

const (
	SectionWhatIHave       SectionKey = "what-i-have"
	SectionHowToLive       SectionKey = "how-to-live"
	SectionSixMonthOutlook SectionKey = "six-month-outlook"
	SectionLifeImpact      SectionKey = "life-impact"
	SectionMedications     SectionKey = "medications"
	SectionWarnings        SectionKey = "warnings"
	SectionContacts        SectionKey = "contacts"
)

// DocumentSection is one unit of patient-facing content. Content is markdown.
// Exactly seven are expected per document; missing entries render with an
// empty body rather than failing.
type DocumentSection struct {
	Title   string `json:"title"`
	Content string `json:"content"`
}

// PrintFooterData carries everything the document footer needs. An empty
// DocumentURL suppresses the QR code but is never an error.
type PrintFooterData struct {
	ClinicianName string `json:"clinicianName"`
	Date          string `json:"date"`
	DocumentURL   string `json:"documentUrl,omitempty"`
	Language      string `json:"language"`
}

// RenderDocumentRequest is the payload for POST /api/documents/render.
// ShowQRCode is a pointer so an omitted field defaults to true.
type RenderDocumentRequest struct {
	Sections      []DocumentSection `json:"sections"`
	Language      string            `json:"language"`
	ClinicianName string            `json:"clinicianName"`
	HospitalName  string            `json:"hospitalName,omitempty"`
	Date          string            `json:"date"`
	DocumentURL   string            `json:"documentUrl,omitempty"`
	ShowQRCode    *bool             `json:"showQrCode,omitempty"`
}
