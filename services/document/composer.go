// Package document renders the localized two-page patient discharge document
// as print-ready HTML. Rendering is pure and total: every input, including
// short section arrays and unknown languages, produces a document.
package document

import (
	"html/template"

	"carebrief/i18n"
	"carebrief/models"
)

// ComposeInput is everything one render needs. Nothing is retained between
// calls.
type ComposeInput struct {
	Sections      []models.DocumentSection
	Language      string
	ClinicianName string
	HospitalName  string
	Date          string
	DocumentURL   string
	ShowQRCode    bool
}

// Composer assembles the full document. Safe for concurrent use; the only
// state is the QR encoder.
type Composer struct {
	qr QREncoder
}

// NewComposer returns a Composer with the default QR encoder.
func NewComposer() *Composer {
	return &Composer{qr: EncodeQRPNG}
}

// NewComposerWithQR returns a Composer using a custom QR encoder.
func NewComposerWithQR(qr QREncoder) *Composer {
	return &Composer{qr: qr}
}

var docTmpl = template.Must(template.New("document").Parse(`<!DOCTYPE html>
<html lang="{{.LangCode}}">
<head>
<meta charset="utf-8">
<title>{{.Title}}</title>
<style>{{.Style}}</style>
</head>
<body>
<div class="page">
{{.Header}}
<div class="grid">
{{range .PageOneCards}}{{.}}
{{end}}</div>
</div>
<div class="page">
{{.BrandStrip}}
<div class="grid">
{{range .PageTwoCards}}{{.}}
{{end}}</div>
{{.Footer}}
</div>
</body>
</html>`))

type docData struct {
	LangCode     string
	Title        string
	Style        template.CSS
	Header       template.HTML
	PageOneCards []template.HTML
	BrandStrip   template.HTML
	PageTwoCards []template.HTML
	Footer       template.HTML
}

var langCodes = map[i18n.Language]string{
	i18n.English:  "en",
	i18n.Estonian: "et",
	i18n.Russian:  "ru",
}

// Compose renders the two-page document. Fewer than seven sections is not an
// error: missing slots get empty content under their localized titles.
func (c *Composer) Compose(in ComposeInput) string {
	sections := padSections(in.Sections)

	var pageOne, pageTwo []template.HTML
	for i, slot := range documentSlots {
		card := renderSlot(slot.Key, sections[i].Content, in.Language)
		if slot.Page == 1 {
			pageOne = append(pageOne, card)
		} else {
			pageTwo = append(pageTwo, card)
		}
	}

	footer := c.renderFooter(models.PrintFooterData{
		ClinicianName: in.ClinicianName,
		Date:          in.Date,
		DocumentURL:   in.DocumentURL,
		Language:      in.Language,
	}, in.ShowQRCode)

	return string(execTemplate(docTmpl, docData{
		LangCode:     langCodes[i18n.Normalize(in.Language)],
		Title:        i18n.T(i18n.HeaderMain, in.Language),
		Style:        template.CSS(printCSS),
		Header:       RenderHeader(in.Language, in.Date, in.HospitalName),
		PageOneCards: pageOne,
		BrandStrip:   RenderBrandStrip(),
		PageTwoCards: pageTwo,
		Footer:       footer,
	}))
}

// padSections extends the input to the full slot count with empty content.
// Callers sometimes supply partial documents; that is tolerated by contract.
func padSections(in []models.DocumentSection) []models.DocumentSection {
	out := make([]models.DocumentSection, len(documentSlots))
	copy(out, in)
	return out
}
