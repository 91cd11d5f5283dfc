package document

import (
	"testing"

	"carebrief/i18n"
	"carebrief/models"

	"github.com/stretchr/testify/assert"
)

func TestRenderSectionEmptyContent(t *testing.T) {
	html := string(RenderSection("Title", "", models.VariantTeal, "❤️"))
	assert.Contains(t, html, `card--teal`)
	assert.Contains(t, html, "Title")
	assert.Contains(t, html, `<div class="card__body"></div>`)
}

func TestRenderSectionEscapesTitle(t *testing.T) {
	html := string(RenderSection("<script>", "", models.VariantRed, ""))
	assert.NotContains(t, html, "<script>")
	assert.Contains(t, html, "&lt;script&gt;")
}

func TestRenderSectionMarkdownBody(t *testing.T) {
	html := string(RenderSection("T", "- take *daily*\n- with food", models.VariantPink, "💊"))
	assert.Contains(t, html, "<ul>")
	assert.Contains(t, html, "<em>daily</em>")
}

func TestSpecializedRenderersShareComposerTitles(t *testing.T) {
	// Header text must come from the same table the composer uses,
	// whatever the render path.
	cases := []struct {
		render func(string, string) string
		title  i18n.StringID
		class  string
	}{
		{func(c, l string) string { return string(RenderMedications(c, l)) }, i18n.TitleMedications, "card--pink"},
		{func(c, l string) string { return string(RenderWarnings(c, l)) }, i18n.TitleWarnings, "card--red"},
		{func(c, l string) string { return string(RenderContacts(c, l)) }, i18n.TitleContacts, "card--contacts"},
	}
	for _, lang := range []string{"english", "estonian", "russian", "UNKNOWN"} {
		for _, tc := range cases {
			html := tc.render("text", lang)
			assert.Contains(t, html, i18n.T(tc.title, lang), "lang %s", lang)
			assert.Contains(t, html, tc.class)
		}
	}
}

func TestRenderHeaderHospitalLine(t *testing.T) {
	with := string(RenderHeader("english", "2026-01-01", "General Hospital"))
	without := string(RenderHeader("english", "2026-01-01", ""))
	assert.Contains(t, with, "General Hospital")
	assert.NotContains(t, without, "General Hospital")
	assert.Contains(t, without, "Discharge Summary")
	assert.Contains(t, without, "2026-01-01")
}
