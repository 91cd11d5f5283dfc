package document

import (
	"fmt"
	"strings"
	"testing"

	"carebrief/i18n"
	"carebrief/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sevenSections() []models.DocumentSection {
	out := make([]models.DocumentSection, 7)
	for i := range out {
		out[i] = models.DocumentSection{
			Title:   fmt.Sprintf("Section %d", i),
			Content: fmt.Sprintf("Content for **slot %d**.", i),
		}
	}
	return out
}

func TestSlotVariantAssignment(t *testing.T) {
	want := []struct {
		key     models.SectionKey
		variant models.SectionVariant
		icon    string
		page    int
	}{
		{models.SectionWhatIHave, models.VariantTeal, "❤️", 1},
		{models.SectionHowToLive, models.VariantNeutral, "🏃", 1},
		{models.SectionSixMonthOutlook, models.VariantTeal, "📅", 1},
		{models.SectionLifeImpact, models.VariantTeal, "✨", 1},
		{models.SectionMedications, models.VariantPink, "💊", 2},
		{models.SectionWarnings, models.VariantRed, "⚠️", 2},
		{models.SectionContacts, models.VariantContacts, "📞", 2},
	}
	require.Len(t, documentSlots, len(want))
	for i, w := range want {
		got := documentSlots[i]
		assert.Equal(t, w.key, got.Key, "slot %d key", i)
		assert.Equal(t, w.variant, got.Variant, "slot %d variant", i)
		assert.Equal(t, w.icon, got.Icon, "slot %d icon", i)
		assert.Equal(t, w.page, got.Page, "slot %d page", i)
	}
}

func TestComposeEstonianFullScenario(t *testing.T) {
	encoded := 0
	c := NewComposerWithQR(func(content string, size int) ([]byte, error) {
		encoded++
		assert.Equal(t, "https://x/y", content)
		return []byte("png-bytes"), nil
	})

	html := c.Compose(ComposeInput{
		Sections:      sevenSections(),
		Language:      "ESTONIAN", // mixed case must normalize
		ClinicianName: "Dr. Mari Tamm",
		HospitalName:  "Põhja-Eesti Regionaalhaigla",
		Date:          "2026-08-31",
		DocumentURL:   "https://x/y",
		ShowQRCode:    true,
	})

	assert.Equal(t, 1, encoded, "QR encoder should run exactly once")
	assert.Contains(t, html, `<html lang="et">`)
	// Estonian titles for every slot.
	for _, slot := range documentSlots {
		assert.Contains(t, html, i18n.Lookup(slot.Title, i18n.Estonian))
	}
	assert.Contains(t, html, "Haiglast lahkumise kokkuvõte")
	assert.Contains(t, html, "Põhja-Eesti Regionaalhaigla")
	// Footer: signature block plus QR data URI.
	assert.Contains(t, html, "Dr. Mari Tamm")
	assert.Contains(t, html, "2026-08-31")
	assert.Contains(t, html, "Koostanud")
	assert.Contains(t, html, "data:image/png;base64,")
	// Section markdown is rendered, not echoed.
	assert.Contains(t, html, "<strong>slot 0</strong>")
}

func TestComposeShortSectionsDoesNotFail(t *testing.T) {
	c := NewComposer()
	for n := 0; n <= 7; n++ {
		html := c.Compose(ComposeInput{
			Sections: sevenSections()[:n],
			Language: "english",
			Date:     "2026-01-01",
		})
		// Every slot still shows its localized title.
		for _, slot := range documentSlots {
			assert.Contains(t, html, i18n.Lookup(slot.Title, i18n.English), "n=%d", n)
		}
		for _, slot := range documentSlots {
			assert.Contains(t, html, slot.Icon, "n=%d", n)
		}
	}
}

func TestComposeUnknownLanguageFallsBackToEnglish(t *testing.T) {
	c := NewComposer()
	en := c.Compose(ComposeInput{Sections: sevenSections(), Language: "english", Date: "d"})
	unk := c.Compose(ComposeInput{Sections: sevenSections(), Language: "klingon", Date: "d"})
	assert.Equal(t, en, unk)
}

func TestQRCodeInvocation(t *testing.T) {
	cases := []struct {
		name    string
		showQR  bool
		url     string
		invoked bool
	}{
		{"enabled with url", true, "https://x/y", true},
		{"disabled with url", false, "https://x/y", false},
		{"enabled without url", true, "", false},
		{"disabled without url", false, "", false},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			calls := 0
			c := NewComposerWithQR(func(string, int) ([]byte, error) {
				calls++
				return []byte("png"), nil
			})
			html := c.Compose(ComposeInput{
				Sections:    sevenSections(),
				Language:    "english",
				DocumentURL: tc.url,
				ShowQRCode:  tc.showQR,
			})
			if tc.invoked {
				assert.Equal(t, 1, calls)
				assert.Contains(t, html, "data:image/png;base64,")
			} else {
				assert.Zero(t, calls)
				assert.NotContains(t, html, "data:image/png;base64,")
			}
		})
	}
}

func TestQREncoderErrorDegradesToNoQR(t *testing.T) {
	c := NewComposerWithQR(func(string, int) ([]byte, error) {
		return nil, fmt.Errorf("encode failed")
	})
	html := c.Compose(ComposeInput{
		Sections:    sevenSections(),
		Language:    "english",
		DocumentURL: "https://x/y",
		ShowQRCode:  true,
	})
	assert.NotContains(t, html, "data:image/png;base64,")
	// Signature block still renders.
	assert.Contains(t, html, "Prepared by")
}

func TestComposeTwoPages(t *testing.T) {
	c := NewComposer()
	html := c.Compose(ComposeInput{Sections: sevenSections(), Language: "russian", Date: "d"})
	assert.Equal(t, 2, strings.Count(html, `<div class="page">`))
	assert.Contains(t, html, `<html lang="ru">`)
	assert.Contains(t, html, "Мои лекарства")
}
