package document

import (
	"html/template"

	"carebrief/i18n"
	"carebrief/models"
)

// renderSlot renders the card for a semantic slot with its table-assigned
// variant, icon and localized title. The composer and the specialized
// renderers below all go through here, so header text cannot diverge
// between render paths.
func renderSlot(key models.SectionKey, content, language string) template.HTML {
	spec, ok := slotFor(key)
	if !ok {
		return ""
	}
	title := i18n.T(spec.Title, language)
	return RenderSection(title, content, spec.Variant, spec.Icon)
}

// RenderMedications renders the medications card (pink, 💊).
func RenderMedications(content, language string) template.HTML {
	return renderSlot(models.SectionMedications, content, language)
}

// RenderWarnings renders the warning-signs card (red, ⚠️).
func RenderWarnings(content, language string) template.HTML {
	return renderSlot(models.SectionWarnings, content, language)
}

// RenderContacts renders the who-to-contact card (contacts variant, 📞).
func RenderContacts(content, language string) template.HTML {
	return renderSlot(models.SectionContacts, content, language)
}
