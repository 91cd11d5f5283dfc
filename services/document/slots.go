package document

import (
	"carebrief/i18n"
	"carebrief/models"
)

// slotSpec binds one semantic slot to its visual policy. Reordering sections
// or reassigning variants is a change to this table, not to rendering code.
type slotSpec struct {
	Key     models.SectionKey
	Title   i18n.StringID
	Variant models.SectionVariant
	Icon    string
	Page    int
}

// documentSlots is the fixed seven-slot layout, in document order.
// Slots 0-3 fill page one; 4-6 fill page two.
var documentSlots = [7]slotSpec{
	{models.SectionWhatIHave, i18n.TitleWhatIHave, models.VariantTeal, "❤️", 1},
	{models.SectionHowToLive, i18n.TitleHowToLive, models.VariantNeutral, "🏃", 1},
	{models.SectionSixMonthOutlook, i18n.TitleSixMonthOutlook, models.VariantTeal, "📅", 1},
	{models.SectionLifeImpact, i18n.TitleLifeImpact, models.VariantTeal, "✨", 1},
	{models.SectionMedications, i18n.TitleMedications, models.VariantPink, "💊", 2},
	{models.SectionWarnings, i18n.TitleWarnings, models.VariantRed, "⚠️", 2},
	{models.SectionContacts, i18n.TitleContacts, models.VariantContacts, "📞", 2},
}

func slotFor(key models.SectionKey) (slotSpec, bool) {
	for _, s := range documentSlots {
		if s.Key == key {
			return s, true
		}
	}
	return slotSpec{}, false
}
