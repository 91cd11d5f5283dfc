// Package i18n holds the single localized string table shared by every
// renderer. Keeping one table keyed by string ID avoids the drift that comes
// from each component carrying its own copy of the same header text.
package i18n

import "strings"

// Language is a normalized language key.
type Language string

const (
	English  Language = "english"
	Estonian Language = "estonian"
	Russian  Language = "russian"
)

// StringID names one display string in the table.
type StringID string

const (
	TitleWhatIHave       StringID = "title.what-i-have"
	TitleHowToLive       StringID = "title.how-to-live"
	TitleSixMonthOutlook StringID = "title.six-month-outlook"
	TitleLifeImpact      StringID = "title.life-impact"
	TitleMedications     StringID = "title.medications"
	TitleWarnings        StringID = "title.warnings"
	TitleContacts        StringID = "title.contacts"

	HeaderMain StringID = "header.main"
	HeaderSub  StringID = "header.sub"

	FooterPreparedBy StringID = "footer.prepared-by"
	FooterDate       StringID = "footer.date"
	FooterScanHint   StringID = "footer.scan-hint"
)

// table is built once and never mutated after init.
var table = map[StringID]map[Language]string{
	TitleWhatIHave: {
		English:  "What I Have",
		Estonian: "Mis mul on",
		Russian:  "Что у меня",
	},
	TitleHowToLive: {
		English:  "How to Live With It",
		Estonian: "Kuidas sellega elada",
		Russian:  "Как с этим жить",
	},
	TitleSixMonthOutlook: {
		English:  "The Next Six Months",
		Estonian: "Järgmised kuus kuud",
		Russian:  "Ближайшие шесть месяцев",
	},
	TitleLifeImpact: {
		English:  "Impact on My Life",
		Estonian: "Mõju minu elule",
		Russian:  "Влияние на мою жизнь",
	},
	TitleMedications: {
		English:  "My Medications",
		Estonian: "Minu ravimid",
		Russian:  "Мои лекарства",
	},
	TitleWarnings: {
		English:  "Warning Signs",
		Estonian: "Ohumärgid",
		Russian:  "Тревожные признаки",
	},
	TitleContacts: {
		English:  "Who to Contact",
		Estonian: "Kellega ühendust võtta",
		Russian:  "К кому обращаться",
	},
	HeaderMain: {
		English:  "Discharge Summary",
		Estonian: "Haiglast lahkumise kokkuvõte",
		Russian:  "Выписной эпикриз",
	},
	HeaderSub: {
		English:  "Your guide for recovery at home",
		Estonian: "Sinu juhend koduseks taastumiseks",
		Russian:  "Памятка для восстановления дома",
	},
	FooterPreparedBy: {
		English:  "Prepared by",
		Estonian: "Koostanud",
		Russian:  "Подготовил(а)",
	},
	FooterDate: {
		English:  "Date",
		Estonian: "Kuupäev",
		Russian:  "Дата",
	},
	FooterScanHint: {
		English:  "Scan to view this document online",
		Estonian: "Skaneeri, et avada dokument veebis",
		Russian:  "Отсканируйте, чтобы открыть документ онлайн",
	},
}

// Normalize maps any language value to a supported Language. Matching is
// case-insensitive; anything unrecognized (including empty) becomes English.
func Normalize(lang string) Language {
	switch Language(strings.ToLower(strings.TrimSpace(lang))) {
	case Estonian:
		return Estonian
	case Russian:
		return Russian
	default:
		return English
	}
}

// Lookup returns the string for id in lang, falling back to English when the
// language entry is missing. Unknown IDs return the empty string.
func Lookup(id StringID, lang Language) string {
	entries, ok := table[id]
	if !ok {
		return ""
	}
	if s, ok := entries[lang]; ok {
		return s
	}
	return entries[English]
}

// T resolves id for a raw (unnormalized) language value.
func T(id StringID, lang string) string {
	return Lookup(id, Normalize(lang))
}
