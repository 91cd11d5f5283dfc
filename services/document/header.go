package document

import (
	"html/template"

	"carebrief/i18n"
)

var headerTmpl = template.Must(template.New("header").Parse(`<header class="doc-header">
<div class="doc-header__brand">{{.Brand}}</div>
<div>
<h1 class="doc-header__main">{{.Main}}</h1>
<p class="doc-header__sub">{{.Sub}}</p>
{{if .Hospital}}<p class="doc-header__sub">{{.Hospital}}</p>{{end}}
</div>
<span class="doc-header__date">{{.Date}}</span>
</header>`))

type headerData struct {
	Brand    template.HTML
	Main     string
	Sub      string
	Hospital string
	Date     string
}

// RenderHeader renders the page-one header: brand mark, localized title pair
// and the document date. The hospital name is an extra subtitle line and is
// omitted when empty.
func RenderHeader(language, date, hospitalName string) template.HTML {
	return execTemplate(headerTmpl, headerData{
		Brand:    template.HTML(brandMark),
		Main:     i18n.T(i18n.HeaderMain, language),
		Sub:      i18n.T(i18n.HeaderSub, language),
		Hospital: hospitalName,
		Date:     date,
	})
}

// RenderBrandStrip renders the minimal page-two header, a brand mark only.
func RenderBrandStrip() template.HTML {
	return template.HTML(`<div class="brand-strip">` + brandMark + `</div>`)
}
