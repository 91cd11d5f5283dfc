package document

import (
	"bytes"
	"html/template"

	"carebrief/models"
)

var cardTmpl = template.Must(template.New("card").Parse(`<section class="card card--{{.Variant}}">
<header class="card__header"><span class="card__icon">{{.Icon}}</span><h2 class="card__title">{{.Title}}</h2></header>
<div class="card__body">{{.Body}}</div>
</section>`))

type cardData struct {
	Variant string
	Icon    string
	Title   string
	Body    template.HTML
}

// RenderSection produces one bordered content card. It accepts arbitrary
// markdown, including the empty string, and never fails.
func RenderSection(title, content string, variant models.SectionVariant, icon string) template.HTML {
	return execTemplate(cardTmpl, cardData{
		Variant: string(variant),
		Icon:    icon,
		Title:   title,
		Body:    renderMarkdown(content),
	})
}

// execTemplate runs a static template; with fixed templates the error path is
// unreachable, so the result degrades to empty markup instead of propagating.
func execTemplate(t *template.Template, data any) template.HTML {
	var buf bytes.Buffer
	if err := t.Execute(&buf, data); err != nil {
		return ""
	}
	return template.HTML(buf.String())
}
