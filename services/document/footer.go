package document

import (
	"encoding/base64"
	"html/template"

	"carebrief/i18n"
	"carebrief/models"

	qrcode "github.com/skip2/go-qrcode"
)

// QREncoder turns a value into a PNG image. It is injectable so tests can
// observe whether QR generation was invoked at all.
type QREncoder func(content string, size int) ([]byte, error)

// EncodeQRPNG is the default encoder.
func EncodeQRPNG(content string, size int) ([]byte, error) {
	return qrcode.Encode(content, qrcode.Medium, size)
}

const qrImageSize = 192

var footerTmpl = template.Must(template.New("footer").Parse(`<footer class="doc-footer">
{{if .QRSrc}}<div class="doc-footer__qr"><img src="{{.QRSrc}}" alt=""><span class="doc-footer__qr-hint">{{.ScanHint}}</span></div>{{end}}
<dl class="doc-footer__signature">
<dt>{{.PreparedByLabel}}</dt><dd>{{.Clinician}}</dd>
<dt>{{.DateLabel}}</dt><dd>{{.Date}}</dd>
</dl>
</footer>`))

type footerData struct {
	// QRSrc is a data URI; typed template.URL because html/template
	// filters data: schemes out of plain string URL attributes.
	QRSrc           template.URL
	ScanHint        string
	PreparedByLabel string
	Clinician       string
	DateLabel       string
	Date            string
}

// renderFooter renders the signature block, always, and the QR slot only when
// both showQR is set and a document URL is present. The encoder is not
// invoked otherwise.
func (c *Composer) renderFooter(data models.PrintFooterData, showQR bool) template.HTML {
	fd := footerData{
		ScanHint:        i18n.T(i18n.FooterScanHint, data.Language),
		PreparedByLabel: i18n.T(i18n.FooterPreparedBy, data.Language),
		Clinician:       data.ClinicianName,
		DateLabel:       i18n.T(i18n.FooterDate, data.Language),
		Date:            data.Date,
	}
	if showQR && data.DocumentURL != "" {
		if png, err := c.qr(data.DocumentURL, qrImageSize); err == nil {
			fd.QRSrc = template.URL("data:image/png;base64," + base64.StdEncoding.EncodeToString(png))
		}
	}
	return execTemplate(footerTmpl, fd)
}
