package document

// printCSS carries the whole visual contract for the two-page print layout.
// Variant classes only exist here; the renderers tag markup and nothing else.
const printCSS = `
:root {
  --teal: #0f766e;
  --pink: #be185d;
  --red: #dc2626;
  --neutral: #64748b;
  --contacts: #0369a1;
  --ink: #1e293b;
  --card-radius: 12px;
  --card-padding: 16px;
  --card-gap: 12px;
}

* { box-sizing: border-box; }

body {
  margin: 0;
  font-family: "Helvetica Neue", Arial, sans-serif;
  color: var(--ink);
  background: #fff;
}

.page {
  width: 210mm;
  min-height: 297mm;
  margin: 0 auto;
  padding: 14mm 12mm;
  page-break-after: always;
}

.page:last-child { page-break-after: auto; }

.doc-header { display: flex; align-items: center; gap: 14px; margin-bottom: 18px; }
.doc-header__brand { width: 44px; height: 44px; }
.doc-header__main { margin: 0; font-size: 22px; }
.doc-header__sub { margin: 2px 0 0; font-size: 13px; color: var(--neutral); }
.doc-header__date { margin-left: auto; font-size: 13px; color: var(--neutral); }

.brand-strip { margin-bottom: 14px; }
.brand-strip svg { width: 32px; height: 32px; }

.grid {
  display: flex;
  flex-wrap: wrap;
  gap: var(--card-gap);
}

.card {
  flex: 1 1 calc(50% - var(--card-gap));
  background: #fff;
  border: 2px solid var(--neutral);
  border-radius: var(--card-radius);
  padding: var(--card-padding);
  break-inside: avoid;
}

.card__header { display: flex; align-items: center; gap: 8px; margin-bottom: 8px; }
.card__icon { font-size: 18px; }
.card__title { margin: 0; font-size: 15px; }
.card__body { font-size: 13px; line-height: 1.45; }
.card__body p { margin: 0 0 8px; }
.card__body ul { margin: 0 0 8px; padding-left: 18px; }

.card--teal { border-color: var(--teal); }
.card--teal .card__title { color: var(--teal); }
.card--pink { border-color: var(--pink); }
.card--pink .card__title { color: var(--pink); }
.card--red { border-color: var(--red); }
.card--red .card__title { color: var(--red); }
.card--neutral { border-color: var(--neutral); }
.card--neutral .card__title { color: var(--neutral); }
.card--contacts { border-color: var(--contacts); }
.card--contacts .card__title { color: var(--contacts); }

.doc-footer {
  display: flex;
  align-items: center;
  gap: 18px;
  margin-top: 18px;
  padding: var(--card-padding);
  background: #f1f5f9;
  border-radius: var(--card-radius);
}

.doc-footer__qr { display: flex; flex-direction: column; align-items: center; gap: 4px; }
.doc-footer__qr img { width: 96px; height: 96px; }
.doc-footer__qr-hint { font-size: 10px; color: var(--neutral); max-width: 120px; text-align: center; }

.doc-footer__signature {
  flex: 1;
  background: #fff;
  border-radius: var(--card-radius);
  padding: 12px var(--card-padding);
  font-size: 13px;
}
.doc-footer__signature dt { font-size: 11px; color: var(--neutral); }
.doc-footer__signature dd { margin: 0 0 8px; font-weight: 600; }

@media print {
  .page { margin: 0; }
}
`

// brandMark is the inline logo used in both page headers. Asset pipelines are
// out of scope, so the mark ships with the stylesheet.
const brandMark = `<svg viewBox="0 0 24 24" xmlns="http://www.w3.org/2000/svg" aria-hidden="true"><circle cx="12" cy="12" r="11" fill="#0f766e"/><path d="M12 6v12M6 12h12" stroke="#fff" stroke-width="2.4" stroke-linecap="round"/></svg>`
