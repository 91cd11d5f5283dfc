package handlers

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carebrief/services/document"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func postRender(t *testing.T, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewDocumentHandler(document.NewComposer())
	router.POST("/api/documents/render", h.RenderDocumentHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/documents/render", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestRenderDocumentReturnsHTML(t *testing.T) {
	w := postRender(t, `{
		"sections": [{"title":"t","content":"Take it **easy**."}],
		"language": "Russian",
		"clinicianName": "Dr. Ivanova",
		"date": "2026-08-31"
	}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")
	body := w.Body.String()
	assert.Contains(t, body, `<html lang="ru">`)
	assert.Contains(t, body, "Выписной эпикриз")
	assert.Contains(t, body, "<strong>easy</strong>")
	assert.Contains(t, body, "Dr. Ivanova")
}

func TestRenderDocumentDefaultsShowQRCode(t *testing.T) {
	// showQrCode omitted defaults to true; with a URL present the QR renders.
	w := postRender(t, `{"sections":[],"language":"english","documentUrl":"https://x/y","date":"d"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "data:image/png;base64,")

	w = postRender(t, `{"sections":[],"language":"english","documentUrl":"https://x/y","date":"d","showQrCode":false}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotContains(t, w.Body.String(), "data:image/png;base64,")
}

func TestRenderDocumentRejectsMalformedBody(t *testing.T) {
	w := postRender(t, `{broken`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
