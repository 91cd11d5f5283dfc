package handlers

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"carebrief/services/draft"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

type stubCompletion struct {
	text string
	err  error
}

func (s stubCompletion) Complete(ctx context.Context, system, user string) (string, error) {
	return s.text, s.err
}

func postDraft(t *testing.T, client draft.CompletionClient, body string) *httptest.ResponseRecorder {
	t.Helper()
	gin.SetMode(gin.TestMode)
	router := gin.New()
	h := NewDraftHandler(draft.NewService(client))
	router.POST("/api/draft", h.GenerateDraftHandler)

	req := httptest.NewRequest(http.MethodPost, "/api/draft", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func TestGenerateDraftSuccess(t *testing.T) {
	w := postDraft(t, stubCompletion{text: "Dear patient"}, `{"technicalNote":"note"}`)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"draft":"Dear patient"`)
	assert.Equal(t, "true", w.Header().Get("Deprecation"))
}

func TestGenerateDraftErrorMapping(t *testing.T) {
	cases := []struct {
		name       string
		err        error
		wantStatus int
	}{
		{"missing key", draft.ErrMissingAPIKey, http.StatusInternalServerError},
		{"rate limited", draft.ErrRateLimited, http.StatusTooManyRequests},
		{"payment required", draft.ErrPaymentRequired, http.StatusPaymentRequired},
		{"generic upstream", draft.ErrUpstream, http.StatusInternalServerError},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := postDraft(t, stubCompletion{err: tc.err}, `{"technicalNote":"note"}`)
			assert.Equal(t, tc.wantStatus, w.Code)
			assert.Contains(t, w.Body.String(), `"error"`)
		})
	}
}

func TestGenerateDraftRejectsMalformedBody(t *testing.T) {
	w := postDraft(t, stubCompletion{text: "x"}, `{not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
