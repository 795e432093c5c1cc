package http

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prompt-optimizer/backend/internal/features/generation/application"
	templatesdomain "prompt-optimizer/backend/internal/features/templates/domain"
	templatesinfra "prompt-optimizer/backend/internal/features/templates/infrastructure"
)

func newGenerationRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := templatesdomain.NewStore(templatesinfra.DefaultTemplates(), templatesinfra.DefaultBestPractices())
	require.NoError(t, err)

	r := gin.New()
	r.POST("/api/generate", NewGenerationHandler(application.NewGenerationService(store)).GeneratePromptHandler)
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestGeneratePromptHandler(t *testing.T) {
	w := post(newGenerationRouter(t), `{"goal": "Write a blog post about cats", "target_model": "unknown-model", "style": "concise", "formats": []}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t,
		"Write a blog post about cats Please provide a concise answer in 3-5 sentences. Please provide a comprehensive response.",
		body["prompt"])
}

func TestGeneratePromptHandlerPersona(t *testing.T) {
	w := post(newGenerationRouter(t), `{"goal": "Review my software architecture", "target_model": "chatgpt", "formats": ["persona"]}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "As an expert software engineering, Review my software architecture")
}

func TestGeneratePromptHandlerErrors(t *testing.T) {
	r := newGenerationRouter(t)

	w := post(r, `{"goal": "", "target_model": "chatgpt"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "goal is required"}`, w.Body.String())

	w = post(r, `not json`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}
