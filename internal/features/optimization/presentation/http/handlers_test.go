package http

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	gatewaydomain "prompt-optimizer/backend/internal/features/modelgateway/domain"
	"prompt-optimizer/backend/internal/features/modelgateway/domain/mocks"
	"prompt-optimizer/backend/internal/features/optimization/application"
	templatesdomain "prompt-optimizer/backend/internal/features/templates/domain"
	templatesinfra "prompt-optimizer/backend/internal/features/templates/infrastructure"
	"prompt-optimizer/backend/internal/textproc"
)

func newOptimizationRouter(t *testing.T, gen gatewaydomain.Generator, emb gatewaydomain.Embedder) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	store, err := templatesdomain.NewStore(templatesinfra.DefaultTemplates(), templatesinfra.DefaultBestPractices())
	require.NoError(t, err)

	svc := application.NewOptimizerService(store, textproc.NewSegmenter(), gen, emb, application.RewriteSettings{
		Mapping: gatewaydomain.ModelMapping{"default": "gpt-4o-mini"},
	})
	r := gin.New()
	r.POST("/api/optimize", NewOptimizationHandler(svc).OptimizePromptHandler)
	return r
}

func post(r http.Handler, body string) *httptest.ResponseRecorder {
	w := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/optimize", bytes.NewBufferString(body))
	req.Header.Set("Content-Type", "application/json")
	r.ServeHTTP(w, req)
	return w
}

func TestOptimizePromptHandlerMinimal(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newOptimizationRouter(t, mocks.NewMockGenerator(ctrl), mocks.NewMockEmbedder(ctrl))

	w := post(r, `{"prompt": "  hi  ", "target_model": "chatgpt", "optimization_level": "minimal"}`)
	require.Equal(t, http.StatusOK, w.Code)

	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	assert.Equal(t, "success", body["status"])
	assert.Equal(t, "hi.", body["optimized_prompt"])
	assert.Equal(t, "minimal", body["level"])
}

func TestOptimizePromptHandlerMaximumDegraded(t *testing.T) {
	ctrl := gomock.NewController(t)
	gen := mocks.NewMockGenerator(ctrl)
	emb := mocks.NewMockEmbedder(ctrl)
	emb.EXPECT().Embed(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
		func(_ context.Context, texts []string) ([][]float32, error) {
			return make([][]float32, len(texts)), nil
		})
	gen.EXPECT().Generate(gomock.Any(), gomock.Any()).Return("", nil)

	w := post(newOptimizationRouter(t, gen, emb), `{"prompt": "Summarise this report", "target_model": "claude", "optimization_level": "maximum"}`)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `"degraded":true`)
	assert.Contains(t, w.Body.String(), `"matched_template":"default"`)
}

func TestOptimizePromptHandlerValidation(t *testing.T) {
	ctrl := gomock.NewController(t)
	r := newOptimizationRouter(t, mocks.NewMockGenerator(ctrl), mocks.NewMockEmbedder(ctrl))

	w := post(r, `{"prompt": "", "target_model": "chatgpt"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.JSONEq(t, `{"error": "prompt is required"}`, w.Body.String())

	w = post(r, `{"prompt": "hi", "optimization_level": "extreme"}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "optimization_level")
}
