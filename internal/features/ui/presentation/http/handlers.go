package http

import (
	"embed"
	"html/template"
	"log/slog"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/render"

	"prompt-optimizer/backend/internal/apperr"
	evaluationapp "prompt-optimizer/backend/internal/features/evaluation/application"
	evaluationdomain "prompt-optimizer/backend/internal/features/evaluation/domain"
	generationapp "prompt-optimizer/backend/internal/features/generation/application"
	generationdomain "prompt-optimizer/backend/internal/features/generation/domain"
	gatewayapp "prompt-optimizer/backend/internal/features/modelgateway/application"
	gatewayhttp "prompt-optimizer/backend/internal/features/modelgateway/presentation/http"
	optimizationapp "prompt-optimizer/backend/internal/features/optimization/application"
	optimizationdomain "prompt-optimizer/backend/internal/features/optimization/domain"
)

//go:embed templates/*.html
var templateFS embed.FS

var pageTemplate = template.Must(template.ParseFS(templateFS, "templates/*.html"))

type scoreRow struct {
	Name  string
	Score float64
}

type resultView struct {
	Title       string
	Text        string
	Preview     template.HTML
	Note        string
	Scores      []scoreRow
	Overall     float64
	Suggestions []string
}

type pageData struct {
	Models   []string
	Styles   []generationdomain.Style
	Formats  []generationdomain.Format
	Levels   []optimizationdomain.OptimizationLevel
	Criteria []evaluationdomain.Criterion
	Result   *resultView
	Error    string
}

// UIHandler serves the HTML forms in front of the prompt services.
type UIHandler struct {
	generationService generationapp.GenerationService
	optimizerService  optimizationapp.OptimizerService
	evaluationService evaluationapp.EvaluationService
	testerService     gatewayapp.TesterService
	models            []string
}

// NewUIHandler creates a new UIHandler. models fills the target model selects.
func NewUIHandler(
	generationService generationapp.GenerationService,
	optimizerService optimizationapp.OptimizerService,
	evaluationService evaluationapp.EvaluationService,
	testerService gatewayapp.TesterService,
	models []string,
) *UIHandler {
	return &UIHandler{
		generationService: generationService,
		optimizerService:  optimizerService,
		evaluationService: evaluationService,
		testerService:     testerService,
		models:            models,
	}
}

// RegisterRoutes mounts the index page and the form endpoints.
func (h *UIHandler) RegisterRoutes(r gin.IRoutes) {
	r.GET("/", h.IndexHandler)
	r.POST("/ui/generate", h.GenerateHandler)
	r.POST("/ui/optimize", h.OptimizeHandler)
	r.POST("/ui/evaluate", h.EvaluateHandler)
	r.POST("/ui/test", h.TestHandler)
}

// IndexHandler renders the empty forms.
func (h *UIHandler) IndexHandler(c *gin.Context) {
	h.render(c, http.StatusOK, nil, "")
}

// GenerateHandler handles the generate form.
func (h *UIHandler) GenerateHandler(c *gin.Context) {
	var req generationdomain.GenerationRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	prompt, err := h.generationService.Generate(c.Request.Context(), &req)
	if err != nil {
		h.render(c, apperr.HTTPStatus(err), nil, "Error generating prompt: "+err.Error())
		return
	}
	h.render(c, http.StatusOK, promptView("Generated prompt", prompt, ""), "")
}

// OptimizeHandler handles the optimize form.
func (h *UIHandler) OptimizeHandler(c *gin.Context) {
	var req optimizationdomain.RewriteRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	result, err := h.optimizerService.Optimize(c.Request.Context(), &req)
	if err != nil {
		h.render(c, apperr.HTTPStatus(err), nil, "Error optimizing prompt: "+err.Error())
		return
	}
	if result.Degraded {
		h.render(c, http.StatusOK, &resultView{Title: "Optimized prompt", Note: result.OptimizedPrompt}, "")
		return
	}
	h.render(c, http.StatusOK, promptView("Optimized prompt", result.OptimizedPrompt, ""), "")
}

// EvaluateHandler handles the evaluate form.
func (h *UIHandler) EvaluateHandler(c *gin.Context) {
	var req evaluationdomain.EvaluationRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	result, err := h.evaluationService.Evaluate(req.Prompt, req.Criteria)
	if err != nil {
		h.render(c, apperr.HTTPStatus(err), nil, err.Error())
		return
	}

	view := &resultView{Title: "Evaluation", Overall: result.OverallScore, Suggestions: result.Suggestions}
	for _, criterion := range evaluationdomain.DefaultCriteria {
		if score, ok := result.Scores[criterion]; ok {
			view.Scores = append(view.Scores, scoreRow{Name: string(criterion), Score: score})
		}
	}
	h.render(c, http.StatusOK, view, "")
}

// TestHandler handles the test form.
func (h *UIHandler) TestHandler(c *gin.Context) {
	var req gatewayhttp.TestPromptRequest
	if err := c.ShouldBind(&req); err != nil {
		h.render(c, http.StatusBadRequest, nil, err.Error())
		return
	}

	result, err := h.testerService.TestPrompt(c.Request.Context(), req.Prompt, req.TargetModel)
	if err != nil {
		h.render(c, apperr.HTTPStatus(err), nil, err.Error())
		return
	}
	if result.Degraded {
		h.render(c, http.StatusOK, &resultView{Title: "Model response", Note: result.Output}, "")
		return
	}
	h.render(c, http.StatusOK, promptView("Model response", result.Output, "Answered by "+result.Model), "")
}

func promptView(title, text, note string) *resultView {
	view := &resultView{Title: title, Text: text, Note: note}
	preview, err := renderMarkdown(text)
	if err != nil {
		slog.Warn("markdown preview failed", "error", err)
		return view
	}
	view.Preview = preview
	return view
}

func (h *UIHandler) render(c *gin.Context, status int, result *resultView, errMsg string) {
	c.Render(status, render.HTML{
		Template: pageTemplate,
		Name:     "index.html",
		Data: pageData{
			Models:   h.models,
			Styles:   generationdomain.Styles,
			Formats:  generationdomain.Formats,
			Levels:   optimizationdomain.Levels,
			Criteria: evaluationdomain.DefaultCriteria,
			Result:   result,
			Error:    errMsg,
		},
	})
}
