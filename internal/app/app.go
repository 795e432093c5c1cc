// Package app wires configuration, the template store, the model gateway and the
// feature services together for the server and the CLI.
package app

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"slices"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"prompt-optimizer/backend/internal/config"
	configapp "prompt-optimizer/backend/internal/features/config/application"
	configdomain "prompt-optimizer/backend/internal/features/config/domain"
	confighttp "prompt-optimizer/backend/internal/features/config/presentation/http"
	evaluationapp "prompt-optimizer/backend/internal/features/evaluation/application"
	evaluationhttp "prompt-optimizer/backend/internal/features/evaluation/presentation/http"
	generationapp "prompt-optimizer/backend/internal/features/generation/application"
	generationhttp "prompt-optimizer/backend/internal/features/generation/presentation/http"
	gatewayapp "prompt-optimizer/backend/internal/features/modelgateway/application"
	gatewaydomain "prompt-optimizer/backend/internal/features/modelgateway/domain"
	gatewayinfra "prompt-optimizer/backend/internal/features/modelgateway/infrastructure"
	gatewayhttp "prompt-optimizer/backend/internal/features/modelgateway/presentation/http"
	optimizationapp "prompt-optimizer/backend/internal/features/optimization/application"
	optimizationhttp "prompt-optimizer/backend/internal/features/optimization/presentation/http"
	templatesdomain "prompt-optimizer/backend/internal/features/templates/domain"
	templatesinfra "prompt-optimizer/backend/internal/features/templates/infrastructure"
	templateshttp "prompt-optimizer/backend/internal/features/templates/presentation/http"
	uihttp "prompt-optimizer/backend/internal/features/ui/presentation/http"
	"prompt-optimizer/backend/internal/logging"
	"prompt-optimizer/backend/internal/textproc"
)

// App holds the loaded configuration and every service built from it.
type App struct {
	Config           *configdomain.AppConfig
	ConfigPath       string
	AppConfigService config.AppConfigService
	ConfigService    configapp.ConfigService

	Store   *templatesdomain.Store
	Gateway *gatewayinfra.Gateway
	Mapping gatewaydomain.ModelMapping

	Generation generationapp.GenerationService
	Optimizer  optimizationapp.OptimizerService
	Evaluation evaluationapp.EvaluationService
	Tester     gatewayapp.TesterService
}

// New loads the template tables from cfg.DataDir and builds the services.
// A missing or invalid table is returned as an *apperr.ConfigurationError.
func New(cfg *configdomain.AppConfig, appConfigService config.AppConfigService, configPath string) (*App, error) {
	store, err := templatesinfra.LoadStore(cfg.DataDir)
	if err != nil {
		return nil, err
	}

	gateway, err := gatewayinfra.NewGateway(cfg.Gateway)
	if err != nil {
		return nil, err
	}

	mapping := gatewaydomain.ModelMapping(cfg.ModelMapping)
	if _, ok := mapping[gatewaydomain.DefaultMappingKey]; !ok {
		return nil, fmt.Errorf("model_mapping has no %q entry", gatewaydomain.DefaultMappingKey)
	}

	params := cfg.ModelParams
	return &App{
		Config:           cfg,
		ConfigPath:       configPath,
		AppConfigService: appConfigService,
		ConfigService:    configapp.NewConfigService(appConfigService),
		Store:            store,
		Gateway:          gateway,
		Mapping:          mapping,
		Generation:       generationapp.NewGenerationService(store),
		Optimizer: optimizationapp.NewOptimizerService(store, textproc.NewSegmenter(), gateway.Generator, gateway.Embedder, optimizationapp.RewriteSettings{
			Mapping:         mapping,
			MaxOutputLength: params.MaxOutputLength,
		}),
		Evaluation: evaluationapp.NewEvaluationService(),
		Tester: gatewayapp.NewTesterService(gateway.Generator, mapping, gatewaydomain.GenerationParams{
			Temperature: params.Temperature,
			TopP:        params.TopP,
			MaxTokens:   params.MaxTokens,
		}),
	}, nil
}

// Router builds the gin engine with the API, config and UI routes.
func (a *App) Router(logger *slog.Logger) *gin.Engine {
	r := gin.New()
	r.Use(gin.Recovery(), logging.GinLogger(logger))
	if origins := a.Config.Server.CORSOrigins; len(origins) > 0 {
		r.Use(cors.New(corsConfig(origins)))
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	api := r.Group("/api")
	{
		api.POST("/generate", generationhttp.NewGenerationHandler(a.Generation).GeneratePromptHandler)
		api.POST("/optimize", optimizationhttp.NewOptimizationHandler(a.Optimizer).OptimizePromptHandler)
		api.POST("/evaluate", evaluationhttp.NewEvaluationHandler(a.Evaluation).EvaluatePromptHandler)

		gatewayHandler := gatewayhttp.NewGatewayHandler(a.Tester, a.Mapping, a.Gateway.Provider)
		api.POST("/test", gatewayHandler.TestPromptHandler)
		api.GET("/models", gatewayHandler.ListModelsHandler)

		templateshttp.NewTemplateHandler(a.Store).RegisterRoutes(api.Group("/templates"))
	}

	// Config API routes
	configGroup := r.Group("/api/config")
	{
		handler := confighttp.NewAppConfigHandler(a.AppConfigService, a.ConfigService, a.ConfigPath)
		configGroup.GET("/app", handler.GetAppConfigHandler)
		configGroup.POST("/app", handler.SaveAppConfigHandler)
		configGroup.POST("/init", handler.InitWorkspaceHandler)
	}

	uihttp.NewUIHandler(a.Generation, a.Optimizer, a.Evaluation, a.Tester, a.Store.Models()).RegisterRoutes(r)
	return r
}

func corsConfig(origins []string) cors.Config {
	c := cors.Config{
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions},
		AllowHeaders: []string{"Origin", "Content-Type", "Accept", "Authorization"},
		MaxAge:       12 * time.Hour,
	}
	if slices.Contains(origins, "*") {
		c.AllowAllOrigins = true
	} else {
		c.AllowOrigins = origins
	}
	return c
}

// Serve runs the HTTP server until ctx is cancelled, then shuts it down gracefully.
func (a *App) Serve(ctx context.Context, logger *slog.Logger) error {
	srv := &http.Server{
		Addr:              a.Config.Server.Addr,
		Handler:           a.Router(logger),
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		logger.Info("shutting down HTTP server")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Error("HTTP server shutdown error", "error", err)
		}
	}()

	logger.Info("HTTP server starting", "address", srv.Addr, "provider", a.Gateway.Provider, "data_dir", a.Config.DataDir)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		return fmt.Errorf("HTTP server error: %w", err)
	}
	return nil
}
