package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyzerHTTP "smart-task-analyzer/internal/analyzer/delivery/http"
	analyzerUC "smart-task-analyzer/internal/analyzer/usecase"
	"smart-task-analyzer/internal/middleware"
)

// setupAnalyzerDomain initializes the analyzer domain and registers its routes.
func (srv HTTPServer) setupAnalyzerDomain(ctx context.Context, api *gin.RouterGroup, mw middleware.Middleware) error {
	// 1. UseCase (the weight repository is injected by main)
	uc := analyzerUC.New(srv.l, srv.weights, srv.dateMath, srv.suggestLimit)

	// 2. HTTP Handler
	h := analyzerHTTP.New(srv.l, uc, srv.dateMath)

	// 3. Routes: registers /api/tasks/analyze and /api/tasks/suggest
	analyzerHTTP.RegisterRoutes(api, h, mw)

	srv.l.Infof(ctx, "Analyzer domain registered")
	return nil
}
