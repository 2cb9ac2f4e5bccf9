package http

import (
	"time"

	"github.com/gin-gonic/gin"

	"smart-task-analyzer/internal/analyzer"
	"smart-task-analyzer/pkg/datemath"
	"smart-task-analyzer/pkg/log"
)

// Handler is the public interface for the analyzer HTTP delivery layer.
type Handler interface {
	Analyze(c *gin.Context)
	SuggestGet(c *gin.Context)
	SuggestPost(c *gin.Context)
}

type handler struct {
	l        log.Logger
	uc       analyzer.UseCase
	dateMath *datemath.Parser
	now      func() time.Time
}

// New creates a new HTTP handler for the analyzer domain. dateMath resolves
// the optional "today" request field.
func New(l log.Logger, uc analyzer.UseCase, dateMath *datemath.Parser) *handler {
	return &handler{
		l:        l,
		uc:       uc,
		dateMath: dateMath,
		now:      time.Now,
	}
}
