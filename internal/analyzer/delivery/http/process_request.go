package http

import (
	"encoding/json"

	"github.com/gin-gonic/gin"

	"smart-task-analyzer/internal/analyzer"
)

// processAnalyzeReq binds and validates the analyze request body.
func (h *handler) processAnalyzeReq(c *gin.Context) (analyzer.AnalyzeInput, error) {
	var req analyzeReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return analyzer.AnalyzeInput{}, err
	}
	if err := req.validate(); err != nil {
		return analyzer.AnalyzeInput{}, err
	}
	return req.toInput(h.dateMath, h.now())
}

// processSuggestPostReq binds the suggest body, which is the analyze body plus a limit.
func (h *handler) processSuggestPostReq(c *gin.Context) (analyzer.SuggestInput, error) {
	var req suggestReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return analyzer.SuggestInput{}, err
	}
	if err := req.validate(); err != nil {
		return analyzer.SuggestInput{}, err
	}
	return req.toInput(h.dateMath, h.now())
}

// processSuggestGetReq binds the query string and decodes the tasks parameter.
func (h *handler) processSuggestGetReq(c *gin.Context) (analyzer.SuggestInput, error) {
	var q suggestQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		return analyzer.SuggestInput{}, err
	}
	if q.Tasks == "" {
		return analyzer.SuggestInput{}, analyzer.ErrMissingTasksParam
	}

	var tasks []map[string]any
	if err := json.Unmarshal([]byte(q.Tasks), &tasks); err != nil {
		return analyzer.SuggestInput{}, analyzer.ErrInvalidTasksJSON
	}

	req := suggestReq{
		analyzeReq: analyzeReq{
			Tasks:    tasks,
			Today:    q.Today,
			Strategy: q.Strategy,
		},
		Limit: q.Limit,
	}
	if err := req.validate(); err != nil {
		return analyzer.SuggestInput{}, err
	}
	return req.toInput(h.dateMath, h.now())
}
