package http

import (
	"errors"

	"github.com/gin-gonic/gin"

	"smart-task-analyzer/internal/analyzer"
	pkgErrors "smart-task-analyzer/pkg/errors"
	"smart-task-analyzer/pkg/response"
)

// Analyze godoc
// @Summary     Analyze tasks
// @Description Scores and ranks a batch of tasks. Invalid records are reported in errors;
// @Description a dependency cycle rejects the whole batch.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body analyzeReq true "Tasks to analyze"
// @Success     200  {object} analyzeResp
// @Failure     400  {object} response.Resp "Bad Request or circular_dependency"
// @Failure     429  {object} response.Resp "Too Many Requests"
// @Failure     500  {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/analyze [POST]
func (h *handler) Analyze(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processAnalyzeReq(c)
	if err != nil {
		h.l.Warnf(ctx, "analyzer.delivery.http.Analyze: %v", err)
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	output, err := h.uc.Analyze(ctx, input)
	if err != nil {
		h.l.Errorf(ctx, "uc.Analyze: %v", err)
		h.respondError(c, err)
		return
	}

	if output.Cycle != nil {
		response.ErrorWithDetails(c, errCircularDependency, cycleResp{Cycle: output.Cycle}, output.Errors)
		return
	}

	response.OK(c, h.newAnalyzeResp(output))
}

// SuggestGet godoc
// @Summary     Suggest tasks
// @Description Returns the top ranked tasks with a short reason each. The batch is passed
// @Description as a URL-encoded JSON array in the tasks parameter.
// @Tags        Tasks
// @Produce     json
// @Param       tasks    query string true  "JSON array of tasks"
// @Param       today    query string false "Reference date (ISO or relative, e.g. tomorrow)"
// @Param       strategy query string false "smart, fastest, impact or deadline"
// @Param       limit    query int    false "Number of suggestions (default: 3)"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request or circular_dependency"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/suggest [GET]
func (h *handler) SuggestGet(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSuggestGetReq(c)
	if err != nil {
		h.l.Warnf(ctx, "analyzer.delivery.http.SuggestGet: %v", err)
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	h.suggest(c, input)
}

// SuggestPost godoc
// @Summary     Suggest tasks
// @Description Same as the GET form with the analyze request body plus an optional limit.
// @Tags        Tasks
// @Accept      json
// @Produce     json
// @Param       body body suggestReq true "Tasks to rank"
// @Success     200 {object} suggestResp
// @Failure     400 {object} response.Resp "Bad Request or circular_dependency"
// @Failure     429 {object} response.Resp "Too Many Requests"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/tasks/suggest [POST]
func (h *handler) SuggestPost(c *gin.Context) {
	ctx := c.Request.Context()

	input, err := h.processSuggestPostReq(c)
	if err != nil {
		h.l.Warnf(ctx, "analyzer.delivery.http.SuggestPost: %v", err)
		response.Error(c, h.mapRequestError(err), nil)
		return
	}

	h.suggest(c, input)
}

func (h *handler) suggest(c *gin.Context, input analyzer.SuggestInput) {
	ctx := c.Request.Context()

	output, err := h.uc.Suggest(ctx, input)
	if err != nil {
		var cycleErr *analyzer.CycleError
		if errors.As(err, &cycleErr) {
			response.ErrorWithDetails(c, errCircularDependency, cycleResp{Cycle: cycleErr.Path}, cycleErr.Errors)
			return
		}
		h.l.Errorf(ctx, "uc.Suggest: %v", err)
		h.respondError(c, err)
		return
	}

	response.OK(c, h.newSuggestResp(output))
}

// respondError reports a use-case error. Unknown errors become a 500.
func (h *handler) respondError(c *gin.Context, err error) {
	mapped := h.mapError(err)
	if mapped == pkgErrors.ErrInternalServerError {
		response.InternalError(c, err)
		return
	}
	response.Error(c, mapped, nil)
}
