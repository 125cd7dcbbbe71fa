package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"text-summarizer/domain"
	"text-summarizer/repository"
	"text-summarizer/service"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
)

// CreateSummaryRequest represents the request body for creating a summary
type CreateSummaryRequest struct {
	URL string `json:"url" validate:"required,http_url"`
}

// UpdateSummaryRequest represents the request body for replacing a summary
type UpdateSummaryRequest struct {
	URL     string `json:"url" validate:"required,http_url"`
	Summary string `json:"summary" validate:"required"`
}

// CreateSummaryResponse is returned immediately on creation, before the
// background job has produced any summary text.
type CreateSummaryResponse struct {
	URL string `json:"url"`
	ID  int64  `json:"id"`
}

// SummaryHandler handles the summary CRUD endpoints. Creation persists
// an empty record, submits a background job, and responds without
// waiting for it.
type SummaryHandler struct {
	summaryRepo repository.SummaryRepository
	dispatcher  service.JobDispatcher
	validate    *validator.Validate
	logger      *slog.Logger
}

// NewSummaryHandler creates a new summary handler.
func NewSummaryHandler(summaryRepo repository.SummaryRepository, dispatcher service.JobDispatcher, logger *slog.Logger) *SummaryHandler {
	return &SummaryHandler{
		summaryRepo: summaryRepo,
		dispatcher:  dispatcher,
		validate:    validator.New(),
		logger:      logger,
	}
}

// HandleCreate handles POST /api/v1/summaries requests.
func (h *SummaryHandler) HandleCreate(c echo.Context) error {
	ctx := c.Request().Context()

	var req CreateSummaryRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind create request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("invalid create request", "url", req.URL, "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "URL must be an absolute http(s) URL")
	}

	summary, err := h.summaryRepo.Create(ctx, req.URL)
	if err != nil {
		h.logger.Error("failed to create summary record", "error", err, "url", req.URL)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to create summary")
	}

	// Fire-and-forget: the client polls for the finished summary.
	h.dispatcher.Submit(summary.ID, summary.URL)

	return c.JSON(http.StatusCreated, CreateSummaryResponse{
		ID:  summary.ID,
		URL: summary.URL,
	})
}

// HandleGet handles GET /api/v1/summaries/:id requests.
func (h *SummaryHandler) HandleGet(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid summary ID")
	}

	summary, err := h.summaryRepo.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSummaryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Summary not found")
		}

		h.logger.Error("failed to get summary", "error", err, "id", id)

		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to get summary")
	}

	return c.JSON(http.StatusOK, summary)
}

// HandleList handles GET /api/v1/summaries requests.
func (h *SummaryHandler) HandleList(c echo.Context) error {
	ctx := c.Request().Context()

	summaries, err := h.summaryRepo.FindAll(ctx)
	if err != nil {
		h.logger.Error("failed to list summaries", "error", err)
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to list summaries")
	}

	return c.JSON(http.StatusOK, summaries)
}

// HandleUpdate handles PUT /api/v1/summaries/:id requests.
func (h *SummaryHandler) HandleUpdate(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid summary ID")
	}

	var req UpdateSummaryRequest
	if err := c.Bind(&req); err != nil {
		h.logger.Error("failed to bind update request", "error", err)
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request format")
	}

	if err := h.validate.Struct(&req); err != nil {
		h.logger.Warn("invalid update request", "id", id, "error", err)
		return echo.NewHTTPError(http.StatusUnprocessableEntity, "URL and summary are required")
	}

	summary, err := h.summaryRepo.Update(ctx, id, req.URL, req.Summary)
	if err != nil {
		if errors.Is(err, domain.ErrSummaryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Summary not found")
		}

		h.logger.Error("failed to update summary", "error", err, "id", id)

		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to update summary")
	}

	return c.JSON(http.StatusOK, summary)
}

// HandleDelete handles DELETE /api/v1/summaries/:id requests.
func (h *SummaryHandler) HandleDelete(c echo.Context) error {
	ctx := c.Request().Context()

	id, err := parseID(c.Param("id"))
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid summary ID")
	}

	summary, err := h.summaryRepo.Delete(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrSummaryNotFound) {
			return echo.NewHTTPError(http.StatusNotFound, "Summary not found")
		}

		h.logger.Error("failed to delete summary", "error", err, "id", id)

		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete summary")
	}

	return c.JSON(http.StatusOK, summary)
}

func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, domain.ErrInvalidRequest
	}

	return id, nil
}
