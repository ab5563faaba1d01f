package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"cafesite/internal/delivery/http/helpers"
	"cafesite/internal/domain"
)

// PositionRequest is the request body for POST /careers and PUT /careers/{id}.
type PositionRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	Open        bool   `json:"open"`
}

// Validate implements Validator.
func (p PositionRequest) Validate() []string {
	if strings.TrimSpace(p.Title) == "" {
		return []string{"title is required"}
	}
	return nil
}

// CareerController handles the public careers page and its admin endpoints.
type CareerController struct {
	Logger  *slog.Logger
	Service domain.CareerService
}

// NewCareerController creates a CareerController with the given logger and service.
func NewCareerController(logger *slog.Logger, svc domain.CareerService) *CareerController {
	return &CareerController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *CareerController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "position not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}

// ListOpen godoc
// @Summary List open positions
// @Description Returns positions currently accepting applications.
// @Tags careers
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the open positions"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /careers [get]
func (c *CareerController) ListOpen(w http.ResponseWriter, r *http.Request) {
	positions, err := c.Service.ListOpen(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, positions)
}

// ListAll godoc
// @Summary List all positions
// @Description Returns every position, open or closed, for the back office. Requires Bearer token.
// @Tags careers
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains all positions"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /careers/all [get]
func (c *CareerController) ListAll(w http.ResponseWriter, r *http.Request) {
	positions, err := c.Service.ListAll(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, positions)
}

// Create godoc
// @Summary Create a position
// @Tags careers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body PositionRequest true "Position data"
// @Success 201 {object} helpers.APIResponse "data contains the created position"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Router /careers [post]
func (c *CareerController) Create(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	position := &domain.Position{Title: req.Title, Description: req.Description, Open: req.Open}
	if err := c.Service.Create(r.Context(), position); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, position)
}

// Update godoc
// @Summary Update a position
// @Tags careers
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Position ID"
// @Param body body PositionRequest true "Position data"
// @Success 200 {object} helpers.APIResponse "data contains the updated position"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /careers/{id} [put]
func (c *CareerController) Update(w http.ResponseWriter, r *http.Request) {
	var req PositionRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	position := &domain.Position{ID: r.PathValue("id"), Title: req.Title, Description: req.Description, Open: req.Open}
	updated, err := c.Service.Update(r.Context(), position)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a position
// @Tags careers
// @Produce json
// @Security BearerAuth
// @Param id path string true "Position ID"
// @Success 200 {object} helpers.APIResponse "data contains the deleted position id"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /careers/{id} [delete]
func (c *CareerController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.Delete(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": id})
}
