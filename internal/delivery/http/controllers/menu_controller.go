package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"cafesite/internal/delivery/http/helpers"
	"cafesite/internal/domain"
)

// CategoryRequest is the request body for POST /categories and PUT /categories/{id}.
type CategoryRequest struct {
	Name     string `json:"name"`
	Slug     string `json:"slug"`
	Position int    `json:"position"`
}

// Validate implements Validator.
func (c CategoryRequest) Validate() []string {
	if strings.TrimSpace(c.Name) == "" {
		return []string{"name is required"}
	}
	return nil
}

// DrinkRequest is the request body for POST /drinks and PUT /drinks/{id}.
type DrinkRequest struct {
	CategoryID  string `json:"category_id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int    `json:"price_cents"`
	Available   bool   `json:"available"`
	Position    int    `json:"position"`
}

// Validate implements Validator.
func (d DrinkRequest) Validate() []string {
	var errs []string
	if strings.TrimSpace(d.Name) == "" {
		errs = append(errs, "name is required")
	}
	if strings.TrimSpace(d.CategoryID) == "" {
		errs = append(errs, "category_id is required")
	}
	if d.PriceCents < 0 {
		errs = append(errs, "price_cents must not be negative")
	}
	return errs
}

// MenuController handles the public menu and the admin category/drink endpoints.
type MenuController struct {
	Logger  *slog.Logger
	Service domain.MenuService
}

// NewMenuController creates a MenuController with the given logger and service.
func NewMenuController(logger *slog.Logger, svc domain.MenuService) *MenuController {
	return &MenuController{
		Logger:  logger,
		Service: svc,
	}
}

func (c *MenuController) writeServiceError(w http.ResponseWriter, r *http.Request, err error) {
	if errors.Is(err, domain.ErrInvalidInput) {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
		return
	}
	if errors.Is(err, domain.ErrNotFound) {
		helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "not found")
		return
	}
	c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
	helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
}

// GetMenu godoc
// @Summary Get the drink menu
// @Description Returns every category with its drinks, in display order.
// @Tags menu
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the menu"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /menu [get]
func (c *MenuController) GetMenu(w http.ResponseWriter, r *http.Request) {
	menu, err := c.Service.GetMenu(r.Context())
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, menu)
}

// CreateCategory godoc
// @Summary Create a menu category
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body CategoryRequest true "Category data"
// @Success 201 {object} helpers.APIResponse "data contains the created category"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /categories [post]
func (c *MenuController) CreateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category := &domain.Category{Name: req.Name, Slug: req.Slug, Position: req.Position}
	if err := c.Service.CreateCategory(r.Context(), category); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, category)
}

// UpdateCategory godoc
// @Summary Update a menu category
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Param body body CategoryRequest true "Category data"
// @Success 200 {object} helpers.APIResponse "data contains the updated category"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /categories/{id} [put]
func (c *MenuController) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	var req CategoryRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	category := &domain.Category{ID: r.PathValue("id"), Name: req.Name, Slug: req.Slug, Position: req.Position}
	updated, err := c.Service.UpdateCategory(r.Context(), category)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteCategory godoc
// @Summary Delete a menu category
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Category ID"
// @Success 200 {object} helpers.APIResponse "data contains the deleted category id"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /categories/{id} [delete]
func (c *MenuController) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.DeleteCategory(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": id})
}

// CreateDrink godoc
// @Summary Create a drink
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body DrinkRequest true "Drink data"
// @Success 201 {object} helpers.APIResponse "data contains the created drink"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found (unknown category)"
// @Router /drinks [post]
func (c *MenuController) CreateDrink(w http.ResponseWriter, r *http.Request) {
	var req DrinkRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	drink := &domain.Drink{
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Available:   req.Available,
		Position:    req.Position,
	}
	if err := c.Service.CreateDrink(r.Context(), drink); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, drink)
}

// UpdateDrink godoc
// @Summary Update a drink
// @Tags menu
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drink ID"
// @Param body body DrinkRequest true "Drink data"
// @Success 200 {object} helpers.APIResponse "data contains the updated drink"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drinks/{id} [put]
func (c *MenuController) UpdateDrink(w http.ResponseWriter, r *http.Request) {
	var req DrinkRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	drink := &domain.Drink{
		ID:          r.PathValue("id"),
		CategoryID:  req.CategoryID,
		Name:        req.Name,
		Description: req.Description,
		PriceCents:  req.PriceCents,
		Available:   req.Available,
		Position:    req.Position,
	}
	updated, err := c.Service.UpdateDrink(r.Context(), drink)
	if err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// DeleteDrink godoc
// @Summary Delete a drink
// @Tags menu
// @Produce json
// @Security BearerAuth
// @Param id path string true "Drink ID"
// @Success 200 {object} helpers.APIResponse "data contains the deleted drink id"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /drinks/{id} [delete]
func (c *MenuController) DeleteDrink(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.DeleteDrink(r.Context(), id); err != nil {
		c.writeServiceError(w, r, err)
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": id})
}
