package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"cafesite/internal/delivery/http/helpers"
	"cafesite/internal/domain"
)

// AddGalleryImageRequest is the request body for POST /gallery.
type AddGalleryImageRequest struct {
	Title    string `json:"title"`
	ImageURL string `json:"image_url"`
	Position int    `json:"position"`
}

// Validate implements Validator.
func (a AddGalleryImageRequest) Validate() []string {
	if strings.TrimSpace(a.ImageURL) == "" {
		return []string{"image_url is required"}
	}
	return nil
}

// GalleryController handles the public gallery and its admin endpoints.
type GalleryController struct {
	Logger  *slog.Logger
	Service domain.GalleryService
}

// NewGalleryController creates a GalleryController with the given logger and service.
func NewGalleryController(logger *slog.Logger, svc domain.GalleryService) *GalleryController {
	return &GalleryController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List gallery images
// @Tags gallery
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the image list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /gallery [get]
func (c *GalleryController) List(w http.ResponseWriter, r *http.Request) {
	images, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, images)
}

// Add godoc
// @Summary Add a gallery image
// @Tags gallery
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param body body AddGalleryImageRequest true "Image data"
// @Success 201 {object} helpers.APIResponse "data contains the created image"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Router /gallery [post]
func (c *GalleryController) Add(w http.ResponseWriter, r *http.Request) {
	var req AddGalleryImageRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	img := &domain.GalleryImage{Title: req.Title, ImageURL: req.ImageURL, Position: req.Position}
	if err := c.Service.Add(r.Context(), img); err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, err.Error())
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, img)
}

// Remove godoc
// @Summary Remove a gallery image
// @Tags gallery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Image ID"
// @Success 200 {object} helpers.APIResponse "data contains the deleted image id"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Router /gallery/{id} [delete]
func (c *GalleryController) Remove(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.Remove(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "image not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": id})
}
