package controllers

import (
	"log/slog"
	"net/http"

	"cafesite/internal/delivery/http/helpers"
	"cafesite/internal/domain"
)

// ReviewController serves the cached third-party review feed.
type ReviewController struct {
	Logger  *slog.Logger
	Service domain.ReviewService
}

// NewReviewController creates a ReviewController with the given logger and service.
func NewReviewController(logger *slog.Logger, svc domain.ReviewService) *ReviewController {
	return &ReviewController{
		Logger:  logger,
		Service: svc,
	}
}

// List godoc
// @Summary List customer reviews
// @Description Returns the third-party review feed. The feed is cached and refetched in full after the cache TTL.
// @Tags reviews
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the review list"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reviews [get]
func (c *ReviewController) List(w http.ResponseWriter, r *http.Request) {
	reviews, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reviews)
}
