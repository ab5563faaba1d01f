package controllers

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"cafesite/internal/delivery/http/helpers"
	"cafesite/internal/domain"
)

// FormTokenHeader carries the single-use token issued by GET /form-token.
const FormTokenHeader = "X-Form-Token"

// CreateReservationRequest is the request body for POST /reservations.
type CreateReservationRequest struct {
	Type    string `json:"type"`
	SubType string `json:"sub_type"`
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Date    string `json:"date"`
	Time    string `json:"time"`
	Guests  int    `json:"guests"`
	Message string `json:"message"`
}

// UpdateReservationStatusRequest is the request body for PATCH /reservations/{id}.
type UpdateReservationStatusRequest struct {
	Status string `json:"status"`
}

// Validate implements Validator.
func (u UpdateReservationStatusRequest) Validate() []string {
	if strings.TrimSpace(u.Status) == "" {
		return []string{"status is required"}
	}
	return nil
}

// AvailabilityResponse is the response body for GET /reservations/check-availability.
type AvailabilityResponse struct {
	Date      string `json:"date"`
	Available bool   `json:"available"`
}

// ReservationController handles the public reservation form and the admin
// reservation endpoints.
type ReservationController struct {
	Logger     *slog.Logger
	Service    domain.ReservationService
	FormTokens domain.FormTokenService
}

// NewReservationController creates a ReservationController. formTokens may be
// nil to disable form-token checking.
func NewReservationController(logger *slog.Logger, svc domain.ReservationService, formTokens domain.FormTokenService) *ReservationController {
	return &ReservationController{
		Logger:     logger,
		Service:    svc,
		FormTokens: formTokens,
	}
}

// consumeFormToken enforces the optional single-use form token. It returns
// false after writing the error response when a presented token is not live.
func consumeFormToken(w http.ResponseWriter, r *http.Request, tokens domain.FormTokenService, logger *slog.Logger) bool {
	token := strings.TrimSpace(r.Header.Get(FormTokenHeader))
	if token == "" || tokens == nil {
		return true
	}
	ok, err := tokens.Consume(r.Context(), token)
	if err != nil {
		logger.ErrorContext(r.Context(), "form token check failed", "path", r.URL.Path, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, "form token check failed")
		return false
	}
	if !ok {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "invalid or expired form token")
		return false
	}
	return true
}

// Create godoc
// @Summary Submit a reservation request
// @Description Create a reservation from the public booking form. The reservation starts in status "pending". Validation reports every failing field at once.
// @Tags reservations
// @Accept json
// @Produce json
// @Param X-Form-Token header string false "Single-use form token from GET /form-token"
// @Param body body CreateReservationRequest true "Reservation data"
// @Success 201 {object} helpers.APIResponse "data contains the created reservation"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed, error.fields lists each failing field"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations [post]
func (c *ReservationController) Create(w http.ResponseWriter, r *http.Request) {
	if !consumeFormToken(w, r, c.FormTokens, c.Logger) {
		return
	}
	var req CreateReservationRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	res := &domain.Reservation{
		Type:    domain.ReservationType(req.Type),
		SubType: domain.ReservationSubType(req.SubType),
		Name:    req.Name,
		Email:   req.Email,
		Phone:   req.Phone,
		Date:    req.Date,
		Time:    req.Time,
		Guests:  req.Guests,
		Message: req.Message,
	}
	created, err := c.Service.Create(r.Context(), res)
	if err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteJSONValidationError(w, verr.Fields)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusCreated, created)
}

// List godoc
// @Summary List all reservations
// @Description Returns every reservation for the back office, ordered by date and time. Requires Bearer token.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Success 200 {object} helpers.APIResponse "data contains the reservation list"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations [get]
func (c *ReservationController) List(w http.ResponseWriter, r *http.Request) {
	reservations, err := c.Service.List(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, reservations)
}

// CheckAvailability godoc
// @Summary Check whether a date accepts large bookings
// @Description Returns 200 when the date is free and 409 when an approved whole-venue reservation already blocks it.
// @Tags reservations
// @Produce json
// @Param date query string true "Date in YYYY-MM-DD"
// @Success 200 {object} helpers.APIResponse "data contains date and available=true"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (missing or malformed date)"
// @Failure 409 {object} helpers.APIResponse "error.code: conflict (date already taken)"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/check-availability [get]
func (c *ReservationController) CheckAvailability(w http.ResponseWriter, r *http.Request) {
	date := strings.TrimSpace(r.URL.Query().Get("date"))
	if date == "" {
		helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date query parameter is required")
		return
	}
	available, err := c.Service.CheckAvailability(r.Context(), date)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "date must be in YYYY-MM-DD format")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	if !available {
		helpers.WriteJSONError(w, http.StatusConflict, helpers.ErrCodeConflict, "date is no longer available")
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, AvailabilityResponse{Date: date, Available: true})
}

// UpdateStatus godoc
// @Summary Update reservation status
// @Description Set a reservation to pending, approved, or rejected. The new status is stored first; the guest notification email is best effort. Requires Bearer token.
// @Tags reservations
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Param body body UpdateReservationStatusRequest true "New status"
// @Success 200 {object} helpers.APIResponse "data contains the updated reservation"
// @Failure 400 {object} helpers.APIResponse "error.code: bad_request (unknown status)"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/{id} [patch]
func (c *ReservationController) UpdateStatus(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	var req UpdateReservationStatusRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	updated, err := c.Service.SetStatus(r.Context(), id, strings.TrimSpace(strings.ToLower(req.Status)))
	if err != nil {
		if errors.Is(err, domain.ErrInvalidStatus) {
			helpers.WriteJSONError(w, http.StatusBadRequest, helpers.ErrCodeBadRequest, "status must be pending, approved, or rejected")
			return
		}
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "reservation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, updated)
}

// Delete godoc
// @Summary Delete a reservation
// @Description Permanently remove a reservation. Requires Bearer token.
// @Tags reservations
// @Produce json
// @Security BearerAuth
// @Param id path string true "Reservation ID"
// @Success 200 {object} helpers.APIResponse "data contains the deleted reservation id"
// @Failure 401 {object} helpers.APIResponse "error.code: unauthorized"
// @Failure 404 {object} helpers.APIResponse "error.code: not_found"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /reservations/{id} [delete]
func (c *ReservationController) Delete(w http.ResponseWriter, r *http.Request) {
	id := r.PathValue("id")
	if err := c.Service.Delete(r.Context(), id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			helpers.WriteJSONError(w, http.StatusNotFound, helpers.ErrCodeNotFound, "reservation not found")
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"id": id})
}
