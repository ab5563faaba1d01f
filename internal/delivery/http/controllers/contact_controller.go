package controllers

import (
	"errors"
	"log/slog"
	"net/http"

	"cafesite/internal/delivery/http/helpers"
	"cafesite/internal/domain"
)

// ContactRequest is the request body for POST /contact.
type ContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Message string `json:"message"`
}

// FormTokenResponse is the response body for GET /form-token.
type FormTokenResponse struct {
	Token string `json:"token"`
}

// ContactController handles the public contact form and form-token issuance.
type ContactController struct {
	Logger     *slog.Logger
	Service    domain.ContactService
	FormTokens domain.FormTokenService
}

// NewContactController creates a ContactController. formTokens may be nil to
// disable form-token checking.
func NewContactController(logger *slog.Logger, svc domain.ContactService, formTokens domain.FormTokenService) *ContactController {
	return &ContactController{
		Logger:     logger,
		Service:    svc,
		FormTokens: formTokens,
	}
}

// Submit godoc
// @Summary Submit a contact message
// @Description Validate the message and forward it to the café's notification address. Nothing is stored.
// @Tags contact
// @Accept json
// @Produce json
// @Param X-Form-Token header string false "Single-use form token from GET /form-token"
// @Param body body ContactRequest true "Contact message"
// @Success 200 {object} helpers.APIResponse "data confirms the message was sent"
// @Failure 400 {object} helpers.APIResponse "error.code: validation_failed, error.fields lists each failing field"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /contact [post]
func (c *ContactController) Submit(w http.ResponseWriter, r *http.Request) {
	if !consumeFormToken(w, r, c.FormTokens, c.Logger) {
		return
	}
	var req ContactRequest
	if !helpers.DecodeAndValidate(w, r, &req) {
		return
	}
	msg := &domain.ContactMessage{Name: req.Name, Email: req.Email, Message: req.Message}
	if err := c.Service.Submit(r.Context(), msg); err != nil {
		var verr *domain.ValidationError
		if errors.As(err, &verr) {
			helpers.WriteJSONValidationError(w, verr.Fields)
			return
		}
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, map[string]string{"status": "sent"})
}

// FormToken godoc
// @Summary Issue a single-use form token
// @Description Returns a token the public forms may present in the X-Form-Token header. Each token is valid once.
// @Tags contact
// @Produce json
// @Success 200 {object} helpers.APIResponse "data contains the token"
// @Failure 500 {object} helpers.APIResponse "error.code: internal_error"
// @Router /form-token [get]
func (c *ContactController) FormToken(w http.ResponseWriter, r *http.Request) {
	token, err := c.FormTokens.Issue(r.Context())
	if err != nil {
		c.Logger.ErrorContext(r.Context(), "request failed", "path", r.URL.Path, "method", r.Method, "err", err)
		helpers.WriteJSONError(w, http.StatusInternalServerError, helpers.ErrCodeInternalError, err.Error())
		return
	}
	helpers.WriteJSONSuccess(w, http.StatusOK, FormTokenResponse{Token: token})
}
