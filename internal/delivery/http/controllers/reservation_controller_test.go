package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cafesite/internal/delivery/http/helpers"
	"cafesite/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testLogger is a no-op logger for controller tests so we don't assert on log output.
var testLogger = slog.New(slog.NewTextHandler(io.Discard, &slog.HandlerOptions{Level: slog.LevelError}))

// fakeReservationService implements domain.ReservationService for handler tests.
type fakeReservationService struct {
	createErr       error
	createResult    *domain.Reservation
	listErr         error
	listResult      []*domain.Reservation
	availability    bool
	availabilityErr error
	setStatusErr    error
	setStatusResult *domain.Reservation
	deleteErr       error
	lastCreate      *domain.Reservation
	lastCheckDate   string
	lastStatusID    string
	lastStatus      string
	lastDeleteID    string
}

func (f *fakeReservationService) Create(ctx context.Context, res *domain.Reservation) (*domain.Reservation, error) {
	f.lastCreate = res
	if f.createErr != nil {
		return nil, f.createErr
	}
	if f.createResult != nil {
		return f.createResult, nil
	}
	return res, nil
}

func (f *fakeReservationService) List(ctx context.Context) ([]*domain.Reservation, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listResult, nil
}

func (f *fakeReservationService) CheckAvailability(ctx context.Context, date string) (bool, error) {
	f.lastCheckDate = date
	if f.availabilityErr != nil {
		return false, f.availabilityErr
	}
	return f.availability, nil
}

func (f *fakeReservationService) SetStatus(ctx context.Context, id, status string) (*domain.Reservation, error) {
	f.lastStatusID = id
	f.lastStatus = status
	if f.setStatusErr != nil {
		return nil, f.setStatusErr
	}
	return f.setStatusResult, nil
}

func (f *fakeReservationService) Delete(ctx context.Context, id string) error {
	f.lastDeleteID = id
	return f.deleteErr
}

// fakeFormTokenService implements domain.FormTokenService for handler tests.
type fakeFormTokenService struct {
	token      string
	issueErr   error
	consumeOK  bool
	consumeErr error
	lastToken  string
}

func (f *fakeFormTokenService) Issue(ctx context.Context) (string, error) {
	if f.issueErr != nil {
		return "", f.issueErr
	}
	return f.token, nil
}

func (f *fakeFormTokenService) Consume(ctx context.Context, token string) (bool, error) {
	f.lastToken = token
	if f.consumeErr != nil {
		return false, f.consumeErr
	}
	return f.consumeOK, nil
}

func decodeEnvelope(t *testing.T, rr *httptest.ResponseRecorder) helpers.APIResponse {
	t.Helper()
	var envelope helpers.APIResponse
	require.NoError(t, json.NewDecoder(rr.Body).Decode(&envelope))
	return envelope
}

func validCreateBody() map[string]any {
	return map[string]any{
		"type":     "experience",
		"sub_type": "experience_classic",
		"name":     "Ana Kovac",
		"email":    "ana@example.com",
		"phone":    "+38640123456",
		"date":     "2030-06-20",
		"time":     "18:30",
		"guests":   4,
		"message":  "",
	}
}

func postJSON(t *testing.T, handler http.HandlerFunc, target string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPost, target, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	rr := httptest.NewRecorder()
	handler(rr, req)
	return rr
}

func TestReservationController_Create(t *testing.T) {
	t.Run("valid request returns 201 with the reservation", func(t *testing.T) {
		svc := &fakeReservationService{
			createResult: &domain.Reservation{ID: "res-1", Status: domain.StatusPending},
		}
		c := NewReservationController(testLogger, svc, nil)

		rr := postJSON(t, c.Create, "/reservations", validCreateBody())

		require.Equal(t, http.StatusCreated, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.Nil(t, envelope.Error)
		assert.Equal(t, "experience", string(svc.lastCreate.Type))
		assert.Equal(t, 4, svc.lastCreate.Guests)
	})

	t.Run("validation failure returns 400 with every field", func(t *testing.T) {
		svc := &fakeReservationService{
			createErr: &domain.ValidationError{Fields: []domain.FieldError{
				{Field: "email", Message: "email is invalid"},
				{Field: "guests", Message: "guests must be at least 1"},
			}},
		}
		c := NewReservationController(testLogger, svc, nil)

		rr := postJSON(t, c.Create, "/reservations", validCreateBody())

		require.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeValidationFailed, envelope.Error.Code)
		require.Len(t, envelope.Error.Fields, 2)
		assert.Equal(t, "email", envelope.Error.Fields[0].Field)
		assert.Equal(t, "guests", envelope.Error.Fields[1].Field)
	})

	t.Run("malformed JSON returns 400", func(t *testing.T) {
		c := NewReservationController(testLogger, &fakeReservationService{}, nil)

		req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader([]byte("{not json")))
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeBadRequest, envelope.Error.Code)
	})

	t.Run("service failure returns 500", func(t *testing.T) {
		svc := &fakeReservationService{createErr: errors.New("db down")}
		c := NewReservationController(testLogger, svc, nil)

		rr := postJSON(t, c.Create, "/reservations", validCreateBody())

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})

	t.Run("live form token is consumed", func(t *testing.T) {
		tokens := &fakeFormTokenService{consumeOK: true}
		svc := &fakeReservationService{createResult: &domain.Reservation{ID: "res-1"}}
		c := NewReservationController(testLogger, svc, tokens)

		raw, err := json.Marshal(validCreateBody())
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader(raw))
		req.Header.Set(FormTokenHeader, "tok-1")
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusCreated, rr.Code)
		assert.Equal(t, "tok-1", tokens.lastToken)
	})

	t.Run("spent form token returns 400", func(t *testing.T) {
		tokens := &fakeFormTokenService{consumeOK: false}
		svc := &fakeReservationService{}
		c := NewReservationController(testLogger, svc, tokens)

		raw, err := json.Marshal(validCreateBody())
		require.NoError(t, err)
		req := httptest.NewRequest(http.MethodPost, "/reservations", bytes.NewReader(raw))
		req.Header.Set(FormTokenHeader, "tok-used")
		rr := httptest.NewRecorder()
		c.Create(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Nil(t, svc.lastCreate, "service must not be called")
	})
}

func TestReservationController_CheckAvailability(t *testing.T) {
	t.Run("available date returns 200", func(t *testing.T) {
		svc := &fakeReservationService{availability: true}
		c := NewReservationController(testLogger, svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/reservations/check-availability?date=2030-06-20", nil)
		rr := httptest.NewRecorder()
		c.CheckAvailability(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "2030-06-20", svc.lastCheckDate)
	})

	t.Run("blocked date returns 409", func(t *testing.T) {
		svc := &fakeReservationService{availability: false}
		c := NewReservationController(testLogger, svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/reservations/check-availability?date=2030-06-20", nil)
		rr := httptest.NewRecorder()
		c.CheckAvailability(rr, req)

		require.Equal(t, http.StatusConflict, rr.Code)
		envelope := decodeEnvelope(t, rr)
		require.NotNil(t, envelope.Error)
		assert.Equal(t, helpers.ErrCodeConflict, envelope.Error.Code)
	})

	t.Run("missing date returns 400", func(t *testing.T) {
		c := NewReservationController(testLogger, &fakeReservationService{}, nil)

		req := httptest.NewRequest(http.MethodGet, "/reservations/check-availability", nil)
		rr := httptest.NewRecorder()
		c.CheckAvailability(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("malformed date returns 400", func(t *testing.T) {
		svc := &fakeReservationService{availabilityErr: domain.ErrInvalidInput}
		c := NewReservationController(testLogger, svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/reservations/check-availability?date=20-06-2030", nil)
		rr := httptest.NewRecorder()
		c.CheckAvailability(rr, req)

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("store failure returns 500", func(t *testing.T) {
		svc := &fakeReservationService{availabilityErr: errors.New("db down")}
		c := NewReservationController(testLogger, svc, nil)

		req := httptest.NewRequest(http.MethodGet, "/reservations/check-availability?date=2030-06-20", nil)
		rr := httptest.NewRecorder()
		c.CheckAvailability(rr, req)

		require.Equal(t, http.StatusInternalServerError, rr.Code)
	})
}

func patchStatus(t *testing.T, c *ReservationController, id string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	require.NoError(t, err)
	req := httptest.NewRequest(http.MethodPatch, "/reservations/"+id, bytes.NewReader(raw))
	req.SetPathValue("id", id)
	rr := httptest.NewRecorder()
	c.UpdateStatus(rr, req)
	return rr
}

func TestReservationController_UpdateStatus(t *testing.T) {
	t.Run("approve returns 200 with the updated reservation", func(t *testing.T) {
		svc := &fakeReservationService{
			setStatusResult: &domain.Reservation{ID: "res-1", Status: domain.StatusApproved},
		}
		c := NewReservationController(testLogger, svc, nil)

		rr := patchStatus(t, c, "res-1", map[string]string{"status": "approved"})

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "res-1", svc.lastStatusID)
		assert.Equal(t, "approved", svc.lastStatus)
	})

	t.Run("status is lowercased before the service sees it", func(t *testing.T) {
		svc := &fakeReservationService{setStatusResult: &domain.Reservation{ID: "res-1"}}
		c := NewReservationController(testLogger, svc, nil)

		rr := patchStatus(t, c, "res-1", map[string]string{"status": " Approved "})

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "approved", svc.lastStatus)
	})

	t.Run("unknown status returns 400", func(t *testing.T) {
		svc := &fakeReservationService{setStatusErr: domain.ErrInvalidStatus}
		c := NewReservationController(testLogger, svc, nil)

		rr := patchStatus(t, c, "res-1", map[string]string{"status": "maybe"})

		require.Equal(t, http.StatusBadRequest, rr.Code)
	})

	t.Run("empty status returns 400 before the service is called", func(t *testing.T) {
		svc := &fakeReservationService{}
		c := NewReservationController(testLogger, svc, nil)

		rr := patchStatus(t, c, "res-1", map[string]string{"status": ""})

		require.Equal(t, http.StatusBadRequest, rr.Code)
		assert.Empty(t, svc.lastStatusID)
	})

	t.Run("unknown reservation returns 404", func(t *testing.T) {
		svc := &fakeReservationService{setStatusErr: domain.ErrNotFound}
		c := NewReservationController(testLogger, svc, nil)

		rr := patchStatus(t, c, "res-missing", map[string]string{"status": "approved"})

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}

func TestReservationController_List(t *testing.T) {
	svc := &fakeReservationService{
		listResult: []*domain.Reservation{{ID: "res-1"}, {ID: "res-2"}},
	}
	c := NewReservationController(testLogger, svc, nil)

	req := httptest.NewRequest(http.MethodGet, "/reservations", nil)
	rr := httptest.NewRecorder()
	c.List(rr, req)

	require.Equal(t, http.StatusOK, rr.Code)
	envelope := decodeEnvelope(t, rr)
	require.Nil(t, envelope.Error)
	items, ok := envelope.Data.([]any)
	require.True(t, ok)
	assert.Len(t, items, 2)
}

func TestReservationController_Delete(t *testing.T) {
	t.Run("delete returns 200", func(t *testing.T) {
		svc := &fakeReservationService{}
		c := NewReservationController(testLogger, svc, nil)

		req := httptest.NewRequest(http.MethodDelete, "/reservations/res-1", nil)
		req.SetPathValue("id", "res-1")
		rr := httptest.NewRecorder()
		c.Delete(rr, req)

		require.Equal(t, http.StatusOK, rr.Code)
		assert.Equal(t, "res-1", svc.lastDeleteID)
	})

	t.Run("unknown reservation returns 404", func(t *testing.T) {
		svc := &fakeReservationService{deleteErr: domain.ErrNotFound}
		c := NewReservationController(testLogger, svc, nil)

		req := httptest.NewRequest(http.MethodDelete, "/reservations/res-missing", nil)
		req.SetPathValue("id", "res-missing")
		rr := httptest.NewRecorder()
		c.Delete(rr, req)

		require.Equal(t, http.StatusNotFound, rr.Code)
	})
}
