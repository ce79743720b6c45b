package create_reservation

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UniSport-ReservationService/internal/api/middleware"
	createReservation "github.com/m04kA/UniSport-ReservationService/internal/usecase/create_reservation"
)

type fakeUseCase struct {
	resp    *createReservation.Response
	err     error
	lastReq *createReservation.Request
}

func (f *fakeUseCase) Execute(_ context.Context, req *createReservation.Request) (*createReservation.Response, error) {
	f.lastReq = req
	if f.err != nil {
		return nil, f.err
	}
	return f.resp, nil
}

type nopLogger struct{}

func (nopLogger) Info(string, ...interface{})  {}
func (nopLogger) Warn(string, ...interface{})  {}
func (nopLogger) Error(string, ...interface{}) {}

func doRequest(t *testing.T, h *Handler, userID string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	raw, err := json.Marshal(body)
	require.NoError(t, err)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader(raw))
	r.Header.Set(middleware.HeaderUserID, userID)
	w := httptest.NewRecorder()

	middleware.Auth(http.HandlerFunc(h.Handle)).ServeHTTP(w, r)
	return w
}

func TestHandler_Created(t *testing.T) {
	uc := &fakeUseCase{
		resp: &createReservation.Response{
			ID:         "S1_2024-06-03",
			UserID:     "user-1",
			FacilityID: "pool",
			SlotID:     "S1",
			StartTime:  time.Date(2024, 6, 3, 9, 0, 0, 0, time.UTC),
			EndTime:    time.Date(2024, 6, 3, 10, 0, 0, 0, time.UTC),
			Status:     "active",
			CreatedAt:  time.Date(2024, 6, 1, 12, 0, 0, 0, time.UTC),
		},
	}
	h := NewHandler(uc, nopLogger{})

	w := doRequest(t, h, "user-1", CreateReservationRequest{SlotID: "S1", Date: "2024-06-03"})

	require.Equal(t, http.StatusCreated, w.Code)

	var resp ReservationResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "S1_2024-06-03", resp.ID)
	assert.Equal(t, "active", resp.Status)

	// userID берется из заголовка аутентификации, не из тела
	require.NotNil(t, uc.lastReq)
	assert.Equal(t, "user-1", uc.lastReq.UserID)
	assert.Equal(t, "S1", uc.lastReq.SlotID)
	assert.Equal(t, "2024-06-03", uc.lastReq.Date)
}

func TestHandler_AlreadyReservedConflict(t *testing.T) {
	uc := &fakeUseCase{err: createReservation.ErrAlreadyReserved}
	h := NewHandler(uc, nopLogger{})

	w := doRequest(t, h, "user-1", CreateReservationRequest{SlotID: "S1", Date: "2024-06-03"})

	require.Equal(t, http.StatusConflict, w.Code)
	assert.Contains(t, w.Body.String(), "already reserved")
}

func TestHandler_InvalidDateBadRequest(t *testing.T) {
	uc := &fakeUseCase{err: createReservation.ErrInvalidTime}
	h := NewHandler(uc, nopLogger{})

	w := doRequest(t, h, "user-1", CreateReservationRequest{SlotID: "S1", Date: "03.06.2024"})

	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestHandler_MissingUserUnauthorized(t *testing.T) {
	uc := &fakeUseCase{}
	h := NewHandler(uc, nopLogger{})

	w := doRequest(t, h, "", CreateReservationRequest{SlotID: "S1", Date: "2024-06-03"})

	assert.Equal(t, http.StatusUnauthorized, w.Code)
	assert.Nil(t, uc.lastReq)
}

func TestHandler_MalformedBody(t *testing.T) {
	h := NewHandler(&fakeUseCase{}, nopLogger{})

	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", bytes.NewReader([]byte("{not json")))
	r.Header.Set(middleware.HeaderUserID, "user-1")
	w := httptest.NewRecorder()

	h.Handle(w, r)

	assert.Equal(t, http.StatusBadRequest, w.Code)
}
