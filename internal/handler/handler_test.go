package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"github.com/hotel-frontdesk/service-frontdesk/internal/application"
	"github.com/hotel-frontdesk/service-frontdesk/internal/common/domain"
	bookingDomain "github.com/hotel-frontdesk/service-frontdesk/internal/domain/booking"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/guest"
	"github.com/hotel-frontdesk/service-frontdesk/internal/domain/room"
	"github.com/hotel-frontdesk/service-frontdesk/internal/storeclient"
)

// stubDesk overrides only what a test needs; anything else panics.
type stubDesk struct {
	Desk

	board         []application.BoardEntry
	createBooking func(application.BookingInput) (bookingDomain.Booking, error)
	checkOut      func(int64) (bookingDomain.Booking, error)
	createGuest   func(guest.Input) (guest.Guest, error)
	cancelled     []int64
}

func (s *stubDesk) Board(ctx context.Context) ([]application.BoardEntry, error) {
	return s.board, nil
}

func (s *stubDesk) CreateBooking(ctx context.Context, in application.BookingInput) (bookingDomain.Booking, error) {
	return s.createBooking(in)
}

func (s *stubDesk) CheckOut(ctx context.Context, id int64) (bookingDomain.Booking, error) {
	return s.checkOut(id)
}

func (s *stubDesk) CancelBooking(ctx context.Context, id int64) error {
	s.cancelled = append(s.cancelled, id)
	return nil
}

func (s *stubDesk) CreateGuest(ctx context.Context, in guest.Input) (guest.Guest, error) {
	return s.createGuest(in)
}

func newRouter(desk Desk) *gin.Engine {
	gin.SetMode(gin.TestMode)
	return NewRouter(desk, zap.NewNop())
}

func doJSON(t *testing.T, r http.Handler, method, path string, body interface{}) (*httptest.ResponseRecorder, map[string]interface{}) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)

	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return w, out
}

func TestBoard(t *testing.T) {
	desk := &stubDesk{board: []application.BoardEntry{{
		RoomStatus:  bookingDomain.RoomStatus{Room: room.Room{ID: 1, RoomNumber: "201"}, Status: bookingDomain.Available},
		NightlyRate: 7000,
	}}}

	w, body := doJSON(t, newRouter(desk), http.MethodGet, "/api/v1/board", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	data := body["data"].([]interface{})
	require.Len(t, data, 1)
	entry := data[0].(map[string]interface{})
	assert.Equal(t, "available", entry["status"])
	assert.Equal(t, float64(7000), entry["nightly_rate"])
}

func TestCreateBooking_DefaultsActionAndReturnsCreated(t *testing.T) {
	var got application.BookingInput
	desk := &stubDesk{createBooking: func(in application.BookingInput) (bookingDomain.Booking, error) {
		got = in
		return bookingDomain.Booking{ID: 3, RoomID: in.RoomID, Status: bookingDomain.StatusConfirmed, Price: 14000}, nil
	}}

	w, body := doJSON(t, newRouter(desk), http.MethodPost, "/api/v1/bookings", map[string]interface{}{
		"room_id": 1, "guest_ids": []int64{1, 2}, "check_in_date": "2024-05-10", "check_out_date": "2024-05-12",
	})
	assert.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, bookingDomain.ActionBooking, got.Action)
	assert.Equal(t, []int64{1, 2}, got.GuestIDs)
	assert.Equal(t, float64(14000), body["data"].(map[string]interface{})["price"])
}

func TestCreateBooking_ValidationErrorsAre422WithFields(t *testing.T) {
	desk := &stubDesk{createBooking: func(in application.BookingInput) (bookingDomain.Booking, error) {
		return bookingDomain.Booking{}, &application.ActionError{
			Action: application.ActionCreateBooking,
			Err:    domain.NewFieldValidationError("invalid booking", map[string]string{"guests": "select at least one guest"}),
		}
	}}

	w, body := doJSON(t, newRouter(desk), http.MethodPost, "/api/v1/bookings", map[string]interface{}{"room_id": 1})
	assert.Equal(t, http.StatusUnprocessableEntity, w.Code)
	assert.Equal(t, false, body["success"])
	assert.Equal(t, application.ActionCreateBooking, body["action"])
	assert.Equal(t, map[string]interface{}{"guests": "select at least one guest"}, body["fields"])
}

func TestCreateBooking_MissingRoom(t *testing.T) {
	w, _ := doJSON(t, newRouter(&stubDesk{}), http.MethodPost, "/api/v1/bookings", map[string]interface{}{"guest_ids": []int64{1}})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckOut_InvalidTransitionIs409(t *testing.T) {
	desk := &stubDesk{checkOut: func(id int64) (bookingDomain.Booking, error) {
		return bookingDomain.Booking{}, &application.ActionError{
			Action: application.ActionCheckOut,
			Err:    domain.NewInvalidStateError("confirmed", "checked_out"),
		}
	}}

	w, body := doJSON(t, newRouter(desk), http.MethodPost, "/api/v1/bookings/4/checkout", nil)
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, application.ActionCheckOut, body["action"])
}

func TestCreateGuest_StoreErrorRelayed(t *testing.T) {
	desk := &stubDesk{createGuest: func(in guest.Input) (guest.Guest, error) {
		return guest.Guest{}, &application.ActionError{
			Action: application.ActionCreateGuest,
			Err:    &storeclient.StoreError{StatusCode: http.StatusBadRequest, Message: "Гость с такими паспортными данными уже существует"},
		}
	}}

	w, body := doJSON(t, newRouter(desk), http.MethodPost, "/api/v1/guests", map[string]interface{}{
		"name": "Anna", "phone": "79991234567",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Гость с такими паспортными данными уже существует", body["error"])
}

func TestTransportFailureIs502(t *testing.T) {
	desk := &stubDesk{createGuest: func(in guest.Input) (guest.Guest, error) {
		return guest.Guest{}, &application.ActionError{
			Action: application.ActionCreateGuest,
			Err:    &storeclient.TransportError{Op: "create guest", Err: context.DeadlineExceeded},
		}
	}}

	w, _ := doJSON(t, newRouter(desk), http.MethodPost, "/api/v1/guests", map[string]interface{}{
		"name": "Anna", "phone": "79991234567",
	})
	assert.Equal(t, http.StatusBadGateway, w.Code)
}

func TestCancelBooking(t *testing.T) {
	desk := &stubDesk{}
	w, _ := doJSON(t, newRouter(desk), http.MethodPost, "/api/v1/bookings/12/cancel", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, []int64{12}, desk.cancelled)

	w, _ = doJSON(t, newRouter(desk), http.MethodPost, "/api/v1/bookings/abc/cancel", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestValidateGuestField(t *testing.T) {
	r := newRouter(&stubDesk{})

	w, body := doJSON(t, r, http.MethodPost, "/api/v1/guests/validate", map[string]string{"field": "phone", "value": "12ab"})
	assert.Equal(t, http.StatusOK, w.Code)
	data := body["data"].(map[string]interface{})
	assert.Equal(t, false, data["valid"])
	assert.Equal(t, "phone must contain digits only", data["error"])

	_, body = doJSON(t, r, http.MethodPost, "/api/v1/guests/validate", map[string]string{"field": "passport_series", "value": "4510"})
	assert.Equal(t, true, body["data"].(map[string]interface{})["valid"])
}

func TestListCategories(t *testing.T) {
	w, body := doJSON(t, newRouter(&stubDesk{}), http.MethodGet, "/api/v1/rooms/categories", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Len(t, body["data"], len(room.Categories))
}

func TestNewRouter_RoutesServedUnderSinglePrefix(t *testing.T) {
	r := newRouter(&stubDesk{})

	paths := map[string]bool{}
	for _, route := range r.Routes() {
		paths[route.Method+" "+route.Path] = true
		assert.NotContains(t, route.Path, "/api/v1/api/v1")
	}
	for _, want := range []string{
		"GET /api/v1/board",
		"GET /api/v1/prices",
		"GET /api/v1/quote",
		"GET /api/v1/guests",
		"GET /api/v1/rooms",
		"GET /api/v1/bookings",
		"PATCH /api/v1/bookings/:id",
	} {
		assert.True(t, paths[want], "missing route %s", want)
	}

	w, body := doJSON(t, r, http.MethodGet, "/api/v1/board", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, true, body["success"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))
}
