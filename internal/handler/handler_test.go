package handler_test

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/savorhq/restaurant-service/internal/errs"
	"github.com/savorhq/restaurant-service/internal/handler"
	"github.com/savorhq/restaurant-service/internal/model"
	"github.com/savorhq/restaurant-service/pkg/auth"

	"github.com/golang/mock/gomock"
	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	service_mocks "github.com/savorhq/restaurant-service/internal/handler/mocks"
)

func bearerToken(t *testing.T, username string) string {
	t.Helper()
	token, err := auth.NewToken(username, "user", time.Hour)
	require.NoError(t, err)
	return "Bearer " + token
}

func TestHandler_CreateReservation(t *testing.T) {
	t.Parallel()

	const body = `{"guestName":"Jo","guestEmail":"jo@x.com","guestPhone":"1234567890","date":"2026-08-29","time":"19:00","partySize":4}`
	boundReq := model.CreateReservationRequest{
		GuestName:  "Jo",
		GuestEmail: "jo@x.com",
		GuestPhone: "1234567890",
		Date:       "2026-08-29",
		Time:       "19:00",
		PartySize:  4,
		Username:   "maria",
	}

	type response struct {
		expectedCode int
		expectedBody string
	}
	type mockBehavior func(r *service_mocks.MockBookingService)

	var tests = []struct {
		name         string
		withToken    bool
		mockBehavior mockBehavior
		response     response
	}{
		{
			name:      "ok",
			withToken: true,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					CreateReservation(gomock.Any(), boundReq).
					Return(model.Reservation{
						ReservationUid: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
						Username:       "maria",
						TableID:        2,
						GuestName:      "Jo",
						GuestEmail:     "jo@x.com",
						GuestPhone:     "1234567890",
						Date:           time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
						TimeSlot:       "19:00",
						PartySize:      4,
						Status:         model.StatusPending,
						CreatedAt:      time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
					}, nil)
			},
			response: response{
				expectedCode: http.StatusCreated,
				expectedBody: `{"reservationUid":"7c9e6679-7425-40de-944b-e07fc1f90ae7","username":"maria","tableId":2,"guestName":"Jo","guestEmail":"jo@x.com","guestPhone":"1234567890","reservationDate":"2026-08-29T00:00:00Z","reservationTime":"19:00","partySize":4,"status":"pending","createdAt":"2026-08-28T12:00:00Z"}`,
			},
		},
		{
			name:         "err. no token",
			withToken:    false,
			mockBehavior: func(r *service_mocks.MockBookingService) {},
			response: response{
				expectedCode: http.StatusUnauthorized,
				expectedBody: `{"message":"No Authorization Header"}`,
			},
		},
		{
			name:      "err. validation",
			withToken: true,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					CreateReservation(gomock.Any(), boundReq).
					Return(model.Reservation{}, &errs.ValidationError{Field: "partySize", Message: "party size must be between 1 and 20"})
			},
			response: response{
				expectedCode: http.StatusBadRequest,
				expectedBody: `{"field":"partySize","message":"party size must be between 1 and 20"}`,
			},
		},
		{
			name:      "err. no table available",
			withToken: true,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					CreateReservation(gomock.Any(), boundReq).
					Return(model.Reservation{}, errs.ErrNoTableAvailable)
			},
			response: response{
				expectedCode: http.StatusUnprocessableEntity,
				expectedBody: `{"message":"no table available for the requested date and time"}`,
			},
		},
		{
			name:      "err. conflict",
			withToken: true,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					CreateReservation(gomock.Any(), boundReq).
					Return(model.Reservation{}, errs.ErrConflict)
			},
			response: response{
				expectedCode: http.StatusConflict,
				expectedBody: `{"message":"reservation conflicts with a concurrent booking"}`,
			},
		},
		{
			name:      "err. store timeout",
			withToken: true,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					CreateReservation(gomock.Any(), boundReq).
					Return(model.Reservation{}, errs.ErrStoreTimeout)
			},
			response: response{
				expectedCode: http.StatusServiceUnavailable,
				expectedBody: `{"message":"reservation store timed out"}`,
			},
		},
		{
			name:      "err. internal",
			withToken: true,
			mockBehavior: func(r *service_mocks.MockBookingService) {
				r.EXPECT().
					CreateReservation(gomock.Any(), boundReq).
					Return(model.Reservation{}, errors.New("db internal"))
			},
			response: response{
				expectedCode: http.StatusInternalServerError,
				expectedBody: `{"message":"db internal"}`,
			},
		},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			c := gomock.NewController(t)
			defer c.Finish()
			svc := service_mocks.NewMockBookingService(c)
			log := zap.NewExample().Named("test")
			h := handler.New(svc, log)

			e := echo.New()
			e.POST("/api/v1/reservations", h.CreateReservation, handler.JwtAuthentication)

			r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations", strings.NewReader(body))
			r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
			if tt.withToken {
				r.Header.Set(handler.AuthorizationHeader, bearerToken(t, "maria"))
			}
			w := httptest.NewRecorder()

			tt.mockBehavior(svc)
			e.ServeHTTP(w, r)

			require.Equal(t, tt.response.expectedCode, w.Code)
			require.Equal(t, tt.response.expectedBody, strings.Trim(w.Body.String(), "\n"))
		})
	}
}

func TestHandler_CreateReservation_MalformedPayload(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookingService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	e := echo.New()
	e.POST("/api/v1/reservations", h.CreateReservation, handler.JwtAuthentication)

	r := httptest.NewRequest(http.MethodPost, "/api/v1/reservations",
		strings.NewReader(`{"partySize":"four"}`))
	r.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	r.Header.Set(handler.AuthorizationHeader, bearerToken(t, "maria"))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusBadRequest, w.Code)
	require.Contains(t, w.Body.String(), "partySize")
}

func TestHandler_GetReservations(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookingService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	svc.EXPECT().
		GetReservations(gomock.Any(), "maria").
		Return([]model.UserReservation{
			{
				Reservation: model.Reservation{
					ReservationUid: "7c9e6679-7425-40de-944b-e07fc1f90ae7",
					Username:       "maria",
					TableID:        2,
					GuestName:      "Jo",
					GuestEmail:     "jo@x.com",
					GuestPhone:     "1234567890",
					Date:           time.Date(2026, 8, 29, 0, 0, 0, 0, time.UTC),
					TimeSlot:       "19:00",
					PartySize:      4,
					Status:         model.StatusPending,
					CreatedAt:      time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC),
				},
				TableNumber: 2,
			},
		}, nil)

	e := echo.New()
	e.GET("/api/v1/reservations", h.GetReservations, handler.JwtAuthentication)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/reservations", http.NoBody)
	r.Header.Set(handler.AuthorizationHeader, bearerToken(t, "maria"))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Contains(t, w.Body.String(), `"tableNumber":2`)
	require.Contains(t, w.Body.String(), `"reservationUid":"7c9e6679-7425-40de-944b-e07fc1f90ae7"`)
}

func TestHandler_GetMenu(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookingService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	svc.EXPECT().
		GetMenu(gomock.Any(), "mains").
		Return([]model.MenuItem{
			{ID: 1, Name: "Coq au Vin", Description: "braised chicken", Price: 28.5, Category: "mains", IsAvailable: true},
		}, nil)

	e := echo.New()
	e.GET("/api/v1/menu", h.GetMenu)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/menu?category=mains", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t,
		`[{"id":1,"name":"Coq au Vin","description":"braised chicken","price":28.5,"category":"mains","isAvailable":true}]`,
		strings.Trim(w.Body.String(), "\n"))
}

func TestHandler_TimeSlots(t *testing.T) {
	t.Parallel()
	c := gomock.NewController(t)
	defer c.Finish()
	svc := service_mocks.NewMockBookingService(c)
	h := handler.New(svc, zap.NewExample().Named("test"))

	svc.EXPECT().TimeSlots().Return([]string{"17:00", "17:30", "18:00"})

	e := echo.New()
	e.GET("/api/v1/slots", h.TimeSlots)

	r := httptest.NewRequest(http.MethodGet, "/api/v1/slots", http.NoBody)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, r)

	require.Equal(t, http.StatusOK, w.Code)
	require.Equal(t, `["17:00","17:30","18:00"]`, strings.Trim(w.Body.String(), "\n"))
}
