package booking

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupRouter(bookings *MockBookingRepository, rooms *MockRoomRepository, orgs *MockOrganizationRepository) *gin.Engine {
	gin.SetMode(gin.TestMode)

	service := NewService(bookings, rooms, orgs, nil)
	handler := NewHandler(service)

	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("user_id", int64(42))
		c.Set("role", "client")
	})
	handler.RegisterRoutes(router.Group("/"))
	return router
}

func postJSON(router *gin.Engine, path string, body any) *httptest.ResponseRecorder {
	raw, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

type validationResponse struct {
	Error struct {
		Code    string            `json:"code"`
		Details map[string]string `json:"details"`
	} `json:"error"`
}

func TestHandler_Create_MalformedDateAndTimeRejected(t *testing.T) {
	rooms := new(MockRoomRepository)
	router := setupRouter(new(MockBookingRepository), rooms, new(MockOrganizationRepository))

	w := postJSON(router, "/bookings", CreateBookingRequest{
		RoomID:    10,
		Date:      "07/09/2026",
		StartTime: "9am",
		EndTime:   "11:00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp validationResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "VALIDATION_ERROR", resp.Error.Code)
	assert.Equal(t, "datetime", resp.Error.Details["Date"])
	assert.Equal(t, "datetime", resp.Error.Details["StartTime"])

	// nothing past the edge is touched
	rooms.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestHandler_Reschedule_MalformedTimeRejected(t *testing.T) {
	bookings := new(MockBookingRepository)
	router := setupRouter(bookings, new(MockRoomRepository), new(MockOrganizationRepository))

	w := postJSON(router, "/bookings/7/reschedule", RescheduleRequest{
		Date:      "2026-09-07",
		StartTime: "14h00",
	})

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp validationResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "datetime", resp.Error.Details["StartTime"])
	bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestHandler_UpdatePayment_UnknownStatusRejected(t *testing.T) {
	bookings := new(MockBookingRepository)
	router := setupRouter(bookings, new(MockRoomRepository), new(MockOrganizationRepository))

	raw, _ := json.Marshal(PaymentStatusRequest{PaymentStatus: "sponsored"})
	req := httptest.NewRequest(http.MethodPatch, "/bookings/7/payment", bytes.NewReader(raw))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code)

	var resp validationResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "oneof", resp.Error.Details["PaymentStatus"])
	bookings.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}
