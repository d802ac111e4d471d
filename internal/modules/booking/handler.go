package booking

import (
	"errors"
	"net/http"
	"strconv"

	"roomhub/internal/domain"
	"roomhub/internal/pkg/response"
	"roomhub/internal/pkg/validator"
	"roomhub/internal/schedule"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

type Handler struct {
	service *Service
}

func NewHandler(service *Service) *Handler {
	return &Handler{service: service}
}

func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.POST("/bookings", h.Create)
	rg.GET("/bookings/my", h.ListMine)
	rg.GET("/bookings/:id", h.Get)
	rg.POST("/bookings/:id/confirm", h.Confirm)
	rg.POST("/bookings/:id/cancel", h.Cancel)
	rg.POST("/bookings/:id/complete", h.Complete)
	rg.POST("/bookings/:id/no-show", h.NoShow)
	rg.POST("/bookings/:id/reschedule", h.Reschedule)
	rg.PATCH("/bookings/:id/payment", h.UpdatePayment)
	rg.GET("/rooms/:id/availability", h.DayAvailability)
}

func (h *Handler) Create(c *gin.Context) {
	var req CreateBookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fields)
		return
	}

	b, err := h.service.Create(c.Request.Context(), actorID(c), req)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusCreated, gin.H{"booking": b})
}

func (h *Handler) ListMine(c *gin.Context) {
	limit, _ := strconv.Atoi(c.DefaultQuery("limit", "20"))
	offset, _ := strconv.Atoi(c.DefaultQuery("offset", "0"))

	bookings, err := h.service.ListForUser(c.Request.Context(), actorID(c), limit, offset)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"bookings": bookings})
}

func (h *Handler) Get(c *gin.Context) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := h.service.GetByID(c.Request.Context(), id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func (h *Handler) Confirm(c *gin.Context) {
	h.statusAction(c, func(id int64) (*domain.Booking, error) {
		return h.service.Confirm(c.Request.Context(), actorID(c), actorRole(c), id)
	})
}

func (h *Handler) Cancel(c *gin.Context) {
	var req CancelRequest
	_ = c.ShouldBindJSON(&req)

	h.statusAction(c, func(id int64) (*domain.Booking, error) {
		return h.service.Cancel(c.Request.Context(), actorID(c), actorRole(c), id, req.Reason)
	})
}

func (h *Handler) Complete(c *gin.Context) {
	h.statusAction(c, func(id int64) (*domain.Booking, error) {
		return h.service.Complete(c.Request.Context(), actorID(c), actorRole(c), id)
	})
}

func (h *Handler) NoShow(c *gin.Context) {
	h.statusAction(c, func(id int64) (*domain.Booking, error) {
		return h.service.NoShow(c.Request.Context(), actorID(c), actorRole(c), id)
	})
}

func (h *Handler) Reschedule(c *gin.Context) {
	var req RescheduleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fields)
		return
	}

	h.statusAction(c, func(id int64) (*domain.Booking, error) {
		return h.service.Reschedule(c.Request.Context(), actorID(c), actorRole(c), id, req)
	})
}

func (h *Handler) UpdatePayment(c *gin.Context) {
	var req PaymentStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body")
		return
	}
	if fields := validator.Validate(req); fields != nil {
		response.ErrorWithDetails(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid request body", fields)
		return
	}

	h.statusAction(c, func(id int64) (*domain.Booking, error) {
		return h.service.UpdatePaymentStatus(c.Request.Context(), actorID(c), actorRole(c), id, domain.PaymentStatus(req.PaymentStatus))
	})
}

func (h *Handler) DayAvailability(c *gin.Context) {
	roomID, err := pathID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid room id")
		return
	}
	date := c.Query("date")
	if date == "" {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "date query parameter is required")
		return
	}

	avail, err := h.service.DayAvailability(c.Request.Context(), roomID, date)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, avail)
}

func (h *Handler) statusAction(c *gin.Context, fn func(id int64) (*domain.Booking, error)) {
	id, err := pathID(c)
	if err != nil {
		response.Error(c, http.StatusBadRequest, "VALIDATION_ERROR", "Invalid booking id")
		return
	}

	b, err := fn(id)
	if err != nil {
		writeError(c, err)
		return
	}
	response.Success(c, http.StatusOK, gin.H{"booking": b})
}

func pathID(c *gin.Context) (int64, error) {
	return strconv.ParseInt(c.Param("id"), 10, 64)
}

func actorID(c *gin.Context) int64 {
	return c.GetInt64("user_id")
}

func actorRole(c *gin.Context) domain.UserRole {
	return domain.UserRole(c.GetString("role"))
}

// writeError renders scheduling failures as specific, recoverable outcomes
// and keeps everything else a 500.
func writeError(c *gin.Context, err error) {
	var schedErr *schedule.Error
	if errors.As(err, &schedErr) {
		status := http.StatusUnprocessableEntity
		switch schedErr.Kind {
		case schedule.KindSlotTaken:
			status = http.StatusConflict
		case schedule.KindInvalidRange, schedule.KindInvalidDuration:
			status = http.StatusBadRequest
		}
		response.ErrorWithDetails(c, status, string(schedErr.Kind), schedErr.Error(), gin.H{
			"booking_id": schedErr.BookingID,
			"open":       schedErr.Open,
			"close":      schedErr.Close,
		})
		return
	}

	switch {
	case errors.Is(err, ErrForbidden):
		response.Error(c, http.StatusForbidden, "FORBIDDEN", "Not allowed to manage this booking")
	case errors.Is(err, ErrRoomInactive):
		response.Error(c, http.StatusConflict, "ROOM_INACTIVE", "Room is not accepting bookings")
	case errors.Is(err, gorm.ErrRecordNotFound):
		response.Error(c, http.StatusNotFound, "NOT_FOUND", "Not found")
	default:
		response.Error(c, http.StatusInternalServerError, "INTERNAL_ERROR", "Request failed")
	}
}
