package booking

import "roomhub/internal/domain"

type CreateBookingRequest struct {
	RoomID    int64  `json:"room_id" binding:"required" validate:"required"`
	Date      string `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" binding:"required" validate:"required,datetime=15:04"`
	Notes     string `json:"notes"`
}

type CancelRequest struct {
	Reason string `json:"reason"`
}

// RescheduleRequest moves a booking to a new slot. EndTime is optional:
// when empty the original duration is preserved from StartTime.
type RescheduleRequest struct {
	Date      string `json:"date" binding:"required" validate:"required,datetime=2006-01-02"`
	StartTime string `json:"start_time" binding:"required" validate:"required,datetime=15:04"`
	EndTime   string `json:"end_time" validate:"omitempty,datetime=15:04"`
}

type PaymentStatusRequest struct {
	PaymentStatus string `json:"payment_status" binding:"required" validate:"required,oneof=pending paid failed refunded partial_refund"`
}

// DayAvailability is one room's day as a client sees it while picking a
// slot: whether the room is open, the open window, and every booking still
// occupying time. With no hours configured the room counts as open all day.
type DayAvailability struct {
	RoomID    int64            `json:"room_id"`
	Date      string           `json:"date"`
	Open      bool             `json:"open"`
	OpenTime  string           `json:"open_time,omitempty"`
	CloseTime string           `json:"close_time,omitempty"`
	Bookings  []domain.Booking `json:"bookings"`
}
