package domain

import "time"

type BookingStatus string

const (
	BookingPending   BookingStatus = "pending"
	BookingConfirmed BookingStatus = "confirmed"
	BookingCancelled BookingStatus = "cancelled"
	BookingCompleted BookingStatus = "completed"
	BookingNoShow    BookingStatus = "no_show"
)

type PaymentStatus string

const (
	PaymentPending       PaymentStatus = "pending"
	PaymentPaid          PaymentStatus = "paid"
	PaymentFailed        PaymentStatus = "failed"
	PaymentRefunded      PaymentStatus = "refunded"
	PaymentPartialRefund PaymentStatus = "partial_refund"
)

// Booking reserves one room for a [StartTime, EndTime) window on a single
// calendar day. Date is a bare "2006-01-02" value and the times are local
// wall-clock "15:04" strings; the schedule package owns interval arithmetic.
type Booking struct {
	ID             int64         `json:"id"`
	OrganizationID int64         `json:"organization_id" validate:"required"`
	RoomID         int64         `json:"room_id" validate:"required"`
	UserID         int64         `json:"user_id" validate:"required"`
	Date           string        `json:"date" validate:"required"`
	StartTime      string        `json:"start_time" validate:"required"`
	EndTime        string        `json:"end_time" validate:"required"`
	Status         BookingStatus `json:"status"`
	PaymentStatus  PaymentStatus `json:"payment_status"`
	TotalAmount    float64       `json:"total_amount"`
	Commission     float64       `json:"commission"`
	Notes          string        `json:"notes,omitempty" gorm:"type:text"`
	CancelReason   string        `json:"cancel_reason,omitempty" gorm:"type:text"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
	CancelledAt    *time.Time    `json:"cancelled_at,omitempty"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Room *Room `json:"room,omitempty" gorm:"foreignKey:RoomID"`
}

// IsTerminal reports whether the status is one normal flow cannot leave.
func (s BookingStatus) IsTerminal() bool {
	switch s {
	case BookingCancelled, BookingCompleted, BookingNoShow:
		return true
	}
	return false
}
