package domain

import "time"

type BookingStatus string

const (
	BookingConfirmed BookingStatus = "Confirmed"
	BookingCompleted BookingStatus = "Completed"
	BookingCancelled BookingStatus = "Cancelled"
)

// IsTerminal reports whether no further status transition is allowed.
func (s BookingStatus) IsTerminal() bool {
	return s == BookingCompleted || s == BookingCancelled
}

// CanTransitionTo implements the booking state machine:
// Confirmed -> {Completed, Cancelled}; Completed and Cancelled are terminal.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	if s.IsTerminal() {
		return false
	}
	return next == BookingCompleted || next == BookingCancelled
}

type BookingPaymentStatus string

const (
	BookingUnpaid BookingPaymentStatus = "unpaid"
	BookingPaid   BookingPaymentStatus = "paid"
)

type Booking struct {
	ID             int64  `json:"id" gorm:"primaryKey"`
	UserID         int64  `json:"user_id" gorm:"index"`
	ProfessionalID *int64 `json:"professional_id,omitempty" gorm:"index"`
	// Professional keeps the display name for list rendering; the real
	// reference lives in ProfessionalID.
	Professional  string               `json:"professional,omitempty"`
	Service       string               `json:"service"`
	Title         string               `json:"title"`
	Date          string               `json:"date"`
	Time          string               `json:"time"`
	Address       string               `json:"address"`
	City          string               `json:"city"`
	ZipCode       string               `json:"zip_code"`
	Notes         string               `json:"notes,omitempty" gorm:"type:text"`
	Status        BookingStatus        `json:"status"`
	PaymentStatus BookingPaymentStatus `json:"payment_status"`
	Image         string               `json:"image,omitempty"`
	CreatedAt     time.Time            `json:"created_at"`
	UpdatedAt     time.Time            `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Booking) TableName() string { return "bookings" }
