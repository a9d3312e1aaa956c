package domain

import "time"

type PaymentStatus string

const (
	PaymentPending   PaymentStatus = "pending"
	PaymentCompleted PaymentStatus = "completed"
	PaymentFailed    PaymentStatus = "failed"
	PaymentRefunded  PaymentStatus = "refunded"
)

type PaymentMethod string

const (
	MethodCard PaymentMethod = "card"
	MethodUPI  PaymentMethod = "upi"
	MethodCOD  PaymentMethod = "cod"
)

type Payment struct {
	ID            int64         `json:"id" gorm:"primaryKey"`
	UserID        int64         `json:"user_id" gorm:"index"`
	BookingID     int64         `json:"booking_id" gorm:"index"`
	Amount        float64       `json:"amount"`
	Currency      string        `json:"currency"`
	Method        PaymentMethod `json:"method"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transaction_id" gorm:"uniqueIndex"`
	// IntentID is the gateway payment-intent id and the idempotency key
	// for confirm/webhook processing.
	IntentID  string    `json:"intent_id,omitempty" gorm:"index"`
	Service   string    `json:"service,omitempty"`
	Location  string    `json:"location,omitempty"`
	Date      string    `json:"date,omitempty"`
	Time      string    `json:"time,omitempty"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Booking *Booking `json:"booking,omitempty" gorm:"foreignKey:BookingID"`
}

func (Payment) TableName() string { return "payments" }
