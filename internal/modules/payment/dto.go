package payment

type CreatePaymentRequest struct {
	BookingID int64   `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Method    string  `json:"method" binding:"required"`
	Service   string  `json:"service"`
	Location  string  `json:"location"`
	Date      string  `json:"date"`
	Time      string  `json:"time"`
}

type CreateIntentRequest struct {
	BookingID int64   `json:"booking_id" binding:"required"`
	Amount    float64 `json:"amount" binding:"required,gt=0"`
	Currency  string  `json:"currency"`
}

type CreateIntentResponse struct {
	PaymentID    int64  `json:"payment_id"`
	IntentID     string `json:"intent_id"`
	ClientSecret string `json:"client_secret"`
}

type ConfirmRequest struct {
	IntentID string `json:"intent_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
