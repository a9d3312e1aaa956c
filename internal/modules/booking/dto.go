package booking

type CreateBookingRequest struct {
	Service        string `json:"service" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Address        string `json:"address" binding:"required"`
	City           string `json:"city" binding:"required"`
	ZipCode        string `json:"zip_code" binding:"required"`
	Notes          string `json:"notes"`
	ProfessionalID *int64 `json:"professional_id"`
	Image          string `json:"image"`
}

type UpdateBookingRequest struct {
	Service        string `json:"service" binding:"required"`
	Title          string `json:"title" binding:"required"`
	Date           string `json:"date" binding:"required"`
	Time           string `json:"time" binding:"required"`
	Address        string `json:"address" binding:"required"`
	City           string `json:"city" binding:"required"`
	ZipCode        string `json:"zip_code" binding:"required"`
	Notes          string `json:"notes"`
	ProfessionalID *int64 `json:"professional_id"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
