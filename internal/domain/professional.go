package domain

import "time"

type VerificationStatus string

const (
	VerificationPending  VerificationStatus = "pending"
	VerificationVerified VerificationStatus = "verified"
	VerificationRejected VerificationStatus = "rejected"
)

type Certification struct {
	Name         string     `json:"name"`
	Issuer       string     `json:"issuer,omitempty"`
	DateObtained *time.Time `json:"date_obtained,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
}

type Insurance struct {
	Provider     string     `json:"provider,omitempty"`
	PolicyNumber string     `json:"policy_number,omitempty"`
	ExpiryDate   *time.Time `json:"expiry_date,omitempty"`
}

// DaySchedule is one weekday entry of a professional's availability.
type DaySchedule struct {
	Start     string `json:"start"`
	End       string `json:"end"`
	Available bool   `json:"available"`
}

type Location struct {
	Address   string  `json:"address,omitempty"`
	City      string  `json:"city,omitempty"`
	State     string  `json:"state,omitempty"`
	ZipCode   string  `json:"zip_code,omitempty"`
	Longitude float64 `json:"longitude"`
	Latitude  float64 `json:"latitude"`
}

type Professional struct {
	ID             int64                  `json:"id" gorm:"primaryKey"`
	UserID         int64                  `json:"user_id" gorm:"uniqueIndex"`
	BusinessName   string                 `json:"business_name"`
	Description    string                 `json:"description" gorm:"type:text"`
	ServiceIDs     []int64                `json:"service_ids" gorm:"serializer:json"`
	Experience     int                    `json:"experience"`
	Certifications []Certification        `json:"certifications,omitempty" gorm:"serializer:json"`
	Insurance      *Insurance             `json:"insurance,omitempty" gorm:"serializer:json"`
	Availability   map[string]DaySchedule `json:"availability,omitempty" gorm:"serializer:json"`
	Location       *Location              `json:"location,omitempty" gorm:"serializer:json"`
	Radius         int                    `json:"radius"`
	// Rating and ReviewCount are derived from review aggregation and are
	// never written through any public update path.
	Rating             float64            `json:"rating"`
	ReviewCount        int                `json:"review_count"`
	HourlyRate         float64            `json:"hourly_rate"`
	ProfileImage       string             `json:"profile_image,omitempty"`
	PortfolioImages    []string           `json:"portfolio_images,omitempty" gorm:"serializer:json"`
	VerificationStatus VerificationStatus `json:"verification_status" gorm:"index"`
	IsActive           bool               `json:"is_active"`
	CreatedAt          time.Time          `json:"created_at"`
	UpdatedAt          time.Time          `json:"updated_at"`

	User *User `json:"user,omitempty" gorm:"foreignKey:UserID"`
}

func (Professional) TableName() string { return "professionals" }
