package domain

import "time"

// CategoryRatings holds the four 1-5 sub-ratings of a review.
type CategoryRatings struct {
	Punctuality     int `json:"punctuality,omitempty"`
	Quality         int `json:"quality,omitempty"`
	Communication   int `json:"communication,omitempty"`
	Professionalism int `json:"professionalism,omitempty"`
}

type Review struct {
	ID              int64            `json:"id" gorm:"primaryKey"`
	BookingID       int64            `json:"booking_id" gorm:"uniqueIndex"`
	ReviewerID      int64            `json:"reviewer_id" gorm:"index"`
	ProfessionalID  int64            `json:"professional_id" gorm:"index"`
	Rating          int              `json:"rating"`
	Comment         string           `json:"comment,omitempty" gorm:"type:text"`
	Categories      *CategoryRatings `json:"categories,omitempty" gorm:"serializer:json"`
	IsVerified      bool             `json:"is_verified"`
	ResponseComment *string          `json:"response_comment,omitempty"`
	RespondedAt     *time.Time       `json:"responded_at,omitempty"`
	Images          []string         `json:"images,omitempty" gorm:"serializer:json"`
	CreatedAt       time.Time        `json:"created_at"`
	UpdatedAt       time.Time        `json:"updated_at"`

	Reviewer *User `json:"reviewer,omitempty" gorm:"foreignKey:ReviewerID"`
}

func (Review) TableName() string { return "reviews" }
