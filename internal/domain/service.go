package domain

import "time"

type ServiceCategory string

const (
	CategoryPlumbing        ServiceCategory = "plumbing"
	CategoryElectrical      ServiceCategory = "electrical"
	CategoryHVAC            ServiceCategory = "hvac"
	CategoryCarpentry       ServiceCategory = "carpentry"
	CategoryPainting        ServiceCategory = "painting"
	CategoryCleaning        ServiceCategory = "cleaning"
	CategoryLandscaping     ServiceCategory = "landscaping"
	CategoryRoofing         ServiceCategory = "roofing"
	CategoryApplianceRepair ServiceCategory = "appliance_repair"
	CategoryOther           ServiceCategory = "other"
)

// ValidCategory reports whether c belongs to the closed category enum.
func ValidCategory(c ServiceCategory) bool {
	switch c {
	case CategoryPlumbing, CategoryElectrical, CategoryHVAC, CategoryCarpentry,
		CategoryPainting, CategoryCleaning, CategoryLandscaping, CategoryRoofing,
		CategoryApplianceRepair, CategoryOther:
		return true
	}
	return false
}

type PriceUnit string

const (
	UnitHour       PriceUnit = "hour"
	UnitJob        PriceUnit = "job"
	UnitSquareFoot PriceUnit = "square_foot"
	UnitLinearFoot PriceUnit = "linear_foot"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "easy"
	DifficultyMedium Difficulty = "medium"
	DifficultyHard   Difficulty = "hard"
	DifficultyExpert Difficulty = "expert"
)

type Service struct {
	ID                     int64           `json:"id" gorm:"primaryKey"`
	Name                   string          `json:"name" gorm:"uniqueIndex"`
	Category               ServiceCategory `json:"category" gorm:"index"`
	Description            string          `json:"description" gorm:"type:text"`
	BasePrice              float64         `json:"base_price"`
	PriceUnit              PriceUnit       `json:"price_unit"`
	EstimatedDuration      float64         `json:"estimated_duration"`
	MaterialsIncluded      bool            `json:"materials_included"`
	Difficulty             Difficulty      `json:"difficulty"`
	RequiredCertifications []string        `json:"required_certifications,omitempty" gorm:"serializer:json"`
	IsActive               bool            `json:"is_active" gorm:"index"`
	Icon                   string          `json:"icon,omitempty"`
	CreatedAt              time.Time       `json:"created_at"`
	UpdatedAt              time.Time       `json:"updated_at"`
}

func (Service) TableName() string { return "services" }
