package catalog

type CreateServiceRequest struct {
	Name                   string   `json:"name" binding:"required"`
	Category               string   `json:"category" binding:"required"`
	Description            string   `json:"description"`
	BasePrice              float64  `json:"base_price" binding:"gte=0"`
	PriceUnit              string   `json:"price_unit"`
	EstimatedDuration      float64  `json:"estimated_duration" binding:"gte=0"`
	MaterialsIncluded      bool     `json:"materials_included"`
	Difficulty             string   `json:"difficulty"`
	RequiredCertifications []string `json:"required_certifications"`
	Icon                   string   `json:"icon"`
}

type UpdateServiceRequest struct {
	Name                   *string  `json:"name"`
	Category               *string  `json:"category"`
	Description            *string  `json:"description"`
	BasePrice              *float64 `json:"base_price"`
	PriceUnit              *string  `json:"price_unit"`
	EstimatedDuration      *float64 `json:"estimated_duration"`
	MaterialsIncluded      *bool    `json:"materials_included"`
	Difficulty             *string  `json:"difficulty"`
	RequiredCertifications []string `json:"required_certifications"`
	Icon                   *string  `json:"icon"`
	IsActive               *bool    `json:"is_active"`
}
