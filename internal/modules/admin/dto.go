package admin

import (
	"fixnow/internal/repository"
)

type Stats struct {
	Counts       *repository.PlatformCounts `json:"counts"`
	TotalRevenue float64                    `json:"total_revenue"`
}

type UpdateRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// AnalyticsBucket is one period slice of completed-payment revenue.
type AnalyticsBucket struct {
	Bucket  string  `json:"bucket"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue"`
}

// ReportRow is one day of the bookings or revenue report.
type ReportRow struct {
	Date    string  `json:"date"`
	Count   int     `json:"count"`
	Revenue float64 `json:"revenue,omitempty"`
}
