package domain

import "time"

// DailySalesSummary es la foto diaria de ventas que persiste el scheduler.
// Sirve de histórico propio ante caídas o depuraciones del core.
type DailySalesSummary struct {
	Day          time.Time `json:"day"`
	SalesCount   int       `json:"sales_count"`
	TotalRevenue float64   `json:"total_revenue"`
	NetIncome    float64   `json:"net_income"`
	UpdatedAt    time.Time `json:"updated_at"`
}
