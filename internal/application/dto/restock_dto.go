package dto

import "github.com/shopspring/decimal"

// RestockPredictionDTO fila del reporte predictivo de reposición. La
// heurística es determinista y reproducible con el mismo historial de
// movimientos; AvgDailyUsage se reporta redondeado a 2 decimales.
type RestockPredictionDTO struct {
	ProductID           string          `json:"product_id"`
	ProductName         string          `json:"product_name"`
	CurrentStock        int             `json:"current_stock"`
	AvgDailyUsage       decimal.Decimal `json:"avg_daily_usage"`
	DaysUntilOutOfStock int             `json:"days_until_out_of_stock"`
	SuggestedReorderQty int             `json:"suggested_reorder_qty"`
}
