package dto

// DashboardStatsDTO KPIs del dashboard sobre el snapshot actual del store.
type DashboardStatsDTO struct {
	TotalProducts      int `json:"total_products"`
	LowStockItems      int `json:"low_stock_items"`
	PendingReceipts    int `json:"pending_receipts"`
	PendingDeliveries  int `json:"pending_deliveries"`
	ScheduledTransfers int `json:"scheduled_transfers"`
}

// WarehouseDeliveriesDTO unidades entregadas por bodega (clave: nombre de la
// bodega), solo entregas con estado delivered.
type WarehouseDeliveriesDTO map[string]int
