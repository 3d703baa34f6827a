package dto

import "time"

// ── Receipts ──────────────────────────────────────────────────────────────────

// CreateReceiptRequest datos del formulario de recepción. La recepción nace
// siempre en estado pending.
type CreateReceiptRequest struct {
	Supplier  string `json:"supplier"`
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	Warehouse string `json:"warehouse"`
}

// ReceiptResponse representación de salida de una recepción.
type ReceiptResponse struct {
	ID        string    `json:"id"`
	Supplier  string    `json:"supplier"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	Warehouse string    `json:"warehouse"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

// ── Deliveries ────────────────────────────────────────────────────────────────

// CreateDeliveryRequest datos del formulario de entrega.
type CreateDeliveryRequest struct {
	Product   string `json:"product"`
	Quantity  int    `json:"quantity"`
	Warehouse string `json:"warehouse"`
}

// UpdateDeliveryStatusRequest nuevo estado para una entrega.
type UpdateDeliveryStatusRequest struct {
	Status string `json:"status"`
}

// DeliveryResponse representación de salida de una entrega.
type DeliveryResponse struct {
	ID        string    `json:"id"`
	Product   string    `json:"product"`
	Quantity  int       `json:"quantity"`
	Warehouse string    `json:"warehouse"`
	Date      time.Time `json:"date"`
	Status    string    `json:"status"`
}

// ── Transfers ─────────────────────────────────────────────────────────────────

// CreateTransferRequest datos del formulario de traslado. La regla
// from ≠ to se valida en el handler (frontera de UI), no en el core.
type CreateTransferRequest struct {
	Product       string `json:"product"`
	FromWarehouse string `json:"from_warehouse"`
	ToWarehouse   string `json:"to_warehouse"`
	Quantity      int    `json:"quantity"`
}

// TransferResponse representación de salida de un traslado.
type TransferResponse struct {
	ID            string    `json:"id"`
	Product       string    `json:"product"`
	FromWarehouse string    `json:"from_warehouse"`
	ToWarehouse   string    `json:"to_warehouse"`
	Quantity      int       `json:"quantity"`
	Date          time.Time `json:"date"`
	Status        string    `json:"status"`
}

// ── Adjustments ───────────────────────────────────────────────────────────────

// ApplyAdjustmentRequest ajuste de inventario a partir de un conteo físico.
// Difference = countedQuantity - cantidad registrada, calculado por la UI.
type ApplyAdjustmentRequest struct {
	ProductID       string `json:"product_id"`
	CountedQuantity int    `json:"counted_quantity"`
	Difference      int    `json:"difference"`
}
