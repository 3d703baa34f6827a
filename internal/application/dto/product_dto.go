package dto

// CreateProductRequest datos para crear un producto.
type CreateProductRequest struct {
	Name         string         `json:"name"`
	SKU          string         `json:"sku"`
	Category     string         `json:"category"`
	InitialStock int            `json:"initial_stock"`
	Stock        map[string]int `json:"stock"` // warehouseID -> cantidad
}

// UpdateProductRequest actualización parcial de producto: solo los campos
// presentes se aplican.
type UpdateProductRequest struct {
	Name         *string        `json:"name"`
	SKU          *string        `json:"sku"`
	Category     *string        `json:"category"`
	InitialStock *int           `json:"initial_stock"`
	Stock        map[string]int `json:"stock"`
}

// ProductResponse representación de salida de un producto.
type ProductResponse struct {
	ID           string         `json:"id"`
	Name         string         `json:"name"`
	SKU          string         `json:"sku"`
	Category     string         `json:"category"`
	InitialStock int            `json:"initial_stock"`
	Stock        map[string]int `json:"stock"`
	TotalStock   int            `json:"total_stock"`
}
