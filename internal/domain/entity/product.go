package entity

// Product representa un producto o SKU del inventario (multi-bodega).
// Stock guarda la cantidad por bodega: la clave es el ID de la bodega y la
// ausencia de clave equivale a stock cero.
type Product struct {
	ID           string
	Name         string
	SKU          string
	Category     string
	InitialStock int
	Stock        map[string]int // warehouseID -> cantidad
}

// TotalStock devuelve el stock total del producto: la suma de las cantidades
// de todas las bodegas. Nunca es negativo mientras las cantidades no lo sean.
func (p *Product) TotalStock() int {
	total := 0
	for _, qty := range p.Stock {
		total += qty
	}
	return total
}

// CloneStock devuelve una copia independiente del mapa de stock.
func (p *Product) CloneStock() map[string]int {
	if p.Stock == nil {
		return nil
	}
	out := make(map[string]int, len(p.Stock))
	for k, v := range p.Stock {
		out[k] = v
	}
	return out
}
