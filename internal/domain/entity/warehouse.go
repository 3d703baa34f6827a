package entity

// Warehouse representa una bodega donde se almacena inventario.
// Code es una etiqueta corta para humanos (ej. "MW-01"); el store no la
// obliga a ser única.
type Warehouse struct {
	ID      string
	Name    string
	Code    string
	Address string
}
