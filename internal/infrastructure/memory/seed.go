package memory

import (
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
)

// SeedDemo carga los datos de muestra del modo demo: bodegas, productos,
// flujos en curso, rastro de auditoría inicial y el usuario administrador.
// Las fechas se calculan relativas a now para que el dashboard y el
// predictor de reposición tengan siempre datos dentro de ventana.
func SeedDemo(s *Store, adminPassword string) error {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.warehouses = []*entity.Warehouse{
		{ID: "wh1", Name: "Main Warehouse", Code: "MW-01", Address: "123 Main St, New York, NY 10001"},
		{ID: "wh2", Name: "Distribution Center", Code: "DC-01", Address: "456 Commerce Ave, Los Angeles, CA 90001"},
		{ID: "wh3", Name: "Regional Hub", Code: "RH-01", Address: "789 Industrial Blvd, Chicago, IL 60601"},
	}

	s.products = []*entity.Product{
		{ID: "p1", Name: "Wireless Mouse", SKU: "WM-001", Category: "Electronics", InitialStock: 275, Stock: map[string]int{"wh1": 150, "wh2": 80, "wh3": 45}},
		{ID: "p2", Name: "Mechanical Keyboard", SKU: "MK-002", Category: "Electronics", InitialStock: 225, Stock: map[string]int{"wh1": 75, "wh2": 120, "wh3": 30}},
		{ID: "p3", Name: "USB-C Cable", SKU: "UC-003", Category: "Accessories", InitialStock: 730, Stock: map[string]int{"wh1": 300, "wh2": 250, "wh3": 180}},
		{ID: "p4", Name: "Laptop Stand", SKU: "LS-004", Category: "Accessories", InitialStock: 130, Stock: map[string]int{"wh1": 45, "wh2": 60, "wh3": 25}},
		{ID: "p5", Name: "Webcam HD", SKU: "WC-005", Category: "Electronics", InitialStock: 43, Stock: map[string]int{"wh1": 20, "wh2": 15, "wh3": 8}},
		{ID: "p6", Name: "Monitor 27\"", SKU: "MN-006", Category: "Electronics", InitialStock: 95, Stock: map[string]int{"wh1": 35, "wh2": 42, "wh3": 18}},
	}

	s.receipts = []*entity.Receipt{
		{ID: "r1", Supplier: "Tech Supplies Inc", Product: "Wireless Mouse", Quantity: 100, Warehouse: "Main Warehouse", Date: now, Status: entity.ReceiptStatusPending},
		{ID: "r2", Supplier: "Global Electronics", Product: "Mechanical Keyboard", Quantity: 50, Warehouse: "Distribution Center", Date: now.Add(-24 * time.Hour), Status: entity.ReceiptStatusCompleted},
	}

	s.deliveries = []*entity.Delivery{
		{ID: "d1", Product: "USB-C Cable", Quantity: 25, Warehouse: "Main Warehouse", Date: now, Status: entity.DeliveryStatusPending},
		{ID: "d2", Product: "Laptop Stand", Quantity: 10, Warehouse: "Distribution Center", Date: now.Add(-time.Hour), Status: entity.DeliveryStatusPicked},
	}

	s.transfers = []*entity.Transfer{
		{ID: "t1", Product: "Wireless Mouse", FromWarehouse: "Main Warehouse", ToWarehouse: "Distribution Center", Quantity: 30, Date: now, Status: entity.TransferStatusPending},
	}

	s.activities = []*entity.Activity{
		{ID: "a1", Type: "Receipt", Description: "Recibidas 100 unidades de Wireless Mouse de Tech Supplies Inc", Date: now.Add(-30 * time.Minute), User: "Admin", Icon: "FileText"},
		{ID: "a2", Type: "Delivery", Description: "Entregadas 25 unidades de USB-C Cable", Date: now.Add(-time.Hour), User: "Admin", Icon: "Truck"},
		{ID: "a3", Type: "Transfer", Description: "Trasladadas 30 unidades de Wireless Mouse de Main Warehouse a Distribution Center", Date: now.Add(-2 * time.Hour), User: "Admin", Icon: "ArrowLeftRight"},
		{ID: "a4", Type: "Adjustment", Description: "Stock ajustado para Webcam HD: -5 unidades", Date: now.Add(-3 * time.Hour), User: "Admin", Icon: "Settings"},
	}

	s.notifications = []*entity.Notification{
		{ID: "n1", Type: entity.NotificationLowStock, Title: "Alerta de stock bajo", Message: "Webcam HD se está quedando sin stock (43 unidades restantes)", Date: now.Add(-time.Hour), Read: false},
		{ID: "n2", Type: entity.NotificationReceiptValidated, Title: "Recepción validada", Message: "50 unidades de Mechanical Keyboard recibidas de Global Electronics", Date: now.Add(-2 * time.Hour), Read: false},
		{ID: "n3", Type: entity.NotificationDeliveryValidated, Title: "Entrega completada", Message: "10 unidades de Laptop Stand entregadas con éxito", Date: now.Add(-3 * time.Hour), Read: true},
	}

	day := 24 * time.Hour
	s.movements = []*entity.Movement{
		{ID: "mh1", Type: entity.MovementTypeReceipt, Product: "Wireless Mouse", Quantity: 100, ToWarehouse: "Main Warehouse", Date: now.Add(-2 * day), User: "Admin"},
		{ID: "mh2", Type: entity.MovementTypeDelivery, Product: "USB-C Cable", Quantity: 25, FromWarehouse: "Main Warehouse", Date: now.Add(-3 * day), User: "Admin"},
		{ID: "mh3", Type: entity.MovementTypeDelivery, Product: "Wireless Mouse", Quantity: 15, FromWarehouse: "Distribution Center", Date: now.Add(-5 * day), User: "Admin"},
		{ID: "mh4", Type: entity.MovementTypeDelivery, Product: "Mechanical Keyboard", Quantity: 8, FromWarehouse: "Main Warehouse", Date: now.Add(-7 * day), User: "Admin"},
		{ID: "mh5", Type: entity.MovementTypeTransfer, Product: "Monitor 27\"", Quantity: 10, FromWarehouse: "Main Warehouse", ToWarehouse: "Regional Hub", Date: now.Add(-10 * day), User: "Admin"},
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(adminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	s.users = []*entity.User{
		{ID: "u1", Email: "admin@stockmaster.local", Name: "Admin User", PasswordHash: string(hash), CreatedAt: now, UpdatedAt: now},
	}

	return nil
}
