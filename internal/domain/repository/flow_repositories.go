package repository

import "github.com/jhoicas/stockmaster-api/internal/domain/entity"

// Puertos de persistencia para los flujos operativos (recepciones, entregas
// y traslados). Ninguna entidad se borra: solo creación y actualización de
// estado vía Update.

// ReceiptRepository puerto para Receipt.
type ReceiptRepository interface {
	Create(receipt *entity.Receipt) error
	GetByID(id string) (*entity.Receipt, error)
	List() ([]*entity.Receipt, error)
	Update(receipt *entity.Receipt) error
}

// DeliveryRepository puerto para Delivery.
type DeliveryRepository interface {
	Create(delivery *entity.Delivery) error
	GetByID(id string) (*entity.Delivery, error)
	List() ([]*entity.Delivery, error)
	Update(delivery *entity.Delivery) error
}

// TransferRepository puerto para Transfer.
type TransferRepository interface {
	Create(transfer *entity.Transfer) error
	GetByID(id string) (*entity.Transfer, error)
	List() ([]*entity.Transfer, error)
	Update(transfer *entity.Transfer) error
}
