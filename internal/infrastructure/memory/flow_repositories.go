package memory

import (
	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var (
	_ repository.ReceiptRepository  = (*ReceiptRepo)(nil)
	_ repository.DeliveryRepository = (*DeliveryRepo)(nil)
	_ repository.TransferRepository = (*TransferRepo)(nil)
)

// ── Receipts ──────────────────────────────────────────────────────────────────

// ReceiptRepo implementación en memoria del puerto ReceiptRepository.
type ReceiptRepo struct {
	store *Store
	held  bool
}

// NewReceiptRepository construye el adaptador de recepciones.
func NewReceiptRepository(store *Store) *ReceiptRepo {
	return &ReceiptRepo{store: store}
}

// Create agrega una recepción al final de la colección.
func (r *ReceiptRepo) Create(receipt *entity.Receipt) error {
	defer r.store.acquire(r.held)()
	r.store.receipts = append(r.store.receipts, cloneReceipt(receipt))
	return nil
}

// GetByID devuelve una copia de la recepción o (nil, nil) si no existe.
func (r *ReceiptRepo) GetByID(id string) (*entity.Receipt, error) {
	defer r.store.acquire(r.held)()
	for _, rec := range r.store.receipts {
		if rec.ID == id {
			return cloneReceipt(rec), nil
		}
	}
	return nil, nil
}

// List devuelve un snapshot copiado de todas las recepciones.
func (r *ReceiptRepo) List() ([]*entity.Receipt, error) {
	defer r.store.acquire(r.held)()
	out := make([]*entity.Receipt, 0, len(r.store.receipts))
	for _, rec := range r.store.receipts {
		out = append(out, cloneReceipt(rec))
	}
	return out, nil
}

// Update reemplaza la recepción con el mismo ID.
func (r *ReceiptRepo) Update(receipt *entity.Receipt) error {
	defer r.store.acquire(r.held)()
	for i, rec := range r.store.receipts {
		if rec.ID == receipt.ID {
			r.store.receipts[i] = cloneReceipt(receipt)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Deliveries ────────────────────────────────────────────────────────────────

// DeliveryRepo implementación en memoria del puerto DeliveryRepository.
type DeliveryRepo struct {
	store *Store
	held  bool
}

// NewDeliveryRepository construye el adaptador de entregas.
func NewDeliveryRepository(store *Store) *DeliveryRepo {
	return &DeliveryRepo{store: store}
}

// Create agrega una entrega al final de la colección.
func (r *DeliveryRepo) Create(delivery *entity.Delivery) error {
	defer r.store.acquire(r.held)()
	r.store.deliveries = append(r.store.deliveries, cloneDelivery(delivery))
	return nil
}

// GetByID devuelve una copia de la entrega o (nil, nil) si no existe.
func (r *DeliveryRepo) GetByID(id string) (*entity.Delivery, error) {
	defer r.store.acquire(r.held)()
	for _, d := range r.store.deliveries {
		if d.ID == id {
			return cloneDelivery(d), nil
		}
	}
	return nil, nil
}

// List devuelve un snapshot copiado de todas las entregas.
func (r *DeliveryRepo) List() ([]*entity.Delivery, error) {
	defer r.store.acquire(r.held)()
	out := make([]*entity.Delivery, 0, len(r.store.deliveries))
	for _, d := range r.store.deliveries {
		out = append(out, cloneDelivery(d))
	}
	return out, nil
}

// Update reemplaza la entrega con el mismo ID. Última escritura gana.
func (r *DeliveryRepo) Update(delivery *entity.Delivery) error {
	defer r.store.acquire(r.held)()
	for i, d := range r.store.deliveries {
		if d.ID == delivery.ID {
			r.store.deliveries[i] = cloneDelivery(delivery)
			return nil
		}
	}
	return domain.ErrNotFound
}

// ── Transfers ─────────────────────────────────────────────────────────────────

// TransferRepo implementación en memoria del puerto TransferRepository.
type TransferRepo struct {
	store *Store
	held  bool
}

// NewTransferRepository construye el adaptador de traslados.
func NewTransferRepository(store *Store) *TransferRepo {
	return &TransferRepo{store: store}
}

// Create agrega un traslado al final de la colección.
func (r *TransferRepo) Create(transfer *entity.Transfer) error {
	defer r.store.acquire(r.held)()
	r.store.transfers = append(r.store.transfers, cloneTransfer(transfer))
	return nil
}

// GetByID devuelve una copia del traslado o (nil, nil) si no existe.
func (r *TransferRepo) GetByID(id string) (*entity.Transfer, error) {
	defer r.store.acquire(r.held)()
	for _, t := range r.store.transfers {
		if t.ID == id {
			return cloneTransfer(t), nil
		}
	}
	return nil, nil
}

// List devuelve un snapshot copiado de todos los traslados.
func (r *TransferRepo) List() ([]*entity.Transfer, error) {
	defer r.store.acquire(r.held)()
	out := make([]*entity.Transfer, 0, len(r.store.transfers))
	for _, t := range r.store.transfers {
		out = append(out, cloneTransfer(t))
	}
	return out, nil
}

// Update reemplaza el traslado con el mismo ID.
func (r *TransferRepo) Update(transfer *entity.Transfer) error {
	defer r.store.acquire(r.held)()
	for i, t := range r.store.transfers {
		if t.ID == transfer.ID {
			r.store.transfers[i] = cloneTransfer(transfer)
			return nil
		}
	}
	return domain.ErrNotFound
}
