package memory

import (
	"strings"

	"github.com/jhoicas/stockmaster-api/internal/domain"
	"github.com/jhoicas/stockmaster-api/internal/domain/entity"
	"github.com/jhoicas/stockmaster-api/internal/domain/repository"
)

var _ repository.UserRepository = (*UserRepo)(nil)

// UserRepo implementación en memoria del puerto UserRepository.
type UserRepo struct {
	store *Store
	held  bool
}

// NewUserRepository construye el adaptador de usuarios.
func NewUserRepository(store *Store) *UserRepo {
	return &UserRepo{store: store}
}

// Create agrega un usuario.
func (r *UserRepo) Create(user *entity.User) error {
	defer r.store.acquire(r.held)()
	r.store.users = append(r.store.users, cloneUser(user))
	return nil
}

// GetByID devuelve una copia del usuario o (nil, nil) si no existe.
func (r *UserRepo) GetByID(id string) (*entity.User, error) {
	defer r.store.acquire(r.held)()
	for _, u := range r.store.users {
		if u.ID == id {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// FindByEmail busca por email sin distinguir mayúsculas.
func (r *UserRepo) FindByEmail(email string) (*entity.User, error) {
	defer r.store.acquire(r.held)()
	for _, u := range r.store.users {
		if strings.EqualFold(u.Email, email) {
			return cloneUser(u), nil
		}
	}
	return nil, nil
}

// Update reemplaza el usuario con el mismo ID.
func (r *UserRepo) Update(user *entity.User) error {
	defer r.store.acquire(r.held)()
	for i, u := range r.store.users {
		if u.ID == user.ID {
			r.store.users[i] = cloneUser(user)
			return nil
		}
	}
	return domain.ErrNotFound
}
