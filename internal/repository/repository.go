package repository

import (
	"context"
	"errors"

	"saga/internal/domain"
)

// ErrNotFound when the entity is missing, ErrAlreadyExists when the key is taken
var (
	ErrNotFound      = errors.New("not found")
	ErrAlreadyExists = errors.New("already exists")
)

// CustomerRepository stores customers keyed by CPF
type CustomerRepository interface {
	Create(ctx context.Context, c *domain.Customer) error
	GetByID(ctx context.Context, cpf string) (*domain.Customer, error)
	Update(ctx context.Context, c *domain.Customer) error
	Delete(ctx context.Context, cpf string) error
	List(ctx context.Context) ([]domain.Customer, error)
}

// SupplierRepository stores suppliers keyed by name.
// Deleting a supplier also deletes its catalog and accounts.
type SupplierRepository interface {
	Create(ctx context.Context, s *domain.Supplier) error
	GetByID(ctx context.Context, name string) (*domain.Supplier, error)
	Update(ctx context.Context, s *domain.Supplier) error
	Delete(ctx context.Context, name string) error
	List(ctx context.Context) ([]domain.Supplier, error)
}

// ProductRepository holds each supplier's product catalog
type ProductRepository interface {
	Create(ctx context.Context, supplier string, p *domain.Product) error
	GetByID(ctx context.Context, supplier string, key domain.ProductKey) (*domain.Product, error)
	Update(ctx context.Context, supplier string, p *domain.Product) error
	Delete(ctx context.Context, supplier string, key domain.ProductKey) error
	List(ctx context.Context, supplier string) ([]domain.Product, error)
}

// AccountRepository holds each supplier's account book keyed by customer CPF
type AccountRepository interface {
	// AppendPurchase creates the account on the first purchase
	AppendPurchase(ctx context.Context, supplier, cpf string, p domain.Purchase) error
	GetByID(ctx context.Context, supplier, cpf string) (*domain.Account, error)
	Delete(ctx context.Context, supplier, cpf string) error
	// DeleteByCustomer drops the customer's account with every supplier
	DeleteByCustomer(ctx context.Context, cpf string) error
	// ListByCustomer returns the customer's accounts, suppliers by name
	ListByCustomer(ctx context.Context, cpf string) ([]domain.Account, error)
	// List returns every account: suppliers by name, then CPF
	List(ctx context.Context) ([]domain.Account, error)
}

// TxManager runs fn inside a transaction. In memory it is the global write lock.
type TxManager interface {
	WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error
}
