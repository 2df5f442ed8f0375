package service

import (
	"context"
	"errors"

	"saga/internal/domain"
	"saga/internal/repository"
)

// SupplierService holds supplier registration rules
type SupplierService struct {
	repo repository.SupplierRepository
}

func NewSupplierService(repo repository.SupplierRepository) *SupplierService {
	return &SupplierService{repo: repo}
}

// Create registers the supplier and returns its name
func (s *SupplierService) Create(ctx context.Context, f domain.Supplier) (string, error) {
	const op = "no cadastro do fornecedor"
	switch {
	case blank(f.Name):
		return "", domain.Invalid(op, "nome nao pode ser vazio ou nulo")
	case blank(f.Email):
		return "", domain.Invalid(op, "email nao pode ser vazio ou nulo")
	case blank(f.Phone):
		return "", domain.Invalid(op, "telefone nao pode ser vazio ou nulo")
	}
	cp := f
	if err := s.repo.Create(ctx, &cp); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", domain.Conflict(op, "fornecedor ja existe")
		}
		return "", err
	}
	return cp.Name, nil
}

func (s *SupplierService) GetByID(ctx context.Context, name string) (*domain.Supplier, error) {
	const op = "na exibicao do fornecedor"
	if blank(name) {
		return nil, domain.Invalid(op, "nome nao pode ser vazio ou nulo")
	}
	return s.find(ctx, op, name)
}

func (s *SupplierService) find(ctx context.Context, op, name string) (*domain.Supplier, error) {
	f, err := s.repo.GetByID(ctx, name)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.NotFound(op, "fornecedor nao existe")
	}
	return f, err
}

// Edit changes email or phone; the name is immutable
func (s *SupplierService) Edit(ctx context.Context, name, attribute, value string) (string, error) {
	const op = "na edicao do fornecedor"
	switch {
	case blank(name):
		return "", domain.Invalid(op, "nome nao pode ser vazio ou nulo")
	case blank(attribute):
		return "", domain.Invalid(op, "atributo nao pode ser vazio ou nulo")
	case blank(value):
		return "", domain.Invalid(op, "novo valor nao pode ser vazio ou nulo")
	}
	f, err := s.find(ctx, op, name)
	if err != nil {
		return "", err
	}
	var label string
	switch attribute {
	case "nome":
		return "", domain.Invalid(op, "nome nao pode ser editado")
	case "email":
		f.Email, label = value, "Email"
	case "telefone":
		f.Phone, label = value, "Telefone"
	default:
		return "", domain.Invalid(op, "atributo nao existe")
	}
	if err := s.repo.Update(ctx, f); err != nil {
		return "", err
	}
	return label, nil
}

func (s *SupplierService) List(ctx context.Context) ([]domain.Supplier, error) {
	return s.repo.List(ctx)
}

// Delete removes the supplier along with its catalog and accounts
func (s *SupplierService) Delete(ctx context.Context, name string) error {
	const op = "na remocao do fornecedor"
	if blank(name) {
		return domain.Invalid(op, "nome do fornecedor nao pode ser vazio ou nulo")
	}
	if err := s.repo.Delete(ctx, name); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFound(op, "fornecedor nao existe")
		}
		return err
	}
	return nil
}
