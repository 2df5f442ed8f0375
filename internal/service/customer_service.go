package service

import (
	"context"
	"errors"
	"strings"

	"saga/internal/domain"
	"saga/internal/repository"
)

const cpfLength = 11

// CustomerService holds customer registration rules
type CustomerService struct {
	repo     repository.CustomerRepository
	accounts repository.AccountRepository
	tx       repository.TxManager
}

func NewCustomerService(repo repository.CustomerRepository, accounts repository.AccountRepository, tx repository.TxManager) *CustomerService {
	return &CustomerService{repo: repo, accounts: accounts, tx: tx}
}

func blank(s string) bool { return strings.TrimSpace(s) == "" }

// Create registers the customer and returns the CPF
func (s *CustomerService) Create(ctx context.Context, c domain.Customer) (string, error) {
	const op = "no cadastro do cliente"
	switch {
	case blank(c.CPF):
		return "", domain.Invalid(op, "cpf nao pode ser vazio ou nulo")
	case blank(c.Name):
		return "", domain.Invalid(op, "nome nao pode ser vazio ou nulo")
	case blank(c.Email):
		return "", domain.Invalid(op, "email nao pode ser vazio ou nulo")
	case blank(c.Location):
		return "", domain.Invalid(op, "localizacao nao pode ser vazia ou nula")
	case len(c.CPF) != cpfLength:
		return "", domain.Invalid(op, "cpf invalido")
	}
	cp := c
	if err := s.repo.Create(ctx, &cp); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return "", domain.Conflict(op, "cliente ja existe")
		}
		return "", err
	}
	return cp.CPF, nil
}

func (s *CustomerService) GetByID(ctx context.Context, cpf string) (*domain.Customer, error) {
	const op = "na exibicao do cliente"
	if blank(cpf) {
		return nil, domain.Invalid(op, "cpf nao pode ser vazio ou nulo")
	}
	return s.find(ctx, op, cpf)
}

func (s *CustomerService) find(ctx context.Context, op, cpf string) (*domain.Customer, error) {
	c, err := s.repo.GetByID(ctx, cpf)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.NotFound(op, "cliente nao existe")
	}
	return c, err
}

// Edit changes name, email or location and returns the changed attribute's label.
// The CPF is immutable.
func (s *CustomerService) Edit(ctx context.Context, cpf, attribute, value string) (string, error) {
	const op = "na edicao do cliente"
	switch {
	case blank(cpf):
		return "", domain.Invalid(op, "cpf nao pode ser vazio ou nulo")
	case blank(attribute):
		return "", domain.Invalid(op, "atributo nao pode ser vazio ou nulo")
	case blank(value):
		return "", domain.Invalid(op, "novo valor nao pode ser vazio ou nulo")
	}
	c, err := s.find(ctx, op, cpf)
	if err != nil {
		return "", err
	}
	var label string
	switch attribute {
	case "cpf":
		return "", domain.Invalid(op, "cpf nao pode ser editado")
	case "nome":
		c.Name, label = value, "Nome"
	case "email":
		c.Email, label = value, "Email"
	case "localizacao":
		c.Location, label = value, "Localizacao"
	default:
		return "", domain.Invalid(op, "atributo nao existe")
	}
	if err := s.repo.Update(ctx, c); err != nil {
		return "", err
	}
	return label, nil
}

func (s *CustomerService) List(ctx context.Context) ([]domain.Customer, error) {
	return s.repo.List(ctx)
}

// Delete removes the customer together with their accounts, so a CPF
// registered again later starts with no debt.
func (s *CustomerService) Delete(ctx context.Context, cpf string) error {
	const op = "na remocao do cliente"
	if blank(cpf) {
		return domain.Invalid(op, "cpf nao pode ser vazio ou nulo")
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.repo.Delete(ctx, cpf); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.NotFound(op, "cliente nao existe")
			}
			return err
		}
		return s.accounts.DeleteByCustomer(ctx, cpf)
	})
}
