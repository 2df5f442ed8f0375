package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/shopspring/decimal"

	"saga/internal/domain"
	"saga/internal/repository"
)

// AccountService manages customer accounts with each supplier, debits,
// payments and the global purchase listing
type AccountService struct {
	customers repository.CustomerRepository
	suppliers repository.SupplierRepository
	products  repository.ProductRepository
	accounts  repository.AccountRepository
	tx        repository.TxManager
	now       func() time.Time

	mu        sync.RWMutex
	criterion domain.Criterion
}

func NewAccountService(
	customers repository.CustomerRepository,
	suppliers repository.SupplierRepository,
	products repository.ProductRepository,
	accounts repository.AccountRepository,
	tx repository.TxManager,
) *AccountService {
	return &AccountService{
		customers: customers,
		suppliers: suppliers,
		products:  products,
		accounts:  accounts,
		tx:        tx,
		now:       time.Now,
	}
}

// PurchaseRequest describes a purchase; Date is dd/mm/yyyy
type PurchaseRequest struct {
	CPF         string
	Supplier    string
	Date        string
	ProductName string
	Description string
}

func checkCPF(op, cpf string) error {
	if blank(cpf) {
		return domain.Invalid(op, "cpf nao pode ser vazio ou nulo")
	}
	if len(cpf) != cpfLength {
		return domain.Invalid(op, "cpf invalido")
	}
	return nil
}

func checkAccountKey(op, cpf, supplier string) error {
	if err := checkCPF(op, cpf); err != nil {
		return err
	}
	if blank(supplier) {
		return domain.Invalid(op, "fornecedor nao pode ser vazio ou nulo")
	}
	return nil
}

// requireParties checks that customer and supplier exist and returns the customer
func (s *AccountService) requireParties(ctx context.Context, op, cpf, supplier string) (*domain.Customer, error) {
	c, err := s.customers.GetByID(ctx, cpf)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.NotFound(op, "cliente nao existe")
	}
	if err != nil {
		return nil, err
	}
	if supplier == "" {
		return c, nil
	}
	if _, err := s.suppliers.GetByID(ctx, supplier); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, domain.NotFound(op, "fornecedor nao existe")
		}
		return nil, err
	}
	return c, nil
}

// AddPurchase records a purchase of an existing product, creating the account
// on the first one. The stored price is the product's effective price at that moment.
func (s *AccountService) AddPurchase(ctx context.Context, req PurchaseRequest) error {
	const op = "ao cadastrar compra"
	if err := checkAccountKey(op, req.CPF, req.Supplier); err != nil {
		return err
	}
	if blank(req.Date) {
		return domain.Invalid(op, "data nao pode ser vazia ou nula")
	}
	date, ok := domain.ParsePurchaseDate(req.Date, s.now())
	if !ok {
		return domain.Invalid(op, "data invalida")
	}
	if blank(req.ProductName) {
		return domain.Invalid(op, "nome do produto nao pode ser vazio ou nulo")
	}
	if blank(req.Description) {
		return domain.Invalid(op, "descricao do produto nao pode ser vazia ou nula")
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		c, err := s.requireParties(ctx, op, req.CPF, req.Supplier)
		if err != nil {
			return err
		}
		key := domain.ProductKey{Name: req.ProductName, Description: req.Description}
		p, err := s.products.GetByID(ctx, req.Supplier, key)
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFound(op, "produto nao existe")
		}
		if err != nil {
			return err
		}
		return s.accounts.AppendPurchase(ctx, req.Supplier, req.CPF, domain.Purchase{
			Date:               date,
			ProductName:        key.Name,
			ProductDescription: key.Description,
			Price:              p.EffectivePrice(),
			CustomerName:       c.Name,
			SupplierName:       req.Supplier,
		})
	})
}

// Debit sums the customer's purchases with the supplier. A missing account
// and an account summing to zero both report no debit.
func (s *AccountService) Debit(ctx context.Context, cpf, supplier string) (decimal.Decimal, error) {
	const op = "ao recuperar debito"
	if err := checkAccountKey(op, cpf, supplier); err != nil {
		return decimal.Zero, err
	}
	acc, err := s.account(ctx, op, cpf, supplier, "cliente nao tem debito com fornecedor")
	if err != nil {
		return decimal.Zero, err
	}
	debit := acc.Debit()
	if debit.IsZero() {
		return decimal.Zero, domain.NotFound(op, "cliente nao tem debito com fornecedor")
	}
	return debit, nil
}

func (s *AccountService) account(ctx context.Context, op, cpf, supplier, missing string) (*domain.Account, error) {
	var acc *domain.Account
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.requireParties(ctx, op, cpf, supplier); err != nil {
			return err
		}
		var err error
		acc, err = s.accounts.GetByID(ctx, supplier, cpf)
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFound(op, missing)
		}
		return err
	})
	if err != nil {
		return nil, err
	}
	return acc, nil
}

// Account returns the customer's account with one supplier
func (s *AccountService) Account(ctx context.Context, cpf, supplier string) (*domain.Account, error) {
	const op = "ao exibir conta do cliente"
	if err := checkAccountKey(op, cpf, supplier); err != nil {
		return nil, err
	}
	return s.account(ctx, op, cpf, supplier, "cliente nao tem nenhuma conta com o fornecedor")
}

// Accounts returns the customer and their accounts with every supplier
func (s *AccountService) Accounts(ctx context.Context, cpf string) (*domain.Customer, []domain.Account, error) {
	const op = "ao exibir contas do cliente"
	if err := checkCPF(op, cpf); err != nil {
		return nil, nil, err
	}
	var (
		c        *domain.Customer
		accounts []domain.Account
	)
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		var err error
		if c, err = s.requireParties(ctx, op, cpf, ""); err != nil {
			return err
		}
		if accounts, err = s.accounts.ListByCustomer(ctx, cpf); err != nil {
			return err
		}
		if len(accounts) == 0 {
			return domain.NotFound(op, "cliente nao tem nenhuma conta")
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return c, accounts, nil
}

// Pay settles the account, dropping every purchase of the customer/supplier pair
func (s *AccountService) Pay(ctx context.Context, cpf, supplier string) error {
	const op = "no pagamento de conta"
	if err := checkAccountKey(op, cpf, supplier); err != nil {
		return err
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := s.requireParties(ctx, op, cpf, supplier); err != nil {
			return err
		}
		if err := s.accounts.Delete(ctx, supplier, cpf); err != nil {
			if errors.Is(err, repository.ErrNotFound) {
				return domain.NotFound(op, "nao ha debito do cliente associado a este fornecedor")
			}
			return err
		}
		return nil
	})
}

// SelectCriterion replaces the active criterion of the purchase listing
func (s *AccountService) SelectCriterion(name string) (domain.Criterion, error) {
	const op = "na listagem de compras"
	if blank(name) {
		return domain.CriterionNone, domain.Invalid(op, "criterio nao pode ser vazio ou nulo")
	}
	c, ok := domain.ParseCriterion(name)
	if !ok {
		return domain.CriterionNone, domain.Invalid(op, "criterio nao oferecido pelo sistema")
	}
	s.mu.Lock()
	s.criterion = c
	s.mu.Unlock()
	return c, nil
}

func (s *AccountService) Criterion() domain.Criterion {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.criterion
}

// ListPurchases returns every purchase sorted by the active criterion
func (s *AccountService) ListPurchases(ctx context.Context) ([]domain.Purchase, domain.Criterion, error) {
	c := s.Criterion()
	if c == domain.CriterionNone {
		return nil, c, domain.State("na listagem de compras", "criterio ainda nao selecionado")
	}
	purchases, err := s.ListPurchasesBy(ctx, c)
	return purchases, c, err
}

// ListPurchasesBy gathers purchases from every account (suppliers by name,
// accounts by CPF, purchases in insertion order) and sorts them stably
func (s *AccountService) ListPurchasesBy(ctx context.Context, c domain.Criterion) ([]domain.Purchase, error) {
	if c == domain.CriterionNone {
		return nil, domain.State("na listagem de compras", "criterio ainda nao selecionado")
	}
	accounts, err := s.accounts.List(ctx)
	if err != nil {
		return nil, err
	}
	purchases := make([]domain.Purchase, 0)
	for _, acc := range accounts {
		purchases = append(purchases, acc.Purchases...)
	}
	c.Sort(purchases)
	return purchases, nil
}
