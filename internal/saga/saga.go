// Package saga is the system facade: each operation delegates to the entity's
// service and returns the textual rendering of the result.
package saga

import (
	"context"
	"log/slog"
	"strings"

	"github.com/shopspring/decimal"

	"saga/internal/domain"
	"saga/internal/logger"
	"saga/internal/repository"
	"saga/internal/service"
)

const separator = " | "

type Saga struct {
	customers *service.CustomerService
	suppliers *service.SupplierService
	products  *service.ProductService
	accounts  *service.AccountService
}

func New(
	customers *service.CustomerService,
	suppliers *service.SupplierService,
	products *service.ProductService,
	accounts *service.AccountService,
) *Saga {
	return &Saga{customers: customers, suppliers: suppliers, products: products, accounts: accounts}
}

// NewInMemory builds the facade over a fresh MemoryStore
func NewInMemory() *Saga {
	store := repository.NewMemoryStore()
	suppliers := repository.NewMemorySuppliers(store)
	products := repository.NewMemoryProducts(store)
	accounts := repository.NewMemoryAccounts(store)
	tx := repository.NewMemoryTx(store)

	return New(
		service.NewCustomerService(store, accounts, tx),
		service.NewSupplierService(suppliers),
		service.NewProductService(suppliers, products, tx),
		service.NewAccountService(store, suppliers, products, accounts, tx),
	)
}

func join[T any](items []T, render func(T) string) string {
	parts := make([]string, 0, len(items))
	for _, it := range items {
		parts = append(parts, render(it))
	}
	return strings.Join(parts, separator)
}

// Customers

func (s *Saga) AddCustomer(ctx context.Context, cpf, name, email, location string) (string, error) {
	id, err := s.customers.Create(ctx, domain.Customer{CPF: cpf, Name: name, Email: email, Location: location})
	if err != nil {
		return "", err
	}
	logger.FromContext(ctx).Debug("cliente cadastrado", slog.String("cpf", id))
	return id, nil
}

func (s *Saga) DisplayCustomer(ctx context.Context, cpf string) (string, error) {
	c, err := s.customers.GetByID(ctx, cpf)
	if err != nil {
		return "", err
	}
	return c.String(), nil
}

// EditCustomer returns the label of the changed attribute
func (s *Saga) EditCustomer(ctx context.Context, cpf, attribute, value string) (string, error) {
	label, err := s.customers.Edit(ctx, cpf, attribute, value)
	if err != nil {
		return "", err
	}
	logger.FromContext(ctx).Debug("cliente editado", slog.String("cpf", cpf), slog.String("atributo", label))
	return label, nil
}

func (s *Saga) ListCustomers(ctx context.Context) (string, error) {
	list, err := s.customers.List(ctx)
	if err != nil {
		return "", err
	}
	return join(list, domain.Customer.String), nil
}

func (s *Saga) RemoveCustomer(ctx context.Context, cpf string) error {
	if err := s.customers.Delete(ctx, cpf); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("cliente removido", slog.String("cpf", cpf))
	return nil
}

// Suppliers

func (s *Saga) AddSupplier(ctx context.Context, name, email, phone string) (string, error) {
	id, err := s.suppliers.Create(ctx, domain.Supplier{Name: name, Email: email, Phone: phone})
	if err != nil {
		return "", err
	}
	logger.FromContext(ctx).Debug("fornecedor cadastrado", slog.String("fornecedor", id))
	return id, nil
}

func (s *Saga) DisplaySupplier(ctx context.Context, name string) (string, error) {
	f, err := s.suppliers.GetByID(ctx, name)
	if err != nil {
		return "", err
	}
	return f.String(), nil
}

func (s *Saga) EditSupplier(ctx context.Context, name, attribute, value string) (string, error) {
	label, err := s.suppliers.Edit(ctx, name, attribute, value)
	if err != nil {
		return "", err
	}
	logger.FromContext(ctx).Debug("fornecedor editado", slog.String("fornecedor", name), slog.String("atributo", label))
	return label, nil
}

func (s *Saga) ListSuppliers(ctx context.Context) (string, error) {
	list, err := s.suppliers.List(ctx)
	if err != nil {
		return "", err
	}
	return join(list, domain.Supplier.String), nil
}

func (s *Saga) RemoveSupplier(ctx context.Context, name string) error {
	if err := s.suppliers.Delete(ctx, name); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("fornecedor removido", slog.String("fornecedor", name))
	return nil
}

// Products and combos

func productKey(name, description string) domain.ProductKey {
	return domain.ProductKey{Name: name, Description: description}
}

func (s *Saga) AddProduct(ctx context.Context, supplier, name, description string, price float64) error {
	if err := s.products.Create(ctx, supplier, productKey(name, description), decimal.NewFromFloat(price)); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("produto cadastrado",
		slog.String("fornecedor", supplier), slog.String("produto", name), slog.String("descricao", description))
	return nil
}

func (s *Saga) DisplayProduct(ctx context.Context, name, description, supplier string) (string, error) {
	p, err := s.products.GetByID(ctx, supplier, productKey(name, description))
	if err != nil {
		return "", err
	}
	return p.String(), nil
}

func catalogEntry(supplier string) func(domain.Product) string {
	return func(p domain.Product) string { return supplier + " - " + p.String() }
}

// ListProducts renders the supplier's catalog, each item prefixed by the supplier name
func (s *Saga) ListProducts(ctx context.Context, supplier string) (string, error) {
	list, err := s.products.List(ctx, supplier)
	if err != nil {
		return "", err
	}
	return join(list, catalogEntry(supplier)), nil
}

// ListAllProducts renders every catalog; an empty one shows as "Fornecedor -"
func (s *Saga) ListAllProducts(ctx context.Context) (string, error) {
	catalogs, err := s.products.ListAll(ctx)
	if err != nil {
		return "", err
	}
	return join(catalogs, func(c service.Catalog) string {
		if len(c.Products) == 0 {
			return c.Supplier + " -"
		}
		return join(c.Products, catalogEntry(c.Supplier))
	}), nil
}

func (s *Saga) EditProduct(ctx context.Context, name, description, supplier string, price float64) error {
	if err := s.products.UpdatePrice(ctx, supplier, productKey(name, description), decimal.NewFromFloat(price)); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("produto editado",
		slog.String("fornecedor", supplier), slog.String("produto", name), slog.Float64("preco", price))
	return nil
}

func (s *Saga) RemoveProduct(ctx context.Context, name, description, supplier string) error {
	if err := s.products.Delete(ctx, supplier, productKey(name, description)); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("produto removido", slog.String("fornecedor", supplier), slog.String("produto", name))
	return nil
}

// AddCombo takes products as "nome - descricao, nome - descricao"
func (s *Saga) AddCombo(ctx context.Context, supplier, name, description string, factor float64, products string) error {
	if err := s.products.CreateCombo(ctx, supplier, productKey(name, description), decimal.NewFromFloat(factor), products); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("combo cadastrado", slog.String("fornecedor", supplier), slog.String("produto", name))
	return nil
}

func (s *Saga) EditCombo(ctx context.Context, name, description, supplier string, factor float64) error {
	if err := s.products.UpdateComboFactor(ctx, supplier, productKey(name, description), decimal.NewFromFloat(factor)); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("combo editado",
		slog.String("fornecedor", supplier), slog.String("produto", name), slog.Float64("fator", factor))
	return nil
}

// Accounts

// AddPurchase takes date as dd/mm/yyyy
func (s *Saga) AddPurchase(ctx context.Context, cpf, supplier, date, name, description string) error {
	err := s.accounts.AddPurchase(ctx, service.PurchaseRequest{
		CPF:         cpf,
		Supplier:    supplier,
		Date:        date,
		ProductName: name,
		Description: description,
	})
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("compra registrada",
		slog.String("cpf", cpf), slog.String("fornecedor", supplier), slog.String("produto", name))
	return nil
}

// GetDebit returns the debit as "25.50"
func (s *Saga) GetDebit(ctx context.Context, cpf, supplier string) (string, error) {
	debit, err := s.accounts.Debit(ctx, cpf, supplier)
	if err != nil {
		return "", err
	}
	return domain.FormatDebit(debit), nil
}

// DisplayAccount "Cliente: nome | fornecedor | produto - data | ..."
func (s *Saga) DisplayAccount(ctx context.Context, cpf, supplier string) (string, error) {
	acc, err := s.accounts.Account(ctx, cpf, supplier)
	if err != nil {
		return "", err
	}
	return "Cliente: " + acc.CustomerName + separator + acc.SupplierName + separator + acc.String(), nil
}

// DisplayAccounts "Cliente: nome | fornecedor1 | compras | fornecedor2 | compras"
func (s *Saga) DisplayAccounts(ctx context.Context, cpf string) (string, error) {
	c, accounts, err := s.accounts.Accounts(ctx, cpf)
	if err != nil {
		return "", err
	}
	return "Cliente: " + c.Name + separator + join(accounts, func(a domain.Account) string {
		return a.SupplierName + separator + a.String()
	}), nil
}

// ListAccountPurchases renders the account's purchases in insertion order
func (s *Saga) ListAccountPurchases(ctx context.Context, cpf, supplier string) (string, error) {
	acc, err := s.accounts.Account(ctx, cpf, supplier)
	if err != nil {
		return "", err
	}
	return acc.String(), nil
}

func (s *Saga) Pay(ctx context.Context, cpf, supplier string) error {
	if err := s.accounts.Pay(ctx, cpf, supplier); err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("conta paga", slog.String("cpf", cpf), slog.String("fornecedor", supplier))
	return nil
}

// Global listing

// SortBy selects the active criterion: "Cliente", "Fornecedor" or "Data"
func (s *Saga) SortBy(ctx context.Context, criterion string) error {
	c, err := s.accounts.SelectCriterion(criterion)
	if err != nil {
		return err
	}
	logger.FromContext(ctx).Debug("criterio selecionado", slog.String("criterio", c.String()))
	return nil
}

// ListPurchases renders every purchase sorted by the active criterion
func (s *Saga) ListPurchases(ctx context.Context) (string, error) {
	purchases, c, err := s.accounts.ListPurchases(ctx)
	if err != nil {
		return "", err
	}
	return c.Render(purchases), nil
}
