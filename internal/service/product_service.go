package service

import (
	"context"
	"errors"
	"strings"

	"github.com/shopspring/decimal"

	"saga/internal/domain"
	"saga/internal/repository"
)

// ProductService manages each supplier's catalog of products and combos
type ProductService struct {
	suppliers repository.SupplierRepository
	repo      repository.ProductRepository
	tx        repository.TxManager
}

func NewProductService(suppliers repository.SupplierRepository, repo repository.ProductRepository, tx repository.TxManager) *ProductService {
	return &ProductService{suppliers: suppliers, repo: repo, tx: tx}
}

// Catalog is one supplier's products, for listings
type Catalog struct {
	Supplier string
	Products []domain.Product
}

// comboSeparator splits a combo's products: "A - a, B - b"
const comboSeparator = ", "

var one = decimal.NewFromInt(1)

func (s *ProductService) requireSupplier(ctx context.Context, op, supplier string) error {
	if _, err := s.suppliers.GetByID(ctx, supplier); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFound(op, "fornecedor nao existe")
		}
		return err
	}
	return nil
}

func (s *ProductService) find(ctx context.Context, op, supplier string, key domain.ProductKey) (*domain.Product, error) {
	p, err := s.repo.GetByID(ctx, supplier, key)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.NotFound(op, "produto nao existe")
	}
	return p, err
}

func checkKey(op, supplier string, key domain.ProductKey) error {
	switch {
	case blank(supplier):
		return domain.Invalid(op, "fornecedor nao pode ser vazio ou nulo")
	case blank(key.Name):
		return domain.Invalid(op, "nome nao pode ser vazio ou nulo")
	case blank(key.Description):
		return domain.Invalid(op, "descricao nao pode ser vazia ou nula")
	}
	return nil
}

func (s *ProductService) Create(ctx context.Context, supplier string, key domain.ProductKey, price decimal.Decimal) error {
	const op = "no cadastro de produto"
	if err := checkKey(op, supplier, key); err != nil {
		return err
	}
	if !price.IsPositive() {
		return domain.Invalid(op, "preco invalido")
	}
	if err := s.requireSupplier(ctx, op, supplier); err != nil {
		return err
	}
	p := domain.Product{Key: key, Price: price}
	if err := s.repo.Create(ctx, supplier, &p); err != nil {
		if errors.Is(err, repository.ErrAlreadyExists) {
			return domain.Conflict(op, "produto ja existe")
		}
		return err
	}
	return nil
}

func (s *ProductService) GetByID(ctx context.Context, supplier string, key domain.ProductKey) (*domain.Product, error) {
	const op = "na exibicao de produto"
	if err := checkKey(op, supplier, key); err != nil {
		return nil, err
	}
	if err := s.requireSupplier(ctx, op, supplier); err != nil {
		return nil, err
	}
	return s.find(ctx, op, supplier, key)
}

// UpdatePrice changes the price; for combos it changes the base price
func (s *ProductService) UpdatePrice(ctx context.Context, supplier string, key domain.ProductKey, price decimal.Decimal) error {
	const op = "na edicao de produto"
	if err := checkKey(op, supplier, key); err != nil {
		return err
	}
	if !price.IsPositive() {
		return domain.Invalid(op, "preco invalido")
	}
	if err := s.requireSupplier(ctx, op, supplier); err != nil {
		return err
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		p, err := s.find(ctx, op, supplier, key)
		if err != nil {
			return err
		}
		p.Price = price
		return s.repo.Update(ctx, supplier, p)
	})
}

func (s *ProductService) Delete(ctx context.Context, supplier string, key domain.ProductKey) error {
	const op = "na remocao de produto"
	if err := checkKey(op, supplier, key); err != nil {
		return err
	}
	if err := s.requireSupplier(ctx, op, supplier); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, supplier, key); err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return domain.NotFound(op, "produto nao existe")
		}
		return err
	}
	return nil
}

// List returns the supplier's catalog ordered by name
func (s *ProductService) List(ctx context.Context, supplier string) ([]domain.Product, error) {
	const op = "na listagem de produtos"
	if blank(supplier) {
		return nil, domain.Invalid(op, "fornecedor nao pode ser vazio ou nulo")
	}
	products, err := s.repo.List(ctx, supplier)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, domain.NotFound(op, "fornecedor nao existe")
	}
	return products, err
}

// ListAll returns every supplier's catalog, suppliers by name
func (s *ProductService) ListAll(ctx context.Context) ([]Catalog, error) {
	var out []Catalog
	err := s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		suppliers, err := s.suppliers.List(ctx)
		if err != nil {
			return err
		}
		out = make([]Catalog, 0, len(suppliers))
		for _, f := range suppliers {
			products, err := s.repo.List(ctx, f.Name)
			if err != nil {
				return err
			}
			out = append(out, Catalog{Supplier: f.Name, Products: products})
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return out, nil
}

func validFactor(f decimal.Decimal) bool {
	return f.IsPositive() && !f.Equal(one)
}

// parseComboItems reads "nome - descricao, nome - descricao"
func parseComboItems(refs string) ([]domain.ProductKey, bool) {
	parts := strings.Split(refs, comboSeparator)
	items := make([]domain.ProductKey, 0, len(parts))
	for _, part := range parts {
		name, desc, ok := strings.Cut(strings.TrimSpace(part), " - ")
		if !ok || blank(name) || blank(desc) {
			return nil, false
		}
		items = append(items, domain.ProductKey{Name: strings.TrimSpace(name), Description: strings.TrimSpace(desc)})
	}
	return items, true
}

// CreateCombo registers a combo from existing non-combo products.
// The base price is the sum of their current prices.
func (s *ProductService) CreateCombo(ctx context.Context, supplier string, key domain.ProductKey, factor decimal.Decimal, refs string) error {
	const op = "no cadastro de combo"
	if err := checkKey(op, supplier, key); err != nil {
		return err
	}
	if !validFactor(factor) {
		return domain.Invalid(op, "fator invalido")
	}
	if blank(refs) {
		return domain.Invalid(op, "combo deve ter produtos")
	}
	items, ok := parseComboItems(refs)
	if !ok {
		return domain.Invalid(op, "produto invalido")
	}

	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireSupplier(ctx, op, supplier); err != nil {
			return err
		}
		if _, err := s.repo.GetByID(ctx, supplier, key); err == nil {
			return domain.Conflict(op, "combo ja existe")
		} else if !errors.Is(err, repository.ErrNotFound) {
			return err
		}
		base := decimal.Zero
		for _, item := range items {
			p, err := s.find(ctx, op, supplier, item)
			if err != nil {
				return err
			}
			if p.IsCombo() {
				return domain.Invalid(op, "um combo nao pode possuir combos na lista de produtos")
			}
			base = base.Add(p.Price)
		}
		combo := domain.Product{
			Key:   key,
			Price: base,
			Combo: &domain.Combo{Factor: factor, Items: items},
		}
		return s.repo.Create(ctx, supplier, &combo)
	})
}

// UpdateComboFactor replaces the discount factor of an existing combo
func (s *ProductService) UpdateComboFactor(ctx context.Context, supplier string, key domain.ProductKey, factor decimal.Decimal) error {
	const op = "na edicao de combo"
	if err := checkKey(op, supplier, key); err != nil {
		return err
	}
	if !validFactor(factor) {
		return domain.Invalid(op, "fator invalido")
	}
	return s.tx.WithTransaction(ctx, func(ctx context.Context) error {
		if err := s.requireSupplier(ctx, op, supplier); err != nil {
			return err
		}
		p, err := s.find(ctx, op, supplier, key)
		if err != nil {
			return err
		}
		if !p.IsCombo() {
			return domain.Invalid(op, "produto nao e um combo")
		}
		p.Combo.Factor = factor
		return s.repo.Update(ctx, supplier, p)
	})
}
