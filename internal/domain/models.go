package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

// Customer is identified by CPF
type Customer struct {
	CPF      string `json:"cpf"`
	Name     string `json:"nome"`
	Email    string `json:"email"`
	Location string `json:"localizacao"`
}

func (c Customer) String() string {
	return c.Name + " - " + c.Location + " - " + c.Email
}

// Supplier is identified by name
type Supplier struct {
	Name  string `json:"nome"`
	Email string `json:"email"`
	Phone string `json:"telefone"`
}

func (s Supplier) String() string {
	return s.Name + " - " + s.Email + " - " + s.Phone
}

// ProductKey identifies a product within one supplier's catalog
type ProductKey struct {
	Name        string `json:"nome"`
	Description string `json:"descricao"`
}

func (k ProductKey) String() string {
	return k.Name + " - " + k.Description
}

// Combo holds the combo-only fields of a product
type Combo struct {
	Factor decimal.Decimal `json:"fator"`
	Items  []ProductKey    `json:"produtos"`
}

// Product is a catalog entry. For combos Price is the base price,
// computed at creation as the sum of its constituents.
type Product struct {
	Key   ProductKey      `json:"id"`
	Price decimal.Decimal `json:"preco"`
	Combo *Combo          `json:"combo,omitempty"`
}

func (p Product) IsCombo() bool { return p.Combo != nil }

// EffectivePrice is the price charged on purchase: base * (1 - factor) for combos
func (p Product) EffectivePrice() decimal.Decimal {
	if p.Combo == nil {
		return p.Price
	}
	return p.Price.Mul(decimal.NewFromInt(1).Sub(p.Combo.Factor))
}

func (p Product) String() string {
	return p.Key.String() + " - " + FormatReais(p.EffectivePrice())
}

// Purchase is an immutable line; Date is dd-mm-yyyy
type Purchase struct {
	Date               string          `json:"data"`
	ProductName        string          `json:"produto"`
	ProductDescription string          `json:"descricao"`
	Price              decimal.Decimal `json:"preco"`
	CustomerName       string          `json:"cliente"`
	SupplierName       string          `json:"fornecedor"`
}

func (p Purchase) String() string {
	return p.ProductName + " - " + p.Date
}

// Account is one customer's tab with one supplier
type Account struct {
	CustomerCPF  string     `json:"cpf"`
	CustomerName string     `json:"cliente"`
	SupplierName string     `json:"fornecedor"`
	Purchases    []Purchase `json:"compras"`
}

// Debit sums the account's purchase prices
func (a Account) Debit() decimal.Decimal {
	total := decimal.Zero
	for _, p := range a.Purchases {
		total = total.Add(p.Price)
	}
	return total
}

func (a Account) String() string {
	parts := make([]string, 0, len(a.Purchases))
	for _, p := range a.Purchases {
		parts = append(parts, p.String())
	}
	return strings.Join(parts, " | ")
}
