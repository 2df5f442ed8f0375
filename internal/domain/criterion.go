package domain

import (
	"fmt"
	"slices"
	"strings"
)

// Criterion orders the global purchase listing
type Criterion int

const (
	CriterionNone Criterion = iota
	ByCustomer
	BySupplier
	ByDate
)

var criterionNames = map[string]Criterion{
	"Cliente":    ByCustomer,
	"Fornecedor": BySupplier,
	"Data":       ByDate,
}

// ParseCriterion resolves the user-facing name ("Cliente", "Fornecedor", "Data")
func ParseCriterion(name string) (Criterion, bool) {
	c, ok := criterionNames[name]
	return c, ok
}

func (c Criterion) String() string {
	switch c {
	case ByCustomer:
		return "Cliente"
	case BySupplier:
		return "Fornecedor"
	case ByDate:
		return "Data"
	default:
		return ""
	}
}

// Compare orders a and b; ties on the primary field fall back to the
// concatenation of the remaining fields.
func (c Criterion) Compare(a, b Purchase) int {
	switch c {
	case ByCustomer:
		if r := strings.Compare(a.CustomerName, b.CustomerName); r != 0 {
			return r
		}
		return strings.Compare(
			a.SupplierName+a.ProductDescription+a.Date,
			b.SupplierName+b.ProductDescription+b.Date,
		)
	case BySupplier:
		if r := strings.Compare(a.SupplierName, b.SupplierName); r != 0 {
			return r
		}
		return strings.Compare(
			a.CustomerName+a.ProductDescription+a.Date,
			b.CustomerName+b.ProductDescription+b.Date,
		)
	case ByDate:
		if r := purchaseTime(a.Date).Compare(purchaseTime(b.Date)); r != 0 {
			return r
		}
		return strings.Compare(
			a.CustomerName+a.SupplierName+a.ProductDescription,
			b.CustomerName+b.SupplierName+b.ProductDescription,
		)
	default:
		return 0
	}
}

// Sort orders purchases in place, stably
func (c Criterion) Sort(purchases []Purchase) {
	slices.SortStableFunc(purchases, c.Compare)
}

// Render formats already sorted purchases joined by " | "
func (c Criterion) Render(purchases []Purchase) string {
	parts := make([]string, 0, len(purchases))
	for _, p := range purchases {
		parts = append(parts, c.renderOne(p))
	}
	return strings.Join(parts, " | ")
}

func (c Criterion) renderOne(p Purchase) string {
	date := displayDate(p.Date)
	switch c {
	case ByCustomer:
		return fmt.Sprintf("%s, %s, %s, %s", p.CustomerName, p.SupplierName, p.ProductDescription, date)
	case BySupplier:
		return fmt.Sprintf("%s, %s, %s, %s", p.SupplierName, p.CustomerName, p.ProductDescription, date)
	case ByDate:
		return fmt.Sprintf("%s, %s, %s, %s", date, p.CustomerName, p.SupplierName, p.ProductDescription)
	default:
		return p.String()
	}
}
