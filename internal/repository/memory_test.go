package repository

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"

	"saga/internal/domain"
)

func TestMemoryStore_CustomerCRUD(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()

	c := domain.Customer{CPF: "12345678901", Name: "Sandra", Email: "sandra@x.com", Location: "LSD"}
	if err := store.Create(ctx, &c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := store.Create(ctx, &domain.Customer{CPF: c.CPF, Name: "Outra"}); err != ErrAlreadyExists {
		t.Fatalf("expected already exists, got %v", err)
	}

	got, err := store.GetByID(ctx, c.CPF)
	if err != nil || got.Name != "Sandra" {
		t.Fatalf("get: %v %v", got, err)
	}

	c.Email = "sandra@y.com"
	if err := store.Update(ctx, &c); err != nil {
		t.Fatalf("update: %v", err)
	}
	got, _ = store.GetByID(ctx, c.CPF)
	if got.Email != "sandra@y.com" {
		t.Fatalf("update not applied: %v", got.Email)
	}

	if err := store.Delete(ctx, c.CPF); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if _, err := store.GetByID(ctx, c.CPF); err != ErrNotFound {
		t.Fatalf("expected not found")
	}
}

func TestMemoryStore_ListOrderedByName(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	add := func(cpf, name string) {
		if err := store.Create(ctx, &domain.Customer{CPF: cpf, Name: name}); err != nil {
			t.Fatal(err)
		}
	}
	add("00000000003", "Zeca")
	add("00000000001", "Ana")
	add("00000000002", "Maria")

	list, _ := store.List(ctx)
	if len(list) != 3 || list[0].Name != "Ana" || list[1].Name != "Maria" || list[2].Name != "Zeca" {
		t.Fatalf("unexpected order: %v", list)
	}
}

func TestMemoryProducts_CopiesCombo(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	suppliers := NewMemorySuppliers(store)
	products := NewMemoryProducts(store)
	if err := suppliers.Create(ctx, &domain.Supplier{Name: "Osvaldo"}); err != nil {
		t.Fatal(err)
	}

	items := []domain.ProductKey{{Name: "A", Description: "a"}}
	p := domain.Product{
		Key:   domain.ProductKey{Name: "Combo", Description: "c"},
		Price: decimal.NewFromInt(10),
		Combo: &domain.Combo{Factor: decimal.RequireFromString("0.5"), Items: items},
	}
	if err := products.Create(ctx, "Osvaldo", &p); err != nil {
		t.Fatalf("create: %v", err)
	}
	items[0].Name = "mutated"

	got, err := products.GetByID(ctx, "Osvaldo", p.Key)
	if err != nil {
		t.Fatalf("get: %v", err)
	}
	if got.Combo.Items[0].Name != "A" {
		t.Fatalf("stored combo shares caller slice")
	}

	if _, err := products.GetByID(ctx, "Ninguem", p.Key); err != ErrNotFound {
		t.Fatalf("expected not found for unknown supplier")
	}
}

func TestMemoryAccounts_LazyCreateAndSupplierOwnership(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	suppliers := NewMemorySuppliers(store)
	accounts := NewMemoryAccounts(store)
	for _, name := range []string{"Zelia", "Bruno"} {
		if err := suppliers.Create(ctx, &domain.Supplier{Name: name}); err != nil {
			t.Fatal(err)
		}
	}

	if _, err := accounts.GetByID(ctx, "Bruno", "12345678901"); err != ErrNotFound {
		t.Fatalf("expected no account before first purchase")
	}
	purchase := domain.Purchase{Date: "10-05-2023", ProductName: "Caderno", Price: decimal.NewFromInt(5), CustomerName: "Sandra"}
	for _, s := range []string{"Zelia", "Bruno", "Bruno"} {
		purchase.SupplierName = s
		if err := accounts.AppendPurchase(ctx, s, "12345678901", purchase); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	acc, err := accounts.GetByID(ctx, "Bruno", "12345678901")
	if err != nil || len(acc.Purchases) != 2 {
		t.Fatalf("get account: %v %v", acc, err)
	}

	list, _ := accounts.ListByCustomer(ctx, "12345678901")
	if len(list) != 2 || list[0].SupplierName != "Bruno" || list[1].SupplierName != "Zelia" {
		t.Fatalf("unexpected accounts order: %v", list)
	}

	if err := suppliers.Delete(ctx, "Bruno"); err != nil {
		t.Fatal(err)
	}
	all, _ := accounts.List(ctx)
	if len(all) != 1 || all[0].SupplierName != "Zelia" {
		t.Fatalf("accounts must go away with their supplier: %v", all)
	}
}

func TestMemoryAccounts_DeleteByCustomer(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	suppliers := NewMemorySuppliers(store)
	accounts := NewMemoryAccounts(store)
	for _, name := range []string{"Zelia", "Bruno"} {
		if err := suppliers.Create(ctx, &domain.Supplier{Name: name}); err != nil {
			t.Fatal(err)
		}
	}
	purchase := domain.Purchase{Date: "10-05-2023", ProductName: "Caderno", Price: decimal.NewFromInt(5)}
	for _, cpf := range []string{"12345678901", "10987654321"} {
		for _, s := range []string{"Zelia", "Bruno"} {
			if err := accounts.AppendPurchase(ctx, s, cpf, purchase); err != nil {
				t.Fatalf("append: %v", err)
			}
		}
	}

	if err := accounts.DeleteByCustomer(ctx, "12345678901"); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if list, _ := accounts.ListByCustomer(ctx, "12345678901"); len(list) != 0 {
		t.Fatalf("accounts left behind: %v", list)
	}
	if list, _ := accounts.ListByCustomer(ctx, "10987654321"); len(list) != 2 {
		t.Fatalf("other customer's accounts must stay: %v", list)
	}
	if err := accounts.DeleteByCustomer(ctx, "00000000000"); err != nil {
		t.Fatalf("deleting nothing: %v", err)
	}
}

func TestMemoryTx_TransactionalUpdate(t *testing.T) {
	ctx := context.Background()
	store := NewMemoryStore()
	tx := NewMemoryTx(store)
	suppliers := NewMemorySuppliers(store)
	accounts := NewMemoryAccounts(store)

	if err := suppliers.Create(ctx, &domain.Supplier{Name: "Osvaldo"}); err != nil {
		t.Fatal(err)
	}

	err := tx.WithTransaction(ctx, func(ctx context.Context) error {
		if _, err := suppliers.GetByID(ctx, "Osvaldo"); err != nil {
			return err
		}
		if err := accounts.AppendPurchase(ctx, "Osvaldo", "12345678901", domain.Purchase{Price: decimal.NewFromInt(1)}); err != nil {
			return err
		}
		return accounts.Delete(ctx, "Osvaldo", "12345678901")
	})
	if err != nil {
		t.Fatalf("tx: %v", err)
	}

	if _, err := accounts.GetByID(context.Background(), "Osvaldo", "12345678901"); err != ErrNotFound {
		t.Fatalf("expected account removed inside transaction")
	}
}
