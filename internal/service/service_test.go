package service

import (
	"testing"
	"time"

	"saga/internal/repository"
)

type services struct {
	customers *CustomerService
	suppliers *SupplierService
	products  *ProductService
	accounts  *AccountService
}

func setup(t *testing.T) services {
	t.Helper()
	store := repository.NewMemoryStore()
	suppliersRepo := repository.NewMemorySuppliers(store)
	productsRepo := repository.NewMemoryProducts(store)
	accountsRepo := repository.NewMemoryAccounts(store)
	tx := repository.NewMemoryTx(store)

	as := NewAccountService(store, suppliersRepo, productsRepo, accountsRepo, tx)
	as.now = func() time.Time { return time.Date(2024, time.June, 1, 0, 0, 0, 0, time.UTC) }

	return services{
		customers: NewCustomerService(store, accountsRepo, tx),
		suppliers: NewSupplierService(suppliersRepo),
		products:  NewProductService(suppliersRepo, productsRepo, tx),
		accounts:  as,
	}
}
