package repository

import (
	"cmp"
	"context"
	"slices"
	"sync"

	"saga/internal/domain"
)

// MemoryStore keeps customers and suppliers in memory.
// Each supplier exclusively owns its catalog and its account book.
type MemoryStore struct {
	mu        sync.RWMutex
	customers map[string]domain.Customer
	suppliers map[string]*supplierRecord
}

type supplierRecord struct {
	supplier domain.Supplier
	products map[domain.ProductKey]domain.Product
	accounts map[string]*domain.Account
}

func NewMemoryStore() *MemoryStore {
	return &MemoryStore{
		customers: make(map[string]domain.Customer),
		suppliers: make(map[string]*supplierRecord),
	}
}

// transaction-aware locking helpers
type txKey struct{}

func isTx(ctx context.Context) bool {
	v := ctx.Value(txKey{})
	if v == nil {
		return false
	}
	b, ok := v.(bool)
	return ok && b
}

func (m *MemoryStore) rlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RLock()
	}
}
func (m *MemoryStore) runlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.RUnlock()
	}
}
func (m *MemoryStore) wlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Lock()
	}
}
func (m *MemoryStore) wunlock(ctx context.Context) {
	if !isTx(ctx) {
		m.mu.Unlock()
	}
}

var _ CustomerRepository = (*MemoryStore)(nil)

// CustomerRepository implementation
func (m *MemoryStore) Create(ctx context.Context, c *domain.Customer) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.customers[c.CPF]; ok {
		return ErrAlreadyExists
	}
	m.customers[c.CPF] = *c
	return nil
}

func (m *MemoryStore) GetByID(ctx context.Context, cpf string) (*domain.Customer, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	c, ok := m.customers[cpf]
	if !ok {
		return nil, ErrNotFound
	}
	cp := c
	return &cp, nil
}

func (m *MemoryStore) Update(ctx context.Context, c *domain.Customer) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.customers[c.CPF]; !ok {
		return ErrNotFound
	}
	m.customers[c.CPF] = *c
	return nil
}

func (m *MemoryStore) Delete(ctx context.Context, cpf string) error {
	m.wlock(ctx)
	defer m.wunlock(ctx)
	if _, ok := m.customers[cpf]; !ok {
		return ErrNotFound
	}
	delete(m.customers, cpf)
	return nil
}

// List returns customers ordered by name, ties broken by CPF
func (m *MemoryStore) List(ctx context.Context) ([]domain.Customer, error) {
	m.rlock(ctx)
	defer m.runlock(ctx)
	out := make([]domain.Customer, 0, len(m.customers))
	for _, c := range m.customers {
		out = append(out, c)
	}
	slices.SortFunc(out, func(a, b domain.Customer) int {
		return cmp.Or(cmp.Compare(a.Name, b.Name), cmp.Compare(a.CPF, b.CPF))
	})
	return out, nil
}

// sortedSuppliers returns records by name; caller holds the lock
func (m *MemoryStore) sortedSuppliers() []*supplierRecord {
	out := make([]*supplierRecord, 0, len(m.suppliers))
	for _, r := range m.suppliers {
		out = append(out, r)
	}
	slices.SortFunc(out, func(a, b *supplierRecord) int {
		return cmp.Compare(a.supplier.Name, b.supplier.Name)
	})
	return out
}

// SupplierRepository implementation on wrapper type
type MemorySuppliers struct{ store *MemoryStore }

func NewMemorySuppliers(store *MemoryStore) *MemorySuppliers { return &MemorySuppliers{store: store} }

var _ SupplierRepository = (*MemorySuppliers)(nil)

func (ms *MemorySuppliers) Create(ctx context.Context, s *domain.Supplier) error {
	ms.store.wlock(ctx)
	defer ms.store.wunlock(ctx)
	if _, ok := ms.store.suppliers[s.Name]; ok {
		return ErrAlreadyExists
	}
	ms.store.suppliers[s.Name] = &supplierRecord{
		supplier: *s,
		products: make(map[domain.ProductKey]domain.Product),
		accounts: make(map[string]*domain.Account),
	}
	return nil
}

func (ms *MemorySuppliers) GetByID(ctx context.Context, name string) (*domain.Supplier, error) {
	ms.store.rlock(ctx)
	defer ms.store.runlock(ctx)
	r, ok := ms.store.suppliers[name]
	if !ok {
		return nil, ErrNotFound
	}
	cp := r.supplier
	return &cp, nil
}

func (ms *MemorySuppliers) Update(ctx context.Context, s *domain.Supplier) error {
	ms.store.wlock(ctx)
	defer ms.store.wunlock(ctx)
	r, ok := ms.store.suppliers[s.Name]
	if !ok {
		return ErrNotFound
	}
	r.supplier = *s
	return nil
}

func (ms *MemorySuppliers) Delete(ctx context.Context, name string) error {
	ms.store.wlock(ctx)
	defer ms.store.wunlock(ctx)
	if _, ok := ms.store.suppliers[name]; !ok {
		return ErrNotFound
	}
	delete(ms.store.suppliers, name)
	return nil
}

func (ms *MemorySuppliers) List(ctx context.Context) ([]domain.Supplier, error) {
	ms.store.rlock(ctx)
	defer ms.store.runlock(ctx)
	records := ms.store.sortedSuppliers()
	out := make([]domain.Supplier, 0, len(records))
	for _, r := range records {
		out = append(out, r.supplier)
	}
	return out, nil
}

// ProductRepository implementation on wrapper type
type MemoryProducts struct{ store *MemoryStore }

func NewMemoryProducts(store *MemoryStore) *MemoryProducts { return &MemoryProducts{store: store} }

var _ ProductRepository = (*MemoryProducts)(nil)

func cloneProduct(p domain.Product) domain.Product {
	if p.Combo != nil {
		combo := *p.Combo
		combo.Items = slices.Clone(p.Combo.Items)
		p.Combo = &combo
	}
	return p
}

func (mp *MemoryProducts) Create(ctx context.Context, supplier string, p *domain.Product) error {
	mp.store.wlock(ctx)
	defer mp.store.wunlock(ctx)
	r, ok := mp.store.suppliers[supplier]
	if !ok {
		return ErrNotFound
	}
	if _, ok := r.products[p.Key]; ok {
		return ErrAlreadyExists
	}
	r.products[p.Key] = cloneProduct(*p)
	return nil
}

func (mp *MemoryProducts) GetByID(ctx context.Context, supplier string, key domain.ProductKey) (*domain.Product, error) {
	mp.store.rlock(ctx)
	defer mp.store.runlock(ctx)
	r, ok := mp.store.suppliers[supplier]
	if !ok {
		return nil, ErrNotFound
	}
	p, ok := r.products[key]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cloneProduct(p)
	return &cp, nil
}

func (mp *MemoryProducts) Update(ctx context.Context, supplier string, p *domain.Product) error {
	mp.store.wlock(ctx)
	defer mp.store.wunlock(ctx)
	r, ok := mp.store.suppliers[supplier]
	if !ok {
		return ErrNotFound
	}
	if _, ok := r.products[p.Key]; !ok {
		return ErrNotFound
	}
	r.products[p.Key] = cloneProduct(*p)
	return nil
}

func (mp *MemoryProducts) Delete(ctx context.Context, supplier string, key domain.ProductKey) error {
	mp.store.wlock(ctx)
	defer mp.store.wunlock(ctx)
	r, ok := mp.store.suppliers[supplier]
	if !ok {
		return ErrNotFound
	}
	if _, ok := r.products[key]; !ok {
		return ErrNotFound
	}
	delete(r.products, key)
	return nil
}

// List returns the catalog ordered by name and description
func (mp *MemoryProducts) List(ctx context.Context, supplier string) ([]domain.Product, error) {
	mp.store.rlock(ctx)
	defer mp.store.runlock(ctx)
	r, ok := mp.store.suppliers[supplier]
	if !ok {
		return nil, ErrNotFound
	}
	out := make([]domain.Product, 0, len(r.products))
	for _, p := range r.products {
		out = append(out, cloneProduct(p))
	}
	slices.SortFunc(out, func(a, b domain.Product) int {
		return cmp.Or(cmp.Compare(a.Key.Name, b.Key.Name), cmp.Compare(a.Key.Description, b.Key.Description))
	})
	return out, nil
}

// AccountRepository implementation on wrapper type
type MemoryAccounts struct{ store *MemoryStore }

func NewMemoryAccounts(store *MemoryStore) *MemoryAccounts { return &MemoryAccounts{store: store} }

var _ AccountRepository = (*MemoryAccounts)(nil)

func cloneAccount(a *domain.Account) domain.Account {
	cp := *a
	cp.Purchases = slices.Clone(a.Purchases)
	return cp
}

func (ma *MemoryAccounts) AppendPurchase(ctx context.Context, supplier, cpf string, p domain.Purchase) error {
	ma.store.wlock(ctx)
	defer ma.store.wunlock(ctx)
	r, ok := ma.store.suppliers[supplier]
	if !ok {
		return ErrNotFound
	}
	acc, ok := r.accounts[cpf]
	if !ok {
		acc = &domain.Account{
			CustomerCPF:  cpf,
			CustomerName: p.CustomerName,
			SupplierName: supplier,
		}
		r.accounts[cpf] = acc
	}
	acc.Purchases = append(acc.Purchases, p)
	return nil
}

func (ma *MemoryAccounts) GetByID(ctx context.Context, supplier, cpf string) (*domain.Account, error) {
	ma.store.rlock(ctx)
	defer ma.store.runlock(ctx)
	r, ok := ma.store.suppliers[supplier]
	if !ok {
		return nil, ErrNotFound
	}
	acc, ok := r.accounts[cpf]
	if !ok {
		return nil, ErrNotFound
	}
	cp := cloneAccount(acc)
	return &cp, nil
}

func (ma *MemoryAccounts) Delete(ctx context.Context, supplier, cpf string) error {
	ma.store.wlock(ctx)
	defer ma.store.wunlock(ctx)
	r, ok := ma.store.suppliers[supplier]
	if !ok {
		return ErrNotFound
	}
	if _, ok := r.accounts[cpf]; !ok {
		return ErrNotFound
	}
	delete(r.accounts, cpf)
	return nil
}

func (ma *MemoryAccounts) DeleteByCustomer(ctx context.Context, cpf string) error {
	ma.store.wlock(ctx)
	defer ma.store.wunlock(ctx)
	for _, r := range ma.store.suppliers {
		delete(r.accounts, cpf)
	}
	return nil
}

func (ma *MemoryAccounts) ListByCustomer(ctx context.Context, cpf string) ([]domain.Account, error) {
	ma.store.rlock(ctx)
	defer ma.store.runlock(ctx)
	out := make([]domain.Account, 0)
	for _, r := range ma.store.sortedSuppliers() {
		if acc, ok := r.accounts[cpf]; ok {
			out = append(out, cloneAccount(acc))
		}
	}
	return out, nil
}

func (ma *MemoryAccounts) List(ctx context.Context) ([]domain.Account, error) {
	ma.store.rlock(ctx)
	defer ma.store.runlock(ctx)
	out := make([]domain.Account, 0)
	for _, r := range ma.store.sortedSuppliers() {
		cpfs := make([]string, 0, len(r.accounts))
		for cpf := range r.accounts {
			cpfs = append(cpfs, cpf)
		}
		slices.Sort(cpfs)
		for _, cpf := range cpfs {
			out = append(out, cloneAccount(r.accounts[cpf]))
		}
	}
	return out, nil
}

// Tx manager using write lock to emulate transaction boundary
type MemoryTx struct{ store *MemoryStore }

func NewMemoryTx(store *MemoryStore) *MemoryTx { return &MemoryTx{store: store} }

func (tx *MemoryTx) WithTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	// hold the write lock and mark ctx so repositories don't lock again
	tx.store.mu.Lock()
	defer tx.store.mu.Unlock()
	ctx = context.WithValue(ctx, txKey{}, true)
	return fn(ctx)
}
