// Package memory keeps customers, the catalog, quotes and their history in process memory.
// It backs local runs and tests and honors the same repository contracts as the postgres package.
package memory

import (
	"context"
	"fmt"
	"sync"

	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"
	"insurance/internal/domain/repository"

	"github.com/google/uuid"
)

// Store holds every table. Reads and writes take mu; transactions are serialized by txMu.
type Store struct {
	mu   sync.RWMutex
	txMu sync.Mutex

	customers map[uuid.UUID]*entity.Customer
	emails    map[string]uuid.UUID
	policies  map[entity.PolicyType]*entity.Policy
	quotes    map[uuid.UUID]*entity.Quote
	history   map[uuid.UUID][]*entity.PolicyHistory
}

// NewStore returns an empty store seeded with the default catalog.
func NewStore() *Store {
	store := &Store{
		customers: make(map[uuid.UUID]*entity.Customer),
		emails:    make(map[string]uuid.UUID),
		policies:  make(map[entity.PolicyType]*entity.Policy),
		quotes:    make(map[uuid.UUID]*entity.Quote),
		history:   make(map[uuid.UUID][]*entity.PolicyHistory),
	}

	for _, policy := range entity.DefaultCatalog() {
		p := policy
		p.ID = uuid.New()
		store.policies[p.Type] = &p
	}

	return store
}

type snapshot struct {
	customers map[uuid.UUID]*entity.Customer
	emails    map[string]uuid.UUID
	quotes    map[uuid.UUID]*entity.Quote
	history   map[uuid.UUID][]*entity.PolicyHistory
}

// snapshot copies the mutable tables. Entities are stored as private copies and
// replaced rather than mutated, so copying the maps is enough.
func (s *Store) snapshot() snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := snapshot{
		customers: make(map[uuid.UUID]*entity.Customer, len(s.customers)),
		emails:    make(map[string]uuid.UUID, len(s.emails)),
		quotes:    make(map[uuid.UUID]*entity.Quote, len(s.quotes)),
		history:   make(map[uuid.UUID][]*entity.PolicyHistory, len(s.history)),
	}
	for k, v := range s.customers {
		snap.customers[k] = v
	}
	for k, v := range s.emails {
		snap.emails[k] = v
	}
	for k, v := range s.quotes {
		snap.quotes[k] = v
	}
	for k, v := range s.history {
		snap.history[k] = append([]*entity.PolicyHistory(nil), v...)
	}

	return snap
}

func (s *Store) restore(snap snapshot) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.customers = snap.customers
	s.emails = snap.emails
	s.quotes = snap.quotes
	s.history = snap.history
}

type transactionManager struct {
	store *Store
}

type repositoryFactory struct {
	store *Store
}

func (f *repositoryFactory) CustomerRepo() repository.CustomerRepository {
	return NewCustomerRepository(f.store)
}

func (f *repositoryFactory) PolicyRepo() repository.PolicyRepository {
	return NewPolicyRepository(f.store)
}

func (f *repositoryFactory) QuoteRepo() repository.QuoteRepository {
	return NewQuoteRepository(f.store)
}

func (f *repositoryFactory) HistoryRepo() repository.PolicyHistoryRepository {
	return NewPolicyHistoryRepository(f.store)
}

// NewTransactionManager runs each transaction alone against the store and restores
// the pre-transaction state when fn fails or panics.
func NewTransactionManager(store *Store) repository.TransactionManager {
	return &transactionManager{store: store}
}

func (tm *transactionManager) Execute(ctx context.Context, fn func(repoFactory repository.RepositoryFactory) error) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("%w: failed to begin transaction: %w", domainerrors.ErrTransactionFailed, err)
	}

	tm.store.txMu.Lock()
	defer tm.store.txMu.Unlock()

	snap := tm.store.snapshot()

	defer func() {
		if r := recover(); r != nil {
			tm.store.restore(snap)
			panic(r)
		}
	}()

	if err := fn(&repositoryFactory{store: tm.store}); err != nil {
		tm.store.restore(snap)

		return err
	}

	return nil
}
