package memory

import (
	"context"
	"sort"
	"strings"

	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"
	"insurance/internal/domain/repository"

	"github.com/google/uuid"
)

type customerRepository struct {
	store *Store
}

// NewCustomerRepository returns a customer repository over store.
func NewCustomerRepository(store *Store) repository.CustomerRepository {
	return &customerRepository{store: store}
}

func (repo *customerRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Customer, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	customer, ok := repo.store.customers[id]
	if !ok {
		return nil, repository.ErrCustomerNotFound
	}
	c := *customer

	return &c, nil
}

func (repo *customerRepository) Create(_ context.Context, customer *entity.Customer) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	email := entity.NormalizeEmail(customer.Email)
	if _, exists := repo.store.emails[email]; exists {
		return domainerrors.ErrCustomerAlreadyExists.WrapMessage("email " + email)
	}

	c := *customer
	c.Email = email
	repo.store.customers[c.ID] = &c
	repo.store.emails[email] = c.ID

	return nil
}

func (repo *customerRepository) Search(_ context.Context, term string, limit int) ([]*entity.Customer, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	needle := strings.ToLower(strings.TrimSpace(term))
	matches := make([]*entity.Customer, 0)
	for _, customer := range repo.store.customers {
		if needle != "" && !customerMatches(customer, needle) {
			continue
		}
		c := *customer
		matches = append(matches, &c)
	}

	sort.Slice(matches, func(i, j int) bool {
		if matches[i].LastName != matches[j].LastName {
			return matches[i].LastName < matches[j].LastName
		}
		if matches[i].FirstName != matches[j].FirstName {
			return matches[i].FirstName < matches[j].FirstName
		}

		return matches[i].ID.String() < matches[j].ID.String()
	})

	if limit > 0 && len(matches) > limit {
		matches = matches[:limit]
	}

	return matches, nil
}

func customerMatches(customer *entity.Customer, needle string) bool {
	return strings.Contains(strings.ToLower(customer.FirstName), needle) ||
		strings.Contains(strings.ToLower(customer.LastName), needle) ||
		strings.Contains(strings.ToLower(customer.FullName()), needle) ||
		strings.Contains(customer.Email, needle)
}

type policyRepository struct {
	store *Store
}

// NewPolicyRepository returns a catalog repository over store.
func NewPolicyRepository(store *Store) repository.PolicyRepository {
	return &policyRepository{store: store}
}

func (repo *policyRepository) FindByType(_ context.Context, policyType entity.PolicyType) (*entity.Policy, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	policy, ok := repo.store.policies[policyType]
	if !ok {
		return nil, repository.ErrPolicyNotFound
	}
	p := *policy

	return &p, nil
}

func (repo *policyRepository) List(_ context.Context) ([]*entity.Policy, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	policies := make([]*entity.Policy, 0, len(repo.store.policies))
	for _, policy := range repo.store.policies {
		p := *policy
		policies = append(policies, &p)
	}
	sort.Slice(policies, func(i, j int) bool { return policies[i].Type < policies[j].Type })

	return policies, nil
}

type quoteRepository struct {
	store *Store
}

// NewQuoteRepository returns a quote repository over store.
func NewQuoteRepository(store *Store) repository.QuoteRepository {
	return &quoteRepository{store: store}
}

func (repo *quoteRepository) FindByID(_ context.Context, id uuid.UUID) (*entity.Quote, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	quote, ok := repo.store.quotes[id]
	if !ok {
		return nil, repository.ErrQuoteNotFound
	}

	return quote.Clone(), nil
}

func (repo *quoteRepository) ListByCustomer(_ context.Context, customerID uuid.UUID) ([]*entity.Quote, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	quotes := make([]*entity.Quote, 0)
	for _, quote := range repo.store.quotes {
		if quote.CustomerID == customerID {
			quotes = append(quotes, quote.Clone())
		}
	}
	sort.Slice(quotes, func(i, j int) bool {
		if !quotes[i].CreatedAt.Equal(quotes[j].CreatedAt) {
			return quotes[i].CreatedAt.Before(quotes[j].CreatedAt)
		}

		return quotes[i].ID.String() < quotes[j].ID.String()
	})

	return quotes, nil
}

func (repo *quoteRepository) Create(_ context.Context, quote *entity.Quote) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.customers[quote.CustomerID]; !ok {
		return domainerrors.ErrInvalidCustomerOrPolicy.WrapMessage("customer does not exist")
	}
	repo.store.quotes[quote.ID] = quote.Clone()

	return nil
}

func (repo *quoteRepository) UpdateStatus(_ context.Context, quote *entity.Quote, expected entity.QuoteStatus) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	stored, ok := repo.store.quotes[quote.ID]
	if !ok {
		return repository.ErrQuoteNotFound
	}
	if stored.Status != expected {
		return repository.ErrQuoteStatusConflict
	}

	next := stored.Clone()
	next.Status = quote.Status
	next.BuyDate = quote.Clone().BuyDate
	next.Expiry = quote.Clone().Expiry
	next.UpdatedAt = quote.UpdatedAt
	repo.store.quotes[quote.ID] = next

	return nil
}

type policyHistoryRepository struct {
	store *Store
}

// NewPolicyHistoryRepository returns the history log over store.
func NewPolicyHistoryRepository(store *Store) repository.PolicyHistoryRepository {
	return &policyHistoryRepository{store: store}
}

func (repo *policyHistoryRepository) Append(_ context.Context, entry *entity.PolicyHistory) error {
	repo.store.mu.Lock()
	defer repo.store.mu.Unlock()

	if _, ok := repo.store.quotes[entry.QuoteID]; !ok {
		return repository.ErrQuoteNotFound
	}
	e := *entry
	repo.store.history[e.QuoteID] = append(repo.store.history[e.QuoteID], &e)

	return nil
}

func (repo *policyHistoryRepository) ListByQuote(_ context.Context, quoteID uuid.UUID) ([]*entity.PolicyHistory, error) {
	repo.store.mu.RLock()
	defer repo.store.mu.RUnlock()

	entries := repo.store.history[quoteID]
	out := make([]*entity.PolicyHistory, 0, len(entries))
	for _, entry := range entries {
		e := *entry
		out = append(out, &e)
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].ChangedAt.Before(out[j].ChangedAt) })

	return out, nil
}
