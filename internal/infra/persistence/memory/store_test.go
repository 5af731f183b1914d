package memory

import (
	"context"
	"errors"
	"testing"
	"time"

	"insurance/internal/domain/entity"
	domainerrors "insurance/internal/domain/errors"
	"insurance/internal/domain/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newCustomer(first, last, email string) *entity.Customer {
	return &entity.Customer{
		ID:          uuid.New(),
		FirstName:   first,
		LastName:    last,
		Email:       email,
		DateOfBirth: time.Date(1990, time.January, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestNewStore_SeedsCatalog(t *testing.T) {
	store := NewStore()

	policies, err := NewPolicyRepository(store).List(context.Background())
	require.NoError(t, err)
	require.Len(t, policies, 5)

	health, err := NewPolicyRepository(store).FindByType(context.Background(), entity.PolicyTypeHealthInsurance)
	require.NoError(t, err)
	assert.NotEqual(t, uuid.Nil, health.ID)
	assert.Equal(t, "500.00", health.Premium.StringFixed(2))

	_, err = NewPolicyRepository(store).FindByType(context.Background(), "pet-insurance")
	assert.ErrorIs(t, err, repository.ErrPolicyNotFound)
}

func TestCustomerRepository_CreateRejectsDuplicateEmailIgnoringCase(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(NewStore())

	require.NoError(t, repo.Create(ctx, newCustomer("Ada", "Lovelace", "ada@example.com")))

	err := repo.Create(ctx, newCustomer("Ada", "Byron", "ADA@Example.com"))
	assert.ErrorIs(t, err, domainerrors.ErrCustomerAlreadyExists)
}

func TestCustomerRepository_Search(t *testing.T) {
	ctx := context.Background()
	repo := NewCustomerRepository(NewStore())

	require.NoError(t, repo.Create(ctx, newCustomer("Ada", "Lovelace", "ada@example.com")))
	require.NoError(t, repo.Create(ctx, newCustomer("Alan", "Turing", "alan@example.com")))
	require.NoError(t, repo.Create(ctx, newCustomer("Grace", "Hopper", "grace@navy.mil")))

	tests := []struct {
		name  string
		term  string
		limit int
		want  []string
	}{
		{name: "first name", term: "ada", limit: 10, want: []string{"Lovelace"}},
		{name: "full name", term: "alan tur", limit: 10, want: []string{"Turing"}},
		{name: "email domain", term: "EXAMPLE.COM", limit: 10, want: []string{"Lovelace", "Turing"}},
		{name: "empty term lists all", term: "", limit: 10, want: []string{"Hopper", "Lovelace", "Turing"}},
		{name: "limit applies", term: "", limit: 1, want: []string{"Hopper"}},
		{name: "no match", term: "zzz", limit: 10, want: []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			customers, err := repo.Search(ctx, tt.term, tt.limit)
			require.NoError(t, err)

			got := make([]string, 0, len(customers))
			for _, c := range customers {
				got = append(got, c.LastName)
			}
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestQuoteRepository_UpdateStatusIsCompareAndSwap(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	customer := newCustomer("Ada", "Lovelace", "ada@example.com")
	require.NoError(t, NewCustomerRepository(store).Create(ctx, customer))

	quotes := NewQuoteRepository(store)
	quote := &entity.Quote{ID: uuid.New(), CustomerID: customer.ID, Status: entity.QuoteStatusNew}
	require.NoError(t, quotes.Create(ctx, quote))

	next := quote.Clone()
	next.Status = entity.QuoteStatusQuoted
	require.NoError(t, quotes.UpdateStatus(ctx, next, entity.QuoteStatusNew))

	again := quote.Clone()
	again.Status = entity.QuoteStatusQuoted
	err := quotes.UpdateStatus(ctx, again, entity.QuoteStatusNew)
	assert.ErrorIs(t, err, repository.ErrQuoteStatusConflict)

	stored, err := quotes.FindByID(ctx, quote.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.QuoteStatusQuoted, stored.Status)

	_, err = quotes.FindByID(ctx, uuid.New())
	assert.ErrorIs(t, err, repository.ErrQuoteNotFound)
}

func TestQuoteRepository_CreateRequiresCustomer(t *testing.T) {
	err := NewQuoteRepository(NewStore()).Create(context.Background(), &entity.Quote{ID: uuid.New(), CustomerID: uuid.New()})

	assert.ErrorIs(t, err, domainerrors.ErrInvalidCustomerOrPolicy)
}

func TestPolicyHistoryRepository_OrdersByChangedAt(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	customer := newCustomer("Ada", "Lovelace", "ada@example.com")
	require.NoError(t, NewCustomerRepository(store).Create(ctx, customer))
	quote := &entity.Quote{ID: uuid.New(), CustomerID: customer.ID, Status: entity.QuoteStatusNew}
	require.NoError(t, NewQuoteRepository(store).Create(ctx, quote))

	history := NewPolicyHistoryRepository(store)
	t0 := time.Date(2024, time.May, 1, 10, 0, 0, 0, time.UTC)
	require.NoError(t, history.Append(ctx, &entity.PolicyHistory{ID: uuid.New(), QuoteID: quote.ID, Status: entity.QuoteStatusQuoted, ChangedAt: t0.Add(time.Minute)}))
	require.NoError(t, history.Append(ctx, &entity.PolicyHistory{ID: uuid.New(), QuoteID: quote.ID, Status: entity.QuoteStatusNew, ChangedAt: t0}))

	entries, err := history.ListByQuote(ctx, quote.ID)
	require.NoError(t, err)
	require.Len(t, entries, 2)
	assert.Equal(t, entity.QuoteStatusNew, entries[0].Status)
	assert.Equal(t, entity.QuoteStatusQuoted, entries[1].Status)

	err = history.Append(ctx, &entity.PolicyHistory{ID: uuid.New(), QuoteID: uuid.New(), Status: entity.QuoteStatusNew})
	assert.ErrorIs(t, err, repository.ErrQuoteNotFound)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)
	boom := errors.New("boom")

	err := tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		require.NoError(t, repoFactory.CustomerRepo().Create(ctx, newCustomer("Ada", "Lovelace", "ada@example.com")))

		return boom
	})
	require.ErrorIs(t, err, boom)

	customers, err := NewCustomerRepository(store).Search(ctx, "", 10)
	require.NoError(t, err)
	assert.Empty(t, customers)

	// The email is free again after the rollback.
	require.NoError(t, tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
		return repoFactory.CustomerRepo().Create(ctx, newCustomer("Ada", "Lovelace", "ada@example.com"))
	}))
}

func TestTransactionManager_RollsBackOnPanic(t *testing.T) {
	ctx := context.Background()
	store := NewStore()
	tm := NewTransactionManager(store)

	assert.Panics(t, func() {
		_ = tm.Execute(ctx, func(repoFactory repository.RepositoryFactory) error {
			_ = repoFactory.CustomerRepo().Create(ctx, newCustomer("Ada", "Lovelace", "ada@example.com"))
			panic("boom")
		})
	})

	customers, err := NewCustomerRepository(store).Search(ctx, "", 10)
	require.NoError(t, err)
	assert.Empty(t, customers)
}

func TestTransactionManager_CanceledContext(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	called := false
	err := NewTransactionManager(NewStore()).Execute(ctx, func(repository.RepositoryFactory) error {
		called = true

		return nil
	})

	assert.ErrorIs(t, err, context.Canceled)
	assert.ErrorIs(t, err, domainerrors.ErrTransactionFailed)
	assert.False(t, called)
}
