package postgres

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pgdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// sqlCapture records the statements gorm would have sent.
type sqlCapture struct {
	logger.Interface
	statements []string
}

func (c *sqlCapture) Trace(_ context.Context, _ time.Time, fc func() (string, int64), _ error) {
	sql, _ := fc()
	c.statements = append(c.statements, sql)
}

func newDryRunDB(t *testing.T) (*gorm.DB, *sqlCapture) {
	t.Helper()

	capture := &sqlCapture{Interface: logger.Discard}
	db, err := gorm.Open(pgdriver.New(pgdriver.Config{
		DSN: "host=localhost user=insurance dbname=insurance sslmode=disable",
	}), &gorm.Config{
		DryRun:               true,
		DisableAutomaticPing: true,
		Logger:               capture,
	})
	require.NoError(t, err)

	return db, capture
}

func TestPolicyHistoryRepository_ListByQuote_OrdersByInsertSequence(t *testing.T) {
	db, capture := newDryRunDB(t)

	entries, err := NewPolicyHistoryRepository(db).ListByQuote(context.Background(), uuid.New())
	require.NoError(t, err)
	assert.Empty(t, entries)

	require.Len(t, capture.statements, 1)
	assert.Contains(t, capture.statements[0], `FROM "policy_history"`)
	assert.Contains(t, capture.statements[0], "ORDER BY seq")
}
