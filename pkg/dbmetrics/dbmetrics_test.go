package dbmetrics

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
)

type fakeTx struct {
	DBExecutor
}

func (fakeTx) Commit() error   { return nil }
func (fakeTx) Rollback() error { return nil }

func TestGetExecutor_PrefersTransaction(t *testing.T) {
	fallback := &DB{db: &sql.DB{}}
	tx := fakeTx{}

	assert.Same(t, fallback, GetExecutor(context.Background(), fallback))
	assert.False(t, IsInTransaction(context.Background()))

	ctx := WithTx(context.Background(), tx)
	assert.Equal(t, tx, GetExecutor(ctx, fallback))
	assert.True(t, IsInTransaction(ctx))
}

func TestOperation(t *testing.T) {
	assert.Equal(t, "select", operation("SELECT id FROM time_slots"))
	assert.Equal(t, "update", operation("\n  UPDATE time_slots SET current_bookings = current_bookings + 1"))
	assert.Equal(t, "insert", operation("insert"))
}
