package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-StudioBookingService/pkg/dbmetrics"
)

type mockTx struct {
	dbmetrics.DBExecutor
	mock.Mock
}

func (t *mockTx) Commit() error   { return t.Called().Error(0) }
func (t *mockTx) Rollback() error { return t.Called().Error(0) }

type mockBeginner struct {
	mock.Mock
}

func (b *mockBeginner) BeginTx(ctx context.Context, opts *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	args := b.Called(ctx, opts)
	tx, _ := args.Get(0).(dbmetrics.TxExecutor)
	return tx, args.Error(1)
}

func TestDo_CommitsAndExposesTx(t *testing.T) {
	tx := &mockTx{}
	tx.On("Commit").Return(nil).Once()
	db := &mockBeginner{}
	db.On("BeginTx", mock.Anything, &sql.TxOptions{Isolation: sql.LevelReadCommitted}).Return(tx, nil).Once()

	m := NewTransactionManager(db)
	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	tx.AssertExpectations(t)
	db.AssertExpectations(t)
}

func TestDo_RollsBackOnError(t *testing.T) {
	tx := &mockTx{}
	tx.On("Rollback").Return(nil).Once()
	db := &mockBeginner{}
	db.On("BeginTx", mock.Anything, mock.Anything).Return(tx, nil).Once()

	want := errors.New("slot full")
	err := NewTransactionManager(db).Do(context.Background(), func(ctx context.Context) error {
		return want
	})

	assert.ErrorIs(t, err, want)
	tx.AssertNotCalled(t, "Commit")
	tx.AssertExpectations(t)
}

func TestDo_ReusesOuterTransaction(t *testing.T) {
	outer := &mockTx{}
	db := &mockBeginner{}

	ctx := dbmetrics.WithTx(context.Background(), outer)
	calls := 0
	err := NewTransactionManager(db).DoSerializable(ctx, func(ctx context.Context) error {
		calls++
		return nil
	})

	require.NoError(t, err)
	assert.Equal(t, 1, calls)
	db.AssertNotCalled(t, "BeginTx", mock.Anything, mock.Anything)
}

func TestDo_BeginFailure(t *testing.T) {
	db := &mockBeginner{}
	db.On("BeginTx", mock.Anything, mock.Anything).Return(nil, errors.New("pool exhausted")).Once()

	err := NewTransactionManager(db).DoReadOnly(context.Background(), func(ctx context.Context) error {
		t.Fatal("fn must not run")
		return nil
	})

	assert.ErrorIs(t, err, ErrBeginTx)
}
