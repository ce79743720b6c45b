package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/UniSport-ReservationService/pkg/dbmetrics"
)

var errBusiness = errors.New("slot already taken")

type fakeTx struct {
	rollbackErr error
	committed   bool
	rolledBack  bool
}

func (t *fakeTx) ExecContext(context.Context, string, ...interface{}) (sql.Result, error) {
	return nil, nil
}

func (t *fakeTx) QueryContext(context.Context, string, ...interface{}) (*sql.Rows, error) {
	return nil, nil
}

func (t *fakeTx) QueryRowContext(context.Context, string, ...interface{}) *sql.Row {
	return nil
}

func (t *fakeTx) Commit() error {
	t.committed = true
	return nil
}

func (t *fakeTx) Rollback() error {
	t.rolledBack = true
	return t.rollbackErr
}

type fakeBeginner struct {
	tx *fakeTx
}

func (b *fakeBeginner) BeginTx(context.Context, *sql.TxOptions) (dbmetrics.TxExecutor, error) {
	return b.tx, nil
}

func TestDo_CommitOnSuccess(t *testing.T) {
	tx := &fakeTx{}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	err := m.Do(context.Background(), func(ctx context.Context) error {
		assert.True(t, dbmetrics.IsInTransaction(ctx))
		return nil
	})

	require.NoError(t, err)
	assert.True(t, tx.committed)
	assert.False(t, tx.rolledBack)
}

func TestDo_RollbackKeepsBusinessError(t *testing.T) {
	tx := &fakeTx{}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	err := m.Do(context.Background(), func(ctx context.Context) error {
		return errBusiness
	})

	require.ErrorIs(t, err, errBusiness)
	assert.True(t, tx.rolledBack)
	assert.False(t, tx.committed)
}

func TestDo_FailedRollbackStillMatchesBusinessError(t *testing.T) {
	rollbackErr := errors.New("connection lost")
	tx := &fakeTx{rollbackErr: rollbackErr}
	m := NewTransactionManager(&fakeBeginner{tx: tx})

	err := m.DoSerializable(context.Background(), func(ctx context.Context) error {
		return errBusiness
	})

	// Сбой отката не должен прятать исходную ошибку от errors.Is
	require.ErrorIs(t, err, errBusiness)
	assert.ErrorIs(t, err, rollbackErr)
}
