package txmanager

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeExecutor struct {
	DBExecutor
}

type fakeBeginner struct {
	opts *sql.TxOptions
	err  error
}

func (f *fakeBeginner) BeginTx(_ context.Context, opts *sql.TxOptions) (*sql.Tx, error) {
	f.opts = opts
	return nil, f.err
}

func TestGetExecutorWithoutTx(t *testing.T) {
	db := &fakeExecutor{}
	assert.Same(t, db, GetExecutor(context.Background(), db))
}

func TestDoSerializableBeginError(t *testing.T) {
	beginner := &fakeBeginner{err: errors.New("connection refused")}
	m := NewTransactionManager(beginner)

	called := false
	err := m.DoSerializable(context.Background(), func(context.Context) error {
		called = true
		return nil
	})

	require.ErrorIs(t, err, ErrTransaction)
	assert.False(t, called)
	require.NotNil(t, beginner.opts)
	assert.Equal(t, sql.LevelSerializable, beginner.opts.Isolation)
}
