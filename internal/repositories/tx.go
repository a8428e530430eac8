package repositories

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/jmoiron/sqlx"
	"github.com/sbilibin2017/gw-bookshelf/internal/logger"
)

// contextKey is an unexported type for keys in context
type contextKey struct{}

var txKey = contextKey{}

// txState is the transaction bound to a context plus the callbacks waiting
// for it to commit.
type txState struct {
	tx          *sqlx.Tx
	mu          sync.Mutex
	afterCommit []func()
}

// WithTx stores a transaction in the context
func WithTx(ctx context.Context, tx *sqlx.Tx) context.Context {
	return context.WithValue(ctx, txKey, &txState{tx: tx})
}

// TxFromContext retrieves the transaction from the context. Returns nil if not present.
func TxFromContext(ctx context.Context) *sqlx.Tx {
	if st, ok := ctx.Value(txKey).(*txState); ok {
		return st.tx
	}
	return nil
}

// AfterCommit defers fn until the transaction bound to ctx commits. Callbacks of
// a rolled back transaction never run. Without a transaction fn runs at once.
func AfterCommit(ctx context.Context, fn func()) {
	st, ok := ctx.Value(txKey).(*txState)
	if !ok {
		fn()
		return
	}
	st.mu.Lock()
	st.afterCommit = append(st.afterCommit, fn)
	st.mu.Unlock()
}

// CommitTx commits the transaction bound to ctx and then runs the callbacks
// registered with AfterCommit, in order.
func CommitTx(ctx context.Context) error {
	st, ok := ctx.Value(txKey).(*txState)
	if !ok {
		return errors.New("no transaction in context")
	}
	if err := st.tx.Commit(); err != nil {
		return err
	}

	st.mu.Lock()
	hooks := st.afterCommit
	st.afterCommit = nil
	st.mu.Unlock()

	for _, fn := range hooks {
		fn()
	}
	return nil
}

// executor returns the transaction bound to ctx, or db when there is none.
func executor(ctx context.Context, db *sqlx.DB) sqlx.ExtContext {
	if tx := TxFromContext(ctx); tx != nil {
		return tx
	}
	return db
}

// logQuery logs a query on a single line with its arguments and outcome.
func logQuery(query string, args []any, result any, err error) {
	logger.Log.Infow(
		"query", strings.Join(strings.Fields(query), " "),
		"args", args,
		"result", result,
		"error", err,
	)
}

// TxManager runs units of work inside a database transaction.
type TxManager struct {
	db *sqlx.DB
}

// NewTxManager creates a TxManager over the given pool.
func NewTxManager(db *sqlx.DB) *TxManager {
	return &TxManager{db: db}
}

// Do runs fn inside a transaction. If ctx already carries one, fn joins it and
// the outer owner decides whether to commit.
func (m *TxManager) Do(ctx context.Context, fn func(ctx context.Context) error) (err error) {
	if TxFromContext(ctx) != nil {
		return fn(ctx)
	}

	tx, err := m.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}

	defer func() {
		if rec := recover(); rec != nil {
			_ = tx.Rollback()
			panic(rec)
		}
	}()

	txCtx := WithTx(ctx, tx)
	if err = fn(txCtx); err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			logger.Log.Errorw("failed to rollback transaction", "error", rbErr)
		}
		return err
	}

	if err = CommitTx(txCtx); err != nil {
		return fmt.Errorf("commit transaction: %w", err)
	}
	return nil
}

// AfterCommit defers fn until the transaction bound to ctx commits.
func (m *TxManager) AfterCommit(ctx context.Context, fn func()) {
	AfterCommit(ctx, fn)
}
