package ports

import "context"

// Tx is an opaque transaction handle. The persistence layer decides the
// concrete type; repositories only pass it through context.
type Tx interface{}

// UnitOfWork scopes one ingestion write (transcript row plus its sentiment
// and keyword children) to a single transaction. The callback's error
// decides the outcome: non-nil rolls back, nil commits.
type UnitOfWork interface {
	WithTx(ctx context.Context, fn func(ctx context.Context) error) error
}

type txKey struct{}

// WithTxContext attaches the active transaction handle to the context so
// repositories called inside WithTx write through it.
func WithTxContext(ctx context.Context, tx Tx) context.Context {
	return context.WithValue(ctx, txKey{}, tx)
}

// TxFromContext returns the active transaction handle, or nil outside a
// unit of work.
func TxFromContext(ctx context.Context) Tx {
	return ctx.Value(txKey{})
}
