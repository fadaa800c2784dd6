package datagateway

import "context"

// Tx is implemented by gateways that can run inside a transaction.
// Commit and Rollback are no-ops on a gateway that is not in one.
// Rollback after Commit is a no-op, so it can always be deferred.
type Tx interface {
	Commit(ctx context.Context) error
	Rollback(ctx context.Context) error
}
