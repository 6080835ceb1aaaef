package catalog

import (
	"context"

	"soroia/internal/model"
)

// Executor runs validated read-only queries against the catalog.
type Executor interface {
	Execute(ctx context.Context, query string) (model.ResultSet, error)
}

//go:generate mockery --name UseCase
type UseCase interface {
	Executor
	// Detail returns the full record of one catalog object.
	Detail(ctx context.Context, inventory string) (Record, error)
}
