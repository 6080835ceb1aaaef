package repository

import (
	"context"

	"soroia/internal/model"
)

// Repository is the read-only data store of the catalog.
type Repository interface {
	// Query runs q inside a read-only transaction.
	Query(ctx context.Context, q string) (model.ResultSet, error)

	// GetRecord fetches one row by inventario.
	// Returns an empty ResultSet (no rows) when not found.
	GetRecord(ctx context.Context, inventory string) (model.ResultSet, error)
}
