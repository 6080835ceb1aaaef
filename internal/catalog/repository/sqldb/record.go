package sqldb

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	repo "soroia/internal/catalog/repository"
	"soroia/internal/model"
)

// Query runs q in a read-only transaction. Any failure rolls the transaction back.
func (r *implRepository) Query(ctx context.Context, q string) (model.ResultSet, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	tx, err := r.db.BeginTx(ctx, &sql.TxOptions{ReadOnly: true})
	if err != nil {
		r.l.Errorf(ctx, "%s begin: %v", r.dsn("Query"), err)
		return model.ResultSet{}, &repo.QueryError{Err: err}
	}

	rs, err := r.scan(ctx, tx, q)
	if err != nil {
		if rbErr := tx.Rollback(); rbErr != nil {
			r.l.Errorf(ctx, "%s rollback: %v", r.dsn("Query"), rbErr)
		}
		r.l.Warnf(ctx, "%s: %v", r.dsn("Query"), err)
		return model.ResultSet{}, &repo.QueryError{Err: err}
	}

	if err := tx.Commit(); err != nil {
		r.l.Errorf(ctx, "%s commit: %v", r.dsn("Query"), err)
		return model.ResultSet{}, &repo.QueryError{Err: err}
	}
	return rs, nil
}

// GetRecord fetches one row by inventario. Not found yields an empty ResultSet.
func (r *implRepository) GetRecord(ctx context.Context, inventory string) (model.ResultSet, error) {
	ctx, cancel := r.withTimeout(ctx)
	defer cancel()

	q := fmt.Sprintf("SELECT * FROM fichas_raw WHERE inventario = %s LIMIT 1", r.placeholder(1))
	rs, err := r.scan(ctx, r.db, q, inventory)
	if err != nil {
		r.l.Errorf(ctx, "%s: %v", r.dsn("GetRecord"), err)
		return model.ResultSet{}, repo.ErrFailedToGet
	}
	return rs, nil
}

type querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

func (r *implRepository) scan(ctx context.Context, db querier, q string, args ...any) (model.ResultSet, error) {
	rows, err := db.QueryContext(ctx, q, args...)
	if err != nil {
		return model.ResultSet{}, err
	}
	defer rows.Close()

	cols, err := rows.Columns()
	if err != nil {
		return model.ResultSet{}, err
	}

	rs := model.ResultSet{Columns: cols, Rows: [][]any{}}
	for rows.Next() {
		if r.opt.MaxRows > 0 && len(rs.Rows) >= r.opt.MaxRows {
			r.l.Warnf(ctx, "%s: result capped at %d rows", r.dsn("scan"), r.opt.MaxRows)
			break
		}

		values := make([]any, len(cols))
		ptrs := make([]any, len(cols))
		for i := range values {
			ptrs[i] = &values[i]
		}
		if err := rows.Scan(ptrs...); err != nil {
			return model.ResultSet{}, err
		}
		for i, v := range values {
			values[i] = normalize(v)
		}
		rs.Rows = append(rs.Rows, values)
	}
	if err := rows.Err(); err != nil {
		return model.ResultSet{}, err
	}

	return rs, nil
}

// normalize turns driver byte slices into strings so values render as text.
func normalize(v any) any {
	switch t := v.(type) {
	case []byte:
		return string(t)
	case time.Time:
		return t.Format(time.RFC3339)
	default:
		return v
	}
}

func (r *implRepository) withTimeout(ctx context.Context) (context.Context, context.CancelFunc) {
	if r.opt.Timeout > 0 {
		return context.WithTimeout(ctx, r.opt.Timeout)
	}
	return context.WithCancel(ctx)
}
