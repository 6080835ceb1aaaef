package usecase

import (
	"context"
	"errors"

	"soroia/internal/catalog"
	repo "soroia/internal/catalog/repository"
	"soroia/internal/model"
	"soroia/internal/query"
)

// Execute runs a read-only query. The query is re-validated here so that
// nothing that bypassed synthesis reaches the store.
func (uc *implUseCase) Execute(ctx context.Context, q string) (model.ResultSet, error) {
	valid, err := query.Validate(q)
	if err != nil {
		return model.ResultSet{}, err
	}

	rs, err := uc.repo.Query(ctx, valid)
	if err != nil {
		reason := err.Error()
		var qe *repo.QueryError
		if errors.As(err, &qe) && qe.Err != nil {
			reason = qe.Err.Error()
		}
		uc.l.Warnf(ctx, "uc.Execute Query: %v", err)
		return model.ResultSet{}, &catalog.ExecutionError{Reason: reason, Err: err}
	}

	uc.l.Infof(ctx, "uc.Execute: %d row(s), %d column(s)", len(rs.Rows), len(rs.Columns))
	return rs, nil
}
