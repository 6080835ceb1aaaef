package usecase

import (
	"context"
	"fmt"
	"strings"

	"soroia/internal/catalog"
)

// Detail returns the record for inventory with fields in display order.
func (uc *implUseCase) Detail(ctx context.Context, inventory string) (catalog.Record, error) {
	inventory = strings.TrimSpace(inventory)
	if inventory == "" {
		return catalog.Record{}, catalog.ErrEmptyInventory
	}

	rs, err := uc.repo.GetRecord(ctx, inventory)
	if err != nil {
		uc.l.Errorf(ctx, "uc.Detail GetRecord: %v", err)
		return catalog.Record{}, err
	}
	if len(rs.Rows) == 0 {
		return catalog.Record{}, catalog.ErrRecordNotFound
	}

	return catalog.Record{
		Inventory: inventory,
		Fields:    orderFields(rs.Columns, rs.Rows[0]),
	}, nil
}

func orderFields(columns []string, row []any) []catalog.Field {
	values := make(map[string]string, len(columns))
	for i, c := range columns {
		if i < len(row) {
			values[c] = render(row[i])
		}
	}

	fields := make([]catalog.Field, 0, len(columns))
	shown := make(map[string]bool, len(columns))
	for _, f := range catalog.FieldOrder {
		if v := values[f.Column]; v != "" {
			fields = append(fields, catalog.Field{Label: f.Label, Value: v})
			shown[f.Column] = true
		}
	}
	for _, c := range columns {
		if shown[c] {
			continue
		}
		if v := values[c]; v != "" {
			fields = append(fields, catalog.Field{Label: c, Value: v})
			shown[c] = true
		}
	}
	return fields
}

// render formats a cell; NULL, empty text and empty lists render as "".
func render(v any) string {
	if v == nil {
		return ""
	}
	s := strings.TrimSpace(fmt.Sprint(v))
	if s == "[]" {
		return ""
	}
	return s
}
