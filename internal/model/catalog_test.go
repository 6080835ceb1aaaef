package model_test

import (
	"testing"

	"soroia/internal/model"
)

func TestResultSetColumnIndex(t *testing.T) {
	rs := model.ResultSet{Columns: []string{"inventario", "titulo", "imagenes"}}

	tests := []struct {
		name string
		want int
	}{
		{"inventario", 0},
		{"imagenes", 2},
		{"autor_a", -1},
	}
	for _, tt := range tests {
		if got := rs.ColumnIndex(tt.name); got != tt.want {
			t.Errorf("ColumnIndex(%q) = %d, want %d", tt.name, got, tt.want)
		}
	}
}
