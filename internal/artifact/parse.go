package artifact

import (
	"encoding/json"
	"fmt"
	"strings"

	"soroia/internal/catalog"
	"soroia/internal/model"
)

const quoteCutset = " \t\r\n\"'"

// ParsePath extracts the first image path from an imagenes cell. Accepted
// forms are a JSON list, a single-quoted list and a bare path.
func ParsePath(raw string) (string, bool) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", false
	}

	if strings.HasPrefix(raw, "[") {
		var list []string
		if err := json.Unmarshal([]byte(raw), &list); err == nil {
			for _, p := range list {
				if p = strings.TrimSpace(p); p != "" {
					return p, true
				}
			}
			return "", false
		}
		inner := strings.TrimSuffix(strings.TrimPrefix(raw, "["), "]")
		for _, item := range strings.Split(inner, ",") {
			if p := strings.Trim(item, quoteCutset); p != "" {
				return p, true
			}
		}
		return "", false
	}

	p := strings.Trim(raw, quoteCutset)
	return p, p != ""
}

// InventoryOf returns the second segment of path: imagenes/00445/x.jpg is 00445.
func InventoryOf(path string) string {
	parts := strings.Split(path, "/")
	if len(parts) < 2 {
		return ""
	}
	return parts[1]
}

// Extract builds one Artifact per row that carries an image reference.
func Extract(rs model.ResultSet) []model.Artifact {
	imgIdx := rs.ColumnIndex(catalog.ColumnImages)
	if imgIdx < 0 {
		return nil
	}
	invIdx := rs.ColumnIndex(catalog.ColumnInventory)

	var out []model.Artifact
	for _, row := range rs.Rows {
		if imgIdx >= len(row) || row[imgIdx] == nil {
			continue
		}
		path, ok := ParsePath(fmt.Sprint(row[imgIdx]))
		if !ok {
			continue
		}

		label := UntitledLabel
		if invIdx >= 0 && invIdx < len(row) && row[invIdx] != nil {
			if v := strings.TrimSpace(fmt.Sprint(row[invIdx])); v != "" {
				label = v
			}
		}
		out = append(out, model.Artifact{Path: path, Label: label, Inventory: InventoryOf(path)})
	}
	return out
}
