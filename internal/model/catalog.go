package model

// Artifact is an image reference extracted from a catalog row.
type Artifact struct {
	Path      string // e.g. imagenes/00445/00445_1.jpg
	Label     string // inventario value or "Sin título"
	Inventory string // second path segment
}

// ResultSet is the tabular outcome of a structured query.
// Every row has len(Columns) values.
type ResultSet struct {
	Columns []string
	Rows    [][]any
}

// ColumnIndex returns the position of name in Columns, or -1.
func (r ResultSet) ColumnIndex(name string) int {
	for i, c := range r.Columns {
		if c == name {
			return i
		}
	}
	return -1
}

// Passage is a retrieved text chunk.
type Passage struct {
	Text   string
	Source string
	Score  float64
}

// Detail is the artifact currently opened in a session's detail view.
type Detail struct {
	Inventory string
	Path      string
}
