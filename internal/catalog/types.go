package catalog

// Field is one labelled, non-empty value of a catalog record.
type Field struct {
	Label string
	Value string
}

// Record is a catalog object rendered for the detail view.
// Fields follow the display priority order, then the remaining columns.
type Record struct {
	Inventory string
	Fields    []Field
}
