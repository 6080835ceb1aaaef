package repository

import "time"

// Options tunes the SQL repository.
type Options struct {
	// Driver is the database/sql driver name ("pgx" or "sqlite3").
	Driver string
	// MaxRows caps the rows read per query. Zero means no cap.
	MaxRows int
	// Timeout bounds each query. Zero means the caller's context only.
	Timeout time.Duration
}
