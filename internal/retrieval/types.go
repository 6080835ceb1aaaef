package retrieval

// Document is one corpus file.
type Document struct {
	Source string // file name
	Text   string
}

// Chunk is a split of a Document. Index is the position within its source.
type Chunk struct {
	Source string
	Index  int
	Text   string
}

// IndexStats summarizes an indexing run.
type IndexStats struct {
	Documents int
	Chunks    int
	Created   bool // collection was created by this run
}
