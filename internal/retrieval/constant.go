package retrieval

// Splitter defaults
const (
	DefaultChunkSize    = 500
	DefaultChunkOverlap = 60
)

// DefaultSeparators are tried in order, coarsest first.
var DefaultSeparators = []string{"\n\n", "\n", ".", " "}

// CorpusExtension selects corpus files.
const CorpusExtension = ".txt"

// Payload keys of indexed points.
const (
	PayloadText      = "text"
	PayloadSource    = "source"
	PayloadNamespace = "namespace"
	PayloadChunk     = "chunk"
)
