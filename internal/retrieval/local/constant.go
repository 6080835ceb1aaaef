package local

const (
	DefaultTopK        = 6
	DefaultBatchSize   = 64
	DefaultConcurrency = 4
)

const (
	LogPrefixBuild    = "internal.retrieval.local.build"
	LogPrefixRetrieve = "internal.retrieval.local.Retrieve"
)
