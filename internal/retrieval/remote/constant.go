package remote

const (
	DefaultCollection = "textos-sorolla"
	DefaultNamespace  = "documentos"
	DefaultTopK       = 5
	DefaultVectorSize = 1024 // voyage-3
	DefaultBatchSize  = 64
	distanceCosine    = "Cosine"
)

const (
	LogPrefixRetrieve = "internal.retrieval.remote.Retrieve"
	LogPrefixIndex    = "internal.retrieval.remote.Index"
)
