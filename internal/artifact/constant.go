package artifact

// Resolver modes
const (
	ModeLocal = "local"
	ModeS3    = "s3"
)

// UntitledLabel labels an artifact whose row has no inventory column.
const UntitledLabel = "Sin título"

const (
	LogPrefixResolve = "internal.artifact.Resolve"
)
