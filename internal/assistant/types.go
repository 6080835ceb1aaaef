package assistant

// Options controls routing behaviour.
type Options struct {
	HistoryEnabled bool
	HistoryPairs   int
	DebugMode      bool
}
