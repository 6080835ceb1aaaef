package qdrant

// CreateCollectionRequest defines the schema for creating a collection.
type CreateCollectionRequest struct {
	Name    string       `json:"-"` // Collection name (in URL)
	Vectors VectorConfig `json:"vectors"`
}

// VectorConfig defines vector dimension and distance metric.
type VectorConfig struct {
	Size     int    `json:"size"`     // Vector dimension (1024 for voyage-3)
	Distance string `json:"distance"` // "Cosine", "Euclid", "Dot"
}

// Point represents a vector with payload (metadata).
// Qdrant only accepts a UUID string or an unsigned integer as ID.
type Point struct {
	ID      interface{}            `json:"id"`
	Vector  []float32              `json:"vector"`
	Payload map[string]interface{} `json:"payload"`
}

// UpsertPointsRequest is the request to insert/update points.
type UpsertPointsRequest struct {
	Points []Point `json:"points"`
}

// SearchRequest is the request for semantic search.
type SearchRequest struct {
	Vector      []float32 `json:"vector"`
	Limit       int       `json:"limit"`
	WithPayload bool      `json:"with_payload"`
	Filter      *Filter   `json:"filter,omitempty"`
}

// Filter restricts a search to points whose payload matches every condition.
type Filter struct {
	Must []FieldCondition `json:"must,omitempty"`
}

// FieldCondition matches a payload key against an exact value.
type FieldCondition struct {
	Key   string     `json:"key"`
	Match MatchValue `json:"match"`
}

// MatchValue is an exact-match clause.
type MatchValue struct {
	Value interface{} `json:"value"`
}

// MatchKeyword builds a single-condition filter.
func MatchKeyword(key string, value interface{}) *Filter {
	return &Filter{Must: []FieldCondition{{Key: key, Match: MatchValue{Value: value}}}}
}

// SearchResponse contains search results.
type SearchResponse struct {
	Result []ScoredPoint `json:"result"`
}

// ScoredPoint is a search result with similarity score.
type ScoredPoint struct {
	ID      string                 `json:"id"`
	Score   float64                `json:"score"`
	Payload map[string]interface{} `json:"payload"`
}

// DeletePointsRequest is the request to delete points.
type DeletePointsRequest struct {
	Points []string `json:"points"`
}
