package qdrant

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
)

// Client is the Qdrant HTTP API client.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

// NewClient creates a new Qdrant client.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL:    baseURL,
		httpClient: &http.Client{},
	}
}

// WithAPIKey sets the api-key header used by Qdrant Cloud.
func (c *Client) WithAPIKey(apiKey string) *Client {
	c.apiKey = apiKey
	return c
}

// CreateCollection creates a new collection with the given configuration.
func (c *Client) CreateCollection(ctx context.Context, req CreateCollectionRequest) error {
	url := fmt.Sprintf("%s/collections/%s", c.baseURL, req.Name)
	return c.do(ctx, http.MethodPut, url, req, nil, http.StatusOK, http.StatusCreated)
}

// CollectionExists reports whether the named collection is present.
func (c *Client) CollectionExists(ctx context.Context, name string) (bool, error) {
	url := fmt.Sprintf("%s/collections/%s/exists", c.baseURL, name)

	var resp struct {
		Result struct {
			Exists bool `json:"exists"`
		} `json:"result"`
	}
	if err := c.do(ctx, http.MethodGet, url, nil, &resp, http.StatusOK); err != nil {
		return false, err
	}
	return resp.Result.Exists, nil
}

// UpsertPoints inserts or updates points (vectors) in a collection.
func (c *Client) UpsertPoints(ctx context.Context, collectionName string, req UpsertPointsRequest) error {
	url := fmt.Sprintf("%s/collections/%s/points?wait=true", c.baseURL, collectionName)
	return c.do(ctx, http.MethodPut, url, req, nil, http.StatusOK)
}

// SearchPoints performs semantic search in a collection.
func (c *Client) SearchPoints(ctx context.Context, collectionName string, req SearchRequest) (*SearchResponse, error) {
	url := fmt.Sprintf("%s/collections/%s/points/search", c.baseURL, collectionName)

	var result SearchResponse
	if err := c.do(ctx, http.MethodPost, url, req, &result, http.StatusOK); err != nil {
		return nil, err
	}
	return &result, nil
}

// DeletePoints deletes points by IDs.
func (c *Client) DeletePoints(ctx context.Context, collectionName string, ids []string) error {
	url := fmt.Sprintf("%s/collections/%s/points/delete", c.baseURL, collectionName)
	return c.do(ctx, http.MethodPost, url, DeletePointsRequest{Points: ids}, nil, http.StatusOK)
}

func (c *Client) do(ctx context.Context, method, url string, in, out interface{}, okStatus ...int) error {
	var body io.Reader
	if in != nil {
		raw, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		body = bytes.NewBuffer(raw)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, url, body)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	if c.apiKey != "" {
		httpReq.Header.Set("api-key", c.apiKey)
	}

	resp, err := c.httpClient.Do(httpReq)
	if err != nil {
		return fmt.Errorf("failed to call qdrant API: %w", err)
	}
	defer resp.Body.Close()

	if !statusIn(resp.StatusCode, okStatus) {
		return fmt.Errorf("qdrant API error: %d", resp.StatusCode)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}
	return nil
}

func statusIn(code int, allowed []int) bool {
	for _, s := range allowed {
		if code == s {
			return true
		}
	}
	return false
}
