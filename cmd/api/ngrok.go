package main

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"
)

const (
	ngrokAPIBase       = "http://ngrok:4040"
	ngrokProbeAttempts = 10
	ngrokProbeInterval = 3 * time.Second
)

var errNoTunnel = errors.New("ngrok has no active tunnel")

type ngrokTunnels struct {
	Tunnels []struct {
		PublicURL string `json:"public_url"`
		Proto     string `json:"proto"`
	} `json:"tunnels"`
}

// publicURL prefers an https tunnel and falls back to the first one listed.
func (t ngrokTunnels) publicURL() (string, bool) {
	for _, tn := range t.Tunnels {
		if tn.Proto == "https" {
			return tn.PublicURL, true
		}
	}
	if len(t.Tunnels) > 0 {
		return t.Tunnels[0].PublicURL, true
	}
	return "", false
}

// detectTunnelURL polls the ngrok local API until a tunnel is up, the attempts
// run out or ctx is done.
func detectTunnelURL(ctx context.Context, apiBase string, attempts int, interval time.Duration) (string, error) {
	client := &http.Client{Timeout: 5 * time.Second}

	var lastErr error = errNoTunnel
	for attempt := 1; attempt <= attempts; attempt++ {
		if attempt > 1 {
			select {
			case <-ctx.Done():
				return "", ctx.Err()
			case <-time.After(interval):
			}
		}

		url, err := probeTunnels(ctx, client, apiBase+"/api/tunnels")
		if err == nil {
			return url, nil
		}
		lastErr = err
	}

	return "", fmt.Errorf("ngrok: no tunnel after %d attempts: %w", attempts, lastErr)
}

func probeTunnels(ctx context.Context, client *http.Client, url string) (string, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return "", err
	}
	resp, err := client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	var tunnels ngrokTunnels
	if err := json.NewDecoder(resp.Body).Decode(&tunnels); err != nil {
		return "", fmt.Errorf("decode tunnels: %w", err)
	}
	if u, ok := tunnels.publicURL(); ok {
		return u, nil
	}
	return "", errNoTunnel
}
