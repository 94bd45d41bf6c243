package kvstore

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"follower-tracker/models"
)

// RestKVStore talks to a Vercel-KV/Upstash-style REST endpoint:
// POST <url>/set/<key> writes, GET <url>/get/<key> reads, both with a
// bearer token. Writes succeed only when the service answers
// {"result":"OK"}; anything else is a failure and is never retried.
type RestKVStore struct {
	baseURL string
	token   string
	client  *http.Client
}

// NewRestKVStore builds a REST store client. Missing configuration is not an
// error here; Set and Get fail fast instead, so the handler can report it
// per invocation.
func NewRestKVStore(baseURL, token string) *RestKVStore {
	return &RestKVStore{
		baseURL: baseURL,
		token:   token,
		client:  &http.Client{Timeout: 10 * time.Second},
	}
}

type restResult struct {
	Result json.RawMessage `json:"result"`
}

// Set writes the snapshot under key, overwriting any prior value.
func (s *RestKVStore) Set(key string, snap models.Snapshot) error {
	if s.baseURL == "" || s.token == "" {
		return ErrNotConfigured
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}

	req, err := http.NewRequest(http.MethodPost, fmt.Sprintf("%s/set/%s", s.baseURL, key), bytes.NewReader(payload))
	if err != nil {
		return err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return fmt.Errorf("error communicating with KV API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("KV API returned status %d", resp.StatusCode)
	}

	var body restResult
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return fmt.Errorf("error decoding KV API response: %w", err)
	}
	var result string
	if err := json.Unmarshal(body.Result, &result); err != nil || result != "OK" {
		return fmt.Errorf("unexpected KV result: %s", body.Result)
	}
	return nil
}

// Get reads the snapshot back. The REST API wraps stored values in a
// "result" field, usually as a JSON-encoded string; both the wrapped and the
// raw-object forms are accepted.
func (s *RestKVStore) Get(key string) (models.Snapshot, error) {
	var snap models.Snapshot
	if s.baseURL == "" || s.token == "" {
		return snap, ErrNotConfigured
	}

	req, err := http.NewRequest(http.MethodGet, fmt.Sprintf("%s/get/%s", s.baseURL, key), nil)
	if err != nil {
		return snap, err
	}
	req.Header.Set("Authorization", "Bearer "+s.token)

	resp, err := s.client.Do(req)
	if err != nil {
		return snap, fmt.Errorf("error communicating with KV API: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return snap, ErrNotFound
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return snap, fmt.Errorf("KV API returned status %d", resp.StatusCode)
	}

	var body restResult
	if err := json.NewDecoder(resp.Body).Decode(&body); err != nil {
		return snap, fmt.Errorf("error decoding KV API response: %w", err)
	}
	if len(body.Result) == 0 || string(body.Result) == "null" {
		return snap, ErrNotFound
	}

	var encoded string
	if err := json.Unmarshal(body.Result, &encoded); err == nil {
		err = json.Unmarshal([]byte(encoded), &snap)
		return snap, err
	}
	err = json.Unmarshal(body.Result, &snap)
	return snap, err
}

// Close is a no-op; the REST client holds no persistent connection state.
func (s *RestKVStore) Close() error {
	return nil
}
