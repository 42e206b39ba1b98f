// Package content is the read/write client for the headless content store
// that owns the catalog and editorial documents. Reads go through the query
// API; the operational binaries use the mutation API.
package content

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"time"
)

// Config identifies the project and dataset to talk to. Token is only
// required for mutations.
type Config struct {
	ProjectID  string
	Dataset    string
	APIVersion string
	Token      string
	// BaseURL overrides the derived API host. Tests point it at a local
	// server.
	BaseURL string
}

type Client struct {
	httpClient *http.Client
	baseURL    string
	dataset    string
	projectID  string
	token      string
	logger     *log.Logger
}

func NewClient(cfg Config, logger *log.Logger) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = fmt.Sprintf("https://%s.api.sanity.io/v%s", cfg.ProjectID, cfg.APIVersion)
	}
	return &Client{
		httpClient: &http.Client{Timeout: 15 * time.Second},
		baseURL:    base,
		dataset:    cfg.Dataset,
		projectID:  cfg.ProjectID,
		token:      cfg.Token,
		logger:     logger,
	}
}

// Query runs a GROQ query and decodes the result envelope into dest. Params
// are bound as $-prefixed query variables.
func (c *Client) Query(ctx context.Context, groq string, params map[string]string, dest interface{}) error {
	q := url.Values{}
	q.Set("query", groq)
	for name, value := range params {
		q.Set("$"+name, strconv.Quote(value))
	}

	endpoint := fmt.Sprintf("%s/data/query/%s?%s", c.baseURL, c.dataset, q.Encode())
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return fmt.Errorf("build query request: %w", err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content query: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("content query: status %d: %s", resp.StatusCode, body)
	}

	var envelope struct {
		Result json.RawMessage `json:"result"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&envelope); err != nil {
		return fmt.Errorf("decode query envelope: %w", err)
	}
	if len(envelope.Result) == 0 || string(envelope.Result) == "null" {
		return nil
	}
	if err := json.Unmarshal(envelope.Result, dest); err != nil {
		return fmt.Errorf("decode query result: %w", err)
	}
	return nil
}

// Mutation is one entry of a mutation request body.
type Mutation map[string]interface{}

func CreateOrReplace(doc map[string]interface{}) Mutation {
	return Mutation{"createOrReplace": doc}
}

func Create(doc map[string]interface{}) Mutation {
	return Mutation{"create": doc}
}

func Delete(id string) Mutation {
	return Mutation{"delete": map[string]string{"id": id}}
}

func PatchSet(id string, set map[string]interface{}) Mutation {
	return Mutation{"patch": map[string]interface{}{"id": id, "set": set}}
}

// Mutate posts mutations to the dataset. Requires a write token.
func (c *Client) Mutate(ctx context.Context, mutations []Mutation) error {
	if c.token == "" {
		return fmt.Errorf("content mutate: write token not configured")
	}

	body, err := json.Marshal(map[string]interface{}{"mutations": mutations})
	if err != nil {
		return fmt.Errorf("marshal mutations: %w", err)
	}

	endpoint := fmt.Sprintf("%s/data/mutate/%s", c.baseURL, c.dataset)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, endpoint, bytes.NewReader(body))
	if err != nil {
		return fmt.Errorf("build mutate request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.token)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("content mutate: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		raw, _ := io.ReadAll(io.LimitReader(resp.Body, 512))
		return fmt.Errorf("content mutate: status %d: %s", resp.StatusCode, raw)
	}
	return nil
}
