package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/blackwell-systems/readingctl/internal/model"
)

// Reply is a complete, non-streamed assistant response.
type Reply struct {
	Message         string
	Recommendations []model.BookRecord
}

// wireReply is the on-the-wire shape of a plain reply.
type wireReply struct {
	Message         string               `json:"message"`
	Recommendations []wireRecommendation `json:"recommendations,omitempty"`
}

func (w wireReply) reply() Reply {
	out := Reply{Message: w.Message}
	for _, r := range w.Recommendations {
		out.Recommendations = append(out.Recommendations, r.record())
	}
	return out
}

// Client calls the recommendation assistant over HTTP.
type Client struct {
	baseURL string
	http    *http.Client
}

// NewClient creates a Client for the assistant's base URL.
func NewClient(baseURL string) *Client {
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		// No overall timeout: a streamed reply is open-ended. Callers
		// bound requests with their context.
		http: &http.Client{},
	}
}

type chatRequest struct {
	Query  string `json:"query"`
	UserID string `json:"userId"`
	Stream bool   `json:"stream"`
}

// Ask sends a plain request and returns the finished reply.
func (c *Client) Ask(ctx context.Context, query, userID string) (Reply, error) {
	ctx, cancel := context.WithTimeout(ctx, 60*time.Second)
	defer cancel()

	resp, err := c.post(ctx, "/api/chat", chatRequest{Query: query, UserID: userID})
	if err != nil {
		return Reply{}, err
	}
	defer func() { _ = resp.Body.Close() }()

	var wr wireReply
	if err := json.NewDecoder(resp.Body).Decode(&wr); err != nil {
		return Reply{}, fmt.Errorf("decoding assistant reply: %w", err)
	}
	return wr.reply(), nil
}

// Stream opens a streaming request. The caller owns the returned body
// and feeds it to an EventDecoder. No client-side timeout: a streamed
// reply is open-ended, so callers bound it with ctx.
func (c *Client) Stream(ctx context.Context, query, userID string) (io.ReadCloser, error) {
	resp, err := c.post(ctx, "/api/chat/stream", chatRequest{Query: query, UserID: userID, Stream: true})
	if err != nil {
		return nil, err
	}
	return resp.Body, nil
}

func (c *Client) post(ctx context.Context, path string, body chatRequest) (*http.Response, error) {
	b, err := json.Marshal(body)
	if err != nil {
		return nil, err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, err
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		_ = resp.Body.Close()
		return nil, fmt.Errorf("assistant returned status %d", resp.StatusCode)
	}
	return resp, nil
}
