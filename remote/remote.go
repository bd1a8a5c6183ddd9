// Package remote talks to the cloud mirror of the practice log. Every call
// is an atomic request/response; it either succeeds or fails as a unit.
package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/caffeinepub/naamjap-voice/internal/models"
)

// ErrNotFound signals that the remote has no resource yet, e.g. a profile
// that was never created. Callers must treat it as an empty, creatable
// state rather than a failure.
var ErrNotFound = errors.New("remote resource not found")

// API is the remote store contract.
type API interface {
	AddSession(ctx context.Context, sess models.Session) error
	GetSessionSummaries(ctx context.Context) ([]models.Session, error)
	SyncDailyTotals(ctx context.Context, totals []models.DailyTotal) error
}

// sessionPayload is the wire form of a session. Timestamps travel as
// nanoseconds since epoch and durations as milliseconds.
type sessionPayload struct {
	Phrase         string `json:"phrase"`
	TimestampNanos int64  `json:"timestampNanos"`
	Count          int    `json:"count"`
	DurationMillis int64  `json:"durationMillis,omitempty"`
}

func toPayload(sess models.Session) sessionPayload {
	return sessionPayload{
		TimestampNanos: sess.StartTime.UnixNano(),
		Phrase:         sess.Phrase,
		Count:          sess.Count,
		DurationMillis: sess.Duration.Milliseconds(),
	}
}

func (p sessionPayload) toSession() models.Session {
	return models.Session{
		StartTime: time.Unix(0, p.TimestampNanos),
		Phrase:    p.Phrase,
		Count:     p.Count,
		Duration:  time.Duration(p.DurationMillis) * time.Millisecond,
	}
}

// Client is an HTTP implementation of the remote store contract.
type Client struct {
	httpClient *http.Client
	baseURL    string
	token      string
}

func NewClient(baseURL, token string) *Client {
	return &Client{
		baseURL: baseURL,
		token:   token,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

func (c *Client) AddSession(ctx context.Context, sess models.Session) error {
	return c.do(ctx, http.MethodPost, "/sessions", toPayload(sess), nil)
}

func (c *Client) GetSessionSummaries(
	ctx context.Context,
) ([]models.Session, error) {
	var payloads []sessionPayload

	err := c.do(ctx, http.MethodGet, "/sessions", nil, &payloads)
	if err != nil {
		return nil, err
	}

	sessions := make([]models.Session, 0, len(payloads))

	for _, p := range payloads {
		sessions = append(sessions, p.toSession())
	}

	return sessions, nil
}

func (c *Client) SyncDailyTotals(
	ctx context.Context,
	totals []models.DailyTotal,
) error {
	return c.do(ctx, http.MethodPut, "/daily-totals", totals, nil)
}

func (c *Client) do(
	ctx context.Context,
	method, path string,
	body, result any,
) error {
	var reader io.Reader

	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return err
		}

		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(
		ctx,
		method,
		c.baseURL+path,
		reader,
	)
	if err != nil {
		return err
	}

	req.Header.Set("Content-Type", "application/json")

	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}

	defer resp.Body.Close()

	if resp.StatusCode == http.StatusNotFound {
		return ErrNotFound
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf(
			"remote call %s %s failed with status %d",
			method,
			path,
			resp.StatusCode,
		)
	}

	if result != nil {
		return json.NewDecoder(resp.Body).Decode(result)
	}

	return nil
}
