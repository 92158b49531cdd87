package remote

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"go.uber.org/zap"

	"eventdeck/domain/core/entities"
	pkgerrors "eventdeck/pkg/errors"
	"eventdeck/pkg/observability"
)

// Client talks to the upstream REST store. Requests and responses are
// JSON entity records; failures map onto the typed error taxonomy:
// transport failures become network errors, non-2xx responses become API
// errors (404 becomes not-found). The client never retries.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *zap.Logger
	metrics    *observability.Metrics
}

// NewClient creates a store client for the given base URL
func NewClient(baseURL string, logger *zap.Logger, metrics *observability.Metrics) *Client {
	return &Client{
		baseURL: baseURL,
		httpClient: &http.Client{
			Timeout: 30 * time.Second,
		},
		logger:  logger,
		metrics: metrics,
	}
}

// ListEvents retrieves the full events collection
func (c *Client) ListEvents(ctx context.Context) ([]entities.Event, error) {
	var events []entities.Event
	if err := c.do(ctx, http.MethodGet, "/events", nil, &events, "events"); err != nil {
		return nil, err
	}
	return events, nil
}

// GetEvent retrieves a single event by id
func (c *Client) GetEvent(ctx context.Context, id int) (entities.Event, error) {
	var event entities.Event
	if err := c.do(ctx, http.MethodGet, "/events/"+strconv.Itoa(id), nil, &event, "events"); err != nil {
		return entities.Event{}, err
	}
	return event, nil
}

// CreateEvent submits a new event; the store assigns the id
func (c *Client) CreateEvent(ctx context.Context, event entities.Event) (entities.Event, error) {
	var created entities.Event
	if err := c.do(ctx, http.MethodPost, "/events", event, &created, "events"); err != nil {
		return entities.Event{}, err
	}
	return created, nil
}

// UpdateEvent replaces the full record
func (c *Client) UpdateEvent(ctx context.Context, event entities.Event) (entities.Event, error) {
	var updated entities.Event
	path := "/events/" + strconv.Itoa(event.ID)
	if err := c.do(ctx, http.MethodPut, path, event, &updated, "events"); err != nil {
		return entities.Event{}, err
	}
	return updated, nil
}

// DeleteEvent removes an event. A 404 surfaces as a not-found error;
// the caller decides whether that counts as success.
func (c *Client) DeleteEvent(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/events/"+strconv.Itoa(id), nil, nil, "events")
}

// ListCategories retrieves the read-only categories collection
func (c *Client) ListCategories(ctx context.Context) ([]entities.Category, error) {
	var categories []entities.Category
	if err := c.do(ctx, http.MethodGet, "/categories", nil, &categories, "categories"); err != nil {
		return nil, err
	}
	return categories, nil
}

// ListUsers retrieves the full users collection
func (c *Client) ListUsers(ctx context.Context) ([]entities.User, error) {
	var users []entities.User
	if err := c.do(ctx, http.MethodGet, "/users", nil, &users, "users"); err != nil {
		return nil, err
	}
	return users, nil
}

// CreateUser creates a user record with the given name
func (c *Client) CreateUser(ctx context.Context, name string) (entities.User, error) {
	var created entities.User
	body := entities.User{Name: name}
	if err := c.do(ctx, http.MethodPost, "/users", body, &created, "users"); err != nil {
		return entities.User{}, err
	}
	return created, nil
}

// DeleteUser removes a user record
func (c *Client) DeleteUser(ctx context.Context, id int) error {
	return c.do(ctx, http.MethodDelete, "/users/"+strconv.Itoa(id), nil, nil, "users")
}

// do issues one request and decodes the response into out when non-nil
func (c *Client) do(ctx context.Context, method, path string, body, out interface{}, entity string) error {
	var reqBody io.Reader
	if body != nil {
		encoded, err := json.Marshal(body)
		if err != nil {
			return pkgerrors.NewInternalError("encoding request body").WithCause(err)
		}
		reqBody = bytes.NewReader(encoded)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reqBody)
	if err != nil {
		return pkgerrors.NewInternalError("building request").WithCause(err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	start := time.Now()
	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.record(entity, method, "error", start)
		return pkgerrors.NewNetworkError(fmt.Sprintf("store unreachable: %s %s", method, path), err)
	}
	defer resp.Body.Close()

	c.record(entity, method, strconv.Itoa(resp.StatusCode), start)

	if resp.StatusCode == http.StatusNotFound {
		return pkgerrors.NewNotFoundError(entity)
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		message := readErrorBody(resp.Body)
		if message == "" {
			message = fmt.Sprintf("store rejected %s %s", method, path)
		}
		return pkgerrors.NewAPIError(resp.StatusCode, message)
	}

	if out != nil {
		if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
			return pkgerrors.NewAPIError(resp.StatusCode, "store returned malformed JSON").WithCause(err)
		}
	}

	return nil
}

func (c *Client) record(entity, verb, status string, start time.Time) {
	if c.metrics != nil {
		c.metrics.RecordStoreCall(entity, verb, status, time.Since(start))
	}
	c.logger.Debug("store request",
		zap.String("entity", entity),
		zap.String("verb", verb),
		zap.String("status", status),
		zap.Duration("duration", time.Since(start)),
	)
}

// readErrorBody pulls a short message out of an error response
func readErrorBody(r io.Reader) string {
	raw, err := io.ReadAll(io.LimitReader(r, 1024))
	if err != nil || len(raw) == 0 {
		return ""
	}

	var body struct {
		Message string `json:"message"`
		Error   string `json:"error"`
	}
	if err := json.Unmarshal(raw, &body); err == nil {
		if body.Message != "" {
			return body.Message
		}
		if body.Error != "" {
			return body.Error
		}
	}
	return string(raw)
}
