// Package client talks to the tasks API and keeps a local mirror of its tasks.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"
)

// Task is the wire representation of a task.
type Task struct {
	ID          int64  `json:"id"`
	Description string `json:"description"`
	IsCompleted bool   `json:"isCompleted"`
}

// UpdateTaskRequest carries a partial update. Nil fields are not sent.
type UpdateTaskRequest struct {
	Description *string `json:"description,omitempty"`
	IsCompleted *bool   `json:"isCompleted,omitempty"`
}

// APIError is returned for every non-2xx response.
type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if e.Message == "" {
		return fmt.Sprintf("tasks api: %s", http.StatusText(e.StatusCode))
	}
	return fmt.Sprintf("tasks api: %s", e.Message)
}

// IsNotFound reports whether err is an APIError with status 404.
func IsNotFound(err error) bool {
	var apiErr *APIError
	return errors.As(err, &apiErr) && apiErr.StatusCode == http.StatusNotFound
}

// Client is a thin HTTP client for the /api/tasks endpoints.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// New creates a client for baseURL, e.g. http://localhost:5161/api/tasks.
func New(baseURL string, timeout time.Duration) *Client {
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{Timeout: timeout},
	}
}

func (c *Client) List(ctx context.Context) ([]Task, error) {
	var tasks []Task
	err := c.do(ctx, http.MethodGet, c.baseURL, nil, http.StatusOK, &tasks)
	if err != nil {
		return nil, err
	}
	if tasks == nil {
		tasks = []Task{}
	}
	return tasks, nil
}

func (c *Client) Get(ctx context.Context, id int64) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodGet, c.taskURL(id), nil, http.StatusOK, &task)
	return task, err
}

func (c *Client) Create(ctx context.Context, description string) (Task, error) {
	var task Task
	body := map[string]string{"description": description}
	err := c.do(ctx, http.MethodPost, c.baseURL, body, http.StatusCreated, &task)
	return task, err
}

func (c *Client) Update(ctx context.Context, id int64, req UpdateTaskRequest) (Task, error) {
	var task Task
	err := c.do(ctx, http.MethodPut, c.taskURL(id), req, http.StatusOK, &task)
	return task, err
}

func (c *Client) Delete(ctx context.Context, id int64) error {
	return c.do(ctx, http.MethodDelete, c.taskURL(id), nil, http.StatusNoContent, nil)
}

func (c *Client) taskURL(id int64) string {
	return c.baseURL + "/" + strconv.FormatInt(id, 10)
}

func (c *Client) do(ctx context.Context, method, url string, body any, wantStatus int, out any) error {
	var reqBody io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request: %w", err)
		}
		reqBody = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("failed to send request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != wantStatus {
		return decodeAPIError(resp)
	}

	if out == nil {
		return nil
	}
	err = json.NewDecoder(resp.Body).Decode(out)
	if err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}

func decodeAPIError(resp *http.Response) error {
	apiErr := &APIError{StatusCode: resp.StatusCode}

	var body struct {
		Message string `json:"message"`
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err == nil && json.Unmarshal(data, &body) == nil {
		apiErr.Message = body.Message
	}
	return apiErr
}
