package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/iudanet/postkeeper/internal/models"
	"github.com/iudanet/postkeeper/pkg/api"
)

//go:generate moq -out client_mock.go . ClientAPI

// ClientAPI описывает удаленные операции, которые использует клиент
type ClientAPI interface {
	ListPosts(ctx context.Context) ([]*models.Post, error)
	GetPost(ctx context.Context, id int64) (*models.Post, error)
	CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error)
	UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (*models.Post, error)
	DeletePost(ctx context.Context, id int64) error
	ListUsers(ctx context.Context) ([]*models.User, error)
	Health(ctx context.Context) error
}

// DefaultTimeout таймаут запроса по умолчанию
const DefaultTimeout = 30 * time.Second

// Client представляет HTTP клиент для взаимодействия с сервером
type Client struct {
	httpClient *http.Client
	baseURL    string
}

var _ ClientAPI = (*Client)(nil)

// NewClient создает новый API клиент. timeout <= 0 означает DefaultTimeout.
func NewClient(baseURL string, timeout time.Duration) *Client {
	if timeout <= 0 {
		timeout = DefaultTimeout
	}
	return &Client{
		baseURL: strings.TrimRight(baseURL, "/"),
		httpClient: &http.Client{
			Timeout: timeout,
			CheckRedirect: func(req *http.Request, via []*http.Request) error {
				if len(via) >= 10 {
					return fmt.Errorf("stopped after 10 redirects")
				}
				return nil
			},
		},
	}
}

// ListPosts получает все посты, новые первыми
func (c *Client) ListPosts(ctx context.Context) ([]*models.Post, error) {
	var resp api.Envelope[[]api.Post]
	if err := c.doRequest(ctx, http.MethodGet, "/api/posts", nil, &resp); err != nil {
		return nil, fmt.Errorf("list posts request failed: %w", err)
	}

	posts := make([]*models.Post, 0, len(resp.Data))
	for _, p := range resp.Data {
		posts = append(posts, p.ToModel())
	}
	return posts, nil
}

// GetPost получает один пост
func (c *Client) GetPost(ctx context.Context, id int64) (*models.Post, error) {
	var resp api.Envelope[api.Post]
	if err := c.doRequest(ctx, http.MethodGet, postPath(id), nil, &resp); err != nil {
		return nil, fmt.Errorf("get post request failed: %w", err)
	}
	return resp.Data.ToModel(), nil
}

// CreatePost создает пост на сервере
func (c *Client) CreatePost(ctx context.Context, draft models.PostDraft) (*models.Post, error) {
	req := api.CreatePostRequest{
		Title:  draft.Title,
		Body:   draft.Body,
		UserID: draft.UserID,
	}

	var resp api.Envelope[api.Post]
	if err := c.doRequest(ctx, http.MethodPost, "/api/posts", req, &resp); err != nil {
		return nil, fmt.Errorf("create post request failed: %w", err)
	}
	return resp.Data.ToModel(), nil
}

// UpdatePost отправляет только переданные поля
func (c *Client) UpdatePost(ctx context.Context, id int64, patch models.PostPatch) (*models.Post, error) {
	req := api.UpdatePostRequest{
		Title: patch.Title,
		Body:  patch.Body,
	}

	var resp api.Envelope[api.Post]
	if err := c.doRequest(ctx, http.MethodPatch, postPath(id), req, &resp); err != nil {
		return nil, fmt.Errorf("update post request failed: %w", err)
	}
	return resp.Data.ToModel(), nil
}

// DeletePost удаляет пост
func (c *Client) DeletePost(ctx context.Context, id int64) error {
	if err := c.doRequest(ctx, http.MethodDelete, postPath(id), nil, nil); err != nil {
		return fmt.Errorf("delete post request failed: %w", err)
	}
	return nil
}

// ListUsers получает пользователей, отсортированных по имени
func (c *Client) ListUsers(ctx context.Context) ([]*models.User, error) {
	var resp api.Envelope[[]api.User]
	if err := c.doRequest(ctx, http.MethodGet, "/api/users", nil, &resp); err != nil {
		return nil, fmt.Errorf("list users request failed: %w", err)
	}

	users := make([]*models.User, 0, len(resp.Data))
	for _, u := range resp.Data {
		users = append(users, u.ToModel())
	}
	return users, nil
}

// Health проверяет доступность сервера
func (c *Client) Health(ctx context.Context) error {
	var resp api.HealthResponse
	if err := c.doRequest(ctx, http.MethodGet, "/api/health", nil, &resp); err != nil {
		return fmt.Errorf("health request failed: %w", err)
	}
	if resp.Status != "ok" {
		return fmt.Errorf("server status %q", resp.Status)
	}
	return nil
}

func postPath(id int64) string {
	return "/api/posts/" + strconv.FormatInt(id, 10)
}

// doRequest выполняет HTTP запрос
func (c *Client) doRequest(ctx context.Context, method, path string, body, result any) error {
	url := c.baseURL + path

	var bodyReader io.Reader
	if body != nil {
		jsonData, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		bodyReader = bytes.NewReader(jsonData)
	}

	req, err := http.NewRequestWithContext(ctx, method, url, bodyReader)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer func() {
		_ = resp.Body.Close()
	}()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("failed to read response body: %w", err)
	}

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		statusErr := &StatusError{StatusCode: resp.StatusCode}

		var errResp api.ErrorResponse
		if err := json.Unmarshal(respBody, &errResp); err == nil && errResp.Error != "" {
			statusErr.Message = errResp.Error
		} else {
			statusErr.Message = strings.TrimSpace(string(respBody))
		}
		return statusErr
	}

	if result != nil {
		if err := json.Unmarshal(respBody, result); err != nil {
			return fmt.Errorf("failed to decode response: %w", err)
		}
	}

	return nil
}
