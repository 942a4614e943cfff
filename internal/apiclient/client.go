package apiclient

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// RequestIDHeader заголовок с идентификатором запроса для сквозных логов
const RequestIDHeader = "X-Request-ID"

// Client тонкая обёртка над REST API гостиницы
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	lookups    *LookupCache
	logger     *zap.Logger
}

// New создаёт клиент без учётных данных
func New(baseURL string, httpClient *http.Client, logger *zap.Logger) *Client {
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Client{
		baseURL:    strings.TrimRight(baseURL, "/"),
		httpClient: httpClient,
		logger:     logger,
	}
}

// WithToken возвращает копию клиента, которая подписывает каждый запрос токеном
func (c *Client) WithToken(token string) *Client {
	clone := *c
	clone.token = token
	return &clone
}

// WithLookupCache возвращает копию клиента, читающую справочники через кеш
func (c *Client) WithLookupCache(cache *LookupCache) *Client {
	clone := *c
	clone.lookups = cache
	return &clone
}

// LookupCacheEnabled true, если справочники действительно читаются через Redis
func (c *Client) LookupCacheEnabled() bool {
	return c.lookups != nil && c.lookups.rdb != nil
}

// BaseURL базовый адрес API
func (c *Client) BaseURL() string {
	return c.baseURL
}

// Response сырой ответ сервера
type Response struct {
	StatusCode int
	Body       []byte
}

// Empty true, если сервер не прислал тела (или прислал null)
func (r *Response) Empty() bool {
	trimmed := bytes.TrimSpace(r.Body)
	return len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null"))
}

// Request выполняет запрос и возвращает ответ либо *APIError
func (c *Client) Request(ctx context.Context, method, path string, query url.Values, body any) (*Response, error) {
	target := c.baseURL + path
	if len(query) > 0 {
		target += "?" + query.Encode()
	}

	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return nil, &APIError{Kind: KindDecode, Method: method, Path: path, Message: GenericMessage, Err: fmt.Errorf("encode body: %w", err)}
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, target, reader)
	if err != nil {
		return nil, &APIError{Kind: KindTransport, Method: method, Path: path, Message: GenericMessage, Err: fmt.Errorf("build request: %w", err)}
	}

	requestID := uuid.NewString()
	req.Header.Set(RequestIDHeader, requestID)
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		c.logger.Warn("API request failed",
			zap.String("request_id", requestID),
			zap.String("method", method),
			zap.String("path", path),
			zap.Error(err))
		return nil, &APIError{Kind: KindTransport, Method: method, Path: path, Message: GenericMessage, Err: err}
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &APIError{Kind: KindTransport, Method: method, Path: path, StatusCode: resp.StatusCode, Message: GenericMessage, Err: fmt.Errorf("read body: %w", err)}
	}

	c.logger.Debug("API request",
		zap.String("request_id", requestID),
		zap.String("method", method),
		zap.String("path", path),
		zap.Int("status", resp.StatusCode))

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		msg := serverMessage(data)
		if msg == "" {
			msg = GenericMessage
		}
		return nil, &APIError{Kind: KindServer, Method: method, Path: path, StatusCode: resp.StatusCode, Message: msg}
	}

	return &Response{StatusCode: resp.StatusCode, Body: data}, nil
}

// getList загружает коллекцию; пустой ответ и 404 считаются пустой коллекцией
func getList[T any](ctx context.Context, c *Client, path string, query url.Values) ([]T, error) {
	resp, err := c.Request(ctx, http.MethodGet, path, query, nil)
	if err != nil {
		if IsNotFound(err) {
			return []T{}, nil
		}
		return nil, err
	}
	items := []T{}
	if resp.Empty() {
		return items, nil
	}
	if err := json.Unmarshal(resp.Body, &items); err != nil {
		return nil, &APIError{Kind: KindDecode, Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode, Message: GenericMessage, Err: err}
	}
	return items, nil
}

// getOne загружает одну запись; пустое тело даёт nil без ошибки
func getOne[T any](ctx context.Context, c *Client, path string) (*T, error) {
	resp, err := c.Request(ctx, http.MethodGet, path, nil, nil)
	if err != nil {
		return nil, err
	}
	if resp.Empty() {
		return nil, nil
	}
	var item T
	if err := json.Unmarshal(resp.Body, &item); err != nil {
		return nil, &APIError{Kind: KindDecode, Method: http.MethodGet, Path: path, StatusCode: resp.StatusCode, Message: GenericMessage, Err: err}
	}
	return &item, nil
}

// expectCreated проверяет статус ответа на создание записи
func expectCreated(resp *Response, method, path string) error {
	switch resp.StatusCode {
	case http.StatusCreated, http.StatusOK:
		return nil
	default:
		return &APIError{Kind: KindServer, Method: method, Path: path, StatusCode: resp.StatusCode, Message: GenericMessage}
	}
}
