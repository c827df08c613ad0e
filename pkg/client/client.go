// Package client предоставляет HTTP-клиент API love space и Session —
// цикл синхронизации состояния комнаты поверх периодического опроса.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"love_space/internal/domain"
)

type Client struct {
	BaseURL    string
	HTTPClient *http.Client
}

func New(baseURL string) *Client {
	if baseURL == "" {
		baseURL = "http://localhost:8080"
	}
	return &Client{
		BaseURL:    baseURL,
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
	}
}

// APIError — ошибка сервера с HTTP-статусом, чтобы вызывающий мог
// отличить 404 от остального
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server error %d: %s", e.Status, e.Message)
}

func (e *APIError) NotFound() bool {
	return e.Status == http.StatusNotFound
}

func (c *Client) doRequest(ctx context.Context, method, path string, body []byte) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, method, c.BaseURL+path, bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.HTTPClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}

	if resp.StatusCode >= 400 {
		var errResp struct {
			Error string `json:"error"`
		}
		json.Unmarshal(respBody, &errResp)
		return nil, &APIError{Status: resp.StatusCode, Message: errResp.Error}
	}

	return respBody, nil
}

// GetRoomState запрашивает полный снимок комнаты
func (c *Client) GetRoomState(ctx context.Context, code string) (*domain.RoomState, error) {
	respBody, err := c.doRequest(ctx, http.MethodGet, "/rooms/"+code, nil)
	if err != nil {
		return nil, err
	}

	state := &domain.RoomState{}
	if err := json.Unmarshal(respBody, state); err != nil {
		return nil, err
	}
	return state, nil
}

// CreateRoom создает комнату с заданным кодом и темой по умолчанию
func (c *Client) CreateRoom(ctx context.Context, code string) (*domain.RoomState, error) {
	respBody, err := c.doRequest(ctx, http.MethodPost, "/rooms/"+code, nil)
	if err != nil {
		return nil, err
	}

	state := &domain.RoomState{}
	if err := json.Unmarshal(respBody, state); err != nil {
		return nil, err
	}
	return state, nil
}

type joinRequest struct {
	Username string `json:"username"`
}

func (c *Client) JoinRoom(ctx context.Context, code, username string) error {
	body, _ := json.Marshal(joinRequest{Username: username})
	_, err := c.doRequest(ctx, http.MethodPost, "/rooms/"+code+"/join", body)
	return err
}

type postMessageRequest struct {
	Text   string `json:"text"`
	Author string `json:"author"`
	Color  string `json:"color,omitempty"`
}

func (c *Client) PostMessage(ctx context.Context, code, text, author, color string) (*domain.MessageView, error) {
	body, _ := json.Marshal(postMessageRequest{Text: text, Author: author, Color: color})
	respBody, err := c.doRequest(ctx, http.MethodPost, "/rooms/"+code+"/messages", body)
	if err != nil {
		return nil, err
	}

	message := &domain.MessageView{}
	if err := json.Unmarshal(respBody, message); err != nil {
		return nil, err
	}
	return message, nil
}

type setThemeRequest struct {
	Theme string `json:"theme"`
}

func (c *Client) SetTheme(ctx context.Context, code, theme string) error {
	body, _ := json.Marshal(setThemeRequest{Theme: theme})
	_, err := c.doRequest(ctx, http.MethodPut, "/rooms/"+code+"/theme", body)
	return err
}
