package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strconv"

	"github.com/hongminglow/shift-assign/internal/models"
	"github.com/hongminglow/shift-assign/internal/models/dto"
)

const membersEndpoint = "/members"

const (
	opList   = "list members"
	opCreate = "create member"
	opDelete = "delete member"
)

// Client talks to the member gateway. Each call issues exactly one request;
// nothing is retried and no client-side timeout is applied.
type Client struct {
	baseURL    string
	httpClient *http.Client
}

// NewClient creates a client for the gateway at baseURL.
func NewClient(baseURL string) *Client {
	return NewClientWithHTTP(baseURL, &http.Client{})
}

// NewClientWithHTTP creates a client that sends requests through httpClient.
func NewClientWithHTTP(baseURL string, httpClient *http.Client) *Client {
	return &Client{baseURL: baseURL, httpClient: httpClient}
}

// BaseURL returns the gateway address the client was built with.
func (c *Client) BaseURL() string {
	return c.baseURL
}

// ListMembers returns the gateway's member list exactly as sent.
func (c *Client) ListMembers(ctx context.Context) ([]models.Member, error) {
	resp, err := c.do(ctx, opList, http.MethodGet, membersEndpoint, nil)
	if err != nil {
		return nil, err
	}
	defer closeBody(resp)

	if !isSuccess(resp) {
		return nil, newRequestError(opList, resp, "Failed to fetch members: "+statusText(resp))
	}

	var members []models.Member
	if err := json.NewDecoder(resp.Body).Decode(&members); err != nil {
		return nil, fmt.Errorf("decode members response: %w", err)
	}
	return members, nil
}

// CreateMember posts {name, phone} and returns the gateway's record, which may
// omit the optional fields.
func (c *Client) CreateMember(ctx context.Context, name, phone string) (dto.MemberResponse, error) {
	payload, err := json.Marshal(dto.CreateMemberRequest{Name: name, Phone: phone})
	if err != nil {
		return dto.MemberResponse{}, fmt.Errorf("marshal create request: %w", err)
	}

	resp, err := c.do(ctx, opCreate, http.MethodPost, membersEndpoint, payload)
	if err != nil {
		return dto.MemberResponse{}, err
	}
	defer closeBody(resp)

	if !isSuccess(resp) {
		return dto.MemberResponse{}, newRequestError(opCreate, resp, "Failed to create member: "+statusText(resp))
	}

	var created dto.MemberResponse
	if err := json.NewDecoder(resp.Body).Decode(&created); err != nil {
		return dto.MemberResponse{}, fmt.Errorf("decode member response: %w", err)
	}
	return created, nil
}

// DeleteMember removes the member with the given id.
func (c *Client) DeleteMember(ctx context.Context, id int64) error {
	resp, err := c.do(ctx, opDelete, http.MethodDelete, membersEndpoint+"/"+strconv.FormatInt(id, 10), nil)
	if err != nil {
		return err
	}
	defer closeBody(resp)

	if !isSuccess(resp) {
		return newRequestError(opDelete, resp, "Failed to delete member")
	}
	return nil
}

func (c *Client) do(ctx context.Context, op, method, path string, body []byte) (*http.Response, error) {
	endpoint, err := url.JoinPath(c.baseURL, path)
	if err != nil {
		return nil, fmt.Errorf("build %s url: %w", op, err)
	}

	var reader io.Reader
	if body != nil {
		reader = bytes.NewReader(body)
	}
	req, err := http.NewRequestWithContext(ctx, method, endpoint, reader)
	if err != nil {
		return nil, fmt.Errorf("build %s request: %w", op, err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	req.Header.Set("Accept", "application/json")

	slog.Debug("gateway request", "op", op, "method", method, "url", endpoint)
	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &NetworkError{Op: op, Err: err}
	}
	return resp, nil
}

func isSuccess(resp *http.Response) bool {
	return resp.StatusCode >= 200 && resp.StatusCode < 300
}

func closeBody(resp *http.Response) {
	_, _ = io.Copy(io.Discard, resp.Body)
	if err := resp.Body.Close(); err != nil {
		slog.Debug("close gateway response body", "error", err)
	}
}
