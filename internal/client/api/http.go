package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"
)

// TokenSource supplies the current bearer token for outbound requests.
// Returning "" sends the request without an Authorization header.
type TokenSource func(ctx context.Context) string

// Client bundles the two collaborator scopes over one HTTP core, mirroring
// the upstream service layout.
type Client struct {
	Auth AuthAPI
	User UserAPI
}

// New builds a Client talking JSON over HTTP to baseURL. The token source is
// consulted per request, so token rotation needs no client rebuild.
func New(baseURL string, timeout time.Duration, token TokenSource, logger zerolog.Logger) *Client {
	core := &httpCore{
		baseURL: strings.TrimRight(baseURL, "/"),
		http:    &http.Client{Timeout: timeout},
		token:   token,
		logger:  logger,
	}
	return &Client{
		Auth: &authClient{core: core},
		User: &userClient{core: core},
	}
}

type httpCore struct {
	baseURL string
	http    *http.Client
	token   TokenSource
	logger  zerolog.Logger
}

// envelope is the standard response wrapper: the payload lives under "data".
type envelope struct {
	Data json.RawMessage `json:"data"`
}

// do sends one JSON request and decodes the data envelope into out (when out
// is non-nil). Transport failures map to ErrUnavailable, a 401 response maps
// to ErrUnauthorized, and any other non-2xx becomes an *APIError carrying
// the extracted server message.
func (c *httpCore) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		if err != nil {
			return fmt.Errorf("failed to encode request: %w", err)
		}
		reader = bytes.NewReader(b)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if c.token != nil {
		if tok := c.token(ctx); tok != "" {
			req.Header.Set("Authorization", "Bearer "+tok)
		}
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrUnavailable, err)
	}

	if resp.StatusCode == http.StatusUnauthorized {
		c.logger.Debug().Str("path", path).Msg("request rejected: unauthorized")
		return ErrUnauthorized
	}
	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return &APIError{Status: resp.StatusCode, Message: extractMessage(respBody)}
	}

	if out == nil {
		return nil
	}

	var env envelope
	if err := json.Unmarshal(respBody, &env); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	if len(env.Data) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Data, out); err != nil {
		return fmt.Errorf("failed to decode response data: %w", err)
	}
	return nil
}

type authClient struct {
	core *httpCore
}

func (a *authClient) Login(ctx context.Context, username, password string) (*TokenPair, error) {
	req := map[string]string{"username": username, "password": password}
	var pair TokenPair
	if err := a.core.do(ctx, http.MethodPost, "/api/auth/login", req, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (a *authClient) ChangePassword(ctx context.Context, req *PasswordChange) error {
	return a.core.do(ctx, http.MethodPost, "/api/auth/change-password", req, nil)
}

func (a *authClient) UpdateProfile(ctx context.Context, patch *ProfilePatch) (*ProfileData, error) {
	var data ProfileData
	if err := a.core.do(ctx, http.MethodPatch, "/api/auth/profile", patch, &data); err != nil {
		return nil, err
	}
	return &data, nil
}

func (a *authClient) RefreshToken(ctx context.Context, refreshToken string) (*TokenPair, error) {
	req := map[string]string{"refresh_token": refreshToken}
	var pair TokenPair
	if err := a.core.do(ctx, http.MethodPost, "/api/auth/refresh", req, &pair); err != nil {
		return nil, err
	}
	return &pair, nil
}

func (a *authClient) Logout(ctx context.Context) error {
	return a.core.do(ctx, http.MethodPost, "/api/auth/logout", nil, nil)
}

func (a *authClient) ValidateSession(ctx context.Context) error {
	return a.core.do(ctx, http.MethodGet, "/api/auth/session", nil, nil)
}

type userClient struct {
	core *httpCore
}

func (u *userClient) UpdateProfile(ctx context.Context, patch *ProfilePatch) (*ProfileData, error) {
	var data ProfileData
	if err := u.core.do(ctx, http.MethodPatch, "/api/user/profile", patch, &data); err != nil {
		return nil, err
	}
	return &data, nil
}
