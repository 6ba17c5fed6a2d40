package supabase

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"
	"time"

	"controle-leiteiro/internal/platform/httpclient"
	"controle-leiteiro/internal/ports/auth"
)

var (
	ErrSupabaseNotConfigured = errors.New("supabase client not configured")
	ErrSupabaseUnauthorized  = errors.New("supabase unauthorized")
	ErrSupabaseUpstream      = errors.New("supabase upstream error")
)

// Config do cliente Supabase Auth (GoTrue).
// URL e AnonKey normalmente vêm de env vars no serviço que o instancia.
type Config struct {
	URL     string
	AnonKey string

	// Timeout HTTP (default 5s).
	Timeout time.Duration
}

type Client struct {
	anonKey string
	http    *httpclient.Client
}

func NewClient(cfg Config) (*Client, error) {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}

	hc, err := httpclient.NewWithBaseURL(strings.TrimSpace(cfg.URL), timeout)
	if err != nil {
		return nil, err
	}

	return &Client{
		anonKey: strings.TrimSpace(cfg.AnonKey),
		http:    hc,
	}, nil
}

func (c *Client) IsConfigured() bool {
	return c != nil && c.http != nil && c.http.BaseURL != "" && c.anonKey != ""
}

// GetUser valida o access token do usuário contra o GoTrue
// (GET /auth/v1/user) e devolve os claims.
func (c *Client) GetUser(ctx context.Context, token string) (auth.Claims, error) {
	if !c.IsConfigured() {
		return auth.Claims{}, ErrSupabaseNotConfigured
	}
	token = strings.TrimSpace(token)
	if token == "" {
		return auth.Claims{}, ErrSupabaseUnauthorized
	}

	headers := map[string]string{
		"Authorization": "Bearer " + token,
		"apikey":        c.anonKey,
	}

	var out struct {
		ID    string `json:"id"`
		Email string `json:"email"`
	}

	err := c.http.DoJSON(ctx, http.MethodGet, "/auth/v1/user", headers, nil, &out)
	if err != nil {
		var httpErr *httpclient.HTTPError
		if errors.As(err, &httpErr) {
			if httpErr.StatusCode == http.StatusUnauthorized || httpErr.StatusCode == http.StatusForbidden {
				return auth.Claims{}, ErrSupabaseUnauthorized
			}
			return auth.Claims{}, fmt.Errorf("%w: status=%d", ErrSupabaseUpstream, httpErr.StatusCode)
		}
		return auth.Claims{}, fmt.Errorf("%w: %v", ErrSupabaseUpstream, err)
	}

	out.ID = strings.TrimSpace(out.ID)
	if out.ID == "" {
		return auth.Claims{}, errors.New("supabase response missing user id")
	}

	return auth.Claims{
		UserID: out.ID,
		Email:  strings.TrimSpace(out.Email),
	}, nil
}
