package client

import (
	"context"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/loilo-inc/mockcage/types"
	"golang.org/x/xerrors"
)

type client struct {
	endpoint string
	http     *http.Client
	time     types.Time
}

// New returns a Client for the server at endpoint.
// A nil hc uses http.DefaultClient.
func New(endpoint string, hc *http.Client, tm types.Time) types.Client {
	if hc == nil {
		hc = http.DefaultClient
	}
	return &client{
		endpoint: strings.TrimSuffix(endpoint, "/"),
		http:     hc,
		time:     tm,
	}
}

func (c *client) SetBehavior(ctx context.Context, token string) (string, error) {
	if token == "" {
		return "", xerrors.Errorf("behavior token is empty")
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/"+url.PathEscape(token), nil)
	if err != nil {
		return "", err
	}
	resp, err := c.http.Do(req)
	if err != nil {
		return "", xerrors.Errorf("failed to change behavior: %w", err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", xerrors.Errorf("failed to read response: %w", err)
	}
	switch resp.StatusCode {
	case http.StatusOK:
		return string(body), nil
	case http.StatusUnprocessableEntity:
		return "", xerrors.Errorf("server rejected '%s': %s", token, strings.TrimSpace(string(body)))
	}
	return "", xerrors.Errorf("unexpected response %d from %s", resp.StatusCode, c.endpoint)
}

func (c *client) Probe(ctx context.Context) (*types.ProbeResult, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.endpoint+"/", nil)
	if err != nil {
		return nil, err
	}
	start := c.time.Now()
	resp, err := c.http.Do(req)
	if err != nil {
		return nil, xerrors.Errorf("failed to probe %s: %w", c.endpoint, err)
	}
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, xerrors.Errorf("failed to read response: %w", err)
	}
	return &types.ProbeResult{
		StatusCode: resp.StatusCode,
		Body:       string(body),
		Elapsed:    c.time.Now().Sub(start),
	}, nil
}
