// Package discord is a thin client for the slice of the Discord REST API
// the relay fronts: OAuth2 token exchange, the current-user endpoints, and
// per-guild member lookups. Every call maps its outcome onto a RelayError
// kind; nothing here retries or caches.
package discord

import (
	"encoding/json"
	"io"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
)

// DefaultAPIBase is used when no API base is configured. Tests point this
// at a local stub server instead.
const DefaultAPIBase = "https://discord.com/api/v10"

const (
	generalTimeout  = 10 * time.Second
	presenceTimeout = 8 * time.Second

	// cap on how much of an upstream body gets read
	maxBodyBytes = 1 << 20
)

// operation names used in logs and metrics labels
const (
	opExchange = "oauth_token_exchange"
	opSelf     = "fetch_self"
	opGuilds   = "fetch_guilds"
	opMember   = "guild_member"
)

// Observer receives one event per outbound Discord call. The metrics
// package implements it; a nil observer is allowed.
type Observer interface {
	ObserveUpstream(operation, outcome string)
}

// Config carries the relay's Discord-facing settings. ClientID/ClientSecret
// gate the token exchange, BotToken/BotID gate presence checks; either pair
// may be absent, which fails only the operations that need it.
type Config struct {
	APIBase      string
	ClientID     string
	ClientSecret string
	BotToken     string
	BotID        string
}

// Client issues requests against the Discord REST API. Construct with
// NewClient; the zero value is not usable.
type Client struct {
	baseURL      string
	clientID     string
	clientSecret string
	botToken     string
	botID        string

	http     *http.Client
	presence *http.Client

	log *zap.SugaredLogger
	obs Observer
}

func NewClient(cfg Config, log *zap.SugaredLogger, obs Observer) *Client {
	base := strings.TrimSuffix(cfg.APIBase, "/")
	if base == "" {
		base = DefaultAPIBase
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	return &Client{
		baseURL:      base,
		clientID:     cfg.ClientID,
		clientSecret: cfg.ClientSecret,
		botToken:     cfg.BotToken,
		botID:        cfg.BotID,
		http:         &http.Client{Timeout: generalTimeout},
		presence:     &http.Client{Timeout: presenceTimeout},
		log:          log,
		obs:          obs,
	}
}

func (c *Client) observe(op, outcome string) {
	if c.obs != nil {
		c.obs.ObserveUpstream(op, outcome)
	}
}

// do executes req and classifies the outcome. A 2xx body is decoded into
// out; any other status becomes a rejection carrying Discord's own error
// description when one can be parsed out of the body.
func (c *Client) do(hc *http.Client, op string, req *http.Request, out any) *RelayError {
	resp, err := hc.Do(req)
	if err != nil {
		c.observe(op, KindUpstreamUnreachable.String())
		re := newUnreachable(op, err)
		c.log.Warnf("%s: %v", op, err)
		return re
	}
	defer resp.Body.Close()

	// Discord answered, so a read failure mid-body is a protocol problem,
	// not an unreachable upstream.
	body, err := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))
	if err != nil {
		c.observe(op, KindUpstreamProtocolError.String())
		c.log.Warnf("%s: reading discord response: %v", op, err)
		return newBodyReadError(op, resp.StatusCode, err)
	}

	if resp.StatusCode >= 200 && resp.StatusCode < 300 {
		if err := json.Unmarshal(body, out); err != nil {
			c.observe(op, KindUpstreamProtocolError.String())
			c.log.Warnf("%s: discord sent %d with unparseable body", op, resp.StatusCode)
			return newProtocolError(op, resp.StatusCode, body)
		}
		c.observe(op, "ok")
		return nil
	}

	msg, raw := rejectionDetails(body)
	c.observe(op, KindUpstreamRejected.String())
	c.log.Infof("%s: discord rejected with status %d", op, resp.StatusCode)
	return newRejected(msg, resp.StatusCode, raw)
}

// rejectionDetails pulls a human-readable description out of an upstream
// error body. Discord's OAuth endpoints use error/error_description, its
// REST API uses message; an unparseable body falls back to a truncated
// snippet of the raw text.
func rejectionDetails(body []byte) (string, any) {
	var raw any
	if err := json.Unmarshal(body, &raw); err != nil {
		return "discord rejected the request", snippet(body)
	}
	if m, ok := raw.(map[string]any); ok {
		if d, ok := m["error_description"].(string); ok && d != "" {
			return d, raw
		}
		if d, ok := m["error"].(string); ok && d != "" {
			return d, raw
		}
		if d, ok := m["message"].(string); ok && d != "" {
			return d, raw
		}
	}
	return "discord rejected the request", raw
}

func snippet(b []byte) string {
	const max = 256
	if len(b) > max {
		b = b[:max]
	}
	return string(b)
}
