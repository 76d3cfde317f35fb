package discord

import (
	"context"
	"net/http"
	"net/url"
	"strings"
)

// ExchangeCode trades an OAuth2 authorization code for a token payload via
// Discord's token endpoint. The relay's own client credentials are attached
// server-side so the frontend never sees them.
func (c *Client) ExchangeCode(ctx context.Context, code, redirectURI string) (map[string]any, error) {
	if code == "" || redirectURI == "" {
		return nil, NewBadRequest("code and redirect_uri are required")
	}
	if c.clientID == "" || c.clientSecret == "" {
		return nil, newMisconfigured("discord client credentials are not configured")
	}

	form := url.Values{}
	form.Set("client_id", c.clientID)
	form.Set("client_secret", c.clientSecret)
	form.Set("grant_type", "authorization_code")
	form.Set("code", code)
	form.Set("redirect_uri", redirectURI)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost,
		c.baseURL+"/oauth2/token", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, newUnreachable(opExchange, err)
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	var payload map[string]any
	if re := c.do(c.http, opExchange, req, &payload); re != nil {
		return nil, re
	}

	// the token endpoint sometimes embeds an error field in an otherwise
	// fine response; surface it as a rejection, not a token payload
	if _, found := payload["error"]; found {
		msg := "discord rejected the token exchange"
		if d, ok := payload["error_description"].(string); ok && d != "" {
			msg = d
		} else if d, ok := payload["error"].(string); ok && d != "" {
			msg = d
		}
		return nil, newRejected(msg, http.StatusOK, payload)
	}
	return payload, nil
}
