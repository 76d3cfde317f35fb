package discord

import (
	"context"
	"net/http"

	"github.com/bwmarrin/discordgo"
)

// FetchSelf returns the profile of the user the bearer token belongs to.
func (c *Client) FetchSelf(ctx context.Context, bearerToken string) (*discordgo.User, error) {
	if bearerToken == "" {
		return nil, NewUnauthorized("missing bearer token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/@me", nil)
	if err != nil {
		return nil, newUnreachable(opSelf, err)
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	var user discordgo.User
	if re := c.do(c.http, opSelf, req, &user); re != nil {
		return nil, re
	}
	return &user, nil
}

// FetchGuilds returns the guilds the bearer token's user belongs to.
func (c *Client) FetchGuilds(ctx context.Context, bearerToken string) ([]*discordgo.UserGuild, error) {
	if bearerToken == "" {
		return nil, NewUnauthorized("missing bearer token")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/users/@me/guilds", nil)
	if err != nil {
		return nil, newUnreachable(opGuilds, err)
	}
	req.Header.Set("Authorization", "Bearer "+bearerToken)

	var guilds []*discordgo.UserGuild
	if re := c.do(c.http, opGuilds, req, &guilds); re != nil {
		return nil, re
	}
	return guilds, nil
}
