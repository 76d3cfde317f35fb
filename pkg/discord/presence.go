package discord

import (
	"context"
	"fmt"
	"io"
	"net/http"

	"golang.org/x/sync/errgroup"
)

// presenceConcurrency bounds parallel member lookups per request.
const presenceConcurrency = 8

// GuildPresenceResult sorts every requested guild ID into exactly one of
// three buckets. Collections are always non-nil so the JSON encoding never
// contains null.
type GuildPresenceResult struct {
	Present []string          `json:"present"`
	Missing []string          `json:"missing"`
	Errors  map[string]string `json:"errors"`
}

type memberStatus int

const (
	memberPresent memberStatus = iota
	memberMissing
	memberError
)

// CheckGuildPresence looks up the bot's membership in each guild using the
// relay's bot credentials. Lookups run in parallel and are fully isolated:
// one guild's failure is recorded in Errors and never aborts the rest.
// Results keep the input order within each bucket.
func (c *Client) CheckGuildPresence(ctx context.Context, guildIDs []string) (*GuildPresenceResult, error) {
	if c.botToken == "" || c.botID == "" {
		return nil, newMisconfigured("bot credentials are not configured")
	}

	res := &GuildPresenceResult{
		Present: []string{},
		Missing: []string{},
		Errors:  map[string]string{},
	}
	if len(guildIDs) == 0 {
		return res, nil
	}

	type verdict struct {
		status memberStatus
		desc   string
	}
	verdicts := make([]verdict, len(guildIDs))

	g := new(errgroup.Group)
	g.SetLimit(presenceConcurrency)
	for i, id := range guildIDs {
		i, id := i, id
		g.Go(func() error {
			status, desc := c.lookupMember(ctx, id)
			verdicts[i] = verdict{status: status, desc: desc}
			return nil
		})
	}
	_ = g.Wait()

	for i, id := range guildIDs {
		switch verdicts[i].status {
		case memberPresent:
			res.Present = append(res.Present, id)
		case memberMissing:
			res.Missing = append(res.Missing, id)
		default:
			res.Errors[id] = verdicts[i].desc
		}
	}
	return res, nil
}

// lookupMember classifies a single guild-member lookup. It never returns an
// error; anything that is not a clean 200 or 404 becomes a description for
// the Errors bucket.
func (c *Client) lookupMember(ctx context.Context, guildID string) (memberStatus, string) {
	url := fmt.Sprintf("%s/guilds/%s/members/%s", c.baseURL, guildID, c.botID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		c.observe(opMember, KindUpstreamUnreachable.String())
		return memberError, err.Error()
	}
	req.Header.Set("Authorization", "Bot "+c.botToken)

	resp, err := c.presence.Do(req)
	if err != nil {
		c.observe(opMember, KindUpstreamUnreachable.String())
		c.log.Warnf("%s: guild %s: %v", opMember, guildID, err)
		return memberError, err.Error()
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(io.LimitReader(resp.Body, maxBodyBytes))

	switch resp.StatusCode {
	case http.StatusOK:
		c.observe(opMember, "ok")
		return memberPresent, ""
	case http.StatusNotFound:
		c.observe(opMember, "missing")
		return memberMissing, ""
	default:
		c.observe(opMember, KindUpstreamRejected.String())
		return memberError, fmt.Sprintf("status %d: %s", resp.StatusCode, snippet(body))
	}
}
