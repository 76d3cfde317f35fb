// Package topgg pushes the bot's server count to its top.gg listing
// whenever a stats update changes it.
package topgg

import (
	"sync/atomic"

	"github.com/top-gg/go-dbl"
	"go.uber.org/zap"
)

// Publisher forwards server counts to top.gg. A nil *Publisher is valid and
// publishes nothing, covering deployments without a listing token.
type Publisher struct {
	botID string
	log   *zap.SugaredLogger
	post  func(count int) error

	last atomic.Int64
}

// New returns a nil Publisher when token or botID is unset.
func New(token, botID string, log *zap.SugaredLogger) (*Publisher, error) {
	if token == "" || botID == "" {
		return nil, nil
	}
	client, err := dbl.NewClient(token)
	if err != nil {
		return nil, err
	}
	if log == nil {
		log = zap.NewNop().Sugar()
	}
	p := &Publisher{
		botID: botID,
		log:   log,
		post: func(count int) error {
			return client.PostBotStats(botID, &dbl.BotStatsPayload{
				Shards: []int{count},
			})
		},
	}
	p.last.Store(-1)
	return p, nil
}

// PublishServerCount posts the count when it differs from the last posted
// value. Safe to call from a goroutine per stats update; a failed post is
// forgotten so the next update retries it.
func (p *Publisher) PublishServerCount(count int64) {
	if p == nil {
		return
	}
	if p.last.Swap(count) == count {
		return
	}
	if err := p.post(int(count)); err != nil {
		// forget the failed count so the next update retries it, unless a
		// newer publish already moved last forward
		p.last.CompareAndSwap(count, -1)
		p.log.Warnf("top.gg publish: %v", err)
		return
	}
	p.log.Infof("published %d servers to top.gg", count)
}
