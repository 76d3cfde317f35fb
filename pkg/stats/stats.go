// Package stats holds the bot statistics reported by the bot process and
// served to the frontend. The record lives in memory only; restarting the
// relay resets it.
package stats

import (
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/go-viper/mapstructure/v2"
	"golang.org/x/exp/maps"
)

// BotStats is the stats record. The four fixed fields are typed; anything
// else the bot reports rides along in Extra and is emitted at the top level
// of the JSON object (fixed fields win on a key collision).
type BotStats struct {
	BotName string         `json:"bot_name"`
	Servers int64          `json:"servers"`
	Users   int64          `json:"users"`
	Uptime  string         `json:"uptime"`
	Extra   map[string]any `json:"-"`
}

func (b BotStats) MarshalJSON() ([]byte, error) {
	m := make(map[string]any, 4+len(b.Extra))
	for k, v := range b.Extra {
		m[k] = v
	}
	m["bot_name"] = b.BotName
	m["servers"] = b.Servers
	m["users"] = b.Users
	m["uptime"] = b.Uptime
	return json.Marshal(m)
}

// patchOverlay receives a decoded update. Pointer fields distinguish "not in
// the patch" from zero values; unmatched keys are collected separately.
type patchOverlay struct {
	BotName *string `json:"bot_name"`
	Servers *int64  `json:"servers"`
	Users   *int64  `json:"users"`
	Uptime  *string `json:"uptime"`
}

// Store owns the mutable stats record. Construct one per process (or per
// test); all access goes through the internal lock.
type Store struct {
	mu  sync.RWMutex
	rec BotStats

	startedAt time.Time
	now       func() time.Time
}

func New(botName string) *Store {
	s := &Store{
		rec: BotStats{
			BotName: botName,
			Extra:   map[string]any{},
		},
		now: time.Now,
	}
	s.startedAt = s.now()
	return s
}

// Snapshot returns a copy of the current record with the uptime recomputed
// from the store's start time. Mutating the returned Extra map does not
// affect the store.
func (s *Store) Snapshot() BotStats {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshotLocked()
}

// Apply merges the patch into the record key by key: the fixed fields decode
// weakly typed (a numeric string still lands in servers), every other key is
// added to or overwritten in Extra. A nil or undecodable patch is an empty
// patch; Apply never fails. Returns the resulting record.
func (s *Store) Apply(patch map[string]any) BotStats {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(patch) > 0 {
		var overlay patchOverlay
		dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
			Result:           &overlay,
			TagName:          "json",
			WeaklyTypedInput: true,
		})
		if err == nil {
			// A field that fails to decode leaves its pointer nil and drops
			// out; the rest of the patch still applies.
			_ = dec.Decode(patch)
			if overlay.BotName != nil {
				s.rec.BotName = *overlay.BotName
			}
			if overlay.Servers != nil {
				s.rec.Servers = *overlay.Servers
			}
			if overlay.Users != nil {
				s.rec.Users = *overlay.Users
			}
			// overlay.Uptime is accepted but shadowed: uptime is recomputed
			// on every read.
		}
		// Extras come straight off the patch so a decode failure on a fixed
		// field never swallows the rest of the keys.
		for key, val := range patch {
			switch key {
			case "bot_name", "servers", "users", "uptime":
			default:
				s.rec.Extra[key] = val
			}
		}
	}

	return s.snapshotLocked()
}

// Uptime reports how long the store (and therefore the relay process) has
// been alive.
func (s *Store) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.now().Sub(s.startedAt)
}

func (s *Store) snapshotLocked() BotStats {
	snap := s.rec
	snap.Extra = maps.Clone(s.rec.Extra)
	snap.Uptime = formatUptime(s.now().Sub(s.startedAt))
	return snap
}

// formatUptime renders elapsed time as "{hours}h {minutes}m". Hours keep
// counting past 24; seconds are dropped.
func formatUptime(d time.Duration) string {
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%dh %dm", int(d.Hours()), int(d.Minutes())%60)
}
