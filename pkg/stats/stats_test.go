package stats

import (
	"encoding/json"
	"reflect"
	"testing"
	"time"
)

func newFixedClockStore(t *testing.T, botName string) (*Store, *time.Time) {
	t.Helper()
	start := time.Date(2023, time.March, 1, 12, 0, 0, 0, time.UTC)
	now := start
	s := New(botName)
	s.now = func() time.Time { return now }
	s.startedAt = start
	return s, &now
}

func TestSnapshotDefaults(t *testing.T) {
	s, _ := newFixedClockStore(t, "Lumen")

	snap := s.Snapshot()
	if snap.BotName != "Lumen" {
		t.Errorf("bot_name = %q, want %q", snap.BotName, "Lumen")
	}
	if snap.Servers != 0 || snap.Users != 0 {
		t.Errorf("servers/users = %d/%d, want 0/0", snap.Servers, snap.Users)
	}
	if snap.Uptime != "0h 0m" {
		t.Errorf("uptime = %q, want %q", snap.Uptime, "0h 0m")
	}
	if snap.Extra == nil || len(snap.Extra) != 0 {
		t.Errorf("extra = %v, want empty non-nil map", snap.Extra)
	}
}

func TestApplyMergesFields(t *testing.T) {
	s, _ := newFixedClockStore(t, "Lumen")

	got := s.Apply(map[string]any{"servers": 42, "users": 1250})
	if got.Servers != 42 || got.Users != 1250 {
		t.Errorf("after full patch: servers/users = %d/%d, want 42/1250", got.Servers, got.Users)
	}

	// a partial patch only touches the keys it carries
	got = s.Apply(map[string]any{"users": 1300})
	if got.Servers != 42 {
		t.Errorf("servers = %d, want 42 (untouched by partial patch)", got.Servers)
	}
	if got.Users != 1300 {
		t.Errorf("users = %d, want 1300", got.Users)
	}

	got = s.Apply(map[string]any{"bot_name": "Lumen Beta"})
	if got.BotName != "Lumen Beta" {
		t.Errorf("bot_name = %q, want %q", got.BotName, "Lumen Beta")
	}
}

func TestApplyIdempotent(t *testing.T) {
	s, _ := newFixedClockStore(t, "Lumen")
	patch := map[string]any{"servers": 42, "region": "eu"}

	once := s.Apply(patch)
	twice := s.Apply(patch)
	if !reflect.DeepEqual(once, twice) {
		t.Errorf("second apply changed the record:\n once: %+v\ntwice: %+v", once, twice)
	}
}

func TestApplyWeakTyping(t *testing.T) {
	s, _ := newFixedClockStore(t, "Lumen")

	got := s.Apply(map[string]any{"servers": "17", "users": 9.0})
	if got.Servers != 17 {
		t.Errorf("servers = %d, want 17 (decoded from string)", got.Servers)
	}
	if got.Users != 9 {
		t.Errorf("users = %d, want 9 (decoded from float)", got.Users)
	}
}

func TestApplyExtraKeys(t *testing.T) {
	s, _ := newFixedClockStore(t, "Lumen")

	got := s.Apply(map[string]any{"servers": 3, "shard_count": 2, "version": "1.4.0"})
	if got.Extra["shard_count"] != 2 {
		t.Errorf("extra shard_count = %v, want 2", got.Extra["shard_count"])
	}
	if got.Extra["version"] != "1.4.0" {
		t.Errorf("extra version = %v, want 1.4.0", got.Extra["version"])
	}

	raw, err := json.Marshal(got)
	if err != nil {
		t.Fatalf("marshal snapshot: %v", err)
	}
	var m map[string]any
	if err := json.Unmarshal(raw, &m); err != nil {
		t.Fatalf("unmarshal snapshot: %v", err)
	}
	if m["shard_count"] != float64(2) {
		t.Errorf("json shard_count = %v, want 2", m["shard_count"])
	}
	if m["servers"] != float64(3) {
		t.Errorf("json servers = %v, want 3", m["servers"])
	}
	if m["bot_name"] != "Lumen" {
		t.Errorf("json bot_name = %v, want Lumen", m["bot_name"])
	}
}

func TestApplyNeverFails(t *testing.T) {
	s, _ := newFixedClockStore(t, "Lumen")
	s.Apply(map[string]any{"servers": 10})

	// nil patch: no-op
	got := s.Apply(nil)
	if got.Servers != 10 {
		t.Errorf("servers = %d after nil patch, want 10", got.Servers)
	}

	// a key that cannot decode drops out, the rest still applies
	got = s.Apply(map[string]any{
		"servers": map[string]any{"bad": true},
		"users":   77,
		"region":  "eu",
	})
	if got.Servers != 10 {
		t.Errorf("servers = %d, want 10 (undecodable value dropped)", got.Servers)
	}
	if got.Users != 77 {
		t.Errorf("users = %d, want 77 (applied despite sibling failure)", got.Users)
	}
	if got.Extra["region"] != "eu" {
		t.Errorf("extra region = %v, want eu (applied despite sibling failure)", got.Extra["region"])
	}
}

func TestUptimeRecomputedOnRead(t *testing.T) {
	s, now := newFixedClockStore(t, "Lumen")

	// a reported uptime is ignored in favor of the relay's own clock
	got := s.Apply(map[string]any{"uptime": "999h 59m"})
	if got.Uptime != "0h 0m" {
		t.Errorf("uptime = %q, want %q", got.Uptime, "0h 0m")
	}
	if _, ok := got.Extra["uptime"]; ok {
		t.Error("uptime leaked into extra map")
	}

	*now = now.Add(26*time.Hour + 35*time.Minute + 40*time.Second)
	got = s.Snapshot()
	if got.Uptime != "26h 35m" {
		t.Errorf("uptime = %q, want %q", got.Uptime, "26h 35m")
	}
	if s.Uptime() != 26*time.Hour+35*time.Minute+40*time.Second {
		t.Errorf("uptime duration = %v", s.Uptime())
	}
}

func TestFormatUptime(t *testing.T) {
	tests := []struct {
		d    time.Duration
		want string
	}{
		{0, "0h 0m"},
		{59 * time.Second, "0h 0m"},
		{61 * time.Minute, "1h 1m"},
		{25 * time.Hour, "25h 0m"},
		{-time.Minute, "0h 0m"},
	}
	for _, tt := range tests {
		if got := formatUptime(tt.d); got != tt.want {
			t.Errorf("formatUptime(%v) = %q, want %q", tt.d, got, tt.want)
		}
	}
}

func TestSnapshotIsolation(t *testing.T) {
	s, _ := newFixedClockStore(t, "Lumen")
	s.Apply(map[string]any{"region": "eu"})

	snap := s.Snapshot()
	snap.Extra["region"] = "us"

	if got := s.Snapshot().Extra["region"]; got != "eu" {
		t.Errorf("store extra mutated through snapshot: region = %v", got)
	}
}
