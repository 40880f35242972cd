package eventkey

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"log/slog"
	"strings"
	"sync"
	"time"

	"outreach_syncer/internal/domain"
)

// Input is the tuple an event key is derived from. All string fields are
// normalized (lower-cased, trimmed) before hashing, so superficially
// different spellings of the same event converge on one key.
type Input struct {
	Platform   string
	CampaignID string
	EventType  string
	Identity   string
	ActivityID string
	Namespace  string
	Timestamp  time.Time
}

// Result carries the generated key. Suspect marks keys built without an
// upstream activity id; such keys are derived from a content hash and may
// duplicate if the upstream mutates payloads between retries.
type Result struct {
	Key     string
	Suspect bool
}

// Stats is a snapshot of generator counters.
type Stats struct {
	TotalGenerated     int64
	CollisionsDetected int64
	FallbackUsed       int64
	InvalidInputs      int64
	CacheSize          int
	GenerationRate     float64
	CollisionRate      float64
}

type cacheEntry struct {
	fingerprint string
	firstSeenAt time.Time
	hitCount    int64
}

// Generator produces deterministic, collision-aware event keys. The
// fingerprint cache is process-local and shared across concurrent jobs.
type Generator struct {
	mu      sync.Mutex
	cache   map[string]*cacheEntry
	seq     uint64
	started time.Time
	logger  *slog.Logger

	totalGenerated     int64
	collisionsDetected int64
	fallbackUsed       int64
	invalidInputs      int64
}

// New creates a generator with an empty dedup cache.
func New(logger *slog.Logger) *Generator {
	return &Generator{
		cache:   make(map[string]*cacheEntry),
		started: time.Now(),
		logger:  logger.With("component", "eventkey"),
	}
}

// Generate derives the key for in. Identical inputs always yield identical
// keys. When both ActivityID and Identity are missing the key is still
// produced from the full fallback, but domain.ErrInvalidKeyInput is returned
// alongside it so callers can count the anomaly.
func (g *Generator) Generate(in Input) (Result, error) {
	in = normalize(in)

	var invalid bool
	if in.ActivityID == "" && in.Identity == "" {
		invalid = true
	}

	var key string
	var suspect bool
	fingerprint := g.fingerprint(in)

	if in.ActivityID != "" {
		key = fmt.Sprintf("%s_%s_%s_%s",
			in.Platform, in.CampaignID, in.EventType, shortHash(in.ActivityID+in.Identity))
	} else {
		suspect = true
		key = fmt.Sprintf("%s_%s_%s_%s",
			in.Platform, in.CampaignID, in.EventType, shortHash(fingerprint))
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	g.totalGenerated++
	if suspect {
		g.fallbackUsed++
	}
	if invalid {
		g.invalidInputs++
		// A pure content hash of an identity-less payload is all that is
		// left to key on; the sequence keeps such keys unique within the
		// process at the cost of cross-process determinism.
		g.seq++
		key = fmt.Sprintf("%s_%d", key, g.seq)
	}

	if entry, ok := g.cache[key]; ok {
		if entry.fingerprint != fingerprint {
			// Idempotency wins over strict collision avoidance: keep the
			// original key, count and log the anomaly.
			g.collisionsDetected++
			g.logger.Warn("event key collision",
				"key", key,
				"platform", in.Platform,
				"campaign_id", in.CampaignID,
				"event_type", in.EventType,
			)
		} else {
			entry.hitCount++
		}
	} else {
		g.cache[key] = &cacheEntry{
			fingerprint: fingerprint,
			firstSeenAt: time.Now(),
			hitCount:    1,
		}
	}

	if invalid {
		return Result{Key: key, Suspect: true}, domain.ErrInvalidKeyInput
	}
	return Result{Key: key, Suspect: suspect}, nil
}

// Stats returns a consistent snapshot of the counters.
func (g *Generator) Stats() Stats {
	g.mu.Lock()
	defer g.mu.Unlock()

	s := Stats{
		TotalGenerated:     g.totalGenerated,
		CollisionsDetected: g.collisionsDetected,
		FallbackUsed:       g.fallbackUsed,
		InvalidInputs:      g.invalidInputs,
		CacheSize:          len(g.cache),
	}
	if elapsed := time.Since(g.started).Seconds(); elapsed > 0 {
		s.GenerationRate = float64(g.totalGenerated) / elapsed
	}
	if g.totalGenerated > 0 {
		s.CollisionRate = float64(g.collisionsDetected) / float64(g.totalGenerated)
	}
	return s
}

// ClearCache drops the fingerprint cache. Future lookups may produce false
// negatives on dedup until the cache warms again.
func (g *Generator) ClearCache() {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.cache = make(map[string]*cacheEntry)
}

func normalize(in Input) Input {
	in.Platform = normalizeField(in.Platform)
	in.CampaignID = normalizeField(in.CampaignID)
	in.EventType = normalizeField(in.EventType)
	in.Identity = normalizeField(in.Identity)
	in.ActivityID = normalizeField(in.ActivityID)
	in.Namespace = normalizeField(in.Namespace)
	return in
}

func normalizeField(s string) string {
	return strings.ToLower(strings.TrimSpace(s))
}

// fingerprint is a stable serialization of the full input tuple, used to
// detect two different events mapping to the same key.
func (g *Generator) fingerprint(in Input) string {
	var ts string
	if !in.Timestamp.IsZero() {
		ts = in.Timestamp.UTC().Format(time.RFC3339Nano)
	}
	payload, _ := json.Marshal(struct {
		Platform   string `json:"platform"`
		CampaignID string `json:"campaign_id"`
		EventType  string `json:"event_type"`
		Identity   string `json:"identity"`
		ActivityID string `json:"activity_id"`
		Namespace  string `json:"namespace"`
		Timestamp  string `json:"timestamp"`
	}{in.Platform, in.CampaignID, in.EventType, in.Identity, in.ActivityID, in.Namespace, ts})

	sum := sha256.Sum256(payload)
	return hex.EncodeToString(sum[:])
}

func shortHash(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])[:8]
}
