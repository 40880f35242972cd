package eventkey

import (
	"fmt"
	"log/slog"
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"outreach_syncer/internal/domain"
)

func testLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: slog.LevelError}))
}

func TestGenerate_Deterministic(t *testing.T) {
	in := Input{
		Platform:   "lemlist",
		CampaignID: "cam_123",
		EventType:  "linkedinSent",
		Identity:   "jane@example.com",
		ActivityID: "act_987",
	}

	g1 := New(testLogger())
	r1, err := g1.Generate(in)
	require.NoError(t, err)

	r2, err := g1.Generate(in)
	require.NoError(t, err)
	assert.Equal(t, r1.Key, r2.Key)
	assert.False(t, r1.Suspect)

	// Fresh process: a new generator yields the same key.
	g2 := New(testLogger())
	r3, err := g2.Generate(in)
	require.NoError(t, err)
	assert.Equal(t, r1.Key, r3.Key)
}

func TestGenerate_KeyFormat(t *testing.T) {
	g := New(testLogger())

	r, err := g.Generate(Input{
		Platform:   "Lemlist",
		CampaignID: "CAM_1",
		EventType:  "linkedinSent",
		Identity:   " Jane@Example.com ",
		ActivityID: "act_1",
	})
	require.NoError(t, err)
	assert.Regexp(t, `^lemlist_cam_1_linkedinsent_[0-9a-f]{8}$`, r.Key)
}

func TestGenerate_FallbackWithoutActivityID(t *testing.T) {
	g := New(testLogger())

	in := Input{
		Platform:   "expandi",
		CampaignID: "c1",
		EventType:  "connectionAccepted",
		Identity:   "jane@example.com",
		Timestamp:  time.Date(2024, 1, 1, 10, 0, 0, 0, time.UTC),
	}

	r1, err := g.Generate(in)
	require.NoError(t, err)
	assert.True(t, r1.Suspect)

	// Fallback keys are still deterministic for identical content.
	r2, err := g.Generate(in)
	require.NoError(t, err)
	assert.Equal(t, r1.Key, r2.Key)

	assert.Equal(t, int64(2), g.Stats().FallbackUsed)
}

func TestGenerate_InvalidInput(t *testing.T) {
	g := New(testLogger())

	r, err := g.Generate(Input{Platform: "lemlist", CampaignID: "c1", EventType: "open"})
	assert.ErrorIs(t, err, domain.ErrInvalidKeyInput)
	assert.NotEmpty(t, r.Key)
	assert.True(t, r.Suspect)
	assert.Equal(t, int64(1), g.Stats().InvalidInputs)
}

func TestGenerate_CollisionDetection(t *testing.T) {
	g := New(testLogger())

	a := Input{Platform: "lemlist", CampaignID: "c1", EventType: "open", Identity: "a@x.com", ActivityID: "act_1"}
	b := a
	b.Timestamp = time.Now() // same key inputs, different fingerprint

	ra, err := g.Generate(a)
	require.NoError(t, err)

	rb, err := g.Generate(b)
	require.NoError(t, err)

	// Idempotency wins: the original key is returned unchanged.
	assert.Equal(t, ra.Key, rb.Key)
	assert.Equal(t, int64(1), g.Stats().CollisionsDetected)
}

func TestGenerate_LowCollisionRate(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping collision-rate sweep in short mode")
	}

	g := New(testLogger())
	const n = 100_000

	for i := 0; i < n; i++ {
		_, err := g.Generate(Input{
			Platform:   "lemlist",
			CampaignID: fmt.Sprintf("cam_%d", i%50),
			EventType:  "emailsSent",
			Identity:   fmt.Sprintf("user%d@example.com", i),
			ActivityID: fmt.Sprintf("act_%d", i),
		})
		require.NoError(t, err)
	}

	stats := g.Stats()
	assert.Equal(t, int64(n), stats.TotalGenerated)
	assert.Less(t, stats.CollisionRate, 0.01)
}

func TestClearCache(t *testing.T) {
	g := New(testLogger())

	_, err := g.Generate(Input{Platform: "lemlist", CampaignID: "c1", EventType: "open", Identity: "a@x.com", ActivityID: "act_1"})
	require.NoError(t, err)
	require.Equal(t, 1, g.Stats().CacheSize)

	g.ClearCache()
	assert.Equal(t, 0, g.Stats().CacheSize)
}
