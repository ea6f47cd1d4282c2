package dedup

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostingCacheRoundTrip(t *testing.T) {
	dir := t.TempDir()
	cache := NewPostingCache(dir)

	url := "https://wellfound.com/jobs/123456-backend-engineer"
	assert.False(t, cache.IsSeen(url))

	cache.Add([]string{url})
	assert.True(t, cache.IsSeen(url))

	// a fresh instance over the same directory sees the persisted entry
	reloaded := NewPostingCache(dir)
	assert.True(t, reloaded.IsSeen(url))
	assert.False(t, reloaded.IsSeen("https://wellfound.com/jobs/999999-other"))
}

func TestPostingCacheExpiry(t *testing.T) {
	dir := t.TempDir()
	now := time.Now().UnixMilli()

	entries := []seenEntry{
		{URL: "https://wellfound.com/jobs/1-fresh", Timestamp: now - 1000},
		{URL: "https://wellfound.com/jobs/2-stale", Timestamp: now - thirtyDaysMs - 1000},
	}
	data, err := json.Marshal(entries)
	require.NoError(t, err)
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_postings.json"), data, 0644))

	cache := NewPostingCache(dir)
	assert.True(t, cache.IsSeen("https://wellfound.com/jobs/1-fresh"))
	assert.False(t, cache.IsSeen("https://wellfound.com/jobs/2-stale"))
}

func TestPostingCacheCorruptFile(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "seen_postings.json"), []byte("{not json"), 0644))

	// a corrupt cache file degrades to an empty cache instead of failing
	cache := NewPostingCache(dir)
	assert.False(t, cache.IsSeen("https://wellfound.com/jobs/1"))

	cache.Add([]string{"https://wellfound.com/jobs/1"})
	assert.True(t, cache.IsSeen("https://wellfound.com/jobs/1"))
}
