package tracker

import (
	"bytes"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

func newTestLogger(buf *bytes.Buffer) *slog.Logger {
	return slog.New(slog.NewTextHandler(buf, &slog.HandlerOptions{Level: slog.LevelDebug}))
}

func TestBannedGroups_CaseFolded(t *testing.T) {
	b := NewBannedGroups(nil)
	b.Set([]string{"FGT", " YIFY ", ""})

	assert.True(t, b.Loaded())
	assert.Equal(t, 2, b.Len())
	assert.True(t, b.IsBanned("fgt"))
	assert.True(t, b.IsBanned("Yify"))
	assert.False(t, b.IsBanned("NTb"))
}

func TestBannedGroups_FailsOpen(t *testing.T) {
	var buf bytes.Buffer
	b := NewBannedGroups(newTestLogger(&buf))

	assert.False(t, b.Loaded())
	assert.False(t, b.IsBanned("FGT"), "empty set never bans")
	assert.Contains(t, buf.String(), "banned groups missing")

	buf.Reset()
	b.Set([]string{"FGT"})
	assert.False(t, b.IsBanned(""))
	assert.Contains(t, buf.String(), "release group missing")
}

func TestBannedGroups_LoadedEvenWhenEmpty(t *testing.T) {
	b := NewBannedGroups(nil)
	b.Set(nil)
	assert.True(t, b.Loaded())
	assert.Zero(t, b.Len())
}

func TestBannedGroups_ConcurrentReads(t *testing.T) {
	b := NewBannedGroups(nil)
	b.Set([]string{"FGT"})

	var wg sync.WaitGroup
	for i := 0; i < 16; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			assert.True(t, b.Contains("fgt"))
		}()
	}
	wg.Wait()
}

func TestRedact(t *testing.T) {
	assert.Equal(t, "GET /api/torrents/REDACTED", redact("GET /api/torrents/abc", "abc"))
	assert.Equal(t, "unchanged", redact("unchanged", ""))
}
