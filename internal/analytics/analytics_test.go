package analytics

import (
	"context"
	"testing"
	"time"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"curtail/internal/config"
	"curtail/internal/model"
	"curtail/internal/repository"
)

// fakeEventLog serves a fixed slice of click events
type fakeEventLog struct {
	events []model.ClickEvent
}

func (l *fakeEventLog) GetClickEvents(_ context.Context, code string, _ int) ([]model.ClickEvent, error) {
	var out []model.ClickEvent
	for _, ev := range l.events {
		if ev.LinkCode == code {
			out = append(out, ev)
		}
	}
	return out, nil
}

func newTestCounters(t *testing.T) (*repository.RedisRepository, *miniredis.Miniredis) {
	t.Helper()
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	repo := repository.NewRedisRepository(&config.RedisConfig{Addr: mr.Addr()})
	t.Cleanup(func() { _ = repo.Close() })
	return repo, mr
}

func sampleEvents(code string) []model.ClickEvent {
	day1 := time.Date(2026, 3, 1, 10, 0, 0, 0, time.UTC)
	day2 := time.Date(2026, 3, 2, 10, 0, 0, 0, time.UTC)
	return []model.ClickEvent{
		{LinkCode: code, Timestamp: day1, DeviceType: "Desktop", Browser: "Chrome", OS: "Windows", Country: "Germany"},
		{LinkCode: code, Timestamp: day1, DeviceType: "Mobile", Browser: "Safari", OS: "iOS", Country: "France"},
		{LinkCode: code, Timestamp: day2, DeviceType: "Desktop", Browser: "Firefox", OS: "Linux", Country: "Germany"},
		{LinkCode: code, Timestamp: day2, DeviceType: "Tablet", Browser: "Safari", OS: "iOS"},
	}
}

func TestAggregator_Rollup_NoClicks(t *testing.T) {
	counters, _ := newTestCounters(t)
	agg := NewAggregator(counters, &fakeEventLog{})

	rollup, err := agg.Rollup(context.Background(), "fresh1")
	require.NoError(t, err)
	assert.Equal(t, "fresh1", rollup.Code)
	assert.Zero(t, rollup.TotalClicks)
	assert.Empty(t, rollup.ByDevice)
	assert.Empty(t, rollup.ByDay)
}

func TestAggregator_Rollup_Incremental(t *testing.T) {
	counters, _ := newTestCounters(t)
	agg := NewAggregator(counters, &fakeEventLog{})

	events := sampleEvents("aB3xY9")
	for i := range events {
		require.NoError(t, counters.IncrRollup(context.Background(), &events[i]))
	}

	rollup, err := agg.Rollup(context.Background(), "aB3xY9")
	require.NoError(t, err)

	assert.Equal(t, int64(4), rollup.TotalClicks)
	assert.Equal(t, map[string]int64{"Desktop": 2, "Mobile": 1, "Tablet": 1}, rollup.ByDevice)
	assert.Equal(t, map[string]int64{"Chrome": 1, "Safari": 2, "Firefox": 1}, rollup.ByBrowser)
	assert.Equal(t, map[string]int64{"Windows": 1, "iOS": 2, "Linux": 1}, rollup.ByOS)
	assert.Equal(t, map[string]int64{"Germany": 2, "France": 1}, rollup.ByCountry)
	assert.Equal(t, map[string]int64{"2026-03-01": 2, "2026-03-02": 2}, rollup.ByDay)
}

func TestAggregator_Rebuild_MatchesIncremental(t *testing.T) {
	counters, _ := newTestCounters(t)
	events := sampleEvents("aB3xY9")
	agg := NewAggregator(counters, &fakeEventLog{events: events})

	for i := range events {
		require.NoError(t, counters.IncrRollup(context.Background(), &events[i]))
	}
	incremental, err := agg.Rollup(context.Background(), "aB3xY9")
	require.NoError(t, err)

	rebuilt, err := agg.Rebuild(context.Background(), "aB3xY9")
	require.NoError(t, err)

	assert.Equal(t, incremental, rebuilt, "rebuild from the log must reproduce incremental counters")
}

func TestAggregator_Rebuild_RepairsDrift(t *testing.T) {
	counters, mr := newTestCounters(t)
	events := sampleEvents("aB3xY9")
	agg := NewAggregator(counters, &fakeEventLog{events: events})

	for i := range events {
		require.NoError(t, counters.IncrRollup(context.Background(), &events[i]))
	}

	// Corrupt the derived state
	require.NoError(t, mr.Set(repository.RollupKeyPrefix+"aB3xY9:total", "9999"))

	rebuilt, err := agg.Rebuild(context.Background(), "aB3xY9")
	require.NoError(t, err)
	assert.Equal(t, int64(4), rebuilt.TotalClicks)
}

func TestAggregator_Rebuild_EmptyLog(t *testing.T) {
	counters, _ := newTestCounters(t)
	agg := NewAggregator(counters, &fakeEventLog{})

	ev := model.ClickEvent{LinkCode: "aB3xY9", Timestamp: time.Now(), DeviceType: "Desktop", Browser: "Chrome", OS: "Linux"}
	require.NoError(t, counters.IncrRollup(context.Background(), &ev))

	// No events in the log, so the rebuild zeroes everything
	rebuilt, err := agg.Rebuild(context.Background(), "aB3xY9")
	require.NoError(t, err)
	assert.Zero(t, rebuilt.TotalClicks)
	assert.Empty(t, rebuilt.ByDevice)
}

func TestAggregator_Rebuild_DoesNotTouchOtherCodes(t *testing.T) {
	counters, _ := newTestCounters(t)
	agg := NewAggregator(counters, &fakeEventLog{})

	other := model.ClickEvent{LinkCode: "other1", Timestamp: time.Now(), DeviceType: "Desktop", Browser: "Chrome", OS: "Linux"}
	require.NoError(t, counters.IncrRollup(context.Background(), &other))

	_, err := agg.Rebuild(context.Background(), "aB3xY9")
	require.NoError(t, err)

	rollup, err := agg.Rollup(context.Background(), "other1")
	require.NoError(t, err)
	assert.Equal(t, int64(1), rollup.TotalClicks)
}
