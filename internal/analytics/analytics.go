// Package analytics serves per-link rollups. Counters are derived state
// maintained incrementally as the recorder persists events; the click
// event log stays authoritative and any rollup can be rebuilt from it.
// Under incremental maintenance a click is visible in rollups within one
// recorder hop, bounded by the recorder's write timeout (well under 5s).
package analytics

import (
	"context"
	"fmt"

	"curtail/internal/model"

	"github.com/rs/zerolog/log"
)

// Aggregator answers rollup queries and rebuilds counters from the log
type Aggregator struct {
	counters RollupSource
	eventLog EventLog
}

// NewAggregator creates a new Aggregator
func NewAggregator(counters RollupSource, eventLog EventLog) *Aggregator {
	return &Aggregator{
		counters: counters,
		eventLog: eventLog,
	}
}

// Rollup returns the aggregated counts for a code. A link with no
// recorded clicks yields an all-zero rollup, not an error.
func (a *Aggregator) Rollup(ctx context.Context, code string) (*model.Rollup, error) {
	rollup, err := a.counters.GetRollup(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("failed to read rollup counters: %w", err)
	}
	return rollup, nil
}

// Rebuild discards the counters for a code and recomputes them from the
// click event log. The log alone fully determines the rollup, so derived
// state can be thrown away at any time.
func (a *Aggregator) Rebuild(ctx context.Context, code string) (*model.Rollup, error) {
	if err := a.counters.ResetRollup(ctx, code); err != nil {
		return nil, fmt.Errorf("failed to reset rollup counters: %w", err)
	}

	events, err := a.eventLog.GetClickEvents(ctx, code, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to read click event log: %w", err)
	}

	for i := range events {
		if err := a.counters.IncrRollup(ctx, &events[i]); err != nil {
			return nil, fmt.Errorf("failed to replay click event: %w", err)
		}
	}

	log.Info().Str("code", code).Int("events", len(events)).Msg("Rollup rebuilt from click event log")

	return a.counters.GetRollup(ctx, code)
}
