package resolver

import (
	"context"
	"errors"
	"time"

	"curtail/internal/generator"
	"curtail/internal/model"
	"curtail/internal/registry"

	"github.com/redis/go-redis/v9"
	"github.com/rs/zerolog/log"
)

// ResolveRequest carries everything the hot path needs: the code to
// resolve plus the client signature handed to the recorder on success.
type ResolveRequest struct {
	Code      string
	UserAgent string
	Referer   string
	ClientIP  string
}

// Resolver is the redirect hot path. It answers from the cache when it
// can, falls back to the registry within a bounded timeout, and hands the
// click to the recorder without ever waiting on it.
type Resolver struct {
	registry    registry.RegistryInterface
	cache       Cache
	dispatcher  ClickDispatcher
	cacheTTL    time.Duration
	negativeTTL time.Duration
	timeout     time.Duration
}

// NewResolver creates a new Resolver
func NewResolver(
	reg registry.RegistryInterface,
	cache Cache,
	dispatcher ClickDispatcher,
	cacheTTL, negativeTTL, timeout time.Duration,
) *Resolver {
	if timeout <= 0 {
		timeout = 500 * time.Millisecond
	}
	return &Resolver{
		registry:    reg,
		cache:       cache,
		dispatcher:  dispatcher,
		cacheTTL:    cacheTTL,
		negativeTTL: negativeTTL,
		timeout:     timeout,
	}
}

// Resolve returns the destination URL for a code. Only ErrNotFound and
// ErrUnavailable ever reach the caller; every internal failure collapses
// to one of the two so the redirect contract stays simple. The click is
// dispatched fire-and-forget once the destination is known; recording
// failures never change the redirect outcome.
func (r *Resolver) Resolve(ctx context.Context, req ResolveRequest) (string, error) {
	// Junk codes never reach the store
	if !generator.IsValidCode(req.Code) {
		return "", registry.ErrNotFound
	}

	ctx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	// A live negative entry damps repeated-miss storms
	if miss, err := r.cache.IsMiss(ctx, req.Code); err == nil && miss {
		return "", registry.ErrNotFound
	}

	destination, err := r.cache.GetDestination(ctx, req.Code)
	if err == nil && destination != "" {
		r.dispatch(req)
		return destination, nil
	}
	if err != nil && !errors.Is(err, redis.Nil) {
		log.Warn().Err(err).Str("code", req.Code).Msg("Destination cache read failed")
	}

	link, err := r.registry.Lookup(ctx, req.Code)
	if err != nil {
		if errors.Is(err, registry.ErrNotFound) {
			// Short negative TTL: a link created moments later is not
			// masked for longer than that
			if err := r.cache.MarkMiss(ctx, req.Code, r.negativeTTL); err != nil {
				log.Warn().Err(err).Str("code", req.Code).Msg("Failed to mark negative entry")
			}
			return "", registry.ErrNotFound
		}
		if ctx.Err() != nil {
			return "", registry.ErrUnavailable
		}
		return "", registry.ErrUnavailable
	}

	if err := r.cache.SaveDestination(ctx, link.Code, link.DestinationURL, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("code", link.Code).Msg("Failed to populate destination cache")
	}

	r.dispatch(req)
	return link.DestinationURL, nil
}

// dispatch hands the click to the recorder. Never blocks: a full queue
// drops the event, because losing an analytics event is acceptable and
// delaying a redirect is not.
func (r *Resolver) dispatch(req ResolveRequest) {
	if r.dispatcher == nil {
		return
	}
	click := model.Click{
		LinkCode:  req.Code,
		UserAgent: req.UserAgent,
		Referer:   req.Referer,
		ClientIP:  req.ClientIP,
		Timestamp: time.Now(),
	}
	if !r.dispatcher.Enqueue(click) {
		log.Warn().Str("code", req.Code).Msg("Recorder queue full, click dropped")
	}
}
