package registry

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"time"

	"curtail/internal/generator"
	"curtail/internal/model"
	"curtail/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"gorm.io/gorm"
)

var (
	// ErrInvalidDestination is returned when the destination does not
	// parse as an absolute http(s) URL
	ErrInvalidDestination = errors.New("invalid destination URL")
	// ErrInvalidAlias is returned when a custom alias uses characters
	// outside the code alphabet or an unacceptable length
	ErrInvalidAlias = errors.New("invalid custom alias")
	// ErrAliasTaken is returned when the requested custom alias exists
	ErrAliasTaken = errors.New("alias already taken")
	// ErrGenerationExhausted is returned when every generation attempt
	// collided with an existing code
	ErrGenerationExhausted = errors.New("short code generation exhausted")
	// ErrNotFound is returned when no link exists for a code
	ErrNotFound = errors.New("link not found")
	// ErrForbidden is returned when the requester does not own the link
	ErrForbidden = errors.New("requester is not the link owner")
	// ErrUnavailable is returned when the store cannot answer in time
	ErrUnavailable = errors.New("link store unavailable")
)

// Registry owns the short-code namespace. All mutation of the code to
// destination mapping goes through Create and Delete.
type Registry struct {
	gen         *generator.Base62Generator
	store       LinkStore
	cache       DestinationCache
	bloom       BloomFilterInterface
	maxAttempts int
	cacheTTL    time.Duration
}

// NewRegistry creates a new Registry
func NewRegistry(
	gen *generator.Base62Generator,
	store LinkStore,
	cache DestinationCache,
	bloom BloomFilterInterface,
	maxAttempts int,
	cacheTTL time.Duration,
) *Registry {
	if maxAttempts <= 0 {
		maxAttempts = 5
	}
	return &Registry{
		gen:         gen,
		store:       store,
		cache:       cache,
		bloom:       bloom,
		maxAttempts: maxAttempts,
		cacheTTL:    cacheTTL,
	}
}

// Create registers a new link for an owner. When alias is empty a code is
// generated; collisions are retried up to the configured attempt bound.
// Uniqueness is enforced by the store's insert-if-absent, never by a
// check-then-insert in application logic.
func (r *Registry) Create(ctx context.Context, ownerID, destinationURL, alias string) (*model.Link, error) {
	if err := validateDestination(destinationURL); err != nil {
		return nil, err
	}

	link := &model.Link{
		DestinationURL: destinationURL,
		OwnerID:        ownerID,
		QRCodeRef:      uuid.NewString(),
	}

	if alias != "" {
		if !generator.IsValidCode(alias) {
			return nil, ErrInvalidAlias
		}
		link.Code = alias
		link.IsCustomAlias = true

		if err := r.store.InsertLink(ctx, link); err != nil {
			if errors.Is(err, repository.ErrDuplicateCode) {
				return nil, ErrAliasTaken
			}
			return nil, fmt.Errorf("failed to save link: %w", err)
		}
	} else {
		if err := r.insertGenerated(ctx, link); err != nil {
			return nil, err
		}
	}

	// Warm the resolver cache; best effort
	if err := r.cache.SaveDestination(ctx, link.Code, link.DestinationURL, r.cacheTTL); err != nil {
		log.Warn().Err(err).Str("code", link.Code).Msg("Failed to cache destination")
	}

	return link, nil
}

// Lookup retrieves the link for a code. Safe for arbitrary concurrent
// callers; read-only.
func (r *Registry) Lookup(ctx context.Context, code string) (*model.Link, error) {
	link, err := r.store.GetLinkByCode(ctx, code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return link, nil
}

// Delete removes a link. Only the owner may delete; historical click
// events are retained for audit. The resolver cache entry is invalidated,
// not locked, so a stale hit lasts at most one cache TTL.
func (r *Registry) Delete(ctx context.Context, code, requesterID string) error {
	link, err := r.Lookup(ctx, code)
	if err != nil {
		return err
	}

	if link.OwnerID != requesterID {
		return ErrForbidden
	}

	rows, err := r.store.DeleteLink(ctx, code)
	if err != nil {
		return fmt.Errorf("failed to delete link: %w", err)
	}
	if rows == 0 {
		return ErrNotFound
	}

	if err := r.cache.DeleteDestination(ctx, code); err != nil {
		log.Warn().Err(err).Str("code", code).Msg("Failed to invalidate destination cache")
	}

	log.Info().Str("code", code).Str("owner_id", requesterID).Msg("Link deleted")
	return nil
}

// ListByOwner returns all links created by an owner, newest first
func (r *Registry) ListByOwner(ctx context.Context, ownerID string) ([]model.Link, error) {
	links, err := r.store.ListLinksByOwner(ctx, ownerID)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrUnavailable, err)
	}
	return links, nil
}

// insertGenerated draws codes until one commits or the attempt bound is
// hit. The bloom guard skips store round trips for codes that are
// probably taken; the unique index still decides.
func (r *Registry) insertGenerated(ctx context.Context, link *model.Link) error {
	for attempt := 0; attempt < r.maxAttempts; attempt++ {
		code, err := r.gen.Generate()
		if err != nil {
			return fmt.Errorf("failed to generate code: %w", err)
		}

		if taken, err := r.bloom.Exists(ctx, code); err == nil && taken {
			continue
		}

		link.Code = code
		err = r.store.InsertLink(ctx, link)
		if err == nil {
			if err := r.bloom.Add(ctx, code); err != nil {
				log.Warn().Err(err).Str("code", code).Msg("Failed to add code to Bloom Filter")
			}
			return nil
		}
		if errors.Is(err, repository.ErrDuplicateCode) {
			log.Debug().Str("code", code).Int("attempt", attempt+1).Msg("Generated code collided, retrying")
			continue
		}
		return fmt.Errorf("failed to save link: %w", err)
	}

	return ErrGenerationExhausted
}

func validateDestination(destinationURL string) error {
	if destinationURL == "" {
		return ErrInvalidDestination
	}
	u, err := url.Parse(destinationURL)
	if err != nil || !u.IsAbs() || u.Host == "" {
		return ErrInvalidDestination
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return ErrInvalidDestination
	}
	return nil
}
