package recorder

import (
	"context"
	"sync"
	"time"

	"curtail/internal/classify"
	"curtail/internal/geo"
	"curtail/internal/model"
	"curtail/internal/mq"
	"curtail/pkg/util"

	"github.com/rs/zerolog/log"
)

// Recorder persists click events off the redirect path. Each worker owns
// one queue and events are sharded by code, so the persisted order for a
// single code matches arrival order at the recorder. No error ever
// propagates back to the caller that issued the redirect.
type Recorder struct {
	store        ClickStore
	rollups      RollupSink
	classifier   classify.Classifier
	locator      geo.Locator
	producer     Publisher
	queues       []chan model.Click
	writeTimeout time.Duration
	wg           sync.WaitGroup
	closeOnce    sync.Once
}

// NewRecorder creates a new Recorder. producer may be nil; when set,
// enriched events go through the message queue and the consumer persists
// them instead of the worker.
func NewRecorder(
	store ClickStore,
	rollups RollupSink,
	classifier classify.Classifier,
	locator geo.Locator,
	producer Publisher,
	workers, queueSize int,
	writeTimeout time.Duration,
) *Recorder {
	if workers <= 0 {
		workers = 4
	}
	if queueSize <= 0 {
		queueSize = 1024
	}
	if writeTimeout <= 0 {
		writeTimeout = 3 * time.Second
	}

	queues := make([]chan model.Click, workers)
	for i := range queues {
		queues[i] = make(chan model.Click, queueSize)
	}

	return &Recorder{
		store:        store,
		rollups:      rollups,
		classifier:   classifier,
		locator:      locator,
		producer:     producer,
		queues:       queues,
		writeTimeout: writeTimeout,
	}
}

// Start launches the worker pool
func (r *Recorder) Start() {
	log.Info().Int("workers", len(r.queues)).Msg("Starting click recorder workers")
	for _, queue := range r.queues {
		r.wg.Add(1)
		go r.worker(queue)
	}
}

// Enqueue accepts a click for recording. Sharding by code keeps per-code
// order; a full queue drops the event and reports false rather than
// blocking the caller.
func (r *Recorder) Enqueue(click model.Click) bool {
	queue := r.queues[util.HashString(click.LinkCode)%uint64(len(r.queues))]
	select {
	case queue <- click:
		return true
	default:
		return false
	}
}

// Close drains the queues and stops the workers
func (r *Recorder) Close() {
	r.closeOnce.Do(func() {
		for _, queue := range r.queues {
			close(queue)
		}
	})
	r.wg.Wait()
}

func (r *Recorder) worker(queue <-chan model.Click) {
	defer r.wg.Done()
	for click := range queue {
		r.process(click)
	}
}

// process enriches and persists one click. Failures are logged and
// swallowed; one retry, then the event is dropped.
func (r *Recorder) process(click model.Click) {
	ev := r.enrich(click)

	ctx, cancel := context.WithTimeout(context.Background(), r.writeTimeout)
	defer cancel()

	// The event references the link weakly, but the link must still exist
	// at recording time
	exists, err := r.store.CheckExistsByCode(ctx, ev.LinkCode)
	if err != nil {
		log.Error().Err(err).Str("code", ev.LinkCode).Msg("Failed to check link existence, dropping click")
		return
	}
	if !exists {
		log.Debug().Str("code", ev.LinkCode).Msg("Link gone before click was recorded, dropping")
		return
	}

	if r.producer != nil {
		if err := r.producer.SendClick(ctx, toMessage(ev)); err == nil {
			return
		} else {
			log.Warn().Err(err).Str("code", ev.LinkCode).Msg("Failed to publish click, persisting directly")
		}
	}

	if err := r.persist(ctx, ev); err != nil {
		// One bounded retry before drop; no retry storms
		if err := r.persist(ctx, ev); err != nil {
			log.Error().Err(err).Str("code", ev.LinkCode).Msg("Failed to record click, event dropped")
			return
		}
	}

	if err := r.rollups.IncrRollup(ctx, ev); err != nil {
		log.Warn().Err(err).Str("code", ev.LinkCode).Msg("Failed to nudge rollup counters")
	}
}

func (r *Recorder) persist(ctx context.Context, ev *model.ClickEvent) error {
	return r.store.SaveClickEvent(ctx, ev)
}

func (r *Recorder) enrich(click model.Click) *model.ClickEvent {
	sig := r.classifier.Classify(click.UserAgent)
	loc := r.locator.Locate(click.ClientIP)

	ts := click.Timestamp
	if ts.IsZero() {
		ts = time.Now()
	}

	return &model.ClickEvent{
		LinkCode:   click.LinkCode,
		Timestamp:  ts,
		DeviceType: sig.DeviceType,
		Browser:    sig.Browser,
		OS:         sig.OS,
		City:       loc.City,
		Country:    loc.Country,
		Referer:    click.Referer,
		ClientIP:   click.ClientIP,
	}
}

func toMessage(ev *model.ClickEvent) *mq.ClickMessage {
	return &mq.ClickMessage{
		LinkCode:   ev.LinkCode,
		Timestamp:  ev.Timestamp,
		DeviceType: ev.DeviceType,
		Browser:    ev.Browser,
		OS:         ev.OS,
		City:       ev.City,
		Country:    ev.Country,
		Referer:    ev.Referer,
		ClientIP:   ev.ClientIP,
	}
}
