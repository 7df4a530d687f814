package inventory

import (
	"context"
	"errors"
	"net/http"
	"runtime/debug"
	"sync"
	"time"

	"github.com/osse101/InventoryViewer_Go/internal/domain"
	"github.com/osse101/InventoryViewer_Go/internal/logger"
	"github.com/osse101/InventoryViewer_Go/internal/metrics"
)

// Config configures a Loader
type Config struct {
	// BaseURL is the inventory endpoint; the case is appended as ?case=<id>
	BaseURL string
	// HTTPClient is optional. The default client has no timeout.
	HTTPClient *http.Client
	// DiscardStale drops completions of calls superseded by a newer call.
	// Off by default: overlapping loads are last-write-wins.
	DiscardStale bool
}

// Loader retrieves the inventory of a case and holds the resulting state.
// All state transitions go through update, which also notifies subscribers.
type Loader struct {
	fetcher      Fetcher
	discardStale bool

	mu      sync.Mutex
	state   domain.LoaderState
	latest  uint64
	subs    map[int]chan domain.LoaderState
	nextSub int
	closed  bool
}

// NewLoader creates a loader backed by an HTTP client for cfg.BaseURL
func NewLoader(cfg Config) (*Loader, error) {
	client, err := NewClient(cfg.BaseURL, cfg.HTTPClient)
	if err != nil {
		return nil, err
	}
	return NewLoaderWithFetcher(client, cfg.DiscardStale), nil
}

// NewLoaderWithFetcher creates a loader around any Fetcher
func NewLoaderWithFetcher(f Fetcher, discardStale bool) *Loader {
	return &Loader{
		fetcher:      f,
		discardStale: discardStale,
		state:        domain.NewLoaderState(),
		subs:         make(map[int]chan domain.LoaderState),
	}
}

// State returns a snapshot of the current loader state
func (l *Loader) State() domain.LoaderState {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state.Clone()
}

// LoadInventory fetches the inventory for caseID and applies the outcome to
// the loader state. It blocks until the load settles and never returns an
// error: failures land in State().Error and leave the items untouched.
// Loading is released on every exit path, panics included.
func (l *Loader) LoadInventory(ctx context.Context, caseID string) {
	log := logger.FromContext(ctx)
	start := time.Now()
	token := l.begin()

	log.Debug(LogMsgLoadStarted, "case", caseID, "token", token)

	var (
		items []domain.InventoryItem
		err   error
	)

	defer func() {
		if r := recover(); r != nil {
			log.Error(LogMsgLoadPanicked, "case", caseID, "panic", r, "stack", string(debug.Stack()))
			// only error values carry a message; anything else is unknown
			if e, ok := r.(error); ok {
				err = e
			} else {
				err = errors.New(domain.ErrMsgUnknownError)
			}
			items = nil
		}

		outcome := l.finish(token, items, err)
		metrics.RecordInventoryLoad(outcome, time.Since(start).Seconds())

		switch outcome {
		case metrics.OutcomeSuccess:
			metrics.InventoryItemsLoaded.Set(float64(len(items)))
			log.Info(LogMsgLoadSucceeded, "case", caseID, "items", len(items), "duration", time.Since(start))
		case metrics.OutcomeStale:
			log.Debug(LogMsgLoadStale, "case", caseID, "token", token)
		default:
			log.Error(LogMsgLoadFailed, "case", caseID, "error", err, "outcome", outcome)
		}
	}()

	items, err = l.fetcher.FetchInventory(ctx, caseID)
}

// Go runs LoadInventory in its own goroutine. The returned channel is closed
// once the load has settled.
func (l *Loader) Go(ctx context.Context, caseID string) <-chan struct{} {
	done := make(chan struct{})
	go func() {
		defer close(done)
		l.LoadInventory(ctx, caseID)
	}()
	return done
}

// Subscribe returns a channel receiving a snapshot after every state
// transition, and a function to stop the subscription. A subscriber that
// falls DefaultSubscriberBuffer snapshots behind loses the oldest ones.
func (l *Loader) Subscribe() (<-chan domain.LoaderState, func()) {
	l.mu.Lock()
	defer l.mu.Unlock()

	ch := make(chan domain.LoaderState, DefaultSubscriberBuffer)
	if l.closed {
		close(ch)
		return ch, func() {}
	}

	id := l.nextSub
	l.nextSub++
	l.subs[id] = ch

	var once sync.Once
	return ch, func() {
		once.Do(func() {
			l.mu.Lock()
			defer l.mu.Unlock()
			if sub, ok := l.subs[id]; ok {
				delete(l.subs, id)
				close(sub)
			}
		})
	}
}

// Close ends all subscriptions. Loads may still run; they just notify nobody.
func (l *Loader) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()

	l.closed = true
	for id, ch := range l.subs {
		delete(l.subs, id)
		close(ch)
	}
}

// begin marks a load in flight and returns its token
func (l *Loader) begin() uint64 {
	var token uint64
	l.update(func(s *domain.LoaderState) bool {
		l.latest++
		token = l.latest
		s.Loading = true
		s.Error = nil
		return true
	})
	return token
}

// finish applies a load result and reports the outcome label
func (l *Loader) finish(token uint64, items []domain.InventoryItem, err error) string {
	outcome := metrics.OutcomeSuccess
	l.update(func(s *domain.LoaderState) bool {
		if l.discardStale && token != l.latest {
			outcome = metrics.OutcomeStale
			return false
		}

		if err != nil {
			msg := domain.ErrorMessage(err)
			s.Error = &msg
			if errors.Is(err, domain.ErrHTTPStatus) {
				outcome = metrics.OutcomeHTTPError
			} else {
				outcome = metrics.OutcomeFailure
			}
		} else {
			if items == nil {
				items = []domain.InventoryItem{}
			}
			s.Items = items
			s.Error = nil
		}
		s.Loading = false
		return true
	})
	return outcome
}

// update mutates the state under the lock and publishes a snapshot when fn
// reports a change
func (l *Loader) update(fn func(s *domain.LoaderState) bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if !fn(&l.state) {
		return
	}

	snapshot := l.state.Clone()
	for _, ch := range l.subs {
		publish(ch, snapshot)
	}
}

// publish never blocks: when the buffer is full the oldest snapshot is dropped
func publish(ch chan domain.LoaderState, s domain.LoaderState) {
	select {
	case ch <- s:
		return
	default:
	}
	select {
	case <-ch:
	default:
	}
	select {
	case ch <- s:
	default:
	}
}
