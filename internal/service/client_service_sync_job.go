package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/MKhiriev/go-money-keeper/internal/config"
	"github.com/MKhiriev/go-money-keeper/internal/logger"
	"github.com/MKhiriev/go-money-keeper/internal/store"
)

type syncJob struct {
	coordinator SyncCoordinator
	localStore  store.LocalStorage
	logger      *logger.Logger

	mu          sync.Mutex
	cancel      context.CancelFunc
	unsubscribe func()
	wg          sync.WaitGroup
}

// NewSyncJob creates a syncJob driving the coordinator's two timers: a
// debounce window armed by local-store edits and a periodic poll ticker.
// The job is idle until Start is called.
func NewSyncJob(coordinator SyncCoordinator, localStore store.LocalStorage, logger *logger.Logger) SyncJob {
	return &syncJob{coordinator: coordinator, localStore: localStore, logger: logger}
}

// Start implements [SyncJob]. It stops any previously running job, then
// subscribes to local-store changes and launches a background goroutine.
// User edits arm (or re-arm) the debounce window; when it elapses the
// coordinator pushes. The poll ticker fires independently. The goroutine
// exits when ctx is cancelled or Stop is called.
func (j *syncJob) Start(ctx context.Context, debounce, poll time.Duration) {
	if debounce <= 0 {
		debounce = config.DefaultDebounceDelay
	}
	if poll <= 0 {
		poll = config.DefaultPollInterval
	}

	j.Stop()

	edits := make(chan struct{}, 1)

	j.mu.Lock()
	jobCtx, cancel := context.WithCancel(ctx)
	j.cancel = cancel
	j.unsubscribe = j.localStore.Subscribe(func(key string, origin store.WriteOrigin) {
		// pull-applied writes and session bookkeeping never re-push
		if origin != store.OriginLocalEdit || key == store.KeySessionToken {
			return
		}
		j.coordinator.NoteLocalEdit()
		select {
		case edits <- struct{}{}:
		default:
		}
	})
	j.wg.Add(1)
	j.mu.Unlock()

	go func() {
		defer j.wg.Done()

		t := time.NewTicker(poll)
		defer t.Stop()

		debounceTimer := time.NewTimer(debounce)
		defer debounceTimer.Stop()
		if !debounceTimer.Stop() {
			<-debounceTimer.C
		}

		for {
			select {
			case <-jobCtx.Done():
				return

			case <-edits:
				if !debounceTimer.Stop() {
					select {
					case <-debounceTimer.C:
					default:
					}
				}
				debounceTimer.Reset(debounce)

			case <-debounceTimer.C:
				err := j.coordinator.Push(jobCtx)
				if errors.Is(err, ErrSyncInProgress) {
					// another sync holds the slot; keep the edit
					// pending and try again after a fresh window
					debounceTimer.Reset(debounce)
					continue
				}
				if err != nil {
					// the edit stays pending; the next poll retries it
					j.logger.Debug().Err(err).Msg("debounced push failed")
				}

			case <-t.C:
				if err := j.coordinator.Poll(jobCtx); err != nil {
					j.logger.Debug().Err(err).Msg("background poll failed")
				}
			}
		}
	}()
}

// Stop implements [SyncJob]. It removes the change listener, cancels the
// background goroutine's context, and blocks until the goroutine has
// fully exited. Safe to call when the job is not running (no-op in that
// case).
func (j *syncJob) Stop() {
	j.mu.Lock()
	cancel := j.cancel
	unsubscribe := j.unsubscribe
	j.cancel = nil
	j.unsubscribe = nil
	j.mu.Unlock()

	if unsubscribe != nil {
		unsubscribe()
	}
	if cancel != nil {
		cancel()
	}
	j.wg.Wait()
}
