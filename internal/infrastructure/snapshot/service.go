// Package snapshot autosaves the live layout after mutations.
package snapshot

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/bnema/dockyard/internal/application/port"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/logging"
)

const (
	defaultRetries    = 3
	defaultRetryDelay = 50 * time.Millisecond
)

// Service handles debounced layout saves.
type Service struct {
	persist  *usecase.PersistLayoutUseCase
	provider port.LayoutProvider
	// interval is zero when saves only happen on SaveNow and Stop.
	interval time.Duration

	retries    int
	retryDelay time.Duration

	mu     sync.Mutex
	timer  *time.Timer
	dirty  bool
	ready  bool // true once the initial layout is loaded
	ctx    context.Context
	cancel context.CancelFunc
}

// NewService creates a new autosave service. An interval of zero disables
// the debounce timer.
func NewService(
	persist *usecase.PersistLayoutUseCase,
	provider port.LayoutProvider,
	intervalMs int,
) *Service {
	if intervalMs < 0 {
		intervalMs = 0
	}
	return &Service{
		persist:    persist,
		provider:   provider,
		interval:   time.Duration(intervalMs) * time.Millisecond,
		retries:    defaultRetries,
		retryDelay: defaultRetryDelay,
	}
}

// Start begins watching for dirty state.
func (s *Service) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ctx, s.cancel = context.WithCancel(logging.WithComponent(ctx, "autosave"))
	logging.FromContext(ctx).Debug().Dur("interval", s.interval).Msg("autosave service started")
}

// SetReady allows saves. Changes marked before the layout was loaded are
// flushed right away.
func (s *Service) SetReady() {
	s.mu.Lock()
	s.ready = true
	pending := s.dirty
	ctx := s.ctx
	s.mu.Unlock()

	if !pending || ctx == nil {
		return
	}
	go func() {
		defer logging.RecoverPanic(ctx)
		if err := s.save(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to save pending layout")
		}
	}()
}

// Stop stops the service and saves the final state.
func (s *Service) Stop(ctx context.Context) error {
	s.mu.Lock()
	if s.cancel != nil {
		s.cancel()
	}
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	s.mu.Unlock()

	return s.SaveNow(ctx)
}

// MarkDirty signals that the layout changed and restarts the debounce timer.
func (s *Service) MarkDirty() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.dirty = true
	if s.interval == 0 {
		return
	}

	if s.timer != nil {
		s.timer.Stop()
	}
	s.timer = time.AfterFunc(s.interval, func() {
		s.mu.Lock()
		ctx := s.ctx
		s.mu.Unlock()

		if ctx == nil || ctx.Err() != nil {
			return
		}
		defer logging.RecoverPanic(ctx)
		if err := s.save(ctx); err != nil {
			logging.FromContext(ctx).Error().Err(err).Msg("failed to autosave layout")
		}
	})
}

// Dirty reports whether changes are waiting to be saved.
func (s *Service) Dirty() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.dirty
}

// SaveNow forces an immediate save of pending changes.
func (s *Service) SaveNow(ctx context.Context) error {
	s.mu.Lock()
	if s.timer != nil {
		s.timer.Stop()
		s.timer = nil
	}
	dirty := s.dirty
	s.mu.Unlock()

	if !dirty {
		return nil
	}
	return s.save(ctx)
}

func (s *Service) save(ctx context.Context) error {
	s.mu.Lock()
	if !s.ready {
		// keep dirty so SetReady flushes it
		s.mu.Unlock()
		return nil
	}
	s.dirty = false
	s.mu.Unlock()

	layout := s.provider.CurrentLayout()
	name := s.provider.LayoutName()
	if layout == nil || name == "" {
		return nil
	}

	var err error
	for attempt := 0; attempt <= s.retries; attempt++ {
		err = s.persist.Save(ctx, name, layout)
		if err == nil || !isBusy(err) {
			break
		}
		logging.FromContext(ctx).Debug().Err(err).Int("attempt", attempt+1).Msg("database busy, retrying layout save")
		select {
		case <-ctx.Done():
			err = ctx.Err()
			attempt = s.retries
		case <-time.After(s.retryDelay):
		}
	}
	if err != nil {
		s.mu.Lock()
		s.dirty = true
		s.mu.Unlock()
	}
	return err
}

// isBusy reports SQLite lock contention, which clears once the other writer
// commits.
func isBusy(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "database is locked") || strings.Contains(msg, "SQLITE_BUSY")
}
