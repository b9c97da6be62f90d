package snapshot

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	portmocks "github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/application/usecase"
	"github.com/bnema/dockyard/internal/domain/entity"
	repomocks "github.com/bnema/dockyard/internal/domain/repository/mocks"
)

func testLayout() *entity.DockLayout {
	return entity.NewLayout(entity.NewStack("main", 1, entity.NewPane("welcome", "Welcome")))
}

func newTestService(t *testing.T, repo *repomocks.MockLayoutRepository, intervalMs int) *Service {
	t.Helper()
	provider := portmocks.NewMockLayoutProvider(t)
	provider.EXPECT().CurrentLayout().Return(testLayout()).Maybe()
	provider.EXPECT().LayoutName().Return("default").Maybe()

	svc := NewService(usecase.NewPersistLayoutUseCase(repo, nil), provider, intervalMs)
	svc.retryDelay = time.Millisecond
	return svc
}

func TestService_Save_RetriesBusyAndSucceeds(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	calls := 0
	repo.EXPECT().
		Save(mock.Anything, "default", mock.AnythingOfType("*entity.DockLayout")).
		RunAndReturn(func(_ context.Context, _ string, _ *entity.DockLayout) error {
			calls++
			if calls == 1 {
				return errors.New("database is locked")
			}
			return nil
		})

	svc := newTestService(t, repo, 0)
	svc.ready = true
	svc.dirty = true

	require.NoError(t, svc.save(context.Background()))
	assert.Equal(t, 2, calls)
	assert.False(t, svc.dirty)
}

func TestService_Save_RetriesBusyAndFails(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	calls := 0
	busy := errors.New("sqlite3: database is locked")
	repo.EXPECT().
		Save(mock.Anything, "default", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ *entity.DockLayout) error {
			calls++
			return busy
		})

	svc := newTestService(t, repo, 0)
	svc.ready = true
	svc.dirty = true

	err := svc.save(context.Background())
	require.ErrorIs(t, err, busy)
	assert.Equal(t, svc.retries+1, calls)
	assert.True(t, svc.dirty, "failed save keeps the layout dirty")
}

func TestService_Save_DoesNotRetryOtherErrors(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	readOnly := errors.New("attempt to write a readonly database")
	repo.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(readOnly).Once()

	svc := newTestService(t, repo, 0)
	svc.ready = true
	svc.dirty = true

	require.ErrorIs(t, svc.save(context.Background()), readOnly)
	assert.True(t, svc.dirty)
}

func TestService_NotReadyKeepsDirty(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)

	svc := newTestService(t, repo, 0)
	svc.MarkDirty()

	require.NoError(t, svc.SaveNow(context.Background()))
	assert.True(t, svc.Dirty())
}

func TestService_SetReady_SavesPendingLayout(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	saved := make(chan struct{}, 1)
	repo.EXPECT().
		Save(mock.Anything, "default", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ *entity.DockLayout) error {
			saved <- struct{}{}
			return nil
		}).Once()

	svc := newTestService(t, repo, 0)
	svc.Start(context.Background())
	svc.MarkDirty()

	svc.SetReady()

	select {
	case <-saved:
	case <-time.After(500 * time.Millisecond):
		t.Fatal("expected pending layout to be saved after SetReady")
	}
	assert.Eventually(t, func() bool { return !svc.Dirty() }, time.Second, 5*time.Millisecond)
}

func TestService_MarkDirty_Debounces(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	saved := make(chan struct{}, 4)
	repo.EXPECT().
		Save(mock.Anything, "default", mock.Anything).
		RunAndReturn(func(_ context.Context, _ string, _ *entity.DockLayout) error {
			saved <- struct{}{}
			return nil
		}).Once()

	svc := newTestService(t, repo, 20)
	svc.Start(context.Background())
	svc.SetReady()

	for range 5 {
		svc.MarkDirty()
	}

	select {
	case <-saved:
	case <-time.After(time.Second):
		t.Fatal("expected a debounced save")
	}
	time.Sleep(60 * time.Millisecond)
	assert.Empty(t, saved, "burst of changes must produce a single save")
}

func TestService_ZeroIntervalSavesOnlyOnStop(t *testing.T) {
	repo := repomocks.NewMockLayoutRepository(t)
	repo.EXPECT().Save(mock.Anything, "default", mock.Anything).Return(nil).Once()

	svc := newTestService(t, repo, 0)
	svc.Start(context.Background())
	svc.SetReady()
	svc.MarkDirty()

	svc.mu.Lock()
	assert.Nil(t, svc.timer)
	svc.mu.Unlock()

	require.NoError(t, svc.Stop(context.Background()))
	assert.False(t, svc.Dirty())
}
