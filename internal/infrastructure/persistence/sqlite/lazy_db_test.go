package sqlite_test

import (
	"database/sql"
	"errors"
	"path/filepath"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/application/port/mocks"
	"github.com/bnema/dockyard/internal/infrastructure/persistence/sqlite"
)

func TestLazyDB_NotInitializedByDefault(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_InitializesOnFirstAccess(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	db, err := lazy.DB(ctx)
	require.NoError(t, err)
	require.NotNil(t, db)
	assert.True(t, lazy.IsInitialized())

	require.NoError(t, lazy.Close())
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_ConcurrentAccessSharesConnection(t *testing.T) {
	ctx := testCtx()
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))

	const goroutines = 10
	var wg sync.WaitGroup
	dbs := make([]*sql.DB, goroutines)
	errs := make([]error, goroutines)

	for i := range goroutines {
		wg.Add(1)
		go func() {
			defer wg.Done()
			dbs[i], errs[i] = lazy.DB(ctx)
		}()
	}
	wg.Wait()

	for i := range goroutines {
		require.NoError(t, errs[i])
		assert.Same(t, dbs[0], dbs[i])
	}
	require.NoError(t, lazy.Close())
}

func TestLazyDB_CloseBeforeInit(t *testing.T) {
	lazy := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	assert.NoError(t, lazy.Close())
}

func TestLazyDB_EmptyPathFails(t *testing.T) {
	lazy := sqlite.NewLazyDB("")

	_, err := lazy.DB(testCtx())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "database path cannot be empty")
	assert.False(t, lazy.IsInitialized())
}

func TestLazyDB_Path(t *testing.T) {
	lazy := sqlite.NewLazyDB("/some/path/to/db.sqlite")
	assert.Equal(t, "/some/path/to/db.sqlite", lazy.Path())
}

func TestLazyLayoutRepository_OpensOnce(t *testing.T) {
	ctx := testCtx()
	provider := sqlite.NewLazyDB(filepath.Join(t.TempDir(), "test.db"))
	t.Cleanup(func() { _ = provider.Close() })

	repo := sqlite.NewLazyLayoutRepository(provider)
	assert.False(t, provider.IsInitialized())

	require.NoError(t, repo.Save(ctx, "work", sampleLayout()))
	assert.True(t, provider.IsInitialized())

	got, err := repo.Get(ctx, "work")
	require.NoError(t, err)
	require.NotNil(t, got)

	infos, err := repo.List(ctx)
	require.NoError(t, err)
	assert.Len(t, infos, 1)

	require.NoError(t, repo.Delete(ctx, "work"))
}

func TestLazyLayoutRepository_ProviderError(t *testing.T) {
	provider := mocks.NewMockDatabaseProvider(t)
	provider.EXPECT().DB(mock.Anything).Return(nil, errors.New("no disk")).Once()

	repo := sqlite.NewLazyLayoutRepository(provider)

	_, err := repo.Get(testCtx(), "work")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no disk")

	// The failure is sticky: the provider is not asked again.
	_, err = repo.List(testCtx())
	require.Error(t, err)
}
