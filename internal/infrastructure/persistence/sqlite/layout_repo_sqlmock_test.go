package sqlite

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bnema/dockyard/internal/domain/entity"
)

func newMockRepo(t *testing.T) (*layoutRepo, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { _ = db.Close() })

	fixed := time.UnixMilli(1_700_000_000_000)
	return &layoutRepo{db: db, now: func() time.Time { return fixed }}, mock
}

func TestLayoutRepo_SaveWritesCounts(t *testing.T) {
	repo, mock := newMockRepo(t)
	layout := entity.NewLayout(entity.NewStack("s1", 1, entity.NewPane("notes", "Notes")))

	mock.ExpectExec("INSERT INTO layouts").
		WithArgs("work", sqlmock.AnyArg(), entity.LayoutSnapshotVersion, 1, 1, int64(1_700_000_000_000)).
		WillReturnResult(sqlmock.NewResult(1, 1))

	require.NoError(t, repo.Save(context.Background(), "work", layout))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestLayoutRepo_SaveError(t *testing.T) {
	repo, mock := newMockRepo(t)
	layout := entity.NewLayout(entity.NewStack("s1", 1))

	mock.ExpectExec("INSERT INTO layouts").WillReturnError(errors.New("disk full"))

	err := repo.Save(context.Background(), "work", layout)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "disk full")
}

func TestLayoutRepo_GetCorruptJSON(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT snapshot_json FROM layouts").
		WithArgs("work").
		WillReturnRows(sqlmock.NewRows([]string{"snapshot_json"}).AddRow("{not json"))

	got, err := repo.Get(context.Background(), "work")
	require.Error(t, err)
	assert.Nil(t, got)
	assert.Contains(t, err.Error(), "decode")
}

func TestLayoutRepo_GetInvalidTree(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT snapshot_json FROM layouts").
		WithArgs("work").
		WillReturnRows(sqlmock.NewRows([]string{"snapshot_json"}).
			AddRow(`{"version":1,"root":{"type":"triangle","id":"x"}}`))

	_, err := repo.Get(context.Background(), "work")
	require.Error(t, err)
	assert.ErrorIs(t, err, entity.ErrInvalidSnapshot)
}

func TestLayoutRepo_ListQueryError(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT name, version").WillReturnError(errors.New("locked"))

	_, err := repo.List(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "locked")
}

func TestLayoutRepo_ListScansRows(t *testing.T) {
	repo, mock := newMockRepo(t)

	mock.ExpectQuery("SELECT name, version").
		WillReturnRows(sqlmock.NewRows([]string{"name", "version", "stack_count", "pane_count", "updated_at"}).
			AddRow("b", 1, 2, 3, int64(2000)).
			AddRow("a", 1, 1, 1, int64(1000)))

	infos, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, infos, 2)
	assert.Equal(t, "b", infos[0].Name)
	assert.Equal(t, 3, infos[0].PaneCount)
	assert.Equal(t, time.UnixMilli(1000), infos[1].UpdatedAt)
}
