package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/bnema/dockyard/internal/domain/entity"
	"github.com/bnema/dockyard/internal/domain/repository"
)

const (
	upsertLayoutSQL = `INSERT INTO layouts (name, snapshot_json, version, stack_count, pane_count, updated_at)
VALUES (?, ?, ?, ?, ?, ?)
ON CONFLICT(name) DO UPDATE SET
    snapshot_json = excluded.snapshot_json,
    version = excluded.version,
    stack_count = excluded.stack_count,
    pane_count = excluded.pane_count,
    updated_at = excluded.updated_at`
	getLayoutSQL    = `SELECT snapshot_json FROM layouts WHERE name = ?`
	listLayoutsSQL  = `SELECT name, version, stack_count, pane_count, updated_at FROM layouts ORDER BY updated_at DESC, name`
	deleteLayoutSQL = `DELETE FROM layouts WHERE name = ?`
)

type layoutRepo struct {
	db  *sql.DB
	now func() time.Time
}

// NewLayoutRepository creates a SQLite-backed layout repository. Layouts are
// stored as JSON snapshots keyed by name.
func NewLayoutRepository(db *sql.DB) repository.LayoutRepository {
	return &layoutRepo{db: db, now: time.Now}
}

func (r *layoutRepo) Save(ctx context.Context, name string, layout *entity.DockLayout) error {
	if name == "" {
		return fmt.Errorf("layout name cannot be empty")
	}
	if layout == nil {
		return fmt.Errorf("layout %q is nil", name)
	}
	snap := entity.SnapshotFromLayout(layout)
	data, err := json.Marshal(snap)
	if err != nil {
		return fmt.Errorf("failed to encode layout %q: %w", name, err)
	}

	_, err = r.db.ExecContext(ctx, upsertLayoutSQL,
		name,
		string(data),
		snap.Version,
		layout.StackCount(),
		layout.PaneCount(),
		r.now().UnixMilli(),
	)
	if err != nil {
		return fmt.Errorf("failed to save layout %q: %w", name, err)
	}
	return nil
}

func (r *layoutRepo) Get(ctx context.Context, name string) (*entity.DockLayout, error) {
	var data string
	err := r.db.QueryRowContext(ctx, getLayoutSQL, name).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load layout %q: %w", name, err)
	}

	var snap entity.LayoutSnapshot
	if err := json.Unmarshal([]byte(data), &snap); err != nil {
		return nil, fmt.Errorf("failed to decode layout %q: %w", name, err)
	}
	layout, err := entity.LayoutFromSnapshot(&snap)
	if err != nil {
		return nil, fmt.Errorf("layout %q: %w", name, err)
	}
	return layout, nil
}

func (r *layoutRepo) List(ctx context.Context) ([]entity.LayoutInfo, error) {
	rows, err := r.db.QueryContext(ctx, listLayoutsSQL)
	if err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var infos []entity.LayoutInfo
	for rows.Next() {
		var (
			info      entity.LayoutInfo
			updatedAt int64
		)
		if err := rows.Scan(&info.Name, &info.Version, &info.StackCount, &info.PaneCount, &updatedAt); err != nil {
			return nil, fmt.Errorf("failed to scan layout row: %w", err)
		}
		info.UpdatedAt = time.UnixMilli(updatedAt)
		infos = append(infos, info)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to list layouts: %w", err)
	}
	return infos, nil
}

func (r *layoutRepo) Delete(ctx context.Context, name string) error {
	if _, err := r.db.ExecContext(ctx, deleteLayoutSQL, name); err != nil {
		return fmt.Errorf("failed to delete layout %q: %w", name, err)
	}
	return nil
}
