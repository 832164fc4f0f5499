package db

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// Build is one ledger row: an image that was assembled and published.
type Build struct {
	ID         string    `json:"id"`
	Output     string    `json:"output"`
	Digest     string    `json:"digest"`
	SizeBytes  int64     `json:"size_bytes"`
	InodeCount int64     `json:"inode_count"`
	DataCount  int64     `json:"data_count"`
	DurationMS int64     `json:"duration_ms"`
	CreatedAt  time.Time `json:"created_at"`
}

// InsertBuild records a finished build, filling in the generated ID and
// creation time on the passed struct.
func InsertBuild(ctx context.Context, ledger *sql.DB, build *Build) error {
	buildID, err := uuid.NewV7()
	if err != nil {
		return fmt.Errorf("error generating build uuid: %w", err)
	}
	now := time.Now().Unix()

	query := `
		INSERT INTO builds (id, output, digest, size_bytes, inode_count, data_count, duration_ms, created_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	`

	_, err = ledger.ExecContext(ctx, query,
		buildID.String(), build.Output, build.Digest, build.SizeBytes,
		build.InodeCount, build.DataCount, build.DurationMS, now)
	if err != nil {
		return err
	}

	build.ID = buildID.String()
	build.CreatedAt = time.Unix(now, 0)
	return nil
}

// ListBuilds returns all recorded builds, newest first. The v7 build IDs
// break ties within one second.
func ListBuilds(ctx context.Context, ledger *sql.DB) ([]*Build, error) {
	query := `SELECT id, output, digest, size_bytes, inode_count, data_count, duration_ms, created_at FROM builds ORDER BY created_at DESC, id DESC`
	rows, err := ledger.QueryContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var builds []*Build
	for rows.Next() {
		var createdAt int64
		build := &Build{}
		if err := rows.Scan(&build.ID, &build.Output, &build.Digest, &build.SizeBytes,
			&build.InodeCount, &build.DataCount, &build.DurationMS, &createdAt); err != nil {
			return nil, err
		}
		build.CreatedAt = time.Unix(createdAt, 0)
		builds = append(builds, build)
	}

	return builds, rows.Err()
}
