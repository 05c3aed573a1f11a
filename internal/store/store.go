// Package store persists the robot record of every execution in SQLite.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"toyrobot/internal/interpreter"
)

// DBFile is the database file name inside the data directory.
const DBFile = "toyrobot.db"

// timeFormat has a fixed width so created_at sorts as text.
const timeFormat = "2006-01-02T15:04:05.000000000Z07:00"

var ErrNotFound = errors.New("run not found")

// Record is the robot as it stood at the end of one execution.
type Record struct {
	ID             string               `json:"id"`
	CreatedAt      time.Time            `json:"created_at"`
	Input          string               `json:"input"`
	State          interpreter.Snapshot `json:"position"`
	Placed         bool                 `json:"placed"`
	ProperlyPlaced bool                 `json:"properly_placed"`
	Report         string               `json:"report"`
	Failure        *interpreter.Failure `json:"failure,omitempty"`
}

// NewRecord builds a record from the final robot state and the error the
// run stopped with, if any. Errors other than *interpreter.Failure are not
// recorded.
func NewRecord(input string, res *interpreter.Result, err error) Record {
	rec := Record{Input: input}
	if res != nil {
		rec.State = res.State
		rec.Placed = res.Placed
		rec.ProperlyPlaced = res.ProperlyPlaced
		rec.Report = res.Report
	}
	var f *interpreter.Failure
	if errors.As(err, &f) {
		rec.Failure = f
	}
	return rec
}

// Store is a handle on toyrobot.db.
type Store struct {
	db  *sql.DB
	now func() time.Time
}

// Open creates dataDir if needed, opens the database and applies the schema.
func Open(ctx context.Context, dataDir string) (*Store, error) {
	if dataDir == "" {
		dataDir = "."
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return nil, fmt.Errorf("create data dir: %w", err)
	}
	db, err := sql.Open("sqlite", filepath.Join(dataDir, DBFile))
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}
	for _, stmt := range schema {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			db.Close()
			return nil, fmt.Errorf("apply schema: %w", err)
		}
	}
	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// Save inserts rec with a fresh UUIDv7 and creation time and returns it.
func (s *Store) Save(ctx context.Context, rec Record) (Record, error) {
	id, err := uuid.NewV7()
	if err != nil {
		return rec, fmt.Errorf("generate id: %w", err)
	}
	rec.ID = id.String()
	rec.CreatedAt = s.now().UTC()

	var failure sql.NullString
	if rec.Failure != nil {
		data, err := json.Marshal(rec.Failure)
		if err != nil {
			return rec, fmt.Errorf("encode failure: %w", err)
		}
		failure = sql.NullString{String: string(data), Valid: true}
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT INTO runs (run_id, created_at, input, x, y, facing, placed, properly_placed, report, failure)
		 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`,
		rec.ID,
		rec.CreatedAt.Format(timeFormat),
		rec.Input,
		rec.State.X,
		rec.State.Y,
		rec.State.Facing.String(),
		rec.Placed,
		rec.ProperlyPlaced,
		rec.Report,
		failure,
	)
	if err != nil {
		return rec, fmt.Errorf("insert run: %w", err)
	}
	return rec, nil
}

const selectRuns = `SELECT run_id, created_at, input, x, y, facing, placed, properly_placed, report, failure FROM runs`

// Get returns the record with the given id, or ErrNotFound.
func (s *Store) Get(ctx context.Context, id string) (Record, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+` WHERE run_id = ?`, id)
	return scanRecord(row)
}

// Latest returns the most recently saved record, or ErrNotFound.
func (s *Store) Latest(ctx context.Context) (Record, error) {
	row := s.db.QueryRowContext(ctx, selectRuns+` ORDER BY created_at DESC, run_id DESC LIMIT 1`)
	return scanRecord(row)
}

// List returns up to limit records, newest first. A limit <= 0 lists all.
func (s *Store) List(ctx context.Context, limit int) ([]Record, error) {
	if limit <= 0 {
		limit = -1
	}
	rows, err := s.db.QueryContext(ctx, selectRuns+` ORDER BY created_at DESC, run_id DESC LIMIT ?`, limit)
	if err != nil {
		return nil, fmt.Errorf("query runs: %w", err)
	}
	defer rows.Close()

	var recs []Record
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		recs = append(recs, rec)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate runs: %w", err)
	}
	return recs, nil
}

type scanner interface {
	Scan(dest ...any) error
}

func scanRecord(sc scanner) (Record, error) {
	var (
		rec       Record
		createdAt string
		facing    string
		failure   sql.NullString
	)
	err := sc.Scan(
		&rec.ID,
		&createdAt,
		&rec.Input,
		&rec.State.X,
		&rec.State.Y,
		&facing,
		&rec.Placed,
		&rec.ProperlyPlaced,
		&rec.Report,
		&failure,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return rec, ErrNotFound
	}
	if err != nil {
		return rec, fmt.Errorf("scan run: %w", err)
	}

	if rec.CreatedAt, err = time.Parse(timeFormat, createdAt); err != nil {
		return rec, fmt.Errorf("parse created_at: %w", err)
	}
	f, ok := interpreter.ParseFacing(facing)
	if !ok {
		return rec, fmt.Errorf("unknown facing %q in run %s", facing, rec.ID)
	}
	rec.State.Facing = f
	if failure.Valid {
		rec.Failure = &interpreter.Failure{}
		if err := json.Unmarshal([]byte(failure.String), rec.Failure); err != nil {
			return rec, fmt.Errorf("decode failure: %w", err)
		}
	}
	return rec, nil
}
