package repository

import (
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"
	"github.com/google/uuid"
	sqlite3 "github.com/mattn/go-sqlite3"

	"github.com/InfraSecConsult/surveillance-detector-go/lib/model"
)

// SQLiteRepository stores observations in a SQLite capture file. The full
// observation is kept as JSON; the indexed columns only serve filtering.
type SQLiteRepository struct {
	db *sql.DB
}

var _ Repository = (*SQLiteRepository)(nil)

func NewSQLiteRepository(path string) (*SQLiteRepository, error) {
	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, err
	}
	// :memory: databases are per connection
	db.SetMaxOpenConns(1)

	repo := &SQLiteRepository{db: db}
	if err := repo.createTables(); err != nil {
		db.Close()
		return nil, err
	}
	return repo, nil
}

func (r *SQLiteRepository) createTables() error {
	queries := []string{
		`CREATE TABLE IF NOT EXISTS observations (
			id TEXT PRIMARY KEY,
			protocol TEXT NOT NULL,
			identifier TEXT,
			mac TEXT,
			rssi INTEGER,
			timestamp INTEGER NOT NULL,
			latitude REAL,
			longitude REAL,
			data TEXT NOT NULL,
			created_at TEXT NOT NULL
		);`,
		`CREATE INDEX IF NOT EXISTS idx_observations_timestamp ON observations (timestamp);`,
		`CREATE INDEX IF NOT EXISTS idx_observations_protocol ON observations (protocol, timestamp);`,
	}
	for _, q := range queries {
		if _, err := r.db.Exec(q); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

const insertObservation = `INSERT INTO observations (id, protocol, identifier, mac, rssi, timestamp, latitude, longitude, data, created_at) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?);`

type execer interface {
	Exec(args ...any) (sql.Result, error)
}

// insert validates obs, assigns an ID when missing and writes it through stmt
func insert(stmt execer, obs model.Observation) (string, error) {
	if err := obs.Validate(); err != nil {
		return "", errors.Join(err, errors.New("invalid observation"))
	}
	if obs.ID == "" {
		obs.ID = uuid.NewString()
	}
	data, err := json.Marshal(obs)
	if err != nil {
		return "", fmt.Errorf("failed to encode observation %s: %w", obs.ID, err)
	}

	var rssi sql.NullInt64
	if obs.HasRSSI() {
		rssi = sql.NullInt64{Int64: int64(obs.RSSI), Valid: true}
	}
	var lat, lon sql.NullFloat64
	if obs.Location != nil {
		lat = sql.NullFloat64{Float64: obs.Location.Latitude, Valid: true}
		lon = sql.NullFloat64{Float64: obs.Location.Longitude, Valid: true}
	}

	_, err = stmt.Exec(
		obs.ID,
		string(obs.Protocol),
		obs.Identifier,
		obs.MAC,
		rssi,
		obs.Timestamp.UnixNano(),
		lat,
		lon,
		string(data),
		time.Now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		var sqliteErr sqlite3.Error
		if errors.As(err, &sqliteErr) && sqliteErr.Code == sqlite3.ErrConstraint {
			return "", fmt.Errorf("%w: %s", ErrDuplicate, obs.ID)
		}
		return "", err
	}
	return obs.ID, nil
}

type dbExecer struct{ db *sql.DB }

func (d dbExecer) Exec(args ...any) (sql.Result, error) {
	return d.db.Exec(insertObservation, args...)
}

// AddObservation stores one observation and returns its ID
func (r *SQLiteRepository) AddObservation(obs model.Observation) (string, error) {
	return insert(dbExecer{r.db}, obs)
}

// AddObservations inserts all observations in a single transaction. Nothing is
// stored when one of them fails.
func (r *SQLiteRepository) AddObservations(observations []model.Observation) ([]string, error) {
	tx, err := r.db.Begin()
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	stmt, err := tx.Prepare(insertObservation)
	if err != nil {
		return nil, err
	}
	defer stmt.Close()

	ids := make([]string, 0, len(observations))
	for i, obs := range observations {
		id, err := insert(stmt, obs)
		if err != nil {
			return nil, fmt.Errorf("observation %d: %w", i, err)
		}
		ids = append(ids, id)
	}
	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return ids, nil
}

func (r *SQLiteRepository) GetObservation(id string) (*model.Observation, error) {
	var data string
	err := r.db.QueryRow(`SELECT data FROM observations WHERE id = ?`, id).Scan(&data)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, err
	}
	var obs model.Observation
	if err := json.Unmarshal([]byte(data), &obs); err != nil {
		return nil, fmt.Errorf("failed to decode observation %s: %w", id, err)
	}
	return &obs, nil
}

func (r *SQLiteRepository) Observations(since time.Time) ([]model.Observation, error) {
	return r.query(`SELECT id, data FROM observations WHERE timestamp >= ? ORDER BY timestamp, rowid`,
		since.UnixNano())
}

func (r *SQLiteRepository) ObservationsByProtocol(protocol model.Protocol, since time.Time) ([]model.Observation, error) {
	return r.query(`SELECT id, data FROM observations WHERE protocol = ? AND timestamp >= ? ORDER BY timestamp, rowid`,
		string(protocol), since.UnixNano())
}

func (r *SQLiteRepository) query(query string, args ...any) ([]model.Observation, error) {
	rows, err := r.db.Query(query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var observations []model.Observation
	for rows.Next() {
		var id, data string
		if err := rows.Scan(&id, &data); err != nil {
			return nil, err
		}
		var obs model.Observation
		if err := json.Unmarshal([]byte(data), &obs); err != nil {
			return nil, fmt.Errorf("failed to decode observation %s: %w", id, err)
		}
		observations = append(observations, obs)
	}
	return observations, rows.Err()
}

func (r *SQLiteRepository) Count() (int, error) {
	var n int
	err := r.db.QueryRow(`SELECT COUNT(*) FROM observations`).Scan(&n)
	return n, err
}

// DeleteBefore drops observations captured before the given time
func (r *SQLiteRepository) DeleteBefore(before time.Time) (int64, error) {
	res, err := r.db.Exec(`DELETE FROM observations WHERE timestamp < ?`, before.UnixNano())
	if err != nil {
		return 0, err
	}
	return res.RowsAffected()
}

func (r *SQLiteRepository) Close() error {
	return r.db.Close()
}
