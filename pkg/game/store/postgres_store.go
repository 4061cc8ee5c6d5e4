package store

import (
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq" // PostgreSQL driver and array support
)

// PostgresStore keeps maps in a PostgreSQL table, index arrays as INTEGER[]
type PostgresStore struct {
	db *sql.DB
}

// NewPostgresStore connects to the database and makes sure the schema exists
func NewPostgresStore(connectionString string) (*PostgresStore, error) {
	db, err := sql.Open("postgres", connectionString)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	store := &PostgresStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

func (ps *PostgresStore) initSchema() error {
	schema := `
	CREATE TABLE IF NOT EXISTS maps (
		id SERIAL PRIMARY KEY,
		name TEXT UNIQUE NOT NULL,
		width INTEGER NOT NULL,
		height INTEGER NOT NULL,
		cell_size DOUBLE PRECISION NOT NULL,
		rating DOUBLE PRECISION NOT NULL,
		seed BIGINT NOT NULL DEFAULT 0,
		walls INTEGER[] NOT NULL,
		tanks INTEGER[] NOT NULL,
		tank_types INTEGER[] NOT NULL,
		created_at TIMESTAMP WITH TIME ZONE DEFAULT NOW(),
		updated_at TIMESTAMP WITH TIME ZONE DEFAULT NOW()
	);
	`

	_, err := ps.db.Exec(schema)
	return err
}

// SaveMap stores record under name, replacing any existing map
func (ps *PostgresStore) SaveMap(name string, record *Record) error {
	if err := record.Map.Validate(); err != nil {
		return fmt.Errorf("refusing to save map %s: %w", name, err)
	}

	query := `
	INSERT INTO maps (name, width, height, cell_size, rating, seed, walls, tanks, tank_types)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	ON CONFLICT (name)
	DO UPDATE SET
		width = $2, height = $3, cell_size = $4, rating = $5, seed = $6,
		walls = $7, tanks = $8, tank_types = $9,
		updated_at = NOW()
	`

	m := record.Map
	_, err := ps.db.Exec(query,
		name, m.Width, m.Height, record.CellSize, record.Rating, record.Seed,
		toInt64Array(m.Walls), toInt64Array(m.Tanks), toInt64Array(m.TankTypes))
	if err != nil {
		return fmt.Errorf("failed to save map: %w", err)
	}

	return nil
}

// LoadMap returns the map stored under name
func (ps *PostgresStore) LoadMap(name string) (*Record, error) {
	query := `SELECT width, height, cell_size, rating, seed, walls, tanks, tank_types FROM maps WHERE name = $1`

	var record Record
	var walls, tanks, tankTypes pq.Int64Array

	err := ps.db.QueryRow(query, name).Scan(
		&record.Map.Width, &record.Map.Height, &record.CellSize, &record.Rating, &record.Seed,
		&walls, &tanks, &tankTypes,
	)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
		}
		return nil, fmt.Errorf("failed to load map: %w", err)
	}

	record.Map.Walls = fromInt64Array(walls)
	record.Map.Tanks = fromInt64Array(tanks)
	record.Map.TankTypes = fromInt64Array(tankTypes)
	return &record, nil
}

// ListMaps returns the stored map names in sorted order
func (ps *PostgresStore) ListMaps() ([]string, error) {
	rows, err := ps.db.Query(`SELECT name FROM maps ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list maps: %w", err)
	}
	defer rows.Close()

	var names []string
	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, fmt.Errorf("failed to scan map name: %w", err)
		}
		names = append(names, name)
	}
	return names, rows.Err()
}

// DeleteMap removes the map stored under name
func (ps *PostgresStore) DeleteMap(name string) error {
	res, err := ps.db.Exec(`DELETE FROM maps WHERE name = $1`, name)
	if err != nil {
		return fmt.Errorf("failed to delete map: %w", err)
	}
	if n, err := res.RowsAffected(); err == nil && n == 0 {
		return fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return nil
}

// Close closes the database connection
func (ps *PostgresStore) Close() error {
	return ps.db.Close()
}

func toInt64Array(values []int) pq.Int64Array {
	out := make(pq.Int64Array, len(values))
	for i, v := range values {
		out[i] = int64(v)
	}
	return out
}

func fromInt64Array(values pq.Int64Array) []int {
	out := make([]int, len(values))
	for i, v := range values {
		out[i] = int(v)
	}
	return out
}
