package profile

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	_ "modernc.org/sqlite"
)

// Store persists quality profiles in SQLite and implements Provider.
type Store struct {
	db *sql.DB
}

// Open opens (or creates) the profile database at path.
func Open(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open profile database: %w", err)
	}
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	return s, nil
}

// NewStore wraps an existing database handle.
func NewStore(db *sql.DB) (*Store, error) {
	s := &Store{db: db}
	if err := s.migrate(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *Store) migrate() error {
	_, err := s.db.Exec(`
		CREATE TABLE IF NOT EXISTS quality_profiles (
			id   TEXT PRIMARY KEY,
			name TEXT NOT NULL
		);
		CREATE TABLE IF NOT EXISTS quality_items (
			profile_id  TEXT NOT NULL REFERENCES quality_profiles(id) ON DELETE CASCADE,
			position    INTEGER NOT NULL,
			quality     TEXT NOT NULL,
			source      TEXT NOT NULL,
			min_seeders INTEGER,
			max_size_gb REAL,
			PRIMARY KEY (profile_id, position)
		);
	`)
	if err != nil {
		return fmt.Errorf("migrate profile schema: %w", err)
	}
	return nil
}

// Close closes the underlying database.
func (s *Store) Close() error {
	return s.db.Close()
}

// Save writes a profile and its items. Items are sorted into the
// global preference order before persisting; stored item order is the
// authoritative ranking consumed at selection time.
func (s *Store) Save(ctx context.Context, p *QualityProfile) error {
	p.Sort()

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx,
		`INSERT INTO quality_profiles (id, name) VALUES (?, ?)
		 ON CONFLICT(id) DO UPDATE SET name = excluded.name`,
		p.ID, p.Name); err != nil {
		return fmt.Errorf("save profile %s: %w", p.ID, err)
	}
	if _, err := tx.ExecContext(ctx,
		`DELETE FROM quality_items WHERE profile_id = ?`, p.ID); err != nil {
		return fmt.Errorf("clear profile items: %w", err)
	}

	for i, item := range p.Items {
		var minSeeders sql.NullInt64
		if item.MinSeeders != nil {
			minSeeders = sql.NullInt64{Int64: int64(*item.MinSeeders), Valid: true}
		}
		var maxSize sql.NullFloat64
		if item.MaxSizeGB != nil {
			maxSize = sql.NullFloat64{Float64: *item.MaxSizeGB, Valid: true}
		}
		if _, err := tx.ExecContext(ctx,
			`INSERT INTO quality_items (profile_id, position, quality, source, min_seeders, max_size_gb)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			p.ID, i, item.Quality, item.Source, minSeeders, maxSize); err != nil {
			return fmt.Errorf("save profile item %d: %w", i, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit profile: %w", err)
	}
	return nil
}

// FindByID loads a profile with its items in stored (preference) order.
func (s *Store) FindByID(ctx context.Context, id string) (*QualityProfile, error) {
	p := &QualityProfile{ID: id}
	err := s.db.QueryRowContext(ctx,
		`SELECT name FROM quality_profiles WHERE id = ?`, id).Scan(&p.Name)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("load profile %s: %w", id, err)
	}

	rows, err := s.db.QueryContext(ctx,
		`SELECT quality, source, min_seeders, max_size_gb
		 FROM quality_items WHERE profile_id = ? ORDER BY position`, id)
	if err != nil {
		return nil, fmt.Errorf("load profile items: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var item QualityItem
		var minSeeders sql.NullInt64
		var maxSize sql.NullFloat64
		if err := rows.Scan(&item.Quality, &item.Source, &minSeeders, &maxSize); err != nil {
			return nil, fmt.Errorf("scan profile item: %w", err)
		}
		if minSeeders.Valid {
			v := int(minSeeders.Int64)
			item.MinSeeders = &v
		}
		if maxSize.Valid && maxSize.Float64 > 0 {
			v := maxSize.Float64
			item.MaxSizeGB = &v
		}
		p.Items = append(p.Items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profile items: %w", err)
	}
	return p, nil
}

// List returns all profiles with items, ordered by name.
func (s *Store) List(ctx context.Context) ([]*QualityProfile, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id FROM quality_profiles ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("list profiles: %w", err)
	}
	defer rows.Close()

	var ids []string
	for rows.Next() {
		var id string
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan profile id: %w", err)
		}
		ids = append(ids, id)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate profiles: %w", err)
	}

	profiles := make([]*QualityProfile, 0, len(ids))
	for _, id := range ids {
		p, err := s.FindByID(ctx, id)
		if err != nil {
			return nil, err
		}
		profiles = append(profiles, p)
	}
	return profiles, nil
}
