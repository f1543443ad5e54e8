package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	_ "modernc.org/sqlite"

	"mediashelf/internal/catalog"
	"mediashelf/internal/config"
	"mediashelf/internal/services"
)

// Store manages catalog persistence backed by SQLite.
type Store struct {
	db   *sql.DB
	path string
}

// Open initializes or connects to the catalog database using config paths.
func Open(cfg *config.Config) (*Store, error) {
	if err := cfg.EnsureDirectories(); err != nil {
		return nil, fmt.Errorf("ensure directories: %w", err)
	}
	return OpenPath(cfg.DatabasePath())
}

// OpenPath initializes or connects to the catalog database at the given path.
func OpenPath(path string) (*Store, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open sqlite db: %w", err)
	}

	pragmas := []string{
		"PRAGMA journal_mode=WAL",
		"PRAGMA foreign_keys = ON",
		"PRAGMA busy_timeout = 5000",
	}
	for _, pragma := range pragmas {
		if _, execErr := db.Exec(pragma); execErr != nil {
			_ = db.Close()
			return nil, fmt.Errorf("apply pragma %q: %w", pragma, execErr)
		}
	}

	if err := applySchema(context.Background(), db); err != nil {
		_ = db.Close()
		return nil, err
	}

	return &Store{db: db, path: path}, nil
}

// Close closes the underlying database connection.
func (s *Store) Close() error {
	if s == nil || s.db == nil {
		return nil
	}
	return s.db.Close()
}

// Path returns the database file location.
func (s *Store) Path() string { return s.path }

// Add persists a new entity, assigning and returning its ID.
func (s *Store) Add(ctx context.Context, entity catalog.Entity) (string, error) {
	if entity.EntityID() != "" {
		return "", services.Wrap(services.ErrUsage, "store", "add", "entity already has an id", nil)
	}
	entity.SetEntityID(uuid.NewString())

	payload, err := json.Marshal(entity)
	if err != nil {
		return "", fmt.Errorf("marshal entity: %w", err)
	}

	timestamp := time.Now().UTC().Format(time.RFC3339Nano)
	_, err = s.db.ExecContext(ctx,
		`INSERT INTO catalog_items (id, kind, title, payload, created_at, updated_at)
         VALUES (?, ?, ?, ?, ?, ?)`,
		entity.EntityID(), string(entity.EntityKind()), entity.EntityTitle(), string(payload), timestamp, timestamp)
	if err != nil {
		return "", fmt.Errorf("insert entity: %w", err)
	}
	return entity.EntityID(), nil
}

// Get loads a single entity by kind and ID.
func (s *Store) Get(ctx context.Context, kind catalog.Kind, id string) (catalog.Entity, error) {
	var payload string
	err := s.db.QueryRowContext(ctx,
		`SELECT payload FROM catalog_items WHERE kind = ? AND id = ?`,
		string(kind), id).Scan(&payload)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, services.Wrap(services.ErrNotFound, "store", "get", fmt.Sprintf("%s %s", kind, id), nil)
	}
	if err != nil {
		return nil, fmt.Errorf("query entity: %w", err)
	}
	return decodeEntity(kind, payload)
}

// Update replaces a persisted entity. The entity must carry its store ID.
func (s *Store) Update(ctx context.Context, entity catalog.Entity) error {
	if entity.EntityID() == "" {
		return services.Wrap(services.ErrUsage, "store", "update", "entity has no id", nil)
	}

	payload, err := json.Marshal(entity)
	if err != nil {
		return fmt.Errorf("marshal entity: %w", err)
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE catalog_items SET title = ?, payload = ?, updated_at = ?
         WHERE kind = ? AND id = ?`,
		entity.EntityTitle(), string(payload), time.Now().UTC().Format(time.RFC3339Nano),
		string(entity.EntityKind()), entity.EntityID())
	if err != nil {
		return fmt.Errorf("update entity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "store", "update", fmt.Sprintf("%s %s", entity.EntityKind(), entity.EntityID()), nil)
	}
	return nil
}

// Remove deletes an entity by kind and ID.
func (s *Store) Remove(ctx context.Context, kind catalog.Kind, id string) error {
	res, err := s.db.ExecContext(ctx,
		`DELETE FROM catalog_items WHERE kind = ? AND id = ?`, string(kind), id)
	if err != nil {
		return fmt.Errorf("delete entity: %w", err)
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("rows affected: %w", err)
	}
	if affected == 0 {
		return services.Wrap(services.ErrNotFound, "store", "remove", fmt.Sprintf("%s %s", kind, id), nil)
	}
	return nil
}

// List returns every entity of the given kind ordered by insertion time.
func (s *Store) List(ctx context.Context, kind catalog.Kind) ([]catalog.Entity, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT payload FROM catalog_items WHERE kind = ? ORDER BY created_at, id`, string(kind))
	if err != nil {
		return nil, fmt.Errorf("query entities: %w", err)
	}
	defer rows.Close()

	var entities []catalog.Entity
	for rows.Next() {
		var payload string
		if err := rows.Scan(&payload); err != nil {
			return nil, fmt.Errorf("scan entity: %w", err)
		}
		entity, err := decodeEntity(kind, payload)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterate entities: %w", err)
	}
	return entities, nil
}

// Count returns the number of entities of the given kind.
func (s *Store) Count(ctx context.Context, kind catalog.Kind) (int, error) {
	var count int
	err := s.db.QueryRowContext(ctx,
		`SELECT COUNT(*) FROM catalog_items WHERE kind = ?`, string(kind)).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("count entities: %w", err)
	}
	return count, nil
}

func decodeEntity(kind catalog.Kind, payload string) (catalog.Entity, error) {
	entity, err := catalog.New(kind)
	if err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(payload), entity); err != nil {
		return nil, fmt.Errorf("decode %s payload: %w", kind, err)
	}
	return entity, nil
}
