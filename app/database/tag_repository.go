package database

import (
	"database/sql"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type tagRepository struct {
	db *DB
}

func NewTagRepository(db *DB) TagRepository {
	return &tagRepository{db: db}
}

func (r *tagRepository) GetOrCreate(name, slug string) (*TagRecord, error) {
	existing, err := r.getBySlug(slug)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	record := &TagRecord{
		Id:        uuid.NewString(),
		Name:      name,
		Slug:      slug,
		CreatedAt: time.Now().UTC(),
	}

	_, err = r.db.Exec(`
		INSERT INTO tags (id, name, slug, usage_count, created_at) VALUES (?, ?, ?, 0, ?)
	`, record.Id, record.Name, record.Slug, record.CreatedAt.Format(time.RFC3339))
	if err != nil {
		return nil, fmt.Errorf("failed to create tag: %w", err)
	}

	return record, nil
}

func (r *tagRepository) getBySlug(slug string) (*TagRecord, error) {
	row := r.db.QueryRow(`
		SELECT id, name, slug, usage_count, created_at FROM tags WHERE slug = ?
	`, slug)

	record, err := r.scanTag(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get tag: %w", err)
	}
	return record, nil
}

// Search returns tags whose name contains the query, most used first. Used by
// the authoring UI for autocomplete.
func (r *tagRepository) Search(query string, limit int) ([]TagRecord, error) {
	if limit <= 0 {
		limit = 10
	}

	rows, err := r.db.Query(`
		SELECT id, name, slug, usage_count, created_at
		FROM tags
		WHERE name LIKE ? COLLATE NOCASE
		ORDER BY usage_count DESC, name ASC
		LIMIT ?
	`, "%"+query+"%", limit)
	if err != nil {
		return nil, fmt.Errorf("failed to search tags: %w", err)
	}
	defer rows.Close()

	var records []TagRecord
	for rows.Next() {
		record, err := r.scanTag(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan tag: %w", err)
		}
		records = append(records, *record)
	}

	return records, rows.Err()
}

func (r *tagRepository) IncrementUsage(slug string) error {
	if _, err := r.db.Exec(`
		UPDATE tags SET usage_count = usage_count + 1 WHERE slug = ?
	`, slug); err != nil {
		return fmt.Errorf("failed to increment tag usage: %w", err)
	}
	return nil
}

func (r *tagRepository) Count() (int, error) {
	var count int
	if err := r.db.QueryRow(`SELECT COUNT(*) FROM tags`).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count tags: %w", err)
	}
	return count, nil
}

func (r *tagRepository) scanTag(row rowScanner) (*TagRecord, error) {
	var record TagRecord
	var createdAt string

	err := row.Scan(&record.Id, &record.Name, &record.Slug, &record.UsageCount, &createdAt)
	if err != nil {
		return nil, err
	}

	if record.CreatedAt, err = time.Parse(time.RFC3339, createdAt); err != nil {
		return nil, fmt.Errorf("failed to parse created_at: %w", err)
	}
	return &record, nil
}
