package storage

import (
	"context"
	"fmt"
	"strings"

	"github.com/fernwood/dresscode/internal/model"
)

// UpsertGapItem records a gap suggestion term in the cache. Terms are
// stored lower-cased so lookups are case-insensitive.
func (s *SQLiteStorage) UpsertGapItem(ctx context.Context, item *model.CachedGapItem) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if item == nil {
		return fmt.Errorf("gap item is required")
	}
	if err := validateString(item.Term, "term"); err != nil {
		return err
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO gap_items (term, image_url, cached_at)
		VALUES (?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(term) DO UPDATE SET
			image_url = excluded.image_url,
			cached_at = CURRENT_TIMESTAMP`,
		strings.ToLower(strings.TrimSpace(item.Term)), item.ImageURL)
	if err != nil {
		return fmt.Errorf("failed to upsert gap item: %w", err)
	}
	return nil
}

// GetGapItems returns cached gap items matching any of the given terms.
func (s *SQLiteStorage) GetGapItems(ctx context.Context, terms []string) ([]model.CachedGapItem, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if len(terms) == 0 {
		return nil, nil
	}

	placeholders := make([]string, len(terms))
	args := make([]any, len(terms))
	for i, term := range terms {
		placeholders[i] = "?"
		args[i] = strings.ToLower(strings.TrimSpace(term))
	}

	query := fmt.Sprintf(`
		SELECT term, image_url, cached_at FROM gap_items
		WHERE term IN (%s) ORDER BY term`, strings.Join(placeholders, ", "))

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query gap items: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var items []model.CachedGapItem
	for rows.Next() {
		var item model.CachedGapItem
		if err := rows.Scan(&item.Term, &item.ImageURL, &item.CachedAt); err != nil {
			return nil, fmt.Errorf("failed to scan gap item: %w", err)
		}
		items = append(items, item)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate gap items: %w", err)
	}
	return items, nil
}
