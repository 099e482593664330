package storage

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/fernwood/dresscode/internal/common"
	"github.com/fernwood/dresscode/internal/model"
)

// SaveGarment stores a garment. Returns common.ErrDuplicateEntry when a
// garment with the same content hash already exists.
func (s *SQLiteStorage) SaveGarment(ctx context.Context, garment *model.Garment) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateGarment(garment); err != nil {
		return err
	}

	if garment.Hash == "" {
		garment.Hash = garment.GenerateHash()
	}

	result, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO garments (id, user_id, hash, title, color, category, style, source)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`,
		garment.ID, garment.UserID, garment.Hash, garment.Title,
		garment.Color, garment.Category, garment.Style, string(garment.Source))
	if err != nil {
		return fmt.Errorf("failed to save garment: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check save result: %w", err)
	}
	if rows == 0 {
		return common.ErrDuplicateEntry
	}
	return nil
}

// GetGarments returns all garments belonging to a user.
func (s *SQLiteStorage) GetGarments(ctx context.Context, userID string) ([]model.Garment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	rows, err := s.db.QueryContext(ctx, `
		SELECT id, user_id, hash, title, color, category, style, source, created_at
		FROM garments WHERE user_id = ? ORDER BY created_at, id`, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to query garments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var garments []model.Garment
	for rows.Next() {
		g, err := scanGarment(rows)
		if err != nil {
			return nil, err
		}
		garments = append(garments, g)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate garments: %w", err)
	}
	return garments, nil
}

// GetGarmentByID returns a single garment by its identifier.
func (s *SQLiteStorage) GetGarmentByID(ctx context.Context, id string) (*model.Garment, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(id, "id"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT id, user_id, hash, title, color, category, style, source, created_at
		FROM garments WHERE id = ?`, id)

	g, err := scanGarment(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &g, nil
}

// DeleteGarment removes a garment. Returns common.ErrNotFound when no
// garment has the given identifier.
func (s *SQLiteStorage) DeleteGarment(ctx context.Context, id string) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if err := validateString(id, "id"); err != nil {
		return err
	}

	result, err := s.db.ExecContext(ctx, `DELETE FROM garments WHERE id = ?`, id)
	if err != nil {
		return fmt.Errorf("failed to delete garment: %w", err)
	}
	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to check delete result: %w", err)
	}
	if rows == 0 {
		return common.ErrNotFound
	}
	return nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanGarment(row rowScanner) (model.Garment, error) {
	var g model.Garment
	var source string
	if err := row.Scan(&g.ID, &g.UserID, &g.Hash, &g.Title, &g.Color,
		&g.Category, &g.Style, &source, &g.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return g, err
		}
		return g, fmt.Errorf("failed to scan garment: %w", err)
	}
	g.Source = model.GarmentSource(source)
	return g, nil
}
