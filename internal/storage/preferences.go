package storage

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/fernwood/dresscode/internal/common"
	"github.com/fernwood/dresscode/internal/model"
)

// GetPreferences returns the preference profile for a user, or
// common.ErrNotFound when none has been saved.
func (s *SQLiteStorage) GetPreferences(ctx context.Context, userID string) (*model.PreferenceProfile, error) {
	if err := validateContext(ctx); err != nil {
		return nil, err
	}
	if err := validateString(userID, "userID"); err != nil {
		return nil, err
	}

	row := s.db.QueryRowContext(ctx, `
		SELECT user_id, gender, styles, colors, materials, fit_types, sizes, price_min, price_max
		FROM preferences WHERE user_id = ?`, userID)

	var p model.PreferenceProfile
	var styles, colors, materials, fitTypes, sizes string
	err := row.Scan(&p.UserID, &p.Gender, &styles, &colors, &materials, &fitTypes, &sizes,
		&p.PriceMin, &p.PriceMax)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, common.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan preferences: %w", err)
	}

	for _, field := range []struct {
		raw  string
		dest *[]string
	}{
		{styles, &p.Styles},
		{colors, &p.Colors},
		{materials, &p.Materials},
		{fitTypes, &p.FitTypes},
		{sizes, &p.Sizes},
	} {
		if field.raw == "" {
			continue
		}
		if err := json.Unmarshal([]byte(field.raw), field.dest); err != nil {
			return nil, fmt.Errorf("failed to decode preference list: %w", err)
		}
	}
	return &p, nil
}

// SavePreferences upserts the preference profile keyed by user ID.
func (s *SQLiteStorage) SavePreferences(ctx context.Context, prefs *model.PreferenceProfile) error {
	if err := validateContext(ctx); err != nil {
		return err
	}
	if prefs == nil {
		return fmt.Errorf("preferences are required")
	}
	if err := validateString(prefs.UserID, "user ID"); err != nil {
		return err
	}

	encoded := make([]string, 0, 5)
	for _, list := range [][]string{prefs.Styles, prefs.Colors, prefs.Materials, prefs.FitTypes, prefs.Sizes} {
		data, err := json.Marshal(list)
		if err != nil {
			return fmt.Errorf("failed to encode preference list: %w", err)
		}
		encoded = append(encoded, string(data))
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO preferences (user_id, gender, styles, colors, materials, fit_types, sizes, price_min, price_max, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(user_id) DO UPDATE SET
			gender = excluded.gender,
			styles = excluded.styles,
			colors = excluded.colors,
			materials = excluded.materials,
			fit_types = excluded.fit_types,
			sizes = excluded.sizes,
			price_min = excluded.price_min,
			price_max = excluded.price_max,
			updated_at = CURRENT_TIMESTAMP`,
		prefs.UserID, prefs.Gender, encoded[0], encoded[1], encoded[2], encoded[3], encoded[4],
		prefs.PriceMin, prefs.PriceMax)
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}
	return nil
}
